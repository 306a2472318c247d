package cssom

import (
	"errors"
	"fmt"
)

// StyleSource is one entry of a list of stylesheets to adopt. Recognized are
// two kinds of values:
//
//     StyleSheet   an already constructed stylesheet handle
//     string       CSS source text, to be compiled into a new handle
//
// Values of any other type are ignored.
type StyleSource = any

// Compiler constructs a new stylesheet from CSS source text. Compilation is
// synchronous. Compilers must return a fresh handle for every call.
type Compiler interface {
	Compile(css string) (StyleSheet, error)
}

// ErrNoCompiler is returned if CSS text is to be compiled without a Compiler.
var ErrNoCompiler = errors.New("no compiler for CSS text")

// CompilationError is returned if CSS source text cannot be compiled into a
// stylesheet.
type CompilationError struct {
	Index  int    // position of the offending source, -1 if not applicable
	Source string // CSS source text
	Err    error  // error reported by the CSS parser
}

func (e *CompilationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("cannot compile stylesheet: %v", e.Err)
	}
	return fmt.Sprintf("cannot compile stylesheet #%d: %v", e.Index, e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Sheets converts a list of style sources into a list of stylesheets.
// The result mirrors the order of sources. Stylesheets are passed through
// unchanged, CSS text is compiled to a fresh stylesheet by c, and
// sources of unrecognized type are dropped.
//
// If compiling any source fails, Sheets returns a *CompilationError and no
// stylesheets. If sources contain CSS text and c is nil, Sheets returns
// ErrNoCompiler.
func Sheets(c Compiler, sources []StyleSource) ([]StyleSheet, error) {
	sheets := make([]StyleSheet, 0, len(sources))
	for i, src := range sources {
		switch s := src.(type) {
		case StyleSheet:
			sheets = append(sheets, s)
		case string:
			if c == nil {
				return nil, ErrNoCompiler
			}
			sheet, err := c.Compile(s)
			if err != nil {
				tracer().Errorf("stylesheet #%d does not compile: %v", i, err)
				return nil, compilationError(i, s, err)
			}
			sheets = append(sheets, sheet)
		default:
			tracer().Debugf("dropping style source #%d of type %T", i, src)
		}
	}
	return sheets, nil
}

func compilationError(index int, css string, err error) error {
	var cerr *CompilationError
	if errors.As(err, &cerr) {
		cerr.Index = index
		return cerr
	}
	return &CompilationError{Index: index, Source: css, Err: err}
}
