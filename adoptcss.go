/*
Package adoptcss binds lists of CSS stylesheets to documents and shadow roots.

Overview

Documents and shadow roots hold a list of "adopted" stylesheets. A Binder
wraps such a style target and lets clients assign a mix of pre-built
stylesheets and raw CSS text:

    b, err := adoptcss.New(shadowRoot,
        baseSheet,                          // cssom.StyleSheet
        ":host p { margin: 0 }",            // CSS text
    )

CSS text is compiled into a fresh stylesheet on every assignment; the
resulting list replaces the target's list as a whole. If any CSS text fails
to compile, the target's list is left untouched and a *cssom.CompilationError
is returned.

Binders do not synchronize access to their target.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package adoptcss

import (
	"errors"

	"github.com/npillmayer/adoptcss/dom/style/cssom"
	"github.com/npillmayer/adoptcss/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoptcss'.
func tracer() tracing.Trace {
	return tracing.Select("adoptcss")
}

// ErrNoTarget is returned when creating a Binder without a style target.
var ErrNoTarget = errors.New("adoptcss: no style target given")

// Binder adapts lists of style sources to the adopted stylesheets of a
// style target.
type Binder struct {
	root     cssom.Target
	compiler cssom.Compiler
}

// New creates a Binder for root and adopts sources. CSS text is compiled
// with douceuradapter.Compiler.
func New(root cssom.Target, sources ...cssom.StyleSource) (*Binder, error) {
	return NewWithCompiler(root, nil, sources...)
}

// NewWithCompiler creates a Binder for root and adopts sources, using
// compiler to compile CSS text. If compiler is nil, douceuradapter.Compiler
// is used.
func NewWithCompiler(root cssom.Target, compiler cssom.Compiler, sources ...cssom.StyleSource) (*Binder, error) {
	if root == nil {
		return nil, ErrNoTarget
	}
	if compiler == nil {
		compiler = douceuradapter.Compiler{}
	}
	b := &Binder{root: root, compiler: compiler}
	if err := b.SetAdoptedStyleSheets(sources...); err != nil {
		return nil, err
	}
	return b, nil
}

// AdoptedStyleSheets returns the stylesheets currently adopted by the
// style target, exactly as the target reports them.
func (b *Binder) AdoptedStyleSheets() []cssom.StyleSheet {
	return b.root.AdoptedStyleSheets()
}

// SetAdoptedStyleSheets converts sources into stylesheets and installs them
// on the style target, replacing all previously adopted stylesheets.
// Stylesheets are adopted as they are, CSS text is compiled into a new
// stylesheet, and sources of any other type are ignored. Order is preserved.
//
// If CSS text fails to compile, SetAdoptedStyleSheets returns a
// *cssom.CompilationError and the target is not modified.
func (b *Binder) SetAdoptedStyleSheets(sources ...cssom.StyleSource) error {
	sheets, err := cssom.Sheets(b.compiler, sources)
	if err != nil {
		return err
	}
	tracer().Debugf("adopting %d stylesheets from %d sources", len(sheets), len(sources))
	b.root.SetAdoptedStyleSheets(sheets)
	return nil
}
