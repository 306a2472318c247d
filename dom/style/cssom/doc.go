/*
Package cssom provides the contracts for adopting CSS stylesheets.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Documents and shadow roots hold an ordered list of "adopted" stylesheets,
which are applied after the stylesheets embedded in the document. See

   https://developer.mozilla.org/en-US/docs/Web/API/Document/adoptedStyleSheets

Stylesheet handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in sub-packages
(e.g., douceuradapter). Constructing stylesheets from CSS source text is
the job of a Compiler, the holder of adopted stylesheets is a Target.

Function Sheets converts a mixed list of stylesheets and CSS text into
a list of stylesheets, ready to be set on a Target.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'adoptcss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("adoptcss.cssom")
}
