/*
Package dom provides style targets for HTML documents.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A Document wraps an HTML parse tree (package golang.org/x/net/html) and
keeps two lists of stylesheets: the ones embedded with <style> elements and
the adopted ones. Adopted stylesheets are set by clients (see
cssom.Target) and come last in cascade order.

A ShadowRoot is attached to a host element of a document. It carries its own
stylesheets, which apply to the descendants of the host only. Conversely,
stylesheets of the document do not apply inside a shadow host.

The cascade implemented here is a small subset of CSS: qualified rules are
matched against elements with cascadia selectors, sorted by specificity and
source order, and "!important" declarations win over normal ones. At-rules
are ignored.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'adoptcss.dom'
func tracer() tracing.Trace {
	return tracing.Select("adoptcss.dom")
}
