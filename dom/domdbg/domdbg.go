/*
Package domdbg implements helpers to debug stylesheets of a DOM.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"

	"github.com/npillmayer/adoptcss/dom/style/cssom"
	tp "github.com/xlab/treeprint"
)

// SheetsTree outputs a list of stylesheets as a text tree, e.g.
//
//     .
//     └── adopted
//         └── sheet #0 (1 rules)
//             └── p
//                 └── color: red !important
//
// At-rules are marked with a leading '@'.
func SheetsTree(title string, sheets []cssom.StyleSheet) string {
	printer := tp.New()
	root := printer.AddBranch(title)
	for i, sheet := range sheets {
		printSheet(root, i, sheet)
	}
	return printer.String()
}

func printSheet(printer tp.Tree, i int, sheet cssom.StyleSheet) {
	if sheet == nil || sheet.Empty() {
		printer.AddNode(fmt.Sprintf("sheet #%d (empty)", i))
		return
	}
	rules := sheet.Rules()
	branch := printer.AddBranch(fmt.Sprintf("sheet #%d (%d rules)", i, len(rules)))
	for _, r := range rules {
		sel := r.Selector()
		if !r.IsQualified() {
			sel = "@ " + sel
		}
		keys := r.Properties()
		if len(keys) == 0 {
			branch.AddNode(sel)
			continue
		}
		rb := branch.AddBranch(sel)
		for _, key := range keys {
			decl := fmt.Sprintf("%s: %s", key, r.Value(key))
			if r.IsImportant(key) {
				decl += " !important"
			}
			rb.AddNode(decl)
		}
	}
}
