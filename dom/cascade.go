package dom

import (
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/adoptcss/dom/style"
	"github.com/npillmayer/adoptcss/dom/style/cssom"
	"golang.org/x/net/html"
)

// MatchedRule is a rule applying to an element, together with the
// specificity of the most specific selector matching the element.
type MatchedRule struct {
	Rule        cssom.Rule
	Specificity cascadia.Specificity
}

// matchingRules collects the qualified rules of sheets matching n, sorted
// by specificity. Rules of equal specificity keep their source order.
func matchingRules(sheets []cssom.StyleSheet, n *html.Node) []MatchedRule {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	var matched []MatchedRule
	for _, sheet := range sheets {
		for _, rule := range sheet.Rules() {
			if !rule.IsQualified() {
				continue
			}
			if spec, ok := matchSelector(rule.Selector(), n); ok {
				matched = append(matched, MatchedRule{Rule: rule, Specificity: spec})
			}
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Specificity.Less(matched[j].Specificity)
	})
	return matched
}

func matchSelector(selector string, n *html.Node) (cascadia.Specificity, bool) {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		tracer().Debugf("ignoring selector %q: %v", selector, err)
		return cascadia.Specificity{}, false
	}
	var best cascadia.Specificity
	found := false
	for _, sel := range group {
		if !sel.Match(n) {
			continue
		}
		if !found || best.Less(sel.Specificity()) {
			best = sel.Specificity()
		}
		found = true
	}
	return best, found
}

// computedStyles applies matched rules in cascade order. Important
// declarations override normal ones.
func computedStyles(matched []MatchedRule) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	var important []style.KeyValue
	for _, m := range matched {
		for _, key := range m.Rule.Properties() {
			kvs := expand(key, m.Rule.Value(key))
			if m.Rule.IsImportant(key) {
				important = append(important, kvs...)
				continue
			}
			for _, kv := range kvs {
				pmap.Set(kv.Key, kv.Value)
			}
		}
	}
	for _, kv := range important {
		pmap.Set(kv.Key, kv.Value)
	}
	return pmap
}

func expand(key string, value style.Property) []style.KeyValue {
	if style.IsCompound(key) {
		kvs, err := style.SplitCompoundProperty(key, value)
		if err == nil {
			return kvs
		}
		tracer().P("key", key).Debugf("cannot split compound property: %v", err)
	}
	return []style.KeyValue{{Key: key, Value: value}}
}
