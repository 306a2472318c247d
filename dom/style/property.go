/*
Package style holds raw CSS property values and property maps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Compound properties ----------------------------------------------

// IsCompound returns true if key is a four-sided shortcut property which
// SplitCompoundProperty is able to split up.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return split4(key, "margin", "", fourDirs, fields)
	case "padding":
		return split4(key, "padding", "", fourDirs, fields)
	case "border-color":
		return split4(key, "border", "color", fourDirs, fields)
	case "border-width":
		return split4(key, "border", "width", fourDirs, fields)
	case "border-style":
		return split4(key, "border", "style", fourDirs, fields)
	case "border-radius":
		return split4(key, "border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func split4(key string, pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s, have %d", key, l)
	}
	// index of the value to use for top/right/bottom/left, per number of values
	var pick = [4][4]int{
		{0, 0, 0, 0},
		{0, 1, 0, 1},
		{0, 1, 2, 1},
		{0, 1, 2, 3},
	}
	r := make([]KeyValue, 4)
	for i, dir := range dirs {
		r[i] = KeyValue{name(pre, suf, dir), Property(fields[pick[l-1][i]])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func name(prefix string, suffix string, tag string) string {
	switch {
	case suffix == "":
		return prefix + "-" + tag
	case prefix == "":
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
type PropertyMap struct {
	m map[string]Property
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	for _, k := range pmap.Keys() {
		fmt.Fprintf(&b, "  %s = %s\n", k, pmap.m[k])
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of properties set.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Keys returns the property keys of the map in alphabetical order.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, 0, len(pmap.m))
	for k := range pmap.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	if pmap == nil || pmap.m == nil {
		return NullStyle, false
	}
	p, ok := pmap.m[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (pmap *PropertyMap) Set(key string, p Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]Property)
	}
	pmap.m[key] = Property(strings.ToLower(string(p)))
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pmap *PropertyMap) Add(key string, p Property) {
	if _, exists := pmap.Property(key); exists {
		return
	}
	pmap.Set(key, p)
}
