package style_test

import (
	"testing"

	"github.com/npillmayer/adoptcss/dom/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCompoundPadding(t *testing.T) {
	kv, err := style.SplitCompoundProperty("padding", "3px")
	require.NoError(t, err)
	require.Len(t, kv, 4)
	for _, p := range kv {
		assert.Equal(t, style.Property("3px"), p.Value, "for key %s", p.Key)
	}
	assert.Equal(t, "padding-top", kv[0].Key)
	assert.Equal(t, "padding-left", kv[3].Key)
}

func TestSplitCompoundThreeValues(t *testing.T) {
	kv, err := style.SplitCompoundProperty("border-width", "1px 2px 3px")
	require.NoError(t, err)
	want := []style.KeyValue{
		{"border-top-width", "1px"},
		{"border-right-width", "2px"},
		{"border-bottom-width", "3px"},
		{"border-left-width", "2px"},
	}
	assert.Equal(t, want, kv)
}

func TestSplitCompoundRadius(t *testing.T) {
	kv, err := style.SplitCompoundProperty("border-radius", "4px 8px")
	require.NoError(t, err)
	assert.Equal(t, style.KeyValue{"border-top-left-radius", "4px"}, kv[0])
	assert.Equal(t, style.KeyValue{"border-top-right-radius", "8px"}, kv[1])
	assert.Equal(t, style.KeyValue{"border-bottom-right-radius", "4px"}, kv[2])
}

func TestSplitCompoundErrors(t *testing.T) {
	_, err := style.SplitCompoundProperty("color", "red")
	assert.Error(t, err)
	_, err = style.SplitCompoundProperty("margin", "1px 2px 3px 4px 5px")
	assert.Error(t, err)
	_, err = style.SplitCompoundProperty("margin", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "for margin,")
	_, err = style.SplitCompoundProperty("border-style", "a b c d e")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "for border-style,")
}

func TestPropertyMap(t *testing.T) {
	var nilmap *style.PropertyMap
	assert.Equal(t, 0, nilmap.Size())
	_, ok := nilmap.Property("color")
	assert.False(t, ok)
	//
	pmap := style.NewPropertyMap()
	pmap.Set("color", "Red")
	pmap.Add("color", "blue")
	pmap.Add("display", "block")
	p, ok := pmap.Property("color")
	assert.True(t, ok)
	assert.Equal(t, style.Property("red"), p)
	assert.Equal(t, []string{"color", "display"}, pmap.Keys())
	assert.Contains(t, pmap.String(), "display = block")
}
