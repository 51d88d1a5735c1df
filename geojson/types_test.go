package geojson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertiesOrderAndReplace(t *testing.T) {
	p := NewProperties()
	p.Set("b", 1)
	p.Set("a", 2)
	p.Set("c", 3)
	require.Equal(t, []string{"b", "a", "c"}, p.Keys())

	// Replacing keeps the original position.
	p.Set("a", 9)
	require.Equal(t, []string{"b", "a", "c"}, p.Keys())
	v, ok := p.Get("a")
	require.True(t, ok)
	require.Equal(t, 9, v)

	require.True(t, p.Delete("b"))
	require.False(t, p.Delete("b"))
	require.Equal(t, []string{"a", "c"}, p.Keys())
	require.Equal(t, 2, p.Len())
}

func TestPropertiesNilReceiver(t *testing.T) {
	var p *Properties
	require.Equal(t, 0, p.Len())
	require.Nil(t, p.Keys())
	require.Nil(t, p.Entries())
	_, ok := p.Get("x")
	require.False(t, ok)
	require.False(t, p.Delete("x"))
}

func TestFeatureID(t *testing.T) {
	f := &Feature{}
	_, ok := f.ID()
	require.False(t, ok)

	f.SetID("abc")
	id, ok := f.ID()
	require.True(t, ok)
	require.Equal(t, "abc", id)

	// The id lives in the property list under the reserved key.
	v, ok := f.Properties.Get("id")
	require.True(t, ok)
	require.Equal(t, "abc", v)
}
