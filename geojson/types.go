package geojson

import "github.com/twpayne/go-geom"

// idKey is the reserved property mirrored to the top-level "id" member on
// the wire.
const idKey = "id"

// A Property is one key/value entry of a property list. Values are JSON
// scalars (string, float64, bool, nil), []any, or nested *Properties.
type Property struct {
	Key   string
	Value any
}

// Properties is a property map preserving write order. Lookups scan the
// entry list; property bags are small.
type Properties struct {
	entries []Property
}

// NewProperties returns an empty property list.
func NewProperties() *Properties {
	return &Properties{}
}

// Len returns the number of entries. A nil receiver is empty.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Get returns the value for key and whether it is present. A nil receiver
// holds nothing.
func (p *Properties) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	for _, e := range p.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set stores value under key, keeping the original position if the key
// already exists and appending otherwise.
func (p *Properties) Set(key string, value any) {
	for i, e := range p.entries {
		if e.Key == key {
			p.entries[i].Value = value
			return
		}
	}
	p.entries = append(p.entries, Property{Key: key, Value: value})
}

// Delete removes key and reports whether it was present.
func (p *Properties) Delete(key string) bool {
	if p == nil {
		return false
	}
	for i, e := range p.entries {
		if e.Key == key {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Keys returns the keys in write order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the underlying entry list in write order. The caller
// must not modify it.
func (p *Properties) Entries() []Property {
	if p == nil {
		return nil
	}
	return p.entries
}

// A Feature pairs an optional geometry with a property list and an
// optional bounding box. The feature's identity is the reserved "id"
// property: writing derives the top-level "id" member from it and reading
// populates it from the member, so the two never diverge.
type Feature struct {
	Geometry   geom.T
	Properties *Properties
	BBox       *geom.Bounds
}

// ID returns the reserved "id" property and whether it is set.
func (f *Feature) ID() (any, bool) {
	return f.Properties.Get(idKey)
}

// SetID stores id as the reserved "id" property.
func (f *Feature) SetID(id any) {
	if f.Properties == nil {
		f.Properties = NewProperties()
	}
	f.Properties.Set(idKey, id)
}

// A FeatureCollection is an ordered sequence of features with an optional
// aggregate bounding box.
type FeatureCollection struct {
	Features []*Feature
	BBox     *geom.Bounds
}
