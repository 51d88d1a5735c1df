package geojson

// readFeature reads one Feature object, tolerating any member order.
//
// The "id" member becomes the reserved "id" property. When both a
// top-level id and an "id" key inside properties are present, the
// top-level member wins regardless of which arrived first.
func (d *decoder) readFeature() (*Feature, error) {
	if t := d.cur().Type; t != TokenObjectStart {
		return nil, d.errf(ErrMalformedGeometry, "expected Feature object, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}

	f := &Feature{}
	var (
		id      any
		haveID  bool
		sawType bool
	)
	for d.cur().Type != TokenObjectEnd {
		if t := d.cur().Type; t != TokenName {
			return nil, d.errf(ErrMalformedGeometry, "expected member name, got %s", t)
		}
		name := d.cur().Str
		if err := d.advance(); err != nil {
			return nil, err
		}
		switch name {
		case "type":
			if d.cur().Type != TokenString || d.cur().Str != "Feature" {
				return nil, d.errf(ErrUnexpectedFeatureType, "got %s", d.cur())
			}
			sawType = true
		case "id":
			switch t := d.cur(); t.Type {
			case TokenString:
				id, haveID = t.Str, true
			case TokenNumber:
				id, haveID = t.Num, true
			case TokenBool:
				id, haveID = t.Bool, true
			case TokenNull:
				// ignored
			default:
				if err := d.skipValue(); err != nil {
					return nil, err
				}
			}
		case "geometry":
			switch t := d.cur().Type; t {
			case TokenNull:
				// no geometry
			case TokenObjectStart:
				g, err := d.readGeometry()
				if err != nil {
					return nil, err
				}
				f.Geometry = g
			default:
				return nil, d.errf(ErrMalformedGeometry, "geometry must be an object or null, got %s", t)
			}
		case "properties":
			switch t := d.cur().Type; t {
			case TokenNull:
				// Indistinguishable from an absent member unless the
				// compatibility flag says otherwise.
				if d.s.opts.DistinctNullProperties {
					f.Properties = NewProperties()
				}
			case TokenObjectStart:
				p, err := d.readProperties()
				if err != nil {
					return nil, err
				}
				f.Properties = p
			default:
				return nil, d.errf(ErrMalformedGeometry, "properties must be an object or null, got %s", t)
			}
		case "bbox":
			b, err := d.readBBox()
			if err != nil {
				return nil, err
			}
			f.BBox = b
		default:
			// e.g. "geometry_name" from some servers
			if err := d.skipValue(); err != nil {
				return nil, err
			}
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
	}

	if !sawType {
		return nil, d.errf(ErrUnexpectedFeatureType, `missing "type" member`)
	}
	if haveID {
		f.SetID(id)
	}
	return f, nil
}

// readProperties reads a property object, preserving member order.
func (d *decoder) readProperties() (*Properties, error) {
	p := NewProperties()
	if err := d.advance(); err != nil {
		return nil, err
	}
	for d.cur().Type != TokenObjectEnd {
		if t := d.cur().Type; t != TokenName {
			return nil, d.errf(ErrMalformedGeometry, "expected member name, got %s", t)
		}
		key := d.cur().Str
		if err := d.advance(); err != nil {
			return nil, err
		}
		v, err := d.readValue()
		if err != nil {
			return nil, err
		}
		p.Set(key, v)
		if err := d.advance(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// readValue reads any JSON value generically: scalars map to Go scalars,
// arrays to []any, objects to ordered *Properties.
func (d *decoder) readValue() (any, error) {
	switch t := d.cur(); t.Type {
	case TokenNull:
		return nil, nil
	case TokenBool:
		return t.Bool, nil
	case TokenNumber:
		return t.Num, nil
	case TokenString:
		return t.Str, nil
	case TokenArrayStart:
		if err := d.advance(); err != nil {
			return nil, err
		}
		vals := []any{}
		for d.cur().Type != TokenArrayEnd {
			v, err := d.readValue()
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
			if err := d.advance(); err != nil {
				return nil, err
			}
		}
		return vals, nil
	case TokenObjectStart:
		return d.readProperties()
	default:
		return nil, d.errf(ErrMalformedGeometry, "unexpected token %s", t.Type)
	}
}

// readFeatureCollection reads one FeatureCollection, tolerating any
// member order and the legacy "crs" member (read and discarded, even when
// null).
func (d *decoder) readFeatureCollection() (*FeatureCollection, error) {
	if t := d.cur().Type; t != TokenObjectStart {
		return nil, d.errf(ErrMalformedGeometry, "expected FeatureCollection object, got %s", t)
	}
	if err := d.advance(); err != nil {
		return nil, err
	}

	fc := &FeatureCollection{}
	sawType := false
	for d.cur().Type != TokenObjectEnd {
		if t := d.cur().Type; t != TokenName {
			return nil, d.errf(ErrMalformedGeometry, "expected member name, got %s", t)
		}
		name := d.cur().Str
		if err := d.advance(); err != nil {
			return nil, err
		}
		switch name {
		case "type":
			if d.cur().Type != TokenString || d.cur().Str != "FeatureCollection" {
				return nil, d.errf(ErrUnexpectedFeatureType, "got %s", d.cur())
			}
			sawType = true
		case "features":
			if t := d.cur().Type; t != TokenArrayStart {
				return nil, d.errf(ErrMalformedGeometry, "features must be an array, got %s", t)
			}
			if err := d.advance(); err != nil {
				return nil, err
			}
			for d.cur().Type != TokenArrayEnd {
				f, err := d.readFeature()
				if err != nil {
					return nil, err
				}
				fc.Features = append(fc.Features, f)
				if err := d.advance(); err != nil {
					return nil, err
				}
			}
		case "bbox":
			b, err := d.readBBox()
			if err != nil {
				return nil, err
			}
			fc.BBox = b
		case "crs":
			// deprecated legacy member, pass-through discard
			if err := d.skipValue(); err != nil {
				return nil, err
			}
		default:
			if err := d.skipValue(); err != nil {
				return nil, err
			}
		}
		if err := d.advance(); err != nil {
			return nil, err
		}
	}

	if !sawType {
		return nil, d.errf(ErrUnexpectedFeatureType, `missing "type" member`)
	}
	if fc.BBox == nil && d.s.opts.ComputeBBoxWhenMissing {
		fc.BBox = d.s.collectionBounds(fc)
	}
	return fc, nil
}
