package maps

import (
	"fmt"

	"github.com/spf13/cast"
)

// ToParamsAndPrepare converts in to Params and prepares it for use.
// If in is nil, or a nil map, an empty map is returned.
// See PrepareParams.
func ToParamsAndPrepare(in any) (Params, bool) {
	if in == nil {
		return Params{}, true
	}
	m, err := ToStringMapE(in)
	if err != nil {
		return nil, false
	}
	if m == nil {
		return Params{}, true
	}
	PrepareParams(m)
	return m, true
}

// MustToParamsAndPrepare calls ToParamsAndPrepare and panics if it fails.
func MustToParamsAndPrepare(in any) Params {
	p, ok := ToParamsAndPrepare(in)
	if !ok {
		panic(fmt.Sprintf("cannot convert %T to maps.Params", in))
	}
	return p
}

// ToStringMapE converts in to map[string]interface{}.
func ToStringMapE(in any) (map[string]any, error) {
	switch vv := in.(type) {
	case Params:
		return vv, nil
	case map[string]string:
		var m = map[string]any{}
		for k, v := range vv {
			m[k] = v
		}
		return m, nil

	default:
		return cast.ToStringMapE(in)
	}
}

// ToSliceParams converts in to a slice of Params. Entries that are not maps
// are reported as an error together with their index.
func ToSliceParams(in any) ([]Params, error) {
	switch v := in.(type) {
	case nil:
		return nil, nil
	case []Params:
		return v, nil
	case []map[string]any:
		s := make([]Params, len(v))
		for i, entry := range v {
			s[i] = MustToParamsAndPrepare(entry)
		}
		return s, nil
	case []any:
		s := make([]Params, len(v))
		for i, entry := range v {
			p, ok := ToParamsAndPrepare(entry)
			if !ok {
				return nil, fmt.Errorf("entry %d: unable to cast %#v of type %T to map", i, entry, entry)
			}
			s[i] = p
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unable to cast %#v of type %T to []map[string]interface{}", in, in)
	}
}
