package maps

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Params is a map where all keys are lower case.
type Params map[string]any

// Set overwrites values in p with values in pp for common or new keys.
// This is done recursively.
func (p Params) Set(pp Params) {
	for k, v := range pp {
		vv, found := p[k]
		if !found {
			p[k] = v
			continue
		}
		if dst, ok := vv.(Params); ok {
			if src, ok := v.(Params); ok {
				dst.Set(src)
				continue
			}
		}
		p[k] = v
	}
}

// Get does a lower case and nested search in this map.
// It will return nil if none found.
func (p Params) Get(indices ...string) any {
	v, _ := getNested(p, indices)
	return v
}

// IsSet reports whether the nested key given by indices has a value,
// including an explicit nil.
func (p Params) IsSet(indices ...string) bool {
	_, found := getNested(p, indices)
	return found
}

// Clone returns a deep copy of p. Nested maps and slices are copied,
// other values are shared. Nested map[string]any values become Params.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v any) any {
	switch vv := v.(type) {
	case Params:
		return vv.Clone()
	case map[string]any:
		return Params(vv).Clone()
	case []any:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = cloneValue(e)
		}
		return s
	case []map[string]any:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = Params(e).Clone()
		}
		return s
	case []Params:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = e.Clone()
		}
		return s
	case []string:
		return append([]string(nil), vv...)
	default:
		return v
	}
}

func getNested(m map[string]any, indices []string) (any, bool) {
	if len(indices) == 0 {
		return nil, false
	}

	v, found := m[strings.ToLower(cast.ToString(indices[0]))]
	if !found {
		return nil, false
	}

	if len(indices) == 1 {
		return v, true
	}

	switch m2 := v.(type) {
	case Params:
		return getNested(m2, indices[1:])
	case map[string]any:
		return getNested(m2, indices[1:])
	default:
		return nil, false
	}
}

// PrepareParams
// * makes all the keys in the given map lower cased and will do so recursively.
// * This will modify the map given.
// * Any nested map[interface{}]interface{}, map[string]interface{},map[string]string  will be converted to Params.
// * Maps inside slices are converted too, so a list of tables decoded from
// TOML or YAML ends up as []any of Params.
func PrepareParams(m Params) {
	for k, v := range m {
		lKey := strings.ToLower(k)
		nv, retyped := prepareValue(v)
		if retyped || k != lKey {
			delete(m, k)
			m[lKey] = nv
		}
	}
}

func prepareValue(v any) (any, bool) {
	switch vv := v.(type) {
	case Params:
		PrepareParams(vv)
		return vv, false
	case map[any]any:
		var p Params = cast.ToStringMap(vv)
		PrepareParams(p)
		return p, true
	case map[string]any:
		var p Params = vv
		PrepareParams(p)
		return p, true
	case map[string]string:
		p := make(Params, len(vv))
		for k, s := range vv {
			p[k] = s
		}
		PrepareParams(p)
		return p, true
	case []map[string]any:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i], _ = prepareValue(e)
		}
		return s, true
	case []any:
		var retyped bool
		for i, e := range vv {
			ne, r := prepareValue(e)
			if r {
				vv[i] = ne
				retyped = true
			}
		}
		return vv, retyped
	default:
		return v, false
	}
}

// NormalizeNumbers rewrites the numbers in p, recursively, so that equal
// values decoded from different formats compare equal: integers and
// integral floats become int64, other floats float64. It modifies p.
func NormalizeNumbers(p Params) {
	for k, v := range p {
		p[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch vv := v.(type) {
	case Params:
		NormalizeNumbers(vv)
		return vv
	case []any:
		for i, e := range vv {
			vv[i] = normalizeValue(e)
		}
		return vv
	case int:
		return int64(vv)
	case int8:
		return int64(vv)
	case int16:
		return int64(vv)
	case int32:
		return int64(vv)
	case int64:
		return vv
	case uint:
		return normalizeUint(uint64(vv))
	case uint8:
		return int64(vv)
	case uint16:
		return int64(vv)
	case uint32:
		return int64(vv)
	case uint64:
		return normalizeUint(vv)
	case float32:
		return normalizeFloat(float64(vv))
	case float64:
		return normalizeFloat(vv)
	default:
		return v
	}
}

func normalizeUint(n uint64) any {
	if n > math.MaxInt64 {
		return n
	}
	return int64(n)
}

// Integral floats within the exact range of a float64 become int64.
func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
		return int64(f)
	}
	return f
}
