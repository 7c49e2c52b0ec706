package siteconfig

import (
	"strings"

	"github.com/sunwei/siteconf/common/maps"
)

// normalizeAliases moves values set under an alias to the canonical key
// and removes the alias, so a later config layer setting the canonical key
// is not shadowed by an alias in a lower one. A canonical key already set
// wins over its aliases. m must be prepared, see maps.PrepareParams.
func normalizeAliases(m maps.Params) {
	for _, keys := range aliasedKeys {
		canonical := keys[0]
		_, hasCanonical := lookup(m, canonical)
		for _, alias := range keys[1:] {
			v, found := remove(m, alias)
			if !found || hasCanonical {
				continue
			}
			set(m, canonical, v)
			hasCanonical = true
		}
	}
}

func splitKey(key string) []string {
	return strings.Split(strings.ToLower(key), ".")
}

func lookup(m maps.Params, key string) (any, bool) {
	parts := splitKey(key)
	if !m.IsSet(parts...) {
		return nil, false
	}
	return m.Get(parts...), true
}

func remove(m maps.Params, key string) (any, bool) {
	parts := splitKey(key)
	parent := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := parent[part].(maps.Params)
		if !ok {
			return nil, false
		}
		parent = next
	}
	last := parts[len(parts)-1]
	v, found := parent[last]
	if found {
		delete(parent, last)
	}
	return v, found
}

func set(m maps.Params, key string, v any) {
	parts := splitKey(key)
	parent := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := parent[part].(maps.Params)
		if !ok {
			next = make(maps.Params)
			parent[part] = next
		}
		parent = next
	}
	parent[parts[len(parts)-1]] = v
}
