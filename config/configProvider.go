package config

import (
	"github.com/sunwei/siteconf/common/maps"
	"github.com/sunwei/siteconf/types"
)

// Provider provides the configuration settings for a site build.
type Provider interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetParams(key string) maps.Params
	GetStringSlice(key string) []string
	Get(key string) any
	Set(key string, value any)
	SetDefaults(params maps.Params)
	IsSet(key string) bool
}

// GetStringSlicePreserveString returns a string slice from the given config and key.
// It differs from the GetStringSlice method in that if the config value is a string,
// we do not attempt to split it into fields.
func GetStringSlicePreserveString(cfg Provider, key string) []string {
	sd := cfg.Get(key)
	return types.ToStringSlicePreserveString(sd)
}

// GetFirst returns the value of the first key in keys that is set in cfg,
// and that key. Keys are alternative spellings of the same setting.
func GetFirst(cfg Provider, keys ...string) (any, string, bool) {
	for _, k := range keys {
		if cfg.IsSet(k) {
			return cfg.Get(k), k, true
		}
	}
	return nil, "", false
}
