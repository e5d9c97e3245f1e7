// Package config reads langrelay settings from namespaced environment variables
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"langrelay/internal/platform/logger"
)

// Conf is a namespaced view over the environment, e.g. Prefix("CORE_PROMPTS_")
type Conf struct{ prefix string }

// New returns the root view with no prefix
func New() Conf { return Conf{} }

// Prefix returns a child view; prefixes stack
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully qualified variable name
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.Key(k))) }

// parseOr parses the variable with fn, falling back to def when unset
// a malformed value is logged and def is used
func parseOr[T any](c Conf, key string, def T, kind string, fn func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := fn(s)
	if err != nil {
		logger.Named("config").Warn().
			Str("key", c.Key(key)).
			Str("value", s).
			Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MustString panics when the key is missing or blank
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

// MustURL panics unless the key holds an absolute URL
func (c Conf) MustURL(key string) *url.URL {
	s := c.MustString(key)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid absolute URL")
	}
	return u
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the integer value or def
func (c Conf) MayInt(key string, def int) int {
	return parseOr(c, key, def, "int", strconv.Atoi)
}

// MayFloat64 returns the float value or def
func (c Conf) MayFloat64(key string, def float64) float64 {
	return parseOr(c, key, def, "float64", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// MayBool returns the bool value or def
func (c Conf) MayBool(key string, def bool) bool {
	return parseOr(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns the duration value (250ms, 2s, 1h) or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parseOr(c, key, def, "duration", time.ParseDuration)
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the lower-cased value when it is one of allowed, def when unset
// anything else panics: a typo in a mode switch should stop the process
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
