// Package strings provides string and slice helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// IfBlank returns def if s is empty, otherwise returns s
func IfBlank(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" if ps is nil, else *ps.
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// TrimTrailingSlashes strips every trailing "/" from s
// "/docs//" becomes "/docs", "/" becomes ""
func TrimTrailingSlashes(s string) string {
	return std.TrimRight(s, "/")
}

// TrimLeadingSlashes strips every leading "/" from s
func TrimLeadingSlashes(s string) string {
	return std.TrimLeft(s, "/")
}

// BasePath normalizes an optional route prefix into a swagger basePath
// "" -> "/", "api/v1" -> "/api/v1", "///v2" -> "/v2"
func BasePath(prefix string) string {
	p := TrimLeadingSlashes(std.TrimSpace(prefix))
	if p == "" {
		return "/"
	}
	return "/" + p
}
