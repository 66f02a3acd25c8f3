// Package httpkit is the thin HTTP surface placard mounts against: a minimal
// router interface, a chi adapter, JSON envelope responses, and the common
// middleware stack (request IDs, access logging, panic recovery, basic auth)
package httpkit

import "net/http"

// Handler is a plain net/http handler func; no framework types leak through
type Handler = func(w http.ResponseWriter, r *http.Request)

// Router is the surface a docs page needs from a host mux. GET-only on
// purpose: the page serves a spec document, a redirect, and static assets
//
// Patterns ending in "/*" are wildcard routes; adapters must stash the
// matched remainder where Wildcard can find it
type Router interface {
	Get(pattern string, h Handler)
}
