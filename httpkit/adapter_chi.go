package httpkit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// chiRouter adapts a chi.Router (mux or subrouter) to the Router interface
type chiRouter struct {
	r chi.Router
}

// AdaptChi wraps a chi router so a docs page can be mounted on it.
// Wildcard routes get their "*" URL param copied into the request context
// so handlers stay framework-agnostic
func AdaptChi(r chi.Router) Router {
	return chiRouter{r: r}
}

func (c chiRouter) Get(pattern string, h Handler) {
	if strings.HasSuffix(pattern, "/*") {
		c.r.Get(pattern, func(w http.ResponseWriter, r *http.Request) {
			h(w, r.WithContext(WithWildcard(r.Context(), chi.URLParam(r, "*"))))
		})
		return
	}
	c.r.Get(pattern, http.HandlerFunc(h))
}
