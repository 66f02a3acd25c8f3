package docpage

import (
	"io/fs"
	"mime"
	"net/http"
	"path"

	"placard/httpkit"
	perr "placard/internal/platform/errors"
	"placard/internal/platform/logger"
)

// page is the per-mount state shared by the three handlers; read-only after
// Mount returns
type page struct {
	path      string
	doc       []byte
	assets    fs.FS
	force     bool
	validator *Validator
	submit    []string
}

// serveSpec writes the pre-serialized document
func (p *page) serveSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(p.doc); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("write spec")
	}
}

// redirectIndex points the bare mount path at the UI index
func (p *page) redirectIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, p.path+"/index.html", http.StatusFound)
}

// serveAsset reads the requested file from the UI bundle on every request,
// patching index.html before it goes out. No caching: on-disk edits to the
// bundle show up immediately
func (p *page) serveAsset(w http.ResponseWriter, r *http.Request) {
	rel := httpkit.Wildcard(r)

	b, err := fs.ReadFile(p.assets, rel)
	if err != nil {
		logger.C(r.Context()).Debug().Str("file", rel).Msg("asset not found")
		httpkit.RespondError(w, r, perr.NotFoundf("%s not found", rel))
		return
	}

	if rel == "index.html" {
		b = p.patchIndex(b, r)
	}

	if ct := mime.TypeByExtension(path.Ext(rel)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		logger.C(r.Context()).Error().Err(err).Str("file", rel).Msg("write asset")
	}
}
