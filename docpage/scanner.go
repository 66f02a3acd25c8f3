package docpage

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/swaggo/swag"

	perr "placard/internal/platform/errors"
	pstrings "placard/internal/platform/strings"
)

// Scanner turns a metadata-only skeleton into the full document. Globs
// select the sources to read; a scanner may ignore them
type Scanner interface {
	Scan(skeleton *spec.Swagger, globs []string) (*spec.Swagger, error)
}

// AnnotationScanner parses swag declarative comments out of the source
// files selected by the globs. With no globs it returns the skeleton as-is
type AnnotationScanner struct {
	// MainFile is the file swag treats as the API entry point
	MainFile string

	// ParseDepth bounds dependency resolution, swag's CLI default is 100
	ParseDepth int
}

func (a *AnnotationScanner) Scan(skel *spec.Swagger, globs []string) (*spec.Swagger, error) {
	if len(globs) == 0 {
		return skel, nil
	}

	depth := a.ParseDepth
	if depth <= 0 {
		depth = 100
	}

	parser := swag.New()
	err := parser.ParseAPIMultiSearchDir(
		searchDirs(globs),
		pstrings.IfBlank(a.MainFile, "main.go"),
		depth,
	)
	if err != nil {
		return nil, perr.Scanf("parse annotations: %v", err)
	}
	return overlay(parser.GetSwagger(), skel), nil
}

// searchDirs maps globs to the directories swag should walk: the non-glob
// prefix of each pattern, deduped in order
func searchDirs(globs []string) []string {
	seen := make(map[string]bool, len(globs))
	dirs := make([]string, 0, len(globs))
	for _, g := range globs {
		d := dirOf(g)
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// dirOf strips everything from the first glob metacharacter on, then takes
// the directory part. "internal/**/*.go" -> "internal", "main.go" -> "."
func dirOf(g string) string {
	if i := strings.IndexAny(g, "*?["); i >= 0 {
		g = g[:i]
	}
	if g == "" {
		return "."
	}
	if strings.HasSuffix(g, "/") {
		return filepath.Clean(g)
	}
	return filepath.Dir(filepath.Clean(g))
}

// RegistryScanner reads a document registered with swag at init time (the
// `swag init` + blank-import workflow) instead of parsing sources
type RegistryScanner struct {
	// Instance names the registered doc, swag.Name when empty
	Instance string
}

func (s *RegistryScanner) Scan(skel *spec.Swagger, _ []string) (*spec.Swagger, error) {
	name := pstrings.IfBlank(s.Instance, swag.Name)
	raw, err := swag.ReadDoc(name)
	if err != nil {
		return nil, perr.Scanf("read registered doc %q: %v", name, err)
	}
	var doc spec.Swagger
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, perr.JSONErrf("registered doc %q: %v", name, err)
	}
	return overlay(&doc, skel), nil
}

// overlay copies the skeleton's metadata onto a scanned document, keeping
// the document's paths, definitions, and security definitions
func overlay(doc, skel *spec.Swagger) *spec.Swagger {
	if doc.Info == nil {
		doc.Info = &spec.Info{}
	}
	doc.Info.Title = skel.Info.Title
	doc.Info.Version = skel.Info.Version
	doc.Info.Description = skel.Info.Description
	doc.Host = skel.Host
	doc.BasePath = skel.BasePath
	if len(skel.Schemes) > 0 {
		doc.Schemes = skel.Schemes
	}
	doc.Tags = skel.Tags
	return doc
}
