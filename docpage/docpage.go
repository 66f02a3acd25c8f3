// Package docpage mounts an interactive Swagger documentation page onto an
// existing router: a JSON spec endpoint, a redirect to the UI index, and a
// static file server over the UI bundle with request-time rewrites of the
// UI's embedded configuration
package docpage

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/go-openapi/spec"

	"placard/httpkit"
	perr "placard/internal/platform/errors"
	"placard/internal/platform/logger"
	pstrings "placard/internal/platform/strings"
)

// DefaultAssetsDir is where the UI bundle is looked up when neither Assets
// nor AssetsDir is set
const DefaultAssetsDir = "swagger-ui"

// dirFS is a seam so tests can intercept the on-disk assets default
var dirFS = func(dir string) fs.FS { return os.DirFS(dir) }

// Tag names a group of operations in the generated document
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Validator carries the UI's spec-validator setting. Three states matter:
// a nil *Validator injects nothing, NoValidator injects validatorUrl: null
// (disables the badge), ValidatorAt injects the given URL as a quoted string
type Validator struct {
	url      string
	disabled bool
}

// ValidatorAt points the UI's spec validator at url
func ValidatorAt(url string) *Validator { return &Validator{url: url} }

// NoValidator disables the UI's spec validator explicitly
func NoValidator() *Validator { return &Validator{disabled: true} }

// value is the JSON-serializable form of the setting
func (v *Validator) value() any {
	if v.disabled {
		return nil
	}
	return v.url
}

// Config describes one documentation page. Title, Version, Router, and Path
// are required; everything else has a workable zero value
type Config struct {
	Title       string
	Version     string
	Router      httpkit.Router
	Path        string
	Description string

	// Host is the public host the spec advertises, trailing slashes stripped
	Host string

	Tags    []Tag
	Schemes []string `json:"schemes" validate:"omitempty,dive,oneof=http https ws wss"`

	// Globs select the source files the annotation scanner reads
	Globs []string

	// Definitions are merged into the generated document, overwriting the
	// scanner's entry on name collision
	Definitions map[string]spec.Schema

	// RoutePrefix becomes the document basePath ("" means "/")
	RoutePrefix string

	// ForceSecure makes the rewritten spec URL https even when the request
	// arrived over plain http (for TLS-terminating proxies)
	ForceSecure bool

	Validator     *Validator
	SubmitMethods []string `json:"submit_methods" validate:"omitempty,dive,oneof=get put post delete options head patch trace"`

	SecurityDefinitions map[string]*spec.SecurityScheme

	// Scanner builds the document from the skeleton; defaults to an
	// AnnotationScanner over Globs
	Scanner Scanner

	// Assets is the UI bundle root; defaults to os.DirFS(AssetsDir)
	Assets    fs.FS
	AssetsDir string

	// BasicAuth, when set, guards all three routes
	BasicAuth *httpkit.BasicAuth
}

// Mount validates cfg, builds the spec document, and registers the three
// documentation routes on cfg.Router. On error nothing is registered
func Mount(cfg Config) error {
	if err := checkConfig(cfg); err != nil {
		return err
	}

	sc := cfg.Scanner
	if sc == nil {
		sc = &AnnotationScanner{}
	}
	doc, err := sc.Scan(skeleton(cfg), cfg.Globs)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeScan, "scan annotations")
	}

	if len(cfg.Definitions) > 0 {
		if doc.Definitions == nil {
			doc.Definitions = spec.Definitions{}
		}
		for name, schema := range cfg.Definitions {
			doc.Definitions[name] = schema
		}
	}

	if len(cfg.SecurityDefinitions) > 0 {
		if doc.SecurityDefinitions == nil {
			doc.SecurityDefinitions = spec.SecurityDefinitions{}
		}
		for name, sd := range cfg.SecurityDefinitions {
			doc.SecurityDefinitions[name] = sd
		}
	} else {
		doc.SecurityDefinitions = nil
	}

	// serialized once; served unchanged for the process lifetime
	raw, err := json.Marshal(doc)
	if err != nil {
		return perr.JSONErrf("serialize spec: %v", err)
	}

	assets := cfg.Assets
	if assets == nil {
		assets = dirFS(pstrings.IfBlank(cfg.AssetsDir, DefaultAssetsDir))
	}

	path := pstrings.TrimTrailingSlashes(cfg.Path)
	p := &page{
		path:      path,
		doc:       raw,
		assets:    assets,
		force:     cfg.ForceSecure,
		validator: cfg.Validator,
		submit:    cfg.SubmitMethods,
	}

	cfg.Router.Get(path+"/swagger.json", cfg.BasicAuth.Wrap(p.serveSpec))
	cfg.Router.Get(path, cfg.BasicAuth.Wrap(p.redirectIndex))
	cfg.Router.Get(path+"/*", cfg.BasicAuth.Wrap(p.serveAsset))

	logger.Named("docpage").Info().
		Str("path", path).
		Int("definitions", len(doc.Definitions)).
		Msg("docs mounted")
	return nil
}

// skeleton builds the metadata-only document handed to the scanner
func skeleton(cfg Config) *spec.Swagger {
	tags := make([]spec.Tag, 0, len(cfg.Tags))
	for _, t := range cfg.Tags {
		tags = append(tags, spec.Tag{TagProps: spec.TagProps{
			Name:        t.Name,
			Description: t.Description,
		}})
	}

	doc := &spec.Swagger{SwaggerProps: spec.SwaggerProps{
		Swagger: "2.0",
		Info: &spec.Info{InfoProps: spec.InfoProps{
			Title:       cfg.Title,
			Version:     cfg.Version,
			Description: cfg.Description,
		}},
		Host:     pstrings.TrimTrailingSlashes(cfg.Host),
		BasePath: pstrings.BasePath(cfg.RoutePrefix),
		Tags:     tags,
		Paths:    &spec.Paths{Paths: map[string]spec.PathItem{}},
	}}
	if len(cfg.Schemes) > 0 {
		doc.Schemes = append([]string(nil), cfg.Schemes...)
	}
	return doc
}
