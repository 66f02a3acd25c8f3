package main

import (
	"os"

	"github.com/goccy/go-yaml"

	"placard/docpage"
	perr "placard/internal/platform/errors"
)

// manifest is the optional YAML page description. Everything here can also
// come from PLACARD_* env vars; the manifest wins where both are set
type manifest struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Host        string `yaml:"host"`
	RoutePrefix string `yaml:"route_prefix"`

	Schemes []string      `yaml:"schemes"`
	Globs   []string      `yaml:"globs"`
	Tags    []docpage.Tag `yaml:"tags"`

	SubmitMethods []string `yaml:"submit_methods"`

	// Validator is tri-state: absent leaves the UI default, "" disables the
	// validator badge, anything else is the validator URL
	Validator *string `yaml:"validator"`
}

// loadManifest reads path; a missing file is not an error, config then comes
// from the environment alone
func loadManifest(path string) (manifest, error) {
	var m manifest
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, perr.Wrapf(err, perr.ErrorCodeUnknown, "read manifest %s", path)
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, perr.InvalidArgf("parse manifest %s: %v", path, err)
	}
	return m, nil
}

// validator maps the YAML tri-state onto the docpage one
func (m manifest) validator() *docpage.Validator {
	if m.Validator == nil {
		return nil
	}
	if *m.Validator == "" {
		return docpage.NoValidator()
	}
	return docpage.ValidatorAt(*m.Validator)
}
