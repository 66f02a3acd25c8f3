package docpage

import (
	"encoding/json"
	"net/http"
	"strings"
)

// petstoreURL is the placeholder spec URL the stock swagger-ui dist ships with
const petstoreURL = "https://petstore.swagger.io/v2/swagger.json"

// layoutLine anchors the config injections; it is the last property of the
// SwaggerUIBundle options object in the stock index.html
const layoutLine = `layout: "StandaloneLayout"`

// patchIndex rewrites the UI's embedded configuration for this mount:
// the spec URL always, validatorUrl and supportedSubmitMethods when set
func (p *page) patchIndex(b []byte, r *http.Request) []byte {
	scheme := "http"
	if r.TLS != nil || p.force {
		scheme = "https"
	}
	specURL := scheme + "://" + r.Host + p.path + "/swagger.json"

	s := strings.ReplaceAll(string(b), petstoreURL, specURL)
	if p.validator != nil {
		s = injectSetting(s, "validatorUrl", p.validator.value())
	}
	if p.submit != nil {
		s = injectSetting(s, "supportedSubmitMethods", p.submit)
	}
	return []byte(s)
}

// injectSetting adds key: <json of v> right after the layout line. Values
// that will not marshal leave the page untouched
func injectSetting(s, key string, v any) string {
	val, err := json.Marshal(v)
	if err != nil {
		return s
	}
	return strings.Replace(s, layoutLine, layoutLine+",\n"+key+": "+string(val), 1)
}
