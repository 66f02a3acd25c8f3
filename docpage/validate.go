package docpage

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	perr "placard/internal/platform/errors"
	pstrings "placard/internal/platform/strings"
)

// Required-field failures, checked in this order before anything else runs
var (
	ErrNoTitle   = perr.New(perr.ErrorCodeValidation, "docpage: Title is required")
	ErrNoVersion = perr.New(perr.ErrorCodeValidation, "docpage: Version is required")
	ErrNoRouter  = perr.New(perr.ErrorCodeValidation, "docpage: Router is required")
	ErrNoPath    = perr.New(perr.ErrorCodeValidation, "docpage: Path is required")
)

var (
	vOnce  sync.Once
	vInst  *validator.Validate
	vTrans ut.Translator
)

// validate returns the singleton validator with english translations and
// json tag names
func validate() *validator.Validate {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		vTrans, _ = uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, vTrans)
		vInst = v
	})
	return vInst
}

// checkConfig enforces the required fields in priority order, then runs the
// tag-driven checks on the rest
func checkConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Title) == "" {
		return ErrNoTitle
	}
	if strings.TrimSpace(cfg.Version) == "" {
		return ErrNoVersion
	}
	if cfg.Router == nil {
		return ErrNoRouter
	}
	// a path of bare slashes normalizes to "", which would register broken
	// patterns; reject it up front so nothing is partially mounted
	if pstrings.TrimTrailingSlashes(strings.TrimSpace(cfg.Path)) == "" {
		return ErrNoPath
	}

	if err := validate().Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return perr.WithField(
				perr.Validationf("docpage: %s", fe.Translate(vTrans)),
				fe.Field(),
			)
		}
		return perr.Validationf("docpage: %v", err)
	}
	return nil
}
