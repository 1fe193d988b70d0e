package manifest

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	pluginIDPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	wcagLevels      = map[string]struct{}{"AA": {}, "AAA": {}}
)

// validatorInstance configures and returns the shared validator used by the
// manifest package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("plugin_id", func(fl validator.FieldLevel) bool {
			return pluginIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("wcag_level", func(fl validator.FieldLevel) bool {
			_, ok := wcagLevels[fl.Field().String()]
			return ok
		})

		validateInst = v
	})
	return validateInst
}
