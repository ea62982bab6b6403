package theme

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_id", func(fl validator.FieldLevel) bool {
			return themeIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("csscolor", func(fl validator.FieldLevel) bool {
			return IsColor(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

func validateTheme(t Theme) error {
	if err := validatorInstance().Struct(t); err != nil {
		return pixieerrors.NewValidationError("theme "+t.ID, err.Error(), err)
	}
	return nil
}

// ValidateOverrides checks that a sparse override record only targets known
// palette keys with parseable colors.
func ValidateOverrides(overrides Overrides) error {
	known := make(map[string]struct{}, len(OverrideKeys))
	for _, key := range OverrideKeys {
		known[key] = struct{}{}
	}

	for key, value := range overrides {
		if _, ok := known[key]; !ok {
			return pixieerrors.NewValidationError("overrides."+key, "unknown palette key", nil)
		}
		if !IsColor(value) {
			return pixieerrors.NewValidationError("overrides."+key, "not a valid color", nil)
		}
	}
	return nil
}
