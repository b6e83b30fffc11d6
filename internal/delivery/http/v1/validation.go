package v1

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/rs/zerolog"
)

var registerValidationsOnce sync.Once

// mustRegisterValidations teaches gin's validator the notblank tag and
// makes it report fields by their json names.
func mustRegisterValidations(logger zerolog.Logger) {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err := fmt.Errorf("unexpected validator engine: %T", binding.Validator.Engine())
			logger.Error().
				Err(err).
				Msg("failed to register validations")
			panic(err)
		}

		mustRegisterValidation(logger, v, "notblank", validators.NotBlank)
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func mustRegisterValidation(logger zerolog.Logger, v *validator.Validate, tag string, fn validator.Func) {
	err := v.RegisterValidation(tag, fn)
	if err != nil {
		logger.Error().
			Err(err).
			Str("tag", tag).
			Msg("failed to register validation")
		panic(err)
	}
}
