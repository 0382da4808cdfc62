// Package forms validates the demo forms and turns failures into per-field
// messages.
package forms

import (
	"reflect"
	"regexp"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/sidebyside/internal/state"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	strictEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if label := f.Tag.Get("label"); label != "" {
				return label
			}
			return f.Name
		})

		_ = v.RegisterValidation("zodemail", func(fl validator.FieldLevel) bool {
			return strictEmailPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("strongpw", func(fl validator.FieldLevel) bool {
			return state.ScorePassword(fl.Field().String()) == state.MaxScore
		})

		_ = v.RegisterValidation("upperdigit", func(fl validator.FieldLevel) bool {
			c := state.CheckPassword(fl.Field().String())
			return c.Upper && c.Digit
		})

		_ = v.RegisterValidation("minage", func(fl validator.FieldLevel) bool {
			limit, err := strconv.ParseInt(fl.Param(), 10, 64)
			if err != nil {
				return false
			}
			return fl.Field().Int() >= limit
		})

		validateInst = v
	})

	return validateInst
}
