// Package validation wraps go-playground/validator with user-friendly error
// messages for the API's domain entities.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("skill_name", validSkillName)
	return v
}

// Struct validates a struct against its validate tags. Returns nil when the
// value is valid, otherwise an error whose message is safe to show to clients.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// validSkillName rejects control characters and overly long entries so skill
// and theme lists stay presentable.
func validSkillName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || len(s) > 50 {
		return false
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
