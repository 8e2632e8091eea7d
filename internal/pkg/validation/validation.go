package validation

import (
	"errors"
	"strings"
	"sync"

	"library-ledger/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func validate() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Struct checks v against its `validate` tags. Failures are marked with
// errs.ErrValidationFailed and name the offending fields.
func Struct(v any) error {
	err := validate().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.Wrap(errs.ErrValidationFailed, err.Error())
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, strings.ToLower(fe.Field())+" "+fe.Tag())
	}
	return errs.Wrap(errs.ErrValidationFailed, strings.Join(parts, ", "))
}

// Var checks a single value against a tag expression such as "required,email".
func Var(v any, tag string) error {
	if err := validate().Var(v, tag); err != nil {
		return errs.Wrap(errs.ErrValidationFailed, err.Error())
	}
	return nil
}
