package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
)

// validate is shared by every request type; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so error locations match the payload.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"listkind":      isListKind,
		"preset":        isPreset,
		"searchfield":   isSearchField,
		"isodate":       isISODate,
		"receivemethod": isReceiveMethod,
		"expiration":    isExpiration,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("registering validation " + tag + ": " + err.Error())
		}
	}
	return v
}

func isListKind(fl validator.FieldLevel) bool {
	return points.Kind(fl.Field().String()).IsValid()
}

func isPreset(fl validator.FieldLevel) bool {
	_, err := daterange.ParsePreset(fl.Field().String())
	return err == nil
}

func isSearchField(fl validator.FieldLevel) bool {
	_, err := query.ParseSearchField(fl.Field().String())
	return err == nil
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := daterange.ParseISO(fl.Field().String(), time.UTC)
	return err == nil
}

func isReceiveMethod(fl validator.FieldLevel) bool {
	return merchant.ReceiveMethod(strings.ToUpper(fl.Field().String())).IsValid()
}

func isExpiration(fl validator.FieldLevel) bool {
	return merchant.Expiration(fl.Field().String()).IsValid()
}

// validateStruct checks the validate tags of s and reports failures as a
// domain.ValidationError keyed by JSON field name.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating %T: %w", s, err)
	}

	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "isodate":
		return fmt.Sprintf("must be a YYYY-MM-DD date, got %q", fe.Value())
	default:
		return fmt.Sprintf("invalid: %q", fmt.Sprint(fe.Value()))
	}
}
