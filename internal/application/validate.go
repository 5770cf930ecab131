package application

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"ircportal/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("portfolio", func(fl validator.FieldLevel) bool {
		return domain.Portfolio(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return domain.TaskPriority(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("entrytype", func(fl validator.FieldLevel) bool {
		return domain.CalendarEntryType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("notification", func(fl validator.FieldLevel) bool {
		return domain.NotificationType(fl.Field().String()).IsValid()
	})
	return v
}

// validateInput checks s against its validate tags and returns a
// *domain.ValidationError listing every failing field.
func validateInput(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			fields = append(fields, field+" is required")
		case "min":
			fields = append(fields, field+" must not be empty")
		case "max":
			fields = append(fields, field+" must be at most "+fe.Param()+" characters")
		case "gt":
			fields = append(fields, field+" must be greater than "+fe.Param())
		case "gte":
			fields = append(fields, field+" must not be negative")
		case "url":
			fields = append(fields, field+" must be a valid URL")
		case "datetime":
			fields = append(fields, field+" must match "+fe.Param())
		default:
			fields = append(fields, field+" is invalid")
		}
	}
	return domain.NewValidationError(fields...)
}

// Clock returns the current time. Services default to time.Now.
type Clock func() time.Time
