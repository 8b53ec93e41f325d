package task

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const maxTitleLength = 200

// validate is the shared validator instance for request payloads.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names instead of Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a create request and reports every field violation at once.
// A nil return means the request is valid.
func (r *CreateTaskRequest) Validate() *ValidationError {
	fields := structFieldErrors(validate.Struct(r))
	fields = append(fields, titleErrors(r.Title, true)...)
	fields = append(fields, dueDateErrors(r.DueDate)...)
	if len(fields) == 0 {
		return nil
	}
	return NewValidationError(fields...)
}

// Validate checks an update request. Only supplied fields are validated.
func (r *UpdateTaskRequest) Validate() *ValidationError {
	fields := structFieldErrors(validate.Struct(r))
	if r.Title != nil {
		fields = append(fields, titleErrors(*r.Title, false)...)
	}
	fields = append(fields, dueDateErrors(r.DueDate)...)
	if len(fields) == 0 {
		return nil
	}
	return NewValidationError(fields...)
}

// titleErrors applies the trim-aware title rules. The title must not be
// blank and must fit the length limit after surrounding whitespace is
// removed.
func titleErrors(title string, required bool) []FieldError {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "" && title == "" && required:
		return []FieldError{{Field: "title", Message: "is required"}}
	case trimmed == "":
		return []FieldError{{Field: "title", Message: "must not be blank"}}
	case utf8.RuneCountInString(trimmed) > maxTitleLength:
		return []FieldError{{Field: "title", Message: fmt.Sprintf("must be at most %d characters", maxTitleLength)}}
	}
	return nil
}

// dueDateErrors rejects due dates that are not strictly in the future.
func dueDateErrors(dueDate *time.Time) []FieldError {
	if dueDate != nil && !dueDate.After(time.Now()) {
		return []FieldError{{Field: "due_date", Message: "must be in the future"}}
	}
	return nil
}

// structFieldErrors converts validator tag failures into field errors with
// human readable messages.
func structFieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: tagMessage(fe)})
	}
	return fields
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return "is invalid"
	}
}
