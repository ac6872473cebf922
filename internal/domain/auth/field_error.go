package auth

import "fmt"

type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Fields lists the validated fields in evaluation order.
var Fields = []Field{FieldEmail, FieldPassword}

func (f Field) String() string {
	return string(f)
}

type ErrorType string

const (
	ErrorTypeRequired  ErrorType = "required"
	ErrorTypeFormat    ErrorType = "format"
	ErrorTypeMinLength ErrorType = "minLength"
	ErrorTypeMaxLength ErrorType = "maxLength"
	ErrorTypeCustom    ErrorType = "custom"
)

// FieldError is the first failing rule for a single field.
type FieldError struct {
	Field   Field     `json:"field"`
	Message string    `json:"message"`
	Type    ErrorType `json:"type"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationResult struct {
	Errors  []*FieldError `json:"errors"`
	IsValid bool          `json:"isValid"`
}

// ErrorFor returns the error reported for field, if any.
func (r ValidationResult) ErrorFor(field Field) *FieldError {
	for _, e := range r.Errors {
		if e.Field == field {
			return e
		}
	}
	return nil
}
