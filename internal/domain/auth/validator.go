package auth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"loginflow/internal/pkg/errs"
)

const (
	MaxEmailLength    = 254
	MinPasswordLength = 8
	MaxPasswordLength = 128

	emailFormatTag  = "loginemail"
	customTagPrefix = "logincustom_"
)

// Deliberately permissive: not RFC 5322.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Rule is one ordered check expressed as a validator tag.
type Rule struct {
	Type    ErrorType
	Tag     string
	Message string
}

var defaultRules = map[Field][]Rule{
	FieldEmail: {
		{Type: ErrorTypeRequired, Tag: "required", Message: "Email is required"},
		{Type: ErrorTypeFormat, Tag: emailFormatTag, Message: "Please enter a valid email address"},
		{Type: ErrorTypeMaxLength, Tag: fmt.Sprintf("max=%d", MaxEmailLength), Message: fmt.Sprintf("Email must be no more than %d characters", MaxEmailLength)},
	},
	FieldPassword: {
		{Type: ErrorTypeRequired, Tag: "required", Message: "Password is required"},
		{Type: ErrorTypeMinLength, Tag: fmt.Sprintf("min=%d", MinPasswordLength), Message: fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)},
		{Type: ErrorTypeMaxLength, Tag: fmt.Sprintf("max=%d", MaxPasswordLength), Message: fmt.Sprintf("Password must be no more than %d characters", MaxPasswordLength)},
	},
}

type customRule struct {
	field   Field
	name    string
	message string
	fn      func(string) bool
}

type ValidatorOption func(*validatorOptions)

type validatorOptions struct {
	custom []customRule
}

// WithCustomRule appends a rule of type custom after the built-in rules of field.
// name only labels the rule in errors; it is never used as a validator tag.
func WithCustomRule(field Field, name, message string, fn func(value string) bool) ValidatorOption {
	return func(o *validatorOptions) {
		o.custom = append(o.custom, customRule{field: field, name: name, message: message, fn: fn})
	}
}

type Validator struct {
	validate *validator.Validate
	rules    map[Field][]Rule
}

func NewValidator(opts ...ValidatorOption) (*Validator, error) {
	o := &validatorOptions{}
	for _, opt := range opts {
		opt(o)
	}

	v := validator.New()
	if err := v.RegisterValidation(emailFormatTag, func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	}); err != nil {
		return nil, errs.Wrap(err, "register email format rule")
	}

	rules := make(map[Field][]Rule, len(defaultRules))
	for field, rs := range defaultRules {
		rules[field] = append([]Rule(nil), rs...)
	}

	// Custom rules get generated tags; the caller's name is a label only.
	for i, c := range o.custom {
		if c.fn == nil {
			return nil, errs.Mark(errs.Newf("custom rule %q has no check", c.name), errs.ErrInvalidConfig)
		}
		fn := c.fn
		tag := fmt.Sprintf("%s%d", customTagPrefix, i)
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "register custom rule %q", c.name), errs.ErrInvalidConfig)
		}
		rules[c.field] = append(rules[c.field], Rule{Type: ErrorTypeCustom, Tag: tag, Message: c.message})
	}

	return &Validator{validate: v, rules: rules}, nil
}

// ValidateField returns the first failing rule for field, or nil.
// Fields without rules always pass.
func (v *Validator) ValidateField(field Field, value string) *FieldError {
	rules, ok := v.rules[field]
	if !ok {
		return nil
	}
	if field == FieldEmail {
		value = strings.TrimSpace(value)
	}

	for _, rule := range rules {
		if err := v.validate.Var(value, rule.Tag); err != nil {
			return &FieldError{Field: field, Message: rule.Message, Type: rule.Type}
		}
	}
	return nil
}

// ValidateLoginForm evaluates every field; RememberMe is never validated.
func (v *Validator) ValidateLoginForm(c Credentials) ValidationResult {
	result := ValidationResult{Errors: []*FieldError{}}
	for _, field := range Fields {
		if fe := v.ValidateField(field, c.Value(field)); fe != nil {
			result.Errors = append(result.Errors, fe)
		}
	}
	result.IsValid = len(result.Errors) == 0
	return result
}

var defaultValidator = mustNewValidator()

func mustNewValidator() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic("auth: default validator: " + err.Error())
	}
	return v
}

func ValidateField(field Field, value string) *FieldError {
	return defaultValidator.ValidateField(field, value)
}

func ValidateLoginForm(c Credentials) ValidationResult {
	return defaultValidator.ValidateLoginForm(c)
}
