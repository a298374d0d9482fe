package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the signup form rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	validate := validator.New()

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct. The first failing field (in struct order)
// wins, so the caller fails fast with a single message like the original
// form handling did.
func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &ValidationError{Field: "", Message: "dados inválidos"}
	}

	first := errs[0]
	return &ValidationError{
		Field:   first.Field(),
		Message: messageFor(first.Field(), first.Tag()),
	}
}

// ValidationError carries the client-facing message for a rejected field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// messageFor maps a failed field/tag pair to the message the frontend shows.
// The wording is kept identical to what the web app has always displayed.
func messageFor(field, tag string) string {
	switch field {
	case "nomeTenant":
		return "informe o nome da empresa/ambiente"
	case "nomeUsuario":
		return "informe seu nome"
	case "email":
		return "informe o e-mail"
	case "senha":
		return "senha deve ter pelo menos 6 caracteres"
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "min":
		return fmt.Sprintf("%s é muito curto", field)
	default:
		return fmt.Sprintf("%s é inválido", field)
	}
}
