package services

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed validation rule, reported back to the client.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// RequestValidator wraps validator.v10 with JSON field names.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Struct validates s and converts failures into a 400 ServiceError whose
// Details lists every failing field.
func (rv *RequestValidator) Struct(s interface{}) *ServiceError {
	err := rv.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return badRequest("Validation failed")
	}
	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		// Drop the root type name: "products[0].sku", not "BulkImportRequest.products[0].sku".
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		details = append(details, FieldError{Field: field, Rule: fe.Tag(), Param: fe.Param()})
	}
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Validation failed", Details: details}
}
