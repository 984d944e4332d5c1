// Package schema defines the JSON records exchanged at the API boundary.
//
// Field optionality follows the Go type: value fields are required, pointer
// fields are optional unless tagged `validate:"required"`. Optional fields
// serialize as null when unset. Unknown keys in incoming payloads are ignored.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes why a payload was rejected.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterStructValidation(validateUserAssetAmount, UserAssetAmount{})
	return v
}

// Decode parses a JSON object into v, which must be a pointer to a schema struct.
// It rejects payloads that are not objects, miss a required key, carry null for
// a required key, use the wrong primitive kind, or fail Validate.
func Decode(data []byte, v any) error {
	rt := reflect.TypeOf(v)
	if rt == nil || rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("schema: decode target must be a pointer to struct, got %T", v)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &FieldError{Reason: "invalid JSON object"}
	}
	if err := checkRequired(raw, rt.Elem()); err != nil {
		return err
	}

	// encoding/json matches keys case-insensitively; only exact field names may reach v
	exact, err := json.Marshal(knownFields(raw, rt.Elem()))
	if err != nil {
		return &FieldError{Reason: err.Error()}
	}

	if err := json.Unmarshal(exact, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &FieldError{Field: typeErr.Field, Reason: "expected " + typeErr.Type.String()}
		}
		return &FieldError{Reason: err.Error()}
	}

	return Validate(v)
}

// Validate checks a constructed record: required pointer fields are set and
// numeric bounds hold.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &FieldError{Field: fe.Field(), Reason: "failed on " + fe.Tag()}
	}
	return err
}

func checkRequired(raw map[string]json.RawMessage, rt reflect.Type) error {
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := jsonFieldName(field)
		if name == "" || !isRequired(field) {
			continue
		}

		value, ok := raw[name]
		if !ok {
			return &FieldError{Field: name, Reason: "field required"}
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return &FieldError{Field: name, Reason: "must not be null"}
		}
	}
	return nil
}

func knownFields(raw map[string]json.RawMessage, rt reflect.Type) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		name := jsonFieldName(rt.Field(i))
		if name == "" {
			continue
		}
		if value, ok := raw[name]; ok {
			out[name] = value
		}
	}
	return out
}

func isRequired(field reflect.StructField) bool {
	if field.Type.Kind() != reflect.Ptr {
		return true
	}
	for _, tag := range strings.Split(field.Tag.Get("validate"), ",") {
		if tag == "required" {
			return true
		}
	}
	return false
}

func jsonFieldName(field reflect.StructField) string {
	if !field.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
