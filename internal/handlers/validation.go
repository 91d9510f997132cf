package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationError rejects a request before any operation runs.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(status int, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// fieldMessages overrides the generated message for a field, keyed by
// namespace with slice indexes collapsed to [].
var fieldMessages = map[string]string{
	"PasswordGeneratorRequest.length": "Password length should be between 8 and 128 characters.",
	"AcronymRequest.words":            "At least one word is required for acronym generation.",
	"AcronymRequest.words[]":          "Words must not be empty strings.",
	"LanguageDetectionRequest.text":   "Text must not be empty.",
}

var sliceIndex = regexp.MustCompile(`\[\d+\]`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// decodeJSON reads one JSON value from the body into dst and validates it.
// An empty body decodes as an empty object.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return invalid(http.StatusBadRequest, "Request body must contain a single JSON value.")
	}

	return h.validateStruct(dst)
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var sizeErr *http.MaxBytesError

	switch {
	case errors.As(err, &sizeErr):
		return invalid(http.StatusRequestEntityTooLarge, "Request body exceeds %d bytes.", sizeErr.Limit)
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return invalid(http.StatusUnprocessableEntity, "Request body must be a JSON object.")
		}
		return invalid(http.StatusUnprocessableEntity, "Field '%s' must be of type %s.", typeErr.Field, jsonType(typeErr.Type))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return invalid(http.StatusBadRequest, "Malformed JSON in request body.")
	default:
		return invalid(http.StatusBadRequest, "Invalid request body: %v", err)
	}
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int64, reflect.Int32:
		return "integer"
	case reflect.Slice:
		return "array"
	default:
		return t.Kind().String()
	}
}

func (h *Handlers) validateStruct(dst interface{}) error {
	err := h.validate.Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate request: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	seen := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fieldMessage(fe)
		if !seen[msg] {
			seen[msg] = true
			messages = append(messages, msg)
		}
	}
	return invalid(http.StatusUnprocessableEntity, "%s", strings.Join(messages, " "))
}

func fieldMessage(fe validator.FieldError) string {
	key := sliceIndex.ReplaceAllString(fe.Namespace(), "[]")
	if msg, ok := fieldMessages[key]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required.", fe.Field())
	case "min", "max":
		return fmt.Sprintf("Field '%s' fails the %s=%s constraint.", fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("Field '%s' is invalid (%s).", fe.Field(), fe.Tag())
	}
}
