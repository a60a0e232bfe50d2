package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreatePayload is the request body of POST /books. Pointers distinguish a
// missing field from a zero value.
type CreatePayload struct {
	ISBN      *string `json:"isbn" validate:"required,min=1,max=32"`
	AmazonURL *string `json:"amazon_url" validate:"required,url"`
	Author    *string `json:"author" validate:"required,min=1"`
	Language  *string `json:"language" validate:"required,min=1"`
	Pages     *int    `json:"pages" validate:"required,min=1,max=2147483647"`
	Publisher *string `json:"publisher" validate:"required,min=1"`
	Title     *string `json:"title" validate:"required,min=1"`
	Year      *int    `json:"year" validate:"required,min=-2147483648,max=2147483647"`
}

// UpdatePayload is the request body of PUT /books/{isbn}. The ISBN comes
// from the path and is rejected as an unknown field in the body.
type UpdatePayload struct {
	AmazonURL *string `json:"amazon_url" validate:"required,url"`
	Author    *string `json:"author" validate:"required,min=1"`
	Language  *string `json:"language" validate:"required,min=1"`
	Pages     *int    `json:"pages" validate:"required,min=1,max=2147483647"`
	Publisher *string `json:"publisher" validate:"required,min=1"`
	Title     *string `json:"title" validate:"required,min=1"`
	Year      *int    `json:"year" validate:"required,min=-2147483648,max=2147483647"`
}

func (p CreatePayload) book() Book {
	return Book{
		ISBN: *p.ISBN,
		Fields: Fields{
			AmazonURL: *p.AmazonURL,
			Author:    *p.Author,
			Language:  *p.Language,
			Pages:     *p.Pages,
			Publisher: *p.Publisher,
			Title:     *p.Title,
			Year:      *p.Year,
		},
	}
}

func (p UpdatePayload) fields() Fields {
	return Fields{
		AmazonURL: *p.AmazonURL,
		Author:    *p.Author,
		Language:  *p.Language,
		Pages:     *p.Pages,
		Publisher: *p.Publisher,
		Title:     *p.Title,
		Year:      *p.Year,
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonName)
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// DecodeCreate reads and validates a create payload.
func DecodeCreate(r io.Reader) (Book, error) {
	var p CreatePayload
	if err := decodeAndValidate(r, &p); err != nil {
		return Book{}, err
	}
	return p.book(), nil
}

// DecodeUpdate reads and validates an update payload.
func DecodeUpdate(r io.Reader) (Fields, error) {
	var p UpdatePayload
	if err := decodeAndValidate(r, &p); err != nil {
		return Fields{}, err
	}
	return p.fields(), nil
}

// decodeAndValidate decodes strictly into dst and runs the struct rules.
// Problems are collected per field and reported in struct field order.
// Oversized bodies surface as *http.MaxBytesError, untouched.
func decodeAndValidate(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	byField := map[string]string{}
	var extra []string

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		return &ValidationError{Messages: []string{"request body must contain a single JSON object"}}
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			return err
		case errors.Is(err, io.EOF):
			return &ValidationError{Messages: []string{"request body must not be empty"}}
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return &ValidationError{Messages: []string{"request body must be valid JSON"}}
		case errors.As(err, &typeErr):
			if typeErr.Field == "" {
				return &ValidationError{Messages: []string{"request body must be a JSON object"}}
			}
			byField[typeErr.Field] = fmt.Sprintf("%s must be %s", typeErr.Field, kindName(typeErr.Type))
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			extra = append(extra, strings.TrimPrefix(err.Error(), "json: "))
		default:
			return &ValidationError{Messages: []string{"request body must be valid JSON"}}
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			if _, seen := byField[fe.Field()]; seen {
				continue
			}
			byField[fe.Field()] = ruleMessage(fe)
		}
	}

	if len(byField) == 0 && len(extra) == 0 {
		return nil
	}

	var messages []string
	t := reflect.TypeOf(dst).Elem()
	for i := 0; i < t.NumField(); i++ {
		if msg, ok := byField[jsonName(t.Field(i))]; ok {
			messages = append(messages, msg)
		}
	}
	messages = append(messages, extra...)
	return &ValidationError{Messages: messages}
}

func ruleMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not be empty", field)
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	default:
		return "a valid " + t.Kind().String()
	}
}
