package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData decodes the JSON body of the request into data.
//
// Validation is left to the caller so that lists can be validated
// item by item.
func BindData(c *gin.Context, data any) error {
	if c.Request.Body == nil {
		return ErrRequestBodyEmpty
	}

	if err := json.NewDecoder(c.Request.Body).Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var typeError *json.UnmarshalTypeError
		if errors.As(err, &typeError) {
			return typeErrorText(typeError)
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

func typeErrorText(e *json.UnmarshalTypeError) error {
	if e.Field == "" {
		return ErrInvalidBody
	}

	// For lists, the field starts with the index of the item
	field := e.Field
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}

	return ValidationError{{Field: field, Message: "must be of type " + e.Type.String()}}
}

// GetBodyFields returns the names of the fields of resource
// that are set in the body of the request.
//
// The body is copied, it can still be bound afterwards.
func GetBodyFields(c *gin.Context, resource any) ([]string, error) {
	if c.Request.Body == nil {
		return nil, ErrRequestBodyEmpty
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, ErrInvalidBody
	}

	var fields []string
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param, _, _ := strings.Cut(field.Tag.Get("json"), ",")

		if _, ok := mapBody[param]; ok {
			fields = append(fields, field.Name)
		}
	}

	return fields, nil
}

// BindPatch binds the fields set in the request body to resource
// and validates only those. It returns the names of the set fields.
func BindPatch(c *gin.Context, resource any) ([]string, error) {
	fields, err := GetBodyFields(c, resource)
	if err != nil {
		return nil, err
	}

	if err := BindData(c, resource); err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return fields, nil
	}

	return fields, ValidatePartial(resource, fields...)
}

// ParseID parses the path parameter param as UUID.
func ParseID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return id, nil
}
