// Package upstream holds typed views of the stats API documents. Every optional field is a
// pointer so that "missing" stays distinguishable from zero; only entity ids are validated.
package upstream

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidDocument = crerr.New("invalid upstream document")

var validate = validator.New()

// Decode parses raw JSON into T and validates required identifiers.
func Decode[T any](data []byte) (T, error) {
	var doc T
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%w: decode %T: %v", ErrInvalidDocument, doc, err)
	}
	if err := validate.Struct(doc); err != nil {
		return doc, fmt.Errorf("%w: validate %T: %v", ErrInvalidDocument, doc, err)
	}
	return doc, nil
}

// Text accepts either a JSON string or a bare number; upstream is inconsistent about
// fields such as jersey numbers, batting order and rate strings.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

// Ptr converts to *string, preserving nil.
func (t *Text) Ptr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

// Int parses the text as an integer; nil when absent or not numeric.
func (t *Text) Int() *int64 {
	if t == nil {
		return nil
	}
	v, err := strconv.ParseInt(string(*t), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func allNil(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		switch f.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
			if !f.IsNil() {
				return false
			}
		default:
			if !f.IsZero() {
				return false
			}
		}
	}
	return true
}
