package flash

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// envelopeKey is the single key every encoded message is stored under.
const envelopeKey = "_"

type envelope[T any] struct {
	Value T `json:"_"`
}

// Encode returns the JSON envelope {"_": v}.
func Encode[T any](v T) (string, error) {
	b, err := json.Marshal(envelope[T]{Value: v})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return string(b), nil
}

// Decode parses an envelope produced by Encode and returns the wrapped value.
// Text that is not a JSON object, an object without the "_" key and a value
// that does not fit T all fail with ErrDecode. A null value is accepted only
// when T can hold nil. For struct types unknown keys are rejected, and so
// are missing keys unless the field is tagged omitempty or omitzero.
func Decode[T any](s string) (T, error) {
	var zero T

	raw, err := unwrap(s)
	if err != nil {
		return zero, err
	}
	if bytes.Equal(raw, []byte("null")) && !nilable[T]() {
		return zero, fmt.Errorf("%w: null is not a valid %T", ErrDecode, zero)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var v T
	if err := dec.Decode(&v); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := requireFields(reflect.TypeFor[T](), raw); err != nil {
		return zero, err
	}
	return v, nil
}

// requireFields checks that an object decoded into a struct carried every
// field that is not optional. Nested structs are not inspected.
func requireFields(t reflect.Type, raw json.RawMessage) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}
		if strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero") {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if !hasKey(obj, name) {
			return fmt.Errorf("%w: missing field %q", ErrDecode, name)
		}
	}
	return nil
}

// hasKey matches keys the way encoding/json does, case-insensitively.
func hasKey(obj map[string]json.RawMessage, name string) bool {
	if _, ok := obj[name]; ok {
		return true
	}
	for k := range obj {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// Valid reports whether s is a JSON object carrying the envelope key.
// The wrapped value itself is not checked.
func Valid(s string) bool {
	_, err := unwrap(s)
	return err == nil
}

func unwrap(s string) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	raw, ok := obj[envelopeKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrDecode, envelopeKey)
	}
	return raw, nil
}

func nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

// encodeValue produces the cookie value for v. The envelope is
// percent-escaped because quotes, commas and spaces are not allowed in a
// cookie value. Escaping can triple the size of quote-heavy payloads.
func encodeValue[T any](v T) (string, error) {
	s, err := Encode(v)
	if err != nil {
		return "", err
	}
	return url.PathEscape(s), nil
}

// decodeValue reverses encodeValue. Values starting with "{" are taken as
// an unescaped envelope, as written by clients that store the JSON as is.
func decodeValue[T any](value string) (T, error) {
	s, err := envelopeText(value)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](s)
}

// wellFormed reports whether a raw cookie value holds an envelope.
func wellFormed(value string) bool {
	s, err := envelopeText(value)
	return err == nil && Valid(s)
}

func envelopeText(value string) (string, error) {
	if strings.HasPrefix(value, "{") {
		return value, nil
	}
	s, err := url.PathUnescape(value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return s, nil
}
