// Package bridge converts loosely-typed mappings, as produced by scripting
// hosts and ad-hoc API clients, into concrete domain event structs.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type ErrorKind string

const (
	// MissingField means a required key is absent from the mapping.
	MissingField ErrorKind = "MISSING_FIELD"
	// TypeMismatch means a key is present but holds an incompatible value.
	TypeMismatch ErrorKind = "TYPE_MISMATCH"
	// UnderlyingCodecFailure wraps any other marshalling failure.
	UnderlyingCodecFailure ErrorKind = "UNDERLYING_CODEC_FAILURE"
)

type Error struct {
	Kind  ErrorKind
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("bridge: %s: field %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("bridge: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a bridge Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// FromMapping builds a T from a string-keyed mapping. Every field of T whose
// json tag lacks omitempty must be present in the mapping; extra keys are
// ignored. Values are converted through the JSON codec so the mapping may
// hold either canonical string forms or already-typed values.
func FromMapping[T any](mapping map[string]any) (T, error) {
	var out T
	t := reflect.TypeOf(out)
	if t == nil || t.Kind() != reflect.Struct {
		return out, &Error{Kind: UnderlyingCodecFailure,
			Err: fmt.Errorf("target type %T is not a struct", out)}
	}
	if err := checkRequired(t, mapping); err != nil {
		return out, err
	}
	raw, err := json.Marshal(mapping)
	if err != nil {
		return out, &Error{Kind: UnderlyingCodecFailure, Err: err}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, classify(err)
	}
	return out, nil
}

func checkRequired(t reflect.Type, mapping map[string]any) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if err := checkRequired(f.Type, mapping); err != nil {
				return err
			}
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if strings.Contains(opts, "omitempty") {
			continue
		}
		v, ok := mapping[name]
		if !ok || v == nil {
			return &Error{Kind: MissingField, Field: name}
		}
	}
	return nil
}

func classify(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &Error{Kind: TypeMismatch, Field: typeErr.Field, Err: err}
	}
	return &Error{Kind: UnderlyingCodecFailure, Err: err}
}
