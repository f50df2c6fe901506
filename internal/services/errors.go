package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationError lists the rejected fields of a submission, keyed by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// ExternalServiceError wraps a failure of the database or the mail server.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// newValidationError converts ozzo-validation output. Internal rule errors
// are returned unchanged.
func newValidationError(err error) error {
	if err == nil {
		return nil
	}
	var ie validation.InternalError
	if errors.As(err, &ie) {
		return err
	}
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for name, fe := range verrs {
		if fe != nil {
			fields[name] = fe.Error()
		}
	}
	return &ValidationError{Fields: fields}
}

var (
	ruleRequired = validation.Required.Error("必須項目です")
	ruleShort    = validation.RuneLength(0, 200).Error("200文字以内で入力してください")
	ruleLong     = validation.RuneLength(0, 5000).Error("5000文字以内で入力してください")
)
