package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrInvalidQuery           = errors.New("invalid query")
	ErrInsufficientParameters = errors.New("insufficient parameters")
	ErrNotFoundInCache        = errors.New("not found in cache")
	ErrSeriesNotFound         = errors.New("series not found")
	ErrValidation             = errors.New("validation error")
	ErrConfiguration          = errors.New("configuration error")
	ErrTransient              = errors.New("transient failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	if marker == nil {
		marker = ErrTransient
	}
	detail := buildDetail(component, operation, message)
	if err == nil {
		return fmt.Errorf("%w: %s", marker, detail)
	}
	return fmt.Errorf("%w: %s: %w", marker, detail, err)
}

// HTTPStatus maps a lookup error to the status code the resolution API should
// report for it.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidQuery), errors.Is(err, ErrInsufficientParameters), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFoundInCache), errors.Is(err, ErrSeriesNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func buildDetail(component, operation, message string) string {
	var b strings.Builder
	for _, part := range []string{component, operation, message} {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(part)
	}
	if b.Len() == 0 {
		return "unspecified failure"
	}
	return b.String()
}
