package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// queryInt reads an optional integer query parameter. Malformed values become validation errors.
func queryInt(r *http.Request, name string, errs *validator.ValidationErrors) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, validator.ValidationError{
			Field:   name,
			Message: name + " must be a number",
		})
		return 0
	}
	return v
}

func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

func queryStringPtr(r *http.Request, name string) *string {
	v := queryString(r, name)
	if v == "" {
		return nil
	}
	return &v
}
