package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/dmfuentes/smartcart-backend/pkg/errors"
)

// QueryString returns a trimmed query parameter, failing when required and
// absent.
func QueryString(r *http.Request, name string, required bool) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" && required {
		return "", pkgerrors.New(pkgerrors.CodeValidation, name+" query parameter is required")
	}
	return value, nil
}

// QueryFloat parses a float query parameter with a fallback.
func QueryFloat(r *http.Request, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, name+" must be a number")
	}
	return value, nil
}

// QueryInt parses an integer query parameter with a fallback.
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, name+" must be an integer")
	}
	return value, nil
}
