// Package params parses path and query parameters shared by the HTTP handlers.
package params

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

const dateLayout = "2006-01-02"

// PathID reads a positive integer URL parameter.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid " + name)
	}
	return id, nil
}

// QueryInt reads an optional integer query parameter. Missing means zero.
func QueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, domain.NewValidationError("invalid " + name)
	}
	return v, nil
}

func QueryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, domain.NewValidationError("invalid " + name)
	}
	return v, nil
}

// QueryTime reads an optional RFC 3339 timestamp or a plain date.
func QueryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, domain.NewValidationError("invalid " + name + ", expected RFC 3339 or YYYY-MM-DD")
	}
	return &t, nil
}

// Range reads the optional from and to bounds of a date filter.
func Range(r *http.Request) (from, to *time.Time, err error) {
	if from, err = QueryTime(r, "from"); err != nil {
		return nil, nil, err
	}
	if to, err = QueryTime(r, "to"); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// Page reads page and page_size. Limits are applied by the service.
func Page(r *http.Request) (page, pageSize int, err error) {
	if page, err = QueryInt(r, "page"); err != nil {
		return 0, 0, err
	}
	if pageSize, err = QueryInt(r, "page_size"); err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}
