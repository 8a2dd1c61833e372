package params

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectedID  int64
		expectError bool
	}{
		{name: "Valid", value: "42", expectedID: 42},
		{name: "Zero", value: "0", expectError: true},
		{name: "Negative", value: "-3", expectError: true},
		{name: "Not a number", value: "abc", expectError: true},
		{name: "Missing", value: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.value)

			id, err := PathID(r, "id")

			if tt.expectError {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestQueryTime(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expected    *time.Time
		expectError bool
	}{
		{name: "Missing", query: ""},
		{name: "RFC3339", query: "from=2024-03-01T10:00:00Z", expected: ptr(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))},
		{name: "Date", query: "from=2024-03-01", expected: ptr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))},
		{name: "Garbage", query: "from=yesterday", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			got, err := QueryTime(r, "from")

			if tt.expectError {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.True(t, tt.expected.Equal(*got))
		})
	}
}

func TestPage(t *testing.T) {
	page, size, err := Page(httptest.NewRequest(http.MethodGet, "/?page=2&page_size=50", nil))
	require.NoError(t, err)
	assert.Equal(t, 2, page)
	assert.Equal(t, 50, size)

	page, size, err = Page(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Zero(t, page)
	assert.Zero(t, size)

	_, _, err = Page(httptest.NewRequest(http.MethodGet, "/?page_size=lots", nil))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = QueryInt64(httptest.NewRequest(http.MethodGet, "/?seller_id=-1", nil), "seller_id")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRange(t *testing.T) {
	from, to, err := Range(httptest.NewRequest(http.MethodGet, "/?from=2024-03-01&to=2024-04-01T00:00:00Z", nil))
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(*from))
	assert.True(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).Equal(*to))

	from, to, err = Range(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)

	_, _, err = Range(httptest.NewRequest(http.MethodGet, "/?from=2024-03-01&to=soon", nil))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func ptr(t time.Time) *time.Time {
	return &t
}
