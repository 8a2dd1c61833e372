package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, http.StatusCreated, map[string]int{"id": 9})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":9}`, rr.Body.String())
}

func TestRespondWithCode(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithCode(rr, http.StatusPaymentRequired, "INSUFFICIENT_BALANCE", "insufficient balance")

	var resp Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	assert.Equal(t, Response{Code: "INSUFFICIENT_BALANCE", Message: "insufficient balance"}, resp)
}

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithError(rr, http.StatusUnauthorized, "Unauthorized")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rr.Body.String())
}
