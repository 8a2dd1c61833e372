package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the body of every error answer.
type Response struct {
	Code    string `json:"code,omitempty" example:"VALIDATION_ERROR"`
	Message string `json:"message" example:"amount must be positive with at most two decimals"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Message: message})
}

func RespondWithCode(w http.ResponseWriter, status int, code, message string) {
	RespondWithJSON(w, status, Response{Code: code, Message: message})
}
