// Package httperror turns service errors into HTTP answers.
package httperror

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/pkg/utils"
)

var statusByCode = map[domain.Code]int{
	domain.CodeValidation:             http.StatusBadRequest,
	domain.CodeInsufficientBalance:    http.StatusPaymentRequired,
	domain.CodeInvalidStateTransition: http.StatusConflict,
	domain.CodeTransientFailure:       http.StatusServiceUnavailable,
	domain.CodeNotFound:               http.StatusNotFound,
	domain.CodeUnauthorized:           http.StatusForbidden,
	domain.CodeInternal:               http.StatusInternalServerError,
}

func Status(code domain.Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Respond writes err as a coded error body. Errors outside the domain
// taxonomy are logged and hidden behind INTERNAL_ERROR.
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) && domainErr.Code != domain.CodeInternal {
		utils.RespondWithCode(w, Status(domainErr.Code), string(domainErr.Code), domainErr.Message)
		return
	}

	zap.L().Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	utils.RespondWithCode(w, http.StatusInternalServerError, string(domain.CodeInternal), domain.ErrInternal.Message)
}

// BadRequest answers with a validation error.
func BadRequest(w http.ResponseWriter, message string) {
	utils.RespondWithCode(w, http.StatusBadRequest, string(domain.CodeValidation), message)
}
