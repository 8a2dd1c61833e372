package domain

type Code string

const (
	CodeValidation             Code = "VALIDATION_ERROR"
	CodeInsufficientBalance    Code = "INSUFFICIENT_BALANCE"
	CodeInvalidStateTransition Code = "INVALID_STATE_TRANSITION"
	CodeTransientFailure       Code = "TRANSIENT_FAILURE"
	CodeNotFound               Code = "NOT_FOUND"
	CodeUnauthorized           Code = "UNAUTHORIZED"
	CodeInternal               Code = "INTERNAL_ERROR"
)

// Error is a failure that can be shown to the caller as is.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same code, so errors.Is(err, ErrValidation)
// holds for every validation failure whatever its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrValidation             = &Error{Code: CodeValidation, Message: "validation error"}
	ErrInvalidAmount          = &Error{Code: CodeValidation, Message: "amount must be positive with at most two decimals"}
	ErrInsufficientBalance    = &Error{Code: CodeInsufficientBalance, Message: "insufficient balance"}
	ErrInvalidStateTransition = &Error{Code: CodeInvalidStateTransition, Message: "invalid state transition"}
	ErrTransientFailure       = &Error{Code: CodeTransientFailure, Message: "temporary failure, try again"}
	ErrNotFound               = &Error{Code: CodeNotFound, Message: "not found"}
	ErrUnauthorized           = &Error{Code: CodeUnauthorized, Message: "unauthorized"}
	ErrInternal               = &Error{Code: CodeInternal, Message: "internal error"}
)

func NewValidationError(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewTransitionError(from, to SettlementStatus) *Error {
	return &Error{Code: CodeInvalidStateTransition, Message: "cannot move settlement from " + string(from) + " to " + string(to)}
}
