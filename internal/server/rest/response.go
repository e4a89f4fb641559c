package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/server/llm"
)

type errorBody struct {
	Detail string `json:"detail"`
}

// JSONResponse writes data as JSON with the given status.
func JSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// ErrorResponse writes {"detail": message}. 401s get the bearer challenge.
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	if statusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	JSONResponse(w, statusCode, errorBody{Detail: message})
}

// ParseJSONBody decodes the request body into v.
func ParseJSONBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

const (
	msgInvalidCredentials = "Invalid authentication credentials"
	msgInternal           = "Internal server error"
)

// statusFor maps a service error onto an HTTP status and a client-safe
// message. Provider details never reach the message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, common.ErrUsernameTaken):
		return http.StatusBadRequest, "Username already registered"
	case errors.Is(err, common.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusBadRequest, "User already registered"
	case errors.Is(err, common.ErrInvalidDirection):
		return http.StatusBadRequest, "Invalid translation direction"
	case errors.Is(err, common.ErrAPIKeyRequired):
		return http.StatusBadRequest, "OpenAI API key is required"
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, validationMessage(err)
	case errors.Is(err, common.ErrDailyLimitExceeded):
		return http.StatusTooManyRequests, "Daily translation limit reached. Please try again tomorrow."
	case errors.Is(err, common.ErrTranslationFailed):
		return http.StatusInternalServerError, "Translation failed: " + llm.Category(err).Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// validationMessage strips the sentinel prefix so clients see only the
// reason, e.g. "text is required".
func validationMessage(err error) string {
	if reason, ok := strings.CutPrefix(err.Error(), common.ErrorValidation.Error()+": "); ok && reason != "" {
		return reason
	}
	return "Invalid request"
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := statusFor(err)
	ErrorResponse(w, status, msg)
}
