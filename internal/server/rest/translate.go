package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/logging"
	"github.com/dmitrijs2005/langgpt/internal/server/models"
	"github.com/dmitrijs2005/langgpt/internal/server/translation"
)

// TranslationService is what the translation endpoints need.
type TranslationService interface {
	Translate(ctx context.Context, user *models.User, text, direction, apiKey string) (*translation.Result, error)
	History(ctx context.Context, user *models.User, limit int) ([]*models.TranslationRecord, error)
}

type TranslationHandler struct {
	translations TranslationService
	logger       logging.Logger
}

func NewTranslationHandler(s TranslationService, logger logging.Logger) *TranslationHandler {
	return &TranslationHandler{translations: s, logger: logger}
}

type translateRequest struct {
	Text      string `json:"text"`
	Direction string `json:"direction"`
	APIKey    string `json:"api_key,omitempty"`
}

type translateResponse struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	Reviewed   string `json:"reviewed"`
}

// Translate handles POST /translate
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	var req translateRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	apiKey := r.Header.Get(common.APIKeyHeaderName)
	if apiKey == "" {
		apiKey = req.APIKey
	}

	res, err := h.translations.Translate(r.Context(), user, req.Text, req.Direction, apiKey)
	if err != nil {
		status, _ := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error(r.Context(), "translate request failed", "user_id", user.ID, "status", status)
		}
		writeError(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, translateResponse{
		Original:   res.Original,
		Translated: res.Translated,
		Reviewed:   res.Reviewed,
	})
}

// History handles GET /history?limit=N
func (h *TranslationHandler) History(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			ErrorResponse(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	records, err := h.translations.History(r.Context(), user, limit)
	if err != nil {
		h.logger.Error(r.Context(), "history request failed", "user_id", user.ID, "error", err)
		writeError(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, records)
}
