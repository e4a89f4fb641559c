package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/dbx"
	"github.com/dmitrijs2005/langgpt/internal/logging"
	"github.com/dmitrijs2005/langgpt/internal/server/config"
	"github.com/dmitrijs2005/langgpt/internal/server/llm"
	"github.com/dmitrijs2005/langgpt/internal/server/models"
	"github.com/dmitrijs2005/langgpt/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/langgpt/internal/server/translation"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	// saveAttempts bounds how often the limit check and insert are rerun
	// after a serialization conflict with a concurrent request.
	saveAttempts = 3
)

// TranslationService runs the draft and review pipeline for a user and keeps
// the per-user history.
type TranslationService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	models           llm.Provider
	logger           logging.Logger
	dailyLimit       int
	requireClientKey bool
	hasServerKey     bool
	now              func() time.Time
}

func NewTranslationService(db *sql.DB, m repomanager.RepositoryManager, p llm.Provider, logger logging.Logger, cfg *config.Config) *TranslationService {
	return &TranslationService{
		db:               db,
		repomanager:      m,
		models:           p,
		logger:           logger.With("module", "translation"),
		dailyLimit:       cfg.DailyTranslationLimit,
		requireClientKey: cfg.RequireClientAPIKey,
		hasServerKey:     cfg.LLMAPIKey != "",
		now:              time.Now,
	}
}

// Translate validates the request, runs both model stages and stores exactly
// one history record on success. apiKey is the caller's own model key, if
// any; it is used for this call only.
func (s *TranslationService) Translate(ctx context.Context, user *models.User, text, direction, apiKey string) (*translation.Result, error) {
	if direction == "" {
		direction = string(translation.DefaultDirection)
	}
	d, err := translation.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", common.ErrorValidation)
	}

	completer, err := s.completer(apiKey)
	if err != nil {
		return nil, err
	}

	if err := s.checkDailyLimit(ctx, s.db, user.ID); err != nil {
		return nil, err
	}

	res, err := translation.Run(ctx, completer, text, d)
	if err != nil {
		category := llm.Category(err)
		s.logger.Error(ctx, "translation failed",
			"user_id", user.ID,
			"direction", string(d),
			"category", category.Error(),
			"error", llm.Redact(err.Error(), apiKey),
		)
		return nil, fmt.Errorf("%w: %w", common.ErrTranslationFailed, category)
	}

	record := &models.TranslationRecord{
		UserID:         user.ID,
		OriginalText:   text,
		TranslatedText: res.Translated,
		ReviewedText:   res.Reviewed,
	}

	err = dbx.WithSerializableTx(ctx, s.db, saveAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkDailyLimit(ctx, tx, user.ID); err != nil {
			return err
		}
		if _, err := s.repomanager.History(tx).Create(ctx, record); err != nil {
			return fmt.Errorf("error saving translation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "translation completed", "user_id", user.ID, "direction", string(d))

	return res, nil
}

// History returns the user's most recent records, newest first. limit below
// 1 falls back to DefaultHistoryLimit and is capped at MaxHistoryLimit.
func (s *TranslationService) History(ctx context.Context, user *models.User, limit int) ([]*models.TranslationRecord, error) {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	records, err := s.repomanager.History(s.db).ListByUser(ctx, user.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing history: %w", err)
	}
	return records, nil
}

func (s *TranslationService) completer(apiKey string) (llm.Completer, error) {
	if apiKey != "" {
		return s.models.ForKey(apiKey), nil
	}
	if s.requireClientKey || !s.hasServerKey {
		return nil, common.ErrAPIKeyRequired
	}
	return s.models.ForKey(""), nil
}

func (s *TranslationService) checkDailyLimit(ctx context.Context, db dbx.DBTX, userID int64) error {
	if s.dailyLimit <= 0 {
		return nil
	}

	now := s.now()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	n, err := s.repomanager.History(db).CountSince(ctx, userID, midnight)
	if err != nil {
		return fmt.Errorf("error counting translations: %w", err)
	}
	if n >= s.dailyLimit {
		return common.ErrDailyLimitExceeded
	}
	return nil
}
