package models

import "time"

// TranslationRecord is one completed translate-then-review run.
// TranslatedText holds the draft, ReviewedText the final output.
type TranslationRecord struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	OriginalText   string    `json:"original_text"`
	TranslatedText string    `json:"translated_text"`
	ReviewedText   string    `json:"reviewed_text"`
	CreatedAt      time.Time `json:"created_at"`
}
