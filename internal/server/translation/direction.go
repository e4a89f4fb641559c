// Package translation runs the two-stage draft and review pipeline between
// Korean and Japanese.
package translation

import (
	"fmt"

	"github.com/dmitrijs2005/langgpt/internal/common"
)

type Direction string

const (
	KoreanToJapanese Direction = "ko2ja"
	JapaneseToKorean Direction = "ja2ko"
)

// DefaultDirection is used when the request does not name one.
const DefaultDirection = KoreanToJapanese

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case KoreanToJapanese, JapaneseToKorean:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrInvalidDirection, s)
	}
}
