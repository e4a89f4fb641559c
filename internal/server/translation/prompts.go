package translation

import "strings"

type templates struct {
	translate string
	review    string
}

var prompts = map[Direction]templates{
	KoreanToJapanese: {
		translate: "한국어 텍스트를 자연스러운 일본어로 번역한다.\n" +
			"원문: {text}\n\n" +
			"번역 시 다음을 지켜주세요:\n" +
			"1. 문맥을 정확히 파악하여 번역\n" +
			"2. 일본어 문법에 맞게 자연스럽게 번역\n" +
			"3. 원문의 의도와 뉘앙스를 정확히 전달\n" +
			"4. 원문이 반말이면 반말로, 존댓말이면 존댓말로 번역\n" +
			"5. 자연스러운 일본어 표현 사용",
		review: "다음 한국어-일본어 번역을 검토하고 개선된 최종 번역을 제공한다:\n\n" +
			"원문(한국어): {original}\n" +
			"초벌 번역(일본어): {translated}\n\n" +
			"다음 항목을 고려하여 번역을 개선한다:\n" +
			"1. 문맥에 정확히 파악하여 어휘를 알맞게 선택했는가?\n" +
			"2. 원문이 반말이면 반말로, 존댓말이면 존댓말로 번역했는가?\n" +
			"3. 자연스러운 일본어 표현인가?\n\n" +
			"개선된 최종 번역만 제공한다. 설명이나 부가 설명 없이 개선된 일본어 번역만 작성한다.",
	},
	JapaneseToKorean: {
		translate: "일본어 텍스트를 자연스러운 한국어로 번역한다.\n" +
			"원문: {text}\n\n" +
			"번역 시 다음을 지켜주세요:\n" +
			"1. 문맥을 정확히 파악하여 번역\n" +
			"2. 한국어 문법에 맞게 자연스럽게 번역\n" +
			"3. 원문의 의도와 뉘앙스를 정확히 전달\n" +
			"4. 원문이 반말이면 반말로, 경어체면 경어체로 번역\n" +
			"5. 자연스러운 한국어 표현 사용",
		review: "다음 일본어-한국어 번역을 검토하고 개선된 최종 번역을 제공한다:\n\n" +
			"원문(일본어): {original}\n" +
			"초벌 번역(한국어): {translated}\n\n" +
			"다음 항목을 고려하여 번역을 개선한다:\n" +
			"1. 문맥에 정확히 파악하여 어휘를 알맞게 선택했는가?\n" +
			"2. 원문이 반말이면 반말로, 경어체면 경어체로 번역했는가?\n" +
			"3. 자연스러운 한국어 표현인가?\n\n" +
			"개선된 최종 번역만 제공한다. 설명이나 부가 설명 없이 개선된 한국어 번역만 작성한다.",
	},
}

// Placeholders are substituted in one pass so text containing a placeholder
// literal is never expanded a second time.
func translatePrompt(d Direction, text string) string {
	return strings.NewReplacer("{text}", text).Replace(prompts[d].translate)
}

func reviewPrompt(d Direction, original, translated string) string {
	return strings.NewReplacer("{original}", original, "{translated}", translated).Replace(prompts[d].review)
}
