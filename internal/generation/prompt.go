package generation

import (
	"fmt"
	"strings"

	"github.com/heshanf/agridataset-backend/internal/domain"
)

// BuildPrompt renders the instruction block sent to the LLM for one batch.
// It is a pure function of its inputs plus the static subdomain registry.
//
// count is split so that count/2 items are words and the remainder sentences;
// the two targets always sum to count. known is embedded as a
// duplicate-avoidance list, truncated to budget characters (runes) — silent
// truncation by size, not relevance.
func BuildPrompt(sub domain.Subdomain, count int, known []string, budget int) (string, error) {
	if !sub.IsValid() {
		return "", fmt.Errorf("unknown subdomain %q: %w", sub, domain.ErrValidation)
	}
	if count <= 0 {
		return "", fmt.Errorf("count must be positive (got %d): %w", count, domain.ErrValidation)
	}

	wordTarget := count / 2
	sentenceTarget := count - wordTarget

	return fmt.Sprintf(`Generate %d high-quality Sinhala agricultural translation pairs for the "%s" subdomain.

Context: %s

Requirements:
1. Generate exactly %d word entries and %d sentence entries related to %s
2. Content must be authentic Sri Lankan agricultural terminology and natural farmer speech
3. Avoid duplicates with existing terms: %s

For each item, provide:
- "sinhala": Sinhala text in Unicode script (authentic agricultural term or natural sentence)
- "singlish1": Standard romanization (e.g., "govithana")
- "singlish2": Casual SMS/chat style (e.g., "govitana", optional if no natural variation)
- "singlish3": English-mixed style (e.g., "farming eka", optional if no natural variation)
- "variant1": Formal English translation
- "variant2": Casual/conversational English translation
- "variant3": Technical or contextual English explanation
- "type": "word" or "sentence"

Output ONLY a valid JSON array in this exact format:
[
  {
    "sinhala": "ගොවිතැන",
    "singlish1": "govithana",
    "singlish2": "govitana",
    "singlish3": "farming eka",
    "variant1": "farming",
    "variant2": "agriculture work",
    "variant3": "agricultural cultivation",
    "type": "word"
  }
]

Rules:
- Always provide singlish1, variant1, variant2, variant3, and type
- Only include singlish2 and singlish3 if natural variations exist
- Ensure accurate Sinhala spelling and realistic translations
- Make content diverse and domain-specific
- NO explanations, NO markdown, ONLY valid JSON array`,
		count, sub, sub.Context(), wordTarget, sentenceTarget, sub, truncateKnown(known, budget)), nil
}

// truncateKnown joins known source texts and clips the result to budget runes.
func truncateKnown(known []string, budget int) string {
	if len(known) == 0 {
		return "none"
	}

	joined := strings.Join(known, ", ")
	runes := []rune(joined)
	if len(runes) <= budget {
		return joined
	}
	return string(runes[:budget])
}
