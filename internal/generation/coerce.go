package generation

import (
	"fmt"
	"strings"

	"github.com/heshanf/agridataset-backend/internal/domain"
)

// Coerce turns a recovered candidate into a storable record, filling the
// defaults the model commonly omits. A candidate with no source text or with
// no English variant at all carries no usable signal and is rejected with
// domain.ErrValidation.
func Coerce(c Candidate, sub domain.Subdomain) (domain.TranslationRecord, error) {
	sourceText := strings.TrimSpace(c.Sinhala)
	if sourceText == "" {
		return domain.TranslationRecord{}, fmt.Errorf("empty source text: %w", domain.ErrValidation)
	}

	english1 := strings.TrimSpace(c.Variant1)
	english2 := strings.TrimSpace(c.Variant2)
	english3 := strings.TrimSpace(c.Variant3)
	if english1 == "" && english2 == "" && english3 == "" {
		return domain.TranslationRecord{}, fmt.Errorf("no english variant: %w", domain.ErrValidation)
	}
	if english1 == "" {
		english1 = firstNonEmpty(english2, english3)
	}

	// Older prompt revisions produced a single "singlish" field; the source
	// text itself is the romanization of last resort.
	roman1 := firstNonEmpty(strings.TrimSpace(c.Singlish1), strings.TrimSpace(c.Singlish), sourceText)

	kind := domain.Kind(strings.TrimSpace(c.Type))
	if !kind.IsValid() {
		kind = domain.DeriveKind(sourceText)
	}

	return domain.TranslationRecord{
		SourceText: sourceText,
		Roman1:     roman1,
		Roman2:     optional(c.Singlish2),
		Roman3:     optional(c.Singlish3),
		English1:   english1,
		English2:   english2,
		English3:   english3,
		Subdomain:  sub,
		Kind:       kind,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
