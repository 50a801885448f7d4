package generation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/heshanf/agridataset-backend/internal/domain"
)

// Candidate is an unvalidated record recovered from raw LLM output,
// prior to coercion.
type Candidate struct {
	Sinhala   string `json:"sinhala"`
	Singlish1 string `json:"singlish1,omitempty"`
	Singlish  string `json:"singlish,omitempty"` // legacy single-romanization field
	Singlish2 string `json:"singlish2,omitempty"`
	Singlish3 string `json:"singlish3,omitempty"`
	Variant1  string `json:"variant1,omitempty"`
	Variant2  string `json:"variant2,omitempty"`
	Variant3  string `json:"variant3,omitempty"`
	Type      string `json:"type,omitempty"`
}

// Normalize recovers a candidate list from raw LLM text. The output format is
// not contractually guaranteed even when explicitly requested, so recovery is
// layered — each tier handles an observed failure mode, first success wins:
//
//  1. strip markdown code fences;
//  2. strict parse: a bare array, an array under "items" or "data", or the
//     first array-valued key of a wrapper object in declared order;
//  3. best-effort scan: the first "[...]" span of the raw text; failing that,
//     the span closed after the last complete object (salvages whole records
//     from output truncated mid-array).
//
// An empty array is a valid result with zero candidates, distinct from
// ErrMalformedResponse, which is returned only when every tier fails.
func Normalize(raw string) ([]Candidate, error) {
	text := stripFences(strings.TrimSpace(raw))

	if list, err := parseStrict(text); err == nil {
		return list, nil
	}

	if list, err := salvageArray(text); err == nil {
		return list, nil
	}

	return nil, fmt.Errorf("no usable list in response: %w", domain.ErrMalformedResponse)
}

// stripFences removes a surrounding markdown code fence, tolerating an info
// string ("```json") on the opening line.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseStrict parses the whole text as a single JSON value and locates the
// candidate list inside it.
func parseStrict(text string) ([]Candidate, error) {
	switch {
	case strings.HasPrefix(text, "["):
		return parseArray(text)
	case strings.HasPrefix(text, "{"):
		return parseWrapper(text)
	}
	return nil, fmt.Errorf("not a JSON array or object")
}

// parseWrapper handles the LLM wrapping its array in an object. Recognized
// wrapper keys ("items", then "data") take priority; otherwise the first
// array-valued key in the object's declared order is used.
func parseWrapper(text string) ([]Candidate, error) {
	keys, values, err := decodeOrderedObject(text)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]json.RawMessage, len(keys))
	for i, k := range keys {
		byKey[k] = values[i]
	}

	for _, wrapper := range []string{"items", "data"} {
		if v, ok := byKey[wrapper]; ok && isArray(v) {
			return parseArray(string(v))
		}
	}

	for _, v := range values {
		if isArray(v) {
			return parseArray(string(v))
		}
	}

	return nil, fmt.Errorf("object has no array-valued key")
}

// decodeOrderedObject decodes a single top-level JSON object, preserving key
// order (map decoding would lose it). Trailing content after the object is an
// error.
func decodeOrderedObject(text string) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(strings.NewReader(text))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected object, got %v", tok)
	}

	var (
		keys   []string
		values []json.RawMessage
	)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}

		keys = append(keys, key)
		values = append(values, raw)
	}

	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("trailing content after object")
	}

	return keys, values, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}

func parseArray(text string) ([]Candidate, error) {
	var list []Candidate
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []Candidate{}
	}
	return list, nil
}

// salvageArray is the last recovery tier for unparseable text: it extracts
// the first bracket-delimited span and parses just that. If the span itself
// is broken (output truncated mid-array), it retries with the span closed
// after the last complete object, keeping every whole record before the
// truncation point.
func salvageArray(text string) ([]Candidate, error) {
	start := strings.Index(text, "[")
	if start < 0 {
		return nil, fmt.Errorf("no array span found")
	}

	if end := strings.LastIndex(text, "]"); end > start {
		if list, err := parseArray(text[start : end+1]); err == nil {
			return list, nil
		}
	}

	if lastObj := strings.LastIndex(text, "}"); lastObj > start {
		return parseArray(text[start:lastObj+1] + "]")
	}

	return nil, fmt.Errorf("array span unparseable")
}
