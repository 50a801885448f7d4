package domain

import "strings"

// Kind classifies the linguistic unit of a record's source text.
type Kind string

const (
	KindWord     Kind = "word"
	KindSentence Kind = "sentence"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindWord, KindSentence:
		return true
	}
	return false
}

// DeriveKind classifies source text by whitespace-token count:
// more than two tokens is a sentence, otherwise a word.
func DeriveKind(sourceText string) Kind {
	if len(strings.Fields(sourceText)) > 2 {
		return KindSentence
	}
	return KindWord
}
