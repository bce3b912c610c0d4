package ingest

import (
	"strings"
	"unicode"
)

// SentenceTokenizer splits a text into sentences.
type SentenceTokenizer func(text string) []string

// WordTokenizer splits a sentence into word tokens, punctuation included.
type WordTokenizer func(sentence string) []string

// SplitSentences is the default sentence tokenizer. A sentence ends at a run
// of terminators (".", "!", "?") followed by whitespace or end of text, so
// abbreviation-free prose splits cleanly while embedded dots (URLs, email
// addresses) stay intact. Terminators remain attached to their sentence and
// blank sentences are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)

	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Rune classes for word tokenization.
const (
	classNone = iota
	classWord
	classSymbol
)

// SplitWords is the default word tokenizer. It emits maximal runs of
// alphanumeric runes and maximal runs of other non-space symbols as separate
// tokens, so "Red apples, are good" yields ["Red", "apples", ",", "are",
// "good"] and "document's" yields ["document", "'", "s"]. Case is preserved;
// normalization happens downstream.
func SplitWords(sentence string) []string {
	var tokens []string
	var current strings.Builder
	class := classNone

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range sentence {
		switch {
		case unicode.IsSpace(r):
			flush()
			class = classNone
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if class != classWord {
				flush()
			}
			class = classWord
			current.WriteRune(r)
		default:
			if class != classSymbol {
				flush()
			}
			class = classSymbol
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}
