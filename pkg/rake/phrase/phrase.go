package phrase

import "strings"

// Phrase is an ordered sequence of lower-cased words forming one candidate
// keyword. Two phrases are equal iff their word sequences are equal
// element-wise.
type Phrase []string

// Join returns the phrase's display string: its words joined by single spaces.
func (p Phrase) Join() string {
	return strings.Join(p, " ")
}

// key returns a canonical form used for duplicate detection. The separator
// cannot appear inside a token, so distinct word sequences map to distinct keys.
func (p Phrase) key() string {
	return strings.Join(p, "\x00")
}

// Config configures a Generator.
type Config struct {
	// Tokenize splits a sentence into word tokens, punctuation included.
	Tokenize func(sentence string) []string
	// Ignore holds the tokens that act as phrase boundaries (stopwords and
	// punctuation, already lower-cased).
	Ignore map[string]struct{}
	// MinLength and MaxLength bound the phrase word count, both inclusive.
	MinLength int
	MaxLength int
	// OmitRepeats drops every occurrence of a phrase after its first.
	OmitRepeats bool
}

// Generator turns tokenized sentences into candidate phrases: maximal
// contiguous runs of non-ignored words within one sentence.
type Generator struct {
	tokenize    func(string) []string
	ignore      map[string]struct{}
	minLength   int
	maxLength   int
	omitRepeats bool
}

// NewGenerator creates a phrase generator with the given configuration.
func NewGenerator(cfg Config) *Generator {
	ignore := cfg.Ignore
	if ignore == nil {
		ignore = map[string]struct{}{}
	}
	return &Generator{
		tokenize:    cfg.Tokenize,
		ignore:      ignore,
		minLength:   cfg.MinLength,
		maxLength:   cfg.MaxLength,
		omitRepeats: cfg.OmitRepeats,
	}
}

// Generate produces the candidate phrase list for the given sentences, in
// sentence order. An empty sentence, or one consisting entirely of ignored
// tokens, contributes no phrases. MinLength > MaxLength yields no phrases.
func (g *Generator) Generate(sentences []string) []Phrase {
	var phrases []Phrase
	for _, sentence := range sentences {
		words := g.tokenize(sentence)
		for i, w := range words {
			words[i] = strings.ToLower(w)
		}
		phrases = append(phrases, g.phrasesFromWords(words)...)
	}

	if g.omitRepeats {
		return firstOccurrences(phrases)
	}
	return phrases
}

// phrasesFromWords partitions one sentence's tokens into maximal runs of
// non-ignored words and keeps the runs within the configured length bounds.
// Boundary tokens are dropped entirely; they never become empty phrases.
func (g *Generator) phrasesFromWords(words []string) []Phrase {
	var out []Phrase
	var run Phrase

	flush := func() {
		if len(run) > 0 && len(run) >= g.minLength && len(run) <= g.maxLength {
			out = append(out, run)
		}
		run = nil
	}

	for _, w := range words {
		if _, ignored := g.ignore[w]; ignored {
			flush()
			continue
		}
		run = append(run, w)
	}
	flush()

	return out
}

// firstOccurrences keeps only the first occurrence of each distinct word
// sequence, preserving the position of that first occurrence.
func firstOccurrences(phrases []Phrase) []Phrase {
	seen := make(map[string]struct{}, len(phrases))
	out := make([]Phrase, 0, len(phrases))
	for _, p := range phrases {
		k := p.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}
