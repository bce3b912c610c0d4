package rank

import (
	"sort"

	"github.com/cognicore/rake/pkg/rake/cooccur"
	"github.com/cognicore/rake/pkg/rake/phrase"
)

// Metric selects the per-word scoring formula used to rank phrases.
type Metric int

const (
	// DegreeToFrequencyRatio scores a word as degree/frequency, balancing
	// connectivity against overuse. This is the default.
	DegreeToFrequencyRatio Metric = iota
	// WordDegree scores a word by its degree alone, favoring words central
	// to many phrases.
	WordDegree
	// WordFrequency scores a word by its frequency alone, favoring sheer
	// repetition.
	WordFrequency
)

// Normalize maps any out-of-range value to DegreeToFrequencyRatio. An
// unrecognized metric is not an error; it silently falls back to the default.
func (m Metric) Normalize() Metric {
	switch m {
	case DegreeToFrequencyRatio, WordDegree, WordFrequency:
		return m
	}
	return DegreeToFrequencyRatio
}

// String returns the metric's configuration name.
func (m Metric) String() string {
	switch m {
	case WordDegree:
		return "word_degree"
	case WordFrequency:
		return "word_frequency"
	}
	return "degree_to_frequency_ratio"
}

// Entry is one ranked result: a phrase's display string with its score.
type Entry struct {
	Score  float64
	Phrase string
}

// WordScore computes the configured metric for a single word. A zero
// frequency under the ratio metric contributes zero instead of faulting;
// with tables built from the same phrase list this never triggers.
func WordScore(m Metric, word string, freq cooccur.FrequencyTable, deg cooccur.DegreeTable) float64 {
	switch m {
	case WordDegree:
		return float64(deg.Degree(word))
	case WordFrequency:
		return float64(freq.Count(word))
	default:
		f := freq.Count(word)
		if f == 0 {
			return 0
		}
		return float64(deg.Degree(word)) / float64(f)
	}
}

// Build scores every phrase as the sum of its word scores and returns the
// entries sorted by descending (score, phrase string). Ties on score resolve
// to the lexicographically greater string first; exact duplicate phrases
// score identically and end up contiguous.
func Build(phrases []phrase.Phrase, freq cooccur.FrequencyTable, deg cooccur.DegreeTable, m Metric) []Entry {
	m = m.Normalize()

	entries := make([]Entry, 0, len(phrases))
	for _, p := range phrases {
		score := 0.0
		for _, w := range p {
			score += WordScore(m, w, freq, deg)
		}
		entries = append(entries, Entry{Score: score, Phrase: p.Join()})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Phrase > entries[j].Phrase
	})

	return entries
}
