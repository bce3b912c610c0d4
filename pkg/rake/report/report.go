// Package report builds labeled snapshots of an extraction run, for callers
// that log or export keyword results.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/rake/pkg/rake/cooccur"
	"github.com/cognicore/rake/pkg/rake/rank"
)

// defaultTopK bounds the keywords kept in a report when none is requested.
const defaultTopK = 10

// Builder constructs extraction reports with monotonic ULIDs.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a report builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Keyword is one ranked phrase in a report.
type Keyword struct {
	Phrase string
	Score  float64
}

// Report is a labeled snapshot of one extraction run.
type Report struct {
	ID          string
	Title       string
	GeneratedAt time.Time
	Keywords    []Keyword
	Stats       map[string]int
}

// Build creates a report from ranked entries, keeping the top topK keywords
// (defaults to 10 when topK <= 0). The frequency table supplies the
// distinct-word count; it may be nil.
func (b *Builder) Build(title string, entries []rank.Entry, freq cooccur.FrequencyTable, topK int) Report {
	if topK <= 0 {
		topK = defaultTopK
	}

	n := topK
	if n > len(entries) {
		n = len(entries)
	}

	keywords := make([]Keyword, n)
	for i := 0; i < n; i++ {
		keywords[i] = Keyword{
			Phrase: entries[i].Phrase,
			Score:  entries[i].Score,
		}
	}

	return Report{
		ID:          ulid.MustNew(ulid.Now(), b.entropy).String(),
		Title:       title,
		GeneratedAt: time.Now().UTC(),
		Keywords:    keywords,
		Stats: map[string]int{
			"candidate_phrases": len(entries),
			"distinct_words":    len(freq),
		},
	}
}
