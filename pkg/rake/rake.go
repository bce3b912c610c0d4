// Package rake implements the Rapid Automatic Keyword Extraction algorithm,
// as described in the paper "Automatic keyword extraction from individual
// documents" by Rose, Engel, Cramer and Cowley: candidate phrases are maximal
// runs of non-stopword words, scored from word frequency and co-occurrence
// degree statistics.
package rake

import (
	"github.com/cognicore/rake/pkg/rake/cooccur"
	"github.com/cognicore/rake/pkg/rake/ingest"
	"github.com/cognicore/rake/pkg/rake/phrase"
	"github.com/cognicore/rake/pkg/rake/rank"
	"github.com/cognicore/rake/pkg/rake/stoplist"
)

// defaultMaxLength effectively disables the upper phrase length bound.
const defaultMaxLength = 100000

// Options configures a Rake extractor. The zero value selects the shipped
// english stopwords, the default punctuation set, the default tokenizers,
// phrase lengths 1..100000, the degree/frequency ratio metric, and keeps
// repeated phrases.
type Options struct {
	// Stopwords overrides the language-selected stopword list.
	Stopwords []string
	// Punctuations overrides the default punctuation boundary tokens.
	Punctuations []string
	// Language selects a shipped stopword list when Stopwords is empty.
	Language string
	// RankingMetric selects the scoring formula. Out-of-range values fall
	// back to rank.DegreeToFrequencyRatio.
	RankingMetric rank.Metric
	// MinLength and MaxLength bound the phrase word count, both inclusive.
	// Zero means 1 and 100000 respectively.
	MinLength int
	MaxLength int
	// OmitRepeatedPhrases keeps only the first occurrence of each distinct
	// phrase. By default every occurrence is kept.
	OmitRepeatedPhrases bool
	// SentenceTokenizer and WordTokenizer override the default splitters.
	SentenceTokenizer ingest.SentenceTokenizer
	WordTokenizer     ingest.WordTokenizer
}

// Rake extracts ranked keyword phrases from text. The extractor holds the
// result tables of the most recent extraction; each call rebuilds them from
// scratch. A Rake value is not safe for concurrent use; callers reusing one
// instance across goroutines must serialize access.
type Rake struct {
	metric         rank.Metric
	generator      *phrase.Generator
	splitSentences ingest.SentenceTokenizer

	phrases   []phrase.Phrase
	frequency cooccur.FrequencyTable
	degrees   cooccur.DegreeTable
	entries   []rank.Entry
	ranked    []string
}

// New creates an extractor. The only failure mode is an unknown Language when
// no explicit Stopwords are supplied.
func New(opts Options) (*Rake, error) {
	stopwords := opts.Stopwords
	if len(stopwords) == 0 {
		language := opts.Language
		if language == "" {
			language = stoplist.DefaultLanguage
		}
		words, err := stoplist.Words(language)
		if err != nil {
			return nil, err
		}
		stopwords = words
	}

	punctuations := opts.Punctuations
	if len(punctuations) == 0 {
		punctuations = stoplist.Punctuation()
	}

	minLength := opts.MinLength
	if minLength <= 0 {
		minLength = 1
	}
	maxLength := opts.MaxLength
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}

	splitSentences := opts.SentenceTokenizer
	if splitSentences == nil {
		splitSentences = ingest.SplitSentences
	}
	splitWords := opts.WordTokenizer
	if splitWords == nil {
		splitWords = ingest.SplitWords
	}

	// The ignore set is derived once per configuration and reused read-only
	// across extractions.
	generator := phrase.NewGenerator(phrase.Config{
		Tokenize:    splitWords,
		Ignore:      stoplist.IgnoreSet(stopwords, punctuations),
		MinLength:   minLength,
		MaxLength:   maxLength,
		OmitRepeats: opts.OmitRepeatedPhrases,
	})

	return &Rake{
		metric:         opts.RankingMetric.Normalize(),
		generator:      generator,
		splitSentences: splitSentences,
	}, nil
}

// ExtractKeywordsFromText splits the text into sentences with the configured
// sentence tokenizer and extracts keywords from them.
func (r *Rake) ExtractKeywordsFromText(text string) {
	r.ExtractKeywordsFromSentences(r.splitSentences(text))
}

// ExtractKeywordsFromSentences extracts keywords from already-split
// sentences, replacing the results of any previous extraction.
func (r *Rake) ExtractKeywordsFromSentences(sentences []string) {
	r.phrases = r.generator.Generate(sentences)
	r.frequency = cooccur.BuildFrequency(r.phrases)
	r.degrees = cooccur.BuildDegree(r.phrases)
	r.entries = rank.Build(r.phrases, r.frequency, r.degrees, r.metric)

	r.ranked = make([]string, len(r.entries))
	for i, e := range r.entries {
		r.ranked[i] = e.Phrase
	}
}

// RankedPhrases returns the extracted keyword strings, best first.
func (r *Rake) RankedPhrases() []string {
	return r.ranked
}

// RankedPhrasesWithScores returns the extracted keywords with their scores,
// best first.
func (r *Rake) RankedPhrasesWithScores() []rank.Entry {
	return r.entries
}

// Phrases returns the candidate phrases of the last extraction, in document
// order.
func (r *Rake) Phrases() []phrase.Phrase {
	return r.phrases
}

// WordFrequencies returns the word frequency table of the last extraction.
func (r *Rake) WordFrequencies() cooccur.FrequencyTable {
	return r.frequency
}

// WordDegrees returns the word degree table of the last extraction.
func (r *Rake) WordDegrees() cooccur.DegreeTable {
	return r.degrees
}

// Metric returns the ranking metric in effect.
func (r *Rake) Metric() rank.Metric {
	return r.metric
}
