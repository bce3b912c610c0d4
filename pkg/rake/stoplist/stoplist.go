package stoplist

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/rake/pkg/rake/internalerr"
)

//go:embed data/*.yaml
var dataFS embed.FS

// DefaultLanguage is the stopword list used when none is configured.
const DefaultLanguage = "english"

// list mirrors the on-disk stoplist schema: a single `terms` sequence.
type list struct {
	Terms []string `yaml:"terms"`
}

// Words returns the stopword list shipped for the given language. The lookup
// is case-insensitive. An unshipped language is a lookup failure wrapping
// internalerr.ErrUnknownLanguage.
func Words(language string) ([]string, error) {
	name := strings.ToLower(strings.TrimSpace(language))
	data, err := dataFS.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("stoplist %q: %w", language, internalerr.ErrUnknownLanguage)
	}

	var l list
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse stoplist %q: %w", language, err)
	}
	return l.Terms, nil
}

// Languages returns the languages with shipped stopword lists, sorted.
func Languages() []string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(langs)
	return langs
}

// punctuationSymbols holds the ASCII punctuation characters ignored by
// default, each of which becomes a single-character boundary token.
const punctuationSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Punctuation returns the default punctuation tokens.
func Punctuation() []string {
	out := make([]string, 0, len(punctuationSymbols))
	for _, r := range punctuationSymbols {
		out = append(out, string(r))
	}
	return out
}

// IgnoreSet builds the union of stopwords and punctuation tokens used as
// phrase boundaries. Entries are lower-cased; membership tests are exact, so
// a multi-character symbol token like ":-)" is only ignored if listed.
func IgnoreSet(stopwords, punctuations []string) map[string]struct{} {
	set := make(map[string]struct{}, len(stopwords)+len(punctuations))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	for _, p := range punctuations {
		set[strings.ToLower(p)] = struct{}{}
	}
	return set
}
