package stoplist

import (
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/rake/pkg/rake/internalerr"
)

func TestWordsEnglish(t *testing.T) {
	words, err := Words("english")
	if err != nil {
		t.Fatalf("Words(english): %v", err)
	}
	if len(words) == 0 {
		t.Fatal("english stoplist is empty")
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
		if w != strings.ToLower(w) {
			t.Errorf("stopword %q is not lower-cased", w)
		}
	}
	for _, w := range []string{"the", "of", "are", "in", "a", "and"} {
		if _, ok := set[w]; !ok {
			t.Errorf("english stoplist missing %q", w)
		}
	}
}

func TestWordsPortuguese(t *testing.T) {
	words, err := Words("portuguese")
	if err != nil {
		t.Fatalf("Words(portuguese): %v", err)
	}
	if len(words) == 0 {
		t.Fatal("portuguese stoplist is empty")
	}
}

func TestWordsCaseInsensitiveLookup(t *testing.T) {
	if _, err := Words("English"); err != nil {
		t.Errorf("Words(English): %v", err)
	}
}

func TestWordsUnknownLanguage(t *testing.T) {
	_, err := Words("klingon")
	if err == nil {
		t.Fatal("expected error for unknown language")
	}
	if !errors.Is(err, internalerr.ErrUnknownLanguage) {
		t.Errorf("error should wrap ErrUnknownLanguage, got %v", err)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	found := false
	for _, l := range langs {
		if l == "english" {
			found = true
		}
	}
	if !found {
		t.Errorf("Languages() = %v, missing english", langs)
	}
}

func TestPunctuation(t *testing.T) {
	punct := Punctuation()
	if len(punct) != 32 {
		t.Errorf("len(Punctuation()) = %d, want 32", len(punct))
	}
	for _, p := range punct {
		if len(p) != 1 {
			t.Errorf("default punctuation token %q should be a single character", p)
		}
	}
}

func TestIgnoreSet(t *testing.T) {
	set := IgnoreSet([]string{"The", "and"}, []string{",", "."})

	for _, tok := range []string{"the", "and", ",", "."} {
		if _, ok := set[tok]; !ok {
			t.Errorf("ignore set missing %q", tok)
		}
	}
	// Membership is exact: multi-character symbol runs are not ignored
	// unless explicitly listed.
	if _, ok := set[":-)"]; ok {
		t.Error("ignore set should not contain unlisted tokens")
	}
	if _, ok := set["The"]; ok {
		t.Error("ignore set entries should be lower-cased")
	}
}
