package htmltext

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	doc := `<html><body>
		<h1>Keyword extraction</h1>
		<p>Red apples, are <b>good</b> in flavour.</p>
	</body></html>`

	got, err := Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "Keyword extraction Red apples, are good in flavour."
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtractSkipsScriptAndStyle(t *testing.T) {
	doc := `<html><head><style>p { color: red }</style></head>
	<body><script>var hidden = 1;</script><p>visible text</p></body></html>`

	got, err := Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "visible text" {
		t.Errorf("Extract() = %q, want %q", got, "visible text")
	}
	if strings.Contains(got, "hidden") || strings.Contains(got, "color") {
		t.Errorf("script/style content leaked into %q", got)
	}
}

func TestExtractCollapsesWhitespace(t *testing.T) {
	doc := "<p>one\n\n  two</p><p>three</p>"

	got, err := Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "one two three" {
		t.Errorf("Extract() = %q, want %q", got, "one two three")
	}
}

func TestExtractString(t *testing.T) {
	got := ExtractString("<p>plain &amp; simple</p>")
	if got != "plain & simple" {
		t.Errorf("ExtractString() = %q", got)
	}
}

func TestExtractBareText(t *testing.T) {
	// The parser wraps bare text in a document; the text survives.
	got := ExtractString("no markup at all")
	if got != "no markup at all" {
		t.Errorf("ExtractString() = %q", got)
	}
}
