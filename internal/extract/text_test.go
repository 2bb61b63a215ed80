package extract

import (
	"strings"
	"testing"
)

func TestVisibleText_SkipInvisibleElements(t *testing.T) {
	htmlContent := `
	<html>
	<head>
		<script>var x = "script content";</script>
		<style>body { color: red; }</style>
	</head>
	<body>
		<p>Visible paragraph text.</p>
		<noscript>Noscript content</noscript>
		<iframe src="example.com">Iframe content</iframe>
		<p>Another visible paragraph.</p>
	</body>
	</html>
	`

	text, err := VisibleText(htmlContent)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}

	// Should contain visible paragraphs
	if !strings.Contains(text, "Visible paragraph") {
		t.Error("Expected to extract visible paragraph text")
	}
	if !strings.Contains(text, "Another visible paragraph") {
		t.Error("Expected to extract second visible paragraph")
	}

	// Should NOT contain invisible elements
	if strings.Contains(text, "script content") {
		t.Error("Should not extract script content")
	}
	if strings.Contains(text, "color: red") {
		t.Error("Should not extract style content")
	}
	if strings.Contains(text, "Noscript content") {
		t.Error("Should not extract noscript content")
	}
	if strings.Contains(text, "Iframe content") {
		t.Error("Should not extract iframe content")
	}
}

func TestVisibleText_Empty(t *testing.T) {
	text, err := VisibleText(`<html><body></body></html>`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty text, got %q", text)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	cases := []struct {
		content string
		want    bool
	}{
		{"<!DOCTYPE html><html><body></body></html>", true},
		{"<html lang=\"en\">", true},
		{"  \n<BODY>content</BODY>", true},
		{"Plain text document with no markup.", false},
		{"# Markdown heading\n\nSome prose.", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := LooksLikeHTML(tc.content); got != tc.want {
			t.Errorf("LooksLikeHTML(%q) = %v, want %v", tc.content, got, tc.want)
		}
	}
}
