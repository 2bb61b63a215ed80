package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_EmbedsHintTextAndLimit(t *testing.T) {
	prompt := BuildPrompt("The company was founded in 2019.", "saas", 7, 12000)

	assert.Contains(t, prompt, "Content vertical hint: saas")
	assert.Contains(t, prompt, "The company was founded in 2019.")
	assert.Contains(t, prompt, "Limit to the 7 most significant claims.")
}

func TestBuildPrompt_TruncatesLongText(t *testing.T) {
	text := strings.Repeat("a", 15000)
	prompt := BuildPrompt(text, "general", 10, 12000)

	assert.Contains(t, prompt, strings.Repeat("a", 12000))
	assert.NotContains(t, prompt, strings.Repeat("a", 12001))
}

func TestBuildPrompt_ShortTextUntouched(t *testing.T) {
	prompt := BuildPrompt("short", "general", 10, 12000)
	assert.Contains(t, prompt, "short")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt("same input", "tech", 10, 12000)
	b := BuildPrompt("same input", "tech", 10, 12000)
	assert.Equal(t, a, b)
}
