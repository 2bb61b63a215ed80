package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ndemidov/claimsift/internal/model"
)

// Renderer writes extraction reports as JSON, Markdown and stdout summaries
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes a human-readable Markdown report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Claim Report: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "- Source: %s\n", report.Source)
	fmt.Fprintf(&b, "- Extracted: %s\n", report.ExtractedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Text length: %d characters\n", report.TextLength)
	if report.Model != "" {
		fmt.Fprintf(&b, "- Model: %s/%s", report.Provider, report.Model)
		if report.TokensUsed > 0 {
			fmt.Fprintf(&b, " (%d tokens)", report.TokensUsed)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "- Claims: %d\n\n", report.Stats.Total)

	if len(report.Claims) > 0 {
		b.WriteString("## Claims\n\n")
		b.WriteString("| Span | Type | Topic | Sensitivity | Text |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for i := range report.Claims {
			c := &report.Claims[i]
			fmt.Fprintf(&b, "| [%d,%d) | %s | %s | %s | %s |\n",
				c.SpanStart, c.SpanEnd, c.ClaimType, c.Topic, c.TimeSensitivity,
				strings.ReplaceAll(c.Text, "|", "\\|"))
		}
		b.WriteString("\n")

		b.WriteString("## Breakdown\n\n")
		writeBreakdown(&b, "By type", toStringCounts(report.Stats.ByType))
		writeBreakdown(&b, "By topic", toTopicCounts(report.Stats.ByTopic))
		writeBreakdown(&b, "By time sensitivity", toSensitivityCounts(report.Stats.BySensitivity))
	} else {
		b.WriteString("No claims extracted.\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by claimsift. Spans are half-open character intervals ")
		b.WriteString("into the analyzed text; claim content is model-proposed and not verified.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderSummary prints a short summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("%s: %d claims", report.Subject, report.Stats.Total)
	if report.Stats.Total > 0 {
		parts := make([]string, 0, len(report.Stats.ByType))
		for _, kv := range toStringCounts(report.Stats.ByType) {
			parts = append(parts, fmt.Sprintf("%s=%d", kv.key, kv.count))
		}
		fmt.Printf(" (%s)", strings.Join(parts, ", "))
	}
	fmt.Println()
}

type keyCount struct {
	key   string
	count int
}

func toStringCounts(m map[model.ClaimType]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, v := range m {
		out = append(out, keyCount{string(k), v})
	}
	sortCounts(out)
	return out
}

func toTopicCounts(m map[model.Topic]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, v := range m {
		out = append(out, keyCount{string(k), v})
	}
	sortCounts(out)
	return out
}

func toSensitivityCounts(m map[model.TimeSensitivity]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, v := range m {
		out = append(out, keyCount{string(k), v})
	}
	sortCounts(out)
	return out
}

// sortCounts orders by descending count, then key for stable output
func sortCounts(counts []keyCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].key < counts[j].key
	})
}

func writeBreakdown(b *strings.Builder, title string, counts []keyCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**: ", title)
	parts := make([]string, 0, len(counts))
	for _, kv := range counts {
		parts = append(parts, fmt.Sprintf("%s %d", kv.key, kv.count))
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString("\n\n")
}
