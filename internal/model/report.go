package model

import "time"

// Report is the complete result of extracting claims from one document
type Report struct {
	Subject     string    `json:"subject"`              // Human-readable subject (file name or page title slug)
	Source      string    `json:"source"`               // File path, "-" for stdin, or final URL
	ExtractedAt time.Time `json:"extracted_at"`         // When the extraction ran
	FetchMeta   FetchMeta `json:"fetch_meta,omitempty"` // HTTP metadata (URL sources only)

	TextLength int     `json:"text_length"` // Characters of source text after HTML stripping
	Claims     []Claim `json:"claims"`      // Normalized claim sequence

	Provider   string `json:"provider,omitempty"` // LLM provider that produced the candidates
	Model      string `json:"model,omitempty"`    // Model name
	TokensUsed int    `json:"tokens_used,omitempty"`

	Stats ReportStats `json:"stats"`
}

// FetchMeta contains HTTP metadata from fetching the source
type FetchMeta struct {
	StatusCode   int    `json:"status_code,omitempty"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	ETag         string `json:"etag,omitempty"`
}

// ReportStats summarizes the claim batch for at-a-glance reporting
type ReportStats struct {
	Total         int                     `json:"total"`
	ByType        map[ClaimType]int       `json:"by_type,omitempty"`
	ByTopic       map[Topic]int           `json:"by_topic,omitempty"`
	BySensitivity map[TimeSensitivity]int `json:"by_sensitivity,omitempty"`
}

// BuildStats tallies a claim batch into per-dimension counts
func BuildStats(claims []Claim) ReportStats {
	stats := ReportStats{Total: len(claims)}
	if len(claims) == 0 {
		return stats
	}

	stats.ByType = make(map[ClaimType]int)
	stats.ByTopic = make(map[Topic]int)
	stats.BySensitivity = make(map[TimeSensitivity]int)

	for i := range claims {
		stats.ByType[claims[i].ClaimType]++
		stats.ByTopic[claims[i].Topic]++
		stats.BySensitivity[claims[i].TimeSensitivity]++
	}

	return stats
}
