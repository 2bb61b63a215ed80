package model

// ClaimType categorizes the nature of an extracted claim
type ClaimType string

const (
	ClaimTypeNumeric     ClaimType = "numeric"     // Statistics, percentages, counts, measurements
	ClaimTypeEntity      ClaimType = "entity"      // Facts about companies, products, people
	ClaimTypeTemporal    ClaimType = "temporal"    // Dates, timeframes, sequences
	ClaimTypeComparative ClaimType = "comparative" // Comparisons between things
	ClaimTypeCausal      ClaimType = "causal"      // Cause-effect statements
	ClaimTypeGeneral     ClaimType = "general"     // Factual statements that fit no other bucket
)

// Topic categorizes the content vertical a claim belongs to
type Topic string

const (
	TopicEcommerce    Topic = "ecommerce"
	TopicSaaS         Topic = "saas"
	TopicTech         Topic = "tech"
	TopicFinance      Topic = "finance"
	TopicHealth       Topic = "health"
	TopicEducation    Topic = "education"
	TopicProfessional Topic = "professional"
	TopicGeneral      Topic = "general"
)

// TimeSensitivity indicates how quickly a claim is likely to become outdated
type TimeSensitivity string

const (
	SensitivityHigh   TimeSensitivity = "high"
	SensitivityMedium TimeSensitivity = "medium"
	SensitivityLow    TimeSensitivity = "low"
)

// RawCandidate is a claim candidate as proposed by the model, before
// normalization. Nothing about it is trusted: offsets may be off by a
// constant or by an arbitrary amount, spans may overlap or be inverted,
// and any field may be missing entirely.
type RawCandidate struct {
	Text            string          `json:"text"`
	SpanStart       int             `json:"span_start"`
	SpanEnd         int             `json:"span_end"`
	ClaimType       ClaimType       `json:"claim_type"`
	Topic           Topic           `json:"topic"`
	TimeSensitivity TimeSensitivity `json:"time_sensitivity"`
}

// Claim is a single factual assertion located by a half-open character span
// [SpanStart, SpanEnd) in the source text. Claims are created once by the
// normalizer and never mutated; within a batch their spans are valid,
// sorted ascending by start and non-overlapping (touching is allowed).
type Claim struct {
	ID              string          `json:"id"`
	Text            string          `json:"text"`
	SpanStart       int             `json:"span_start"`
	SpanEnd         int             `json:"span_end"`
	ClaimType       ClaimType       `json:"claim_type"`
	Topic           Topic           `json:"topic"`
	TimeSensitivity TimeSensitivity `json:"time_sensitivity"`
	IsVerifiable    bool            `json:"is_verifiable"`
}
