package extract

import "fmt"

// extractionSystemPrompt is the system instruction sent with every request
const extractionSystemPrompt = "You are a claim extraction expert. Always respond with valid JSON only."

// extractionPromptTemplate is the fixed instruction template. Placeholders
// are filled, in order, with the topic hint, the (truncated) text and the
// requested claim count.
const extractionPromptTemplate = `You are an expert at identifying factual claims in text.

Your task is to extract all factual claims from the given text. Focus on:
1. **Numeric claims** - Statistics, percentages, counts, measurements
2. **Entity claims** - Facts about companies, products, people
3. **Temporal claims** - Dates, timeframes, sequences
4. **Comparative claims** - Comparisons between things
5. **Causal claims** - Cause-effect statements

DO NOT extract:
- Pure opinions or subjective statements
- Questions
- Hypotheticals or speculations
- Generic marketing fluff without specific claims

For each claim, provide:
- The exact text of the claim
- Character positions (span_start, span_end)
- Claim type
- Topic category
- Time sensitivity (how quickly might this become outdated)

Content vertical hint: %s

TEXT TO ANALYZE:
%s

Return your analysis as a JSON object with a "claims" array. Example format:
{
    "claims": [
        {
            "text": "claim text here",
            "span_start": 0,
            "span_end": 20,
            "claim_type": "numeric",
            "topic": "saas",
            "time_sensitivity": "high"
        }
    ]
}

Limit to the %d most significant claims.
Return ONLY valid JSON, no other text.`

// BuildPrompt fills the extraction template with the topic hint, the text
// (hard-truncated to maxChars to respect the model's context window) and
// the requested claim count. The output is deterministic for a given input.
func BuildPrompt(text, topicHint string, maxClaims, maxChars int) string {
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}
	return fmt.Sprintf(extractionPromptTemplate, topicHint, text, maxClaims)
}
