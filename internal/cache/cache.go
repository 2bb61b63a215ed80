package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache defines the interface for caching serialized extraction results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ExtractionKey derives a cache key from everything that determines the
// output of a temperature-zero extraction: the source text, the topic
// hint, the requested claim count and the model. Identical inputs can
// reuse a prior result instead of paying for another model call.
func ExtractionKey(text, topicHint string, maxClaims int, modelName string) string {
	h := sha256.New()
	h.Write([]byte(text))
	fmt.Fprintf(h, "|%s|%d|%s", topicHint, maxClaims, modelName)
	return "claimsift:v1:" + hex.EncodeToString(h.Sum(nil))
}
