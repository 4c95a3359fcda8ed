// README: Single-entry result cache keyed over every generation input.
package quotation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"tripquote/internal/ai"
)

// CacheKey derives a stable key from every input that can change the
// rendered result. Changing any one of them must invalidate the cache.
func CacheKey(enquiryID, clientName, vendorReplyText, itineraryText string, provider ai.Provider, opts ai.Options) string {
	h := sha256.New()
	for _, part := range []string{
		enquiryID,
		clientName,
		vendorReplyText,
		itineraryText,
		string(provider),
		opts.Model,
		fmt.Sprintf("%g", opts.Temperature),
		fmt.Sprintf("%d", opts.MaxTokens),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Result is what a successful generation produces: the rendered document
// plus the structured data and input IDs needed to persist it.
type Result struct {
	Key             string
	Structured      *Structured
	Document        []byte
	ParsedVendor    string
	VendorReplyID   string
	ItineraryUsedID string
	Failure         *Envelope
}

// ResultCache holds the most recent successful generation. One entry only:
// regenerating with any changed input replaces it. Failed runs are never
// stored, so a retry after a transient provider error always re-executes.
type ResultCache struct {
	mu    sync.Mutex
	key   string
	value *Result
}

func NewResultCache() *ResultCache {
	return &ResultCache{}
}

// Get returns the cached result for key, or nil on a miss.
func (c *ResultCache) Get(key string) *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.key == key && c.value != nil {
		return c.value
	}
	return nil
}

// Put stores res under key unless it represents a failure.
func (c *ResultCache) Put(key string, res *Result) {
	if res == nil || res.Failure != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.value = res
}

// Invalidate drops the entry regardless of key.
func (c *ResultCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = ""
	c.value = nil
}
