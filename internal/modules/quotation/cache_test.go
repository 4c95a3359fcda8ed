package quotation

import (
	"testing"

	"tripquote/internal/ai"
)

func TestCacheKeyStability(t *testing.T) {
	opts := ai.Options{Model: "m", Temperature: 0.7, MaxTokens: 4096}
	a := CacheKey("e1", "Priya", "reply", "itinerary", ai.ProviderGemini, opts)
	b := CacheKey("e1", "Priya", "reply", "itinerary", ai.ProviderGemini, opts)
	if a != b {
		t.Fatal("identical inputs must produce identical keys")
	}
}

func TestCacheKeyChangesPerInput(t *testing.T) {
	base := func() (string, string, string, string, ai.Provider, ai.Options) {
		return "e1", "Priya", "reply", "itinerary", ai.ProviderGemini, ai.Options{Model: "m", Temperature: 0.7, MaxTokens: 4096}
	}
	eID, name, reply, itin, prov, opts := base()
	ref := CacheKey(eID, name, reply, itin, prov, opts)

	mutations := map[string]string{}
	{
		k := CacheKey("e2", name, reply, itin, prov, opts)
		mutations["enquiry id"] = k
	}
	{
		k := CacheKey(eID, "Rahul", reply, itin, prov, opts)
		mutations["client name"] = k
	}
	{
		k := CacheKey(eID, name, "other reply", itin, prov, opts)
		mutations["vendor reply"] = k
	}
	{
		k := CacheKey(eID, name, reply, "other itinerary", prov, opts)
		mutations["itinerary"] = k
	}
	{
		k := CacheKey(eID, name, reply, itin, ai.ProviderGroq, opts)
		mutations["provider"] = k
	}
	{
		o := opts
		o.Temperature = 0.2
		mutations["temperature"] = CacheKey(eID, name, reply, itin, prov, o)
	}
	{
		o := opts
		o.MaxTokens = 1024
		mutations["max tokens"] = CacheKey(eID, name, reply, itin, prov, o)
	}

	for field, k := range mutations {
		if k == ref {
			t.Fatalf("changing %s did not change the key", field)
		}
	}
}

func TestResultCacheSingleEntry(t *testing.T) {
	c := NewResultCache()
	r1 := &Result{Key: "k1", Document: []byte("doc1")}
	r2 := &Result{Key: "k2", Document: []byte("doc2")}

	c.Put("k1", r1)
	if got := c.Get("k1"); got != r1 {
		t.Fatal("expected hit for k1")
	}

	c.Put("k2", r2)
	if got := c.Get("k1"); got != nil {
		t.Fatal("k1 should have been evicted by k2")
	}
	if got := c.Get("k2"); got != r2 {
		t.Fatal("expected hit for k2")
	}
}

func TestResultCacheNeverStoresFailures(t *testing.T) {
	c := NewResultCache()
	c.Put("k", &Result{Key: "k", Failure: &Envelope{Type: TypeGenericError}, Document: []byte("err")})
	if got := c.Get("k"); got != nil {
		t.Fatal("failed results must not be cached")
	}
}

func TestResultCacheInvalidate(t *testing.T) {
	c := NewResultCache()
	c.Put("k", &Result{Key: "k", Document: []byte("doc")})
	c.Invalidate()
	if got := c.Get("k"); got != nil {
		t.Fatal("expected empty cache after invalidate")
	}
}
