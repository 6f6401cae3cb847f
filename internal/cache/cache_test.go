package cache

import (
	"context"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "posts list key",
			parts:    []string{"posts", "1", "10", "0"},
			expected: "posts:1:10:0",
		},
		{
			name:     "single part",
			parts:    []string{"tags"},
			expected: "tags",
		},
		{
			name:     "filter value included",
			parts:    []string{"posts", "category", "gardening", "2", "10"},
			expected: "posts:category:gardening:2:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.parts...)
			if got != tt.expected {
				t.Errorf("Key() = %v, want %v", got, tt.expected)
			}
			// Identical inputs must produce byte-identical keys
			if again := Key(tt.parts...); again != got {
				t.Errorf("Key() not deterministic: %v vs %v", got, again)
			}
		})
	}
}

func TestKeyDistinguishesFilters(t *testing.T) {
	a := Key("posts", "1", "10")
	b := Key("posts", "2", "10")
	if a == b {
		t.Errorf("keys for different pages must differ, both %q", a)
	}
}

func TestHashKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
	}{
		{
			name:  "single part",
			parts: []string{"test"},
		},
		{
			name:  "multiple parts",
			parts: []string{"search", "gardening tips"},
		},
		{
			name:  "empty parts",
			parts: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed1 := HashKey(tt.parts...)
			hashed2 := HashKey(tt.parts...)

			// Hash should be consistent
			if hashed1 != hashed2 {
				t.Errorf("HashKey() should be consistent, got %s and %s", hashed1, hashed2)
			}

			// Hash should be 32 characters (MD5 hex)
			if len(hashed1) != 32 {
				t.Errorf("HashKey() should return 32 character hex string, got length %d", len(hashed1))
			}
		})
	}
}

func TestNamespaceKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "simple key",
			key:      "tags",
			expected: "blogapi:tags",
		},
		{
			name:     "key with colon",
			key:      "posts:1:10",
			expected: "blogapi:posts:1:10",
		},
		{
			name:     "empty key",
			key:      "",
			expected: "blogapi:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := namespaceKey(tt.key)
			if result != tt.expected {
				t.Errorf("namespaceKey() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMemoryStoreHitAndMiss(t *testing.T) {
	ctx := context.Background()
	c := NewWithStore(newMemoryStore(), time.Minute)
	defer c.Close()

	if _, ok := c.Get(ctx, "absent"); ok {
		t.Error("expected miss for absent key")
	}

	c.Set(ctx, "posts:1:10:0", `{"success":true}`)
	val, ok := c.Get(ctx, "posts:1:10:0")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if val != `{"success":true}` {
		t.Errorf("Get() = %q, want stored value", val)
	}

	c.Delete(ctx, "posts:1:10:0")
	if _, ok := c.Get(ctx, "posts:1:10:0"); ok {
		t.Error("expected miss after Delete")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	c := NewWithStore(store, time.Minute)
	c.Set(ctx, "post:gardening-tips", `{"post":{}}`)

	if _, ok := c.Get(ctx, "post:gardening-tips"); !ok {
		t.Fatal("expected hit within TTL window")
	}

	// Advance past the TTL; a read after expiry is a guaranteed miss and
	// drops the entry lazily.
	now = now.Add(time.Minute + time.Second)
	if _, ok := c.Get(ctx, "post:gardening-tips"); ok {
		t.Error("expected miss after TTL elapsed")
	}

	store.mu.RLock()
	_, stillThere := store.entries[namespaceKey("post:gardening-tips")]
	store.mu.RUnlock()
	if stillThere {
		t.Error("expired entry should be dropped on read")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewWithStore(newMemoryStore(), time.Minute)
	defer c.Close()

	type payload struct {
		Posts []string `json:"posts"`
		Total int      `json:"total"`
	}

	in := payload{Posts: []string{"a", "b"}, Total: 2}
	if err := c.SetJSON(ctx, "posts:1:2:0", in); err != nil {
		t.Fatalf("SetJSON() error: %v", err)
	}

	// Mutating the original must not affect the cached snapshot.
	in.Posts[0] = "mutated"

	var out payload
	if !c.GetJSON(ctx, "posts:1:2:0", &out) {
		t.Fatal("expected hit")
	}
	if out.Posts[0] != "a" || out.Total != 2 {
		t.Errorf("GetJSON() = %+v, want the original snapshot", out)
	}
}

func TestGetJSONDropsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c := NewWithStore(newMemoryStore(), time.Minute)
	c.Set(ctx, "bad", "{not json")

	var out map[string]interface{}
	if c.GetJSON(ctx, "bad", &out) {
		t.Error("corrupt entry should be a miss")
	}
	if _, ok := c.Get(ctx, "bad"); ok {
		t.Error("corrupt entry should be deleted")
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c := NewWithStore(newMemoryStore(), time.Minute)
	c.Set(ctx, "a", "1")
	c.Set(ctx, "b", "2")

	c.Clear(ctx)

	if _, ok := c.Get(ctx, "a"); ok {
		t.Error("expected miss after Clear")
	}
	if _, ok := c.Get(ctx, "b"); ok {
		t.Error("expected miss after Clear")
	}
}
