package internal

import "testing"

// Textures are nil here: the cache only needs SDL to destroy real ones.
func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTextureCacheWithSize(2)

	c.Set("a", nil)
	c.Set("b", nil)
	c.Get("a")
	c.Set("c", nil)

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if _, ok := c.entries["b"]; ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.entries[k]; !ok {
			t.Errorf("%s evicted", k)
		}
	}

	c.Destroy()
	if c.Len() != 0 || len(c.entries) != 0 {
		t.Errorf("Destroy left %d entries", c.Len())
	}
}

func TestTextureCacheMinimumSize(t *testing.T) {
	c := NewTextureCacheWithSize(0)
	c.Set("a", nil)
	c.Set("b", nil)
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}
