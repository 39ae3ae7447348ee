package internal

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 16

type cacheEntry struct {
	key     string
	texture *sdl.Texture
}

// TextureCache keeps rendered textures keyed by string and destroys the least
// recently used one once it holds more than its capacity.
type TextureCache struct {
	entries map[string]*list.Element
	lru     *list.List // front is most recently used
	maxSize int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		entries: make(map[string]*list.Element),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	el, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.lru.MoveToFront(el)
	return el.Value.(*cacheEntry).texture
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		if entry.texture != texture && entry.texture != nil {
			entry.texture.Destroy()
		}
		entry.texture = texture
		c.lru.MoveToFront(el)
		return
	}

	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, texture: texture})

	for c.lru.Len() > c.maxSize {
		c.evictOldest()
	}
}

func (c *TextureCache) Len() int {
	return c.lru.Len()
}

func (c *TextureCache) evictOldest() {
	el := c.lru.Back()
	if el == nil {
		return
	}
	entry := c.lru.Remove(el).(*cacheEntry)
	delete(c.entries, entry.key)
	if entry.texture != nil {
		entry.texture.Destroy()
	}
}

func (c *TextureCache) Destroy() {
	for c.lru.Len() > 0 {
		c.evictOldest()
	}
}
