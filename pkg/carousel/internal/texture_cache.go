package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 64

// CachedTexture is a texture together with its pixel size.
type CachedTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextureCache is a small LRU of rendered text and icon textures.
type TextureCache struct {
	textures map[string]CachedTexture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]CachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// TextKey identifies a rendered caption.
func TextKey(text string, size int32, c sdl.Color) string {
	return fmt.Sprintf("t|%d|%02x%02x%02x%02x|%s", size, c.R, c.G, c.B, c.A, text)
}

// IconKey identifies a rasterized icon.
func IconKey(name string, size int32, c sdl.Color) string {
	return fmt.Sprintf("i|%d|%02x%02x%02x%02x|%s", size, c.R, c.G, c.B, c.A, name)
}

func (c *TextureCache) Get(key string) (CachedTexture, bool) {
	if entry, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return entry, true
	}
	return CachedTexture{}, false
}

func (c *TextureCache) Set(key string, entry CachedTexture) {
	if old, exists := c.textures[key]; exists {
		if old.Texture != entry.Texture {
			old.Texture.Destroy()
		}
		c.textures[key] = entry
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = entry
	c.order = append(c.order, key)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if entry, exists := c.textures[oldest]; exists {
		entry.Texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, entry := range c.textures {
		entry.Texture.Destroy()
	}
	c.textures = make(map[string]CachedTexture)
	c.order = c.order[:0]
}
