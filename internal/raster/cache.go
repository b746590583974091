package raster

import "image"

// Cache memoizes one raster together with the key that produced it.
type Cache[K comparable] struct {
	entry         *entry[K]
	regenerations int
}

type entry[K comparable] struct {
	key    K
	raster *image.RGBA
}

// GetOrRegenerate returns the cached raster if it was produced for key,
// otherwise it calls gen, stores the result under key and returns it.
// A nil result from gen is returned but not cached.
func (c *Cache[K]) GetOrRegenerate(key K, gen func() *image.RGBA) *image.RGBA {
	if c.entry != nil && c.entry.key == key {
		return c.entry.raster
	}

	img := gen()
	c.regenerations++
	if img == nil {
		c.entry = nil
		return nil
	}
	c.entry = &entry[K]{key: key, raster: img}
	return img
}

// Valid reports whether a lookup with key would hit.
func (c *Cache[K]) Valid(key K) bool {
	return c.entry != nil && c.entry.key == key
}

// Invalidate drops the cached raster.
func (c *Cache[K]) Invalidate() {
	c.entry = nil
}

// Regenerations counts how many times the generator has run.
func (c *Cache[K]) Regenerations() int {
	return c.regenerations
}
