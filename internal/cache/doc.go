// Package cache provides a generic, thread-safe LRU cache with a fixed
// capacity, used for rasterized glyph masks.
//
//	c := cache.New[key, *image.Alpha](512)
//	mask := c.GetOrCreate(k, func() *image.Alpha { return render(k) })
//
// Cache must not be copied after creation (it contains a mutex).
package cache
