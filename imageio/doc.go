// Package imageio loads and saves lgl surfaces as PNG, JPEG and BMP files.
//
// Decoded images are normalized to non-premultiplied RGBA and wrapped
// without copying as FormatABGR8888 surfaces, whose byte order is
// R, G, B, A. Use Surface.Convert to move them into another format.
//
// Watcher reloads an image whenever its file changes on disk.
package imageio
