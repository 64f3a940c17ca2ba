// Package optimize holds the chunk graph passes that run between split chunks and freezing:
// empty chunk removal, chunk count limiting, id assignment and runtime requirements.
package optimize
