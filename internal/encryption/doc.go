// Package encryption applies a prepared Hill key to text and to batches of files.
// Files are processed concurrently with a bounded worker pool and written atomically.
package encryption
