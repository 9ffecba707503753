// Package fsys defines the filesystem capability consulted during asset
// resolution, along with an implementation backed by the local disk.
//
// Resolution only ever needs existence checks and modification times.  Asset
// content is read through Open, and written through OpenForWrite, which
// either updates a file in place or replaces it atomically.
package fsys
