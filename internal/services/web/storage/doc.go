// Package storage declares the slot persistence contract used by the web
// service.
//
// A slot is one named value holding an opaque payload. The web service keeps
// the whole submission log in a single slot and always rewrites it in full.
package storage
