// Package sqlite provides the slot persistence adapter backed by SQLite.
package sqlite
