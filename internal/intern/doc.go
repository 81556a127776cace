// Package intern provides an append-only deduplicating arena.
//
// An Arena owns every value added to it and hands out Handles. Adding a
// candidate whose key is already present returns the existing Handle, so two
// Handles obtained from the same arena are == exactly when their values are
// equivalent. Slots are allocated individually and never move; a Handle stays
// valid for the lifetime of its arena.
//
// Arena is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package intern
