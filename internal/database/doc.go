// Package database owns the JSON document that stores the event calendar.
//
// The document has two top-level lists: "eventos", years holding months
// holding dated events, and "tba", events whose date has not been announced.
// Keys are kept in Portuguese because the file is edited by hand and consumed
// by templates.
//
// # Reading
//
// Open is tolerant: a missing file is created empty, and an empty or
// malformed file yields an empty Document without rewriting the bad content.
// Read is strict and is used where silently rendering an empty page would be
// worse than failing.
//
// # Writing
//
// Write always serializes the whole document, keeps non-ASCII text literal,
// never emits null for lists, and replaces the file atomically.
//
// # Store
//
// Store wraps one read-modify-write cycle behind an advisory file lock
// (<path>.lock) and only rewrites the file when the mutation reports a
// change, optionally keeping the previous version in <path>.bak.
package database
