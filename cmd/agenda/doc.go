// Command agenda maintains the JSON event calendar and renders it into the
// published page.
//
// Mutating commands (add, remove, tba, archive) read their event fields from
// event_* environment variables, an optional --env-file, and flags, in
// increasing order of precedence. Read-only commands (list, months) tolerate
// a missing or malformed database and never rewrite existing content;
// generate reads it strictly.
package main
