// Package calendar applies add, remove and archive operations to the event
// document.
//
// The package-level functions are pure: they mutate a *database.Document in
// memory and report whether anything changed. Service wraps them in a locked
// read-modify-write cycle through database.Store so the file is rewritten
// only when a mutation reports a change.
//
// Lookups that find nothing (unknown year, month or event) are not errors;
// they report changed=false.
package calendar
