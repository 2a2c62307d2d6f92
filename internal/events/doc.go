// Package events turns loose, free-form input fields into a canonical event
// entry ready for the calendar mutators.
//
// Input usually comes from event_* environment variables set by an
// automation trigger, optionally overridden by CLI flags. Normalize trims and
// case-folds every field and sorts the day list lexicographically; callers
// are expected to zero-pad days ("03", not "3") to get calendar order.
package events
