// Package logging builds the slog loggers used by agenda commands.
//
// Console output is one human-readable line per record with the component as
// a prefix; JSON output uses ts/level/msg keys. Both can fan out to stderr and
// a log file. The Field* constants name the keys shared across packages, and
// WarnWithContext makes every warning carry event_type, error_hint and impact.
package logging
