package logging

// Standard structured field keys.
const (
	FieldComponent = "component"
	// FieldEventType classifies a line for filtering (e.g. "event_added").
	FieldEventType = "event_type"
	// FieldErrorHint is the next step a reader should take.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldSessionID ties together every line of one CLI invocation.
	FieldSessionID = "session_id"
	FieldPath      = "path"
	FieldYear      = "ano"
	FieldMonth     = "mes"
	FieldEventName = "nome"
)
