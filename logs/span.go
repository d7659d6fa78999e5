package logs

// Span tags log records and errors with the logical operation that
// produced them, propagated through context.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
