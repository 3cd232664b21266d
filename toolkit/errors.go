package toolkit

import "errors"

const (
	CodeInvalidTimezone  = "invalid_timezone"
	CodeParseFailure     = "parse_failure"
	CodeInvalidTimestamp = "invalid_timestamp"
)

// Error is the structured failure an operation surfaces instead of a fault.
// Every failure path of every operation ends in one of these; none escalates
// past the single call.
type Error struct {
	Code    string
	Message string
	Hint    string
	Sample  []string
}

func (e *Error) Error() string { return e.Message }

// Payload renders the error in the wire shape the dispatcher serializes.
func (e *Error) Payload() map[string]any {
	payload := map[string]any{
		"error": e.Message,
	}
	if len(e.Hint) > 0 {
		payload["hint"] = e.Hint
	}
	if len(e.Sample) > 0 {
		payload["available_timezones_sample"] = e.Sample
	}
	return payload
}

// Payload collapses an operation result into the single structured map the
// dispatcher serializes: the success payload as-is, or the error payload.
func Payload(result map[string]any, err error) map[string]any {
	if err == nil {
		return result
	}

	var terr *Error
	if errors.As(err, &terr) {
		return terr.Payload()
	}

	return map[string]any{"error": err.Error()}
}
