package types

// ToolEnvelope is the uniform result shape every tool returns to the agent:
// success with the payload passed through verbatim, or failure with a
// human-readable message. No other shape ever reaches the caller.
type ToolEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success wraps a payload returned by the API, unchanged.
func Success(data any) ToolEnvelope {
	return ToolEnvelope{Success: true, Data: data}
}

// SuccessWithCount wraps a list payload and reports its length, matching the
// shape the list tools have always returned.
func SuccessWithCount(data any) ToolEnvelope {
	count := 0
	if items, ok := data.([]any); ok {
		count = len(items)
	}
	return ToolEnvelope{Success: true, Data: data, Count: &count}
}

// Failure wraps a classified client error.
func Failure(err error) ToolEnvelope {
	return ToolEnvelope{Success: false, Error: err.Error()}
}
