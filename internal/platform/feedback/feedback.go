// Package feedback defines the mutation response envelope. Clients show the
// message as a transient notification; expires_in_ms tells them how long.
package feedback

// DisplayMS is how long clients should keep a notification on screen.
const DisplayMS = 6000

const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Envelope wraps a mutation result with its user-facing notification.
type Envelope struct {
	Data        any    `json:"data,omitempty"`
	Message     string `json:"message"`
	Severity    string `json:"severity"`
	ExpiresInMS int    `json:"expires_in_ms"`
}

func Success(data any, message string) Envelope {
	return Envelope{Data: data, Message: message, Severity: SeveritySuccess, ExpiresInMS: DisplayMS}
}

func Error(message string) Envelope {
	return Envelope{Message: message, Severity: SeverityError, ExpiresInMS: DisplayMS}
}

func Warning(data any, message string) Envelope {
	return Envelope{Data: data, Message: message, Severity: SeverityWarning, ExpiresInMS: DisplayMS}
}
