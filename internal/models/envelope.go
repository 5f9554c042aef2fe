package models

// Envelope status values. Every JSON response body the API produces is
// tagged with one of them.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the success-path response wrapper: {status, data}.
type Envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// ErrorEnvelope is the error-path response wrapper: {status, message}.
// Error envelopes never carry a data payload.
type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
