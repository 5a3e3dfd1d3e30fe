package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ListEnvelope wraps list reads that may be served from the degraded-mode
// fallback catalog. Degraded is omitted on the healthy path.
type ListEnvelope struct {
	Data     any  `json:"data"`
	Degraded bool `json:"degraded,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
