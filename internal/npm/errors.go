package npm

import "fmt"

// AuthError indicates the token exchange was rejected or unreachable.
// A previously held valid credential is left in place when this occurs.
type AuthError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
	return fmt.Sprintf("authentication failed: status %d: %s", e.StatusCode, e.Body)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RequestError indicates a non-2xx response from an entity endpoint.
// The raw response body is preserved for diagnostics. Requests are never
// retried automatically.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: status %d: %s", e.StatusCode, e.Body)
}

// DecodeError indicates a response body was present but not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
