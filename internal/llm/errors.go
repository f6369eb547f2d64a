package llm

import "fmt"

// ConfigurationError indicates the gateway cannot be constructed, most
// commonly because no API credential is available. It is fatal and is
// never retried.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("llm configuration error: %s", e.Message)
}

// TransportError indicates a network or provider failure during a
// completion call. It is propagated to the caller unretried; any retry
// policy is a deployment decision layered on top.
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("llm transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
