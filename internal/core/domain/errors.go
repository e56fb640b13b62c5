package domain

import "fmt"

// ValidationError reports a malformed or incomplete CampaignRequest or
// duplication request. It is raised before any remote call is made.
// CreativeIndex is -1 when the error is not scoped to a single creative.
type ValidationError struct {
	Field         string
	Reason        string
	CreativeIndex int
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, CreativeIndex: -1}
}

func (e *ValidationError) Error() string {
	if e.CreativeIndex >= 0 {
		return fmt.Sprintf("invalid %s (creative %d): %s", e.Field, e.CreativeIndex, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteError is the platform's own error envelope. The message is kept
// verbatim for operator diagnosis.
type RemoteError struct {
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("platform rejected request: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("platform rejected request: %s", e.Message)
}
