package kickoffsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrSessionExpired is matched by every error produced by a failed
	// token refresh. The credential pair has been cleared when it is returned.
	ErrSessionExpired = errors.New("kickoffsdk: session expired")

	// ErrNotAuthenticated is returned by operations that need a stored
	// token when none is present.
	ErrNotAuthenticated = errors.New("kickoffsdk: not authenticated")
)

// APIError is a non-2xx backend response. The body is kept as-is; business
// and validation errors are for the caller to present.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("kickoff api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("kickoff api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// RefreshError wraps the failure of the refresh call that followed a 401.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("token refresh failed: %v", e.Err)
}

func (e *RefreshError) Unwrap() []error { return []error{ErrSessionExpired, e.Err} }

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}

// errorBody covers the error shapes the backend is known to send:
// {"message": "..."} or {"message": ["..",".."]} plus an optional error code.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

// parseErrorResponse builds an *APIError from a non-2xx response body.
func parseErrorResponse(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Body: body}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return apiErr
	}

	apiErr.Code = eb.Code
	if apiErr.Code == "" {
		apiErr.Code = eb.Error
	}

	if len(eb.Message) > 0 {
		var single string
		var many []string
		switch {
		case json.Unmarshal(eb.Message, &single) == nil:
			apiErr.Message = single
		case json.Unmarshal(eb.Message, &many) == nil && len(many) > 0:
			apiErr.Message = many[0]
			for _, m := range many[1:] {
				apiErr.Message += "; " + m
			}
		}
	}

	return apiErr
}
