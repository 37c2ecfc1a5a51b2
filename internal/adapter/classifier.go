package adapter

import (
	"bytes"
	"fmt"
	"net/http"
)

// Category is the classification of one remote call.
type Category int

const (
	// Success is a 2xx response other than 204 carrying a body.
	Success Category = iota
	// EmptySuccess is a 204, or any 2xx without a body.
	EmptySuccess
	// DriftSignal means the remote resource does not exist (404).
	DriftSignal
	AuthFailed
	// ConnectionFailed covers gateway and timeout statuses as well as
	// transport errors where no response arrived.
	ConnectionFailed
	// Malformed covers 400, every status without an explicit mapping and
	// bodies that cannot be parsed.
	Malformed
)

var categoryNames = map[Category]string{
	Success:          "success",
	EmptySuccess:     "empty_success",
	DriftSignal:      "drift_signal",
	AuthFailed:       "auth_failed",
	ConnectionFailed: "connection_failed",
	Malformed:        "malformed",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// IsSuccess reports whether c is [Success] or [EmptySuccess].
func (c Category) IsSuccess() bool {
	return c == Success || c == EmptySuccess
}

// statusCategories maps exact status codes to their category. Each code
// appears once, so lookup order cannot matter. Any other 2xx is classified by
// body presence and any other status is Malformed.
var statusCategories = map[int]Category{
	http.StatusNoContent:          EmptySuccess,
	http.StatusBadRequest:         Malformed,
	http.StatusUnauthorized:       AuthFailed,
	http.StatusForbidden:          AuthFailed,
	http.StatusNotFound:           DriftSignal,
	http.StatusRequestTimeout:     ConnectionFailed,
	http.StatusBadGateway:         ConnectionFailed,
	http.StatusServiceUnavailable: ConnectionFailed,
	http.StatusGatewayTimeout:     ConnectionFailed,
}

var categoryErrors = map[Category]error{
	DriftSignal:      ErrRemoteNotFound,
	AuthFailed:       ErrAuthFailed,
	ConnectionFailed: ErrConnectionFailed,
	Malformed:        ErrMalformed,
}

// Outcome is a classified remote call.
type Outcome struct {
	Category Category
	Status   int
	Body     []byte
	Message  string

	cause error
}

// Err returns nil for successful outcomes and otherwise an error wrapping the
// category's sentinel, for example [ErrAuthFailed].
func (o Outcome) Err() error {
	sentinel, ok := categoryErrors[o.Category]
	if !ok {
		return nil
	}
	if o.cause != nil {
		return fmt.Errorf("%w: %s: %w", sentinel, o.Message, o.cause)
	}
	return fmt.Errorf("%w: %s", sentinel, o.Message)
}

// Classify maps the result of a [ConnectorClient] call to an [Outcome]. A
// non-nil transportErr always yields [ConnectionFailed].
func Classify(resp Response, transportErr error) Outcome {
	if transportErr != nil {
		return Outcome{
			Category: ConnectionFailed,
			Message:  "no response from remote connector",
			cause:    transportErr,
		}
	}

	outcome := Outcome{
		Category: classifyStatus(resp.Status, resp.Body),
		Status:   resp.Status,
		Body:     resp.Body,
	}
	outcome.Message = describe(outcome)

	return outcome
}

func classifyStatus(status int, body []byte) Category {
	if category, ok := statusCategories[status]; ok {
		return category
	}

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		if len(bytes.TrimSpace(body)) == 0 {
			return EmptySuccess
		}
		return Success
	}

	return Malformed
}

const maxBodyInMessage = 256

func describe(o Outcome) string {
	text := http.StatusText(o.Status)
	if text == "" {
		text = "unexpected status"
	}

	body := bytes.TrimSpace(o.Body)
	if o.Category.IsSuccess() || len(body) == 0 {
		return fmt.Sprintf("http %d: %s", o.Status, text)
	}
	if len(body) > maxBodyInMessage {
		body = append(body[:maxBodyInMessage:maxBodyInMessage], "..."...)
	}
	return fmt.Sprintf("http %d: %s: %s", o.Status, text, body)
}
