// Package monitor captures evaluation events for live
// observation: a collector that fans events out to handlers and
// a websocket server that streams them to dashboard clients.
package monitor

import "time"

// EventType represents the type of evaluation event.
type EventType string

const (
	EventPassed EventType = "passed"
	EventFailed EventType = "failed"
	EventRaised EventType = "raised"
)

// Event represents one matcher evaluation outcome.
type Event struct {
	Type      EventType `json:"type"`
	Name      string    `json:"name"`
	Actual    string    `json:"actual,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
