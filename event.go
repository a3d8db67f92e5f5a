package hookline

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when the input is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Event is a single inbound webhook event.
//
// Only Type participates in routing. The remaining fields are envelope
// metadata passed through to handlers untouched, and Raw always carries
// the complete original payload so handlers can read fields the envelope
// does not name.
type Event struct {
	// Type is the dot-delimited event type, e.g. "im.message.receive_v1".
	// Empty when the payload carries no type field; such events match only
	// the wildcard pattern or an explicitly registered "" pattern.
	Type string

	// EventID identifies the delivery. The transport fills this with a
	// generated ID when the sender omits it.
	EventID string

	// Timestamp is the sender-supplied event time, in whatever unit the
	// sender uses. Zero when absent.
	Timestamp float64

	// Data is the raw JSON of the payload's data field, if present.
	Data json.RawMessage

	// Raw is the complete request body as received.
	Raw json.RawMessage
}

// ParseEvent extracts the event envelope from raw webhook bytes.
//
// Field extraction uses gjson so the opaque payload is never fully
// unmarshaled. A missing or non-string type field yields Type == "" rather
// than an error; delivery of typeless events is degraded, not invalid.
func ParseEvent(raw []byte) (Event, error) {
	if !gjson.ValidBytes(raw) {
		return Event{}, ErrInvalidJSON
	}

	evt := Event{Raw: append(json.RawMessage(nil), raw...)}

	if r := gjson.GetBytes(raw, "type"); r.Type == gjson.String {
		evt.Type = r.String()
	}
	if r := gjson.GetBytes(raw, "event_id"); r.Type == gjson.String {
		evt.EventID = r.String()
	}
	if r := gjson.GetBytes(raw, "timestamp"); r.Type == gjson.Number {
		evt.Timestamp = r.Float()
	}
	if r := gjson.GetBytes(raw, "data"); r.Exists() {
		evt.Data = json.RawMessage(r.Raw)
	}

	return evt, nil
}
