package result

import (
	"reflect"

	json "github.com/goccy/go-json"
)

// WireError is the decoded form of a serialized failure. The original
// failure's dynamic type survives as its name and the message as text,
// the two properties Err equality is defined by, so re-encoded failures
// keep comparing the way the live ones did.
type WireError struct {
	TypeName string
	Message  string
}

func (e *WireError) Error() string {
	return e.Message
}

type errEnvelope struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Trace   string `json:"trace,omitempty"`
}

type envelope struct {
	Ok  *json.RawMessage `json:"ok,omitempty"`
	Err *errEnvelope     `json:"err,omitempty"`
}

// MarshalJSON encodes Ok as {"ok":<value>}, Err as
// {"err":{"type":...,"message":...,"trace":...}} and the zero Result
// as {}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	switch r.v {
	case variantOk:
		payload, err := json.Marshal(r.value)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(payload)
		return json.Marshal(envelope{Ok: &raw})
	case variantErr:
		e := &errEnvelope{Trace: r.trace}
		if r.err != nil {
			e.Type = reflect.TypeOf(r.err).String()
			e.Message = r.err.Error()
		}
		return json.Marshal(envelope{Err: e})
	default:
		return []byte("{}"), nil
	}
}

// UnmarshalJSON decodes the envelope produced by MarshalJSON. Failures
// come back as *WireError with the frozen trace carried over; the decoded
// Result gets a fresh id and createdAt.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}

	switch {
	case e.Err != nil:
		dec := Err[T](&WireError{TypeName: e.Err.Type, Message: e.Err.Message})
		if e.Err.Trace != "" {
			dec.trace = e.Err.Trace
		}
		*r = dec
	case e.Ok != nil:
		var v T
		if err := json.Unmarshal(*e.Ok, &v); err != nil {
			return err
		}
		*r = Ok(v)
	default:
		*r = Result[T]{}
	}

	return nil
}
