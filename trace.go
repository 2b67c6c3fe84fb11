package kind

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Trace captures provenance for a cascading lookup: one step per probed id
// in resolution order, ending at the id that produced the value (or at the
// chain's end on a miss).
type Trace struct {
	TraceID string `json:"trace_id"`
	Kind    string `json:"kind"`
	Steps   []Step `json:"steps"`
}

// Step details a single probe along the fallback chain.
type Step struct {
	ID    string `json:"id"`
	Depth int    `json:"depth"`
	Found bool   `json:"found"`
	Value any    `json:"value,omitempty"`
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated
// via ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}

// ValueTraced resolves k in values like Value while recording every probe.
// Each trace carries a fresh identifier so individual resolutions can be
// correlated across log sinks.
func ValueTraced[T any, V any](k Kind[T], values map[string]V) (V, Trace, bool) {
	trace := Trace{
		TraceID: uuid.NewString(),
		Kind:    k.String(),
	}
	depth := 0
	for node := &k; node != nil; node = node.fallback {
		value, ok := values[node.id]
		step := Step{ID: node.id, Depth: depth, Found: ok}
		if ok {
			step.Value = value
			trace.Steps = append(trace.Steps, step)
			return value, trace, true
		}
		trace.Steps = append(trace.Steps, step)
		depth++
	}
	var zero V
	return zero, trace, false
}
