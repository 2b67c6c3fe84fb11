package kind

import "testing"

func TestValueTracedRecordsProbes(t *testing.T) {
	values := map[string]string{"rect": "blue", "general": "gray"}
	k := cornerChain(t, "upperLeft", "rectCorner", "rect", "general")

	value, trace, ok := ValueTraced(k, values)
	if !ok || value != "blue" {
		t.Fatalf("expected blue, got %q (ok=%v)", value, ok)
	}
	if trace.TraceID == "" {
		t.Fatalf("expected a trace identifier")
	}
	if trace.Kind != "upperLeft/rectCorner/rect/general" {
		t.Fatalf("unexpected traced kind %q", trace.Kind)
	}
	if len(trace.Steps) != 3 {
		t.Fatalf("expected probes up to the resolving id, got %d", len(trace.Steps))
	}
	for i, step := range trace.Steps {
		if step.Depth != i {
			t.Fatalf("expected step depth %d, got %d", i, step.Depth)
		}
	}
	last := trace.Steps[len(trace.Steps)-1]
	if !last.Found || last.ID != "rect" || last.Value != "blue" {
		t.Fatalf("unexpected resolving step %+v", last)
	}
	if trace.Steps[0].Found || trace.Steps[1].Found {
		t.Fatalf("earlier steps must record misses")
	}
}

func TestValueTracedMissWalksWholeChain(t *testing.T) {
	k := cornerChain(t, "a", "b", "c")
	_, trace, ok := ValueTraced(k, map[string]int{"other": 1})
	if ok {
		t.Fatalf("expected a miss")
	}
	if len(trace.Steps) != 3 {
		t.Fatalf("expected one step per chain node, got %d", len(trace.Steps))
	}
	for _, step := range trace.Steps {
		if step.Found {
			t.Fatalf("miss trace must contain no hits: %+v", step)
		}
	}
}

func TestTraceJSONRoundTrip(t *testing.T) {
	k := cornerChain(t, "rect", "general")
	_, trace, ok := ValueTraced(k, map[string]string{"general": "gray"})
	if !ok {
		t.Fatalf("expected a hit")
	}

	payload, err := trace.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := TraceFromJSON(payload)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.TraceID != trace.TraceID || decoded.Kind != trace.Kind {
		t.Fatalf("expected identity preserved, got %+v", decoded)
	}
	if len(decoded.Steps) != len(trace.Steps) {
		t.Fatalf("expected %d steps, got %d", len(trace.Steps), len(decoded.Steps))
	}
	if decoded.Steps[1].Value != "gray" {
		t.Fatalf("expected resolved value preserved, got %+v", decoded.Steps[1])
	}
}
