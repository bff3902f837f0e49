package alloctrack

import "testing"

func TestHashFieldNameDeterministicWithinProcess(t *testing.T) {
	a := HashFieldName("name")
	b := HashFieldName("name")
	if a != b {
		t.Fatalf("expected same key within a process to hash deterministically")
	}
	if HashFieldName("name") == HashFieldName("description") {
		t.Fatalf("expected distinct field names to (almost certainly) hash differently")
	}
}

func TestTrackerAllocFree(t *testing.T) {
	tr := &Tracker{}
	tr.Alloc()
	tr.Alloc()
	tr.Free()
	if tr.Live() != 1 {
		t.Fatalf("got live=%d want 1", tr.Live())
	}
	if tr.Total() != 2 {
		t.Fatalf("got total=%d want 2", tr.Total())
	}
}
