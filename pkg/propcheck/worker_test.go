package propcheck

import "testing"

func TestWorkerPoolRunFindsNoFailuresAgainstValidInvariants(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Run(Invariants, []int{0, 8, 32, 64}, 200, false)
	if wp.Results.Len() != 0 {
		t.Fatalf("Run() recorded %d failures against a valid invariant set, want 0", wp.Results.Len())
	}
	checked, failed := wp.Stats()
	if checked == 0 {
		t.Fatal("Stats() reports 0 checks")
	}
	if failed != 0 {
		t.Fatalf("Stats() reports %d failures, want 0", failed)
	}
}

func TestWorkerPoolDefaultsWorkerCount(t *testing.T) {
	wp := NewWorkerPool(0)
	if wp.NumWorkers <= 0 {
		t.Fatalf("NewWorkerPool(0).NumWorkers = %d, want > 0", wp.NumWorkers)
	}
}

func TestWorkerPoolRecordsADeliberatelyBrokenInvariant(t *testing.T) {
	broken := Invariant{
		Name: "always-fails",
		Check: func(v Vector) (bool, string) {
			return false, "deliberately broken"
		},
	}
	wp := NewWorkerPool(2)
	wp.Run([]Invariant{broken}, []int{32}, 20, false)
	if wp.Results.Len() == 0 {
		t.Fatal("Run() recorded 0 failures against a deliberately broken invariant")
	}
}
