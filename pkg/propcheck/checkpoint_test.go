package propcheck

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/oisee/mpint/pkg/bignum"
)

func TestCheckpointSaveLoadRoundTrip(t *testing.T) {
	ckpt := &Checkpoint{
		Checked:   1000,
		Completed: 4,
		Failures: []Failure{
			{Invariant: "add-commutes", Vector: Vector{A: bignum.FromUint64(1, false), B: bignum.FromUint64(2, false), Width: 0}, Detail: "boom"},
		},
	}

	path := filepath.Join(t.TempDir(), "ckpt.gob")
	if err := SaveCheckpoint(path, ckpt); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	got, err := LoadCheckpoint(path)
	if err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}
	if got.Checked != ckpt.Checked || got.Completed != ckpt.Completed {
		t.Fatalf("round-tripped counters = %+v, want %+v", got, ckpt)
	}
	if len(got.Failures) != 1 || got.Failures[0].Invariant != "add-commutes" {
		t.Fatalf("round-tripped failures = %+v", got.Failures)
	}
}

func TestLoadCheckpointMissingFile(t *testing.T) {
	_, err := LoadCheckpoint(filepath.Join(os.TempDir(), "does-not-exist-mpint.gob"))
	if err == nil {
		t.Fatal("LoadCheckpoint on a missing file should return an error")
	}
}

func TestWriteJSONReadJSONRoundTrip(t *testing.T) {
	failures := []Failure{
		{Invariant: "mul-commutes", Vector: Vector{A: bignum.FromUint64(6, false), B: bignum.FromUint64(7, false), Width: 0, Signed: false}, Detail: "example"},
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, failures); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	entries, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(entries) != 1 || entries[0].Invariant != "mul-commutes" || entries[0].A != "6" || entries[0].B != "7" {
		t.Fatalf("round-tripped entries = %+v", entries)
	}
}
