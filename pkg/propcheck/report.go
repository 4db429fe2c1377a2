package propcheck

import (
	"encoding/json"
	"io"
)

// ReportEntry is the wire shape for a Failure: Vector's bignum.Int fields
// carry unexported invariants the kernel relies on, so the report exports
// only what a reader needs to reproduce the case — decimal text plus
// width/signedness, not raw limbs.
type ReportEntry struct {
	Invariant string `json:"invariant"`
	A         string `json:"a"`
	B         string `json:"b"`
	Width     int    `json:"width"`
	Signed    bool   `json:"signed"`
	Detail    string `json:"detail"`
}

// WriteJSON serializes failures as a JSON array.
func WriteJSON(w io.Writer, failures []Failure) error {
	out := make([]ReportEntry, len(failures))
	for i, f := range failures {
		out[i] = ReportEntry{
			Invariant: f.Invariant,
			A:         f.Vector.A.String(),
			B:         f.Vector.B.String(),
			Width:     f.Vector.Width,
			Signed:    f.Vector.Signed,
			Detail:    f.Detail,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ReadJSON deserializes a report written by WriteJSON, for inspecting a
// prior run's failures rather than replaying them back through the
// fuzzer.
func ReadJSON(r io.Reader) ([]ReportEntry, error) {
	var out []ReportEntry
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
