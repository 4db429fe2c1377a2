package mpop

import "testing"

func TestCatalogCompleteness(t *testing.T) {
	for op := OpCode(0); op < OpCodeCount; op++ {
		info := &Catalog[op]
		if info.Mnemonic == "" {
			t.Errorf("OpCode %d has no mnemonic", op)
		}
		if info.Arity != 1 && info.Arity != 2 {
			t.Errorf("OpCode %d (%s) has invalid arity %d", op, info.Mnemonic, info.Arity)
		}
	}
}

func TestAllOpsCount(t *testing.T) {
	all := AllOps()
	if len(all) != int(OpCodeCount) {
		t.Errorf("AllOps() returned %d, want %d", len(all), OpCodeCount)
	}
}

func TestBinaryUnarySplit(t *testing.T) {
	bin := BinaryOps()
	un := UnaryOps()
	if len(bin)+len(un) != int(OpCodeCount) {
		t.Errorf("BinaryOps()+UnaryOps() = %d, want %d", len(bin)+len(un), OpCodeCount)
	}
	for _, op := range bin {
		if Catalog[op].Arity != 2 {
			t.Errorf("%s in BinaryOps() has arity %d", op, Catalog[op].Arity)
		}
	}
	for _, op := range un {
		if Catalog[op].Arity != 1 {
			t.Errorf("%s in UnaryOps() has arity %d", op, Catalog[op].Arity)
		}
	}
}

func TestStringOutOfRange(t *testing.T) {
	if got := OpCode(-1).String(); got == "" {
		t.Error("String() for an out-of-range OpCode should not be empty")
	}
	if got := OpCodeCount.String(); got == "" {
		t.Error("String() for OpCodeCount should not be empty")
	}
}
