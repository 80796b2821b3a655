package phoneme

import (
	"errors"
	"testing"
)

func plus(name string) Feature  { return Feature{Name: name, Sign: Plus} }
func minus(name string) Feature { return Feature{Name: name, Sign: Minus} }

func mustApply(t *testing.T, table *Table, u Update) []*Phoneme {
	t.Helper()
	applied, err := table.Apply(u)
	if err != nil {
		t.Fatalf("apply %v: %v", u.Targets, err)
	}
	return applied
}

func TestApplyCreatesPhonemes(t *testing.T) {
	table := NewTable()
	applied := mustApply(t, table, Update{
		Targets:  []string{"i", "y"},
		Features: []Feature{plus("high"), minus("back"), plus("syll")},
	})
	if len(applied) != 2 {
		t.Fatalf("expected 2 phonemes, got %d", len(applied))
	}
	want := FeatureSet{"high": Plus, "back": Minus, "syll": Plus}
	for _, sym := range []string{"i", "y"} {
		p, ok := table.Lookup(sym)
		if !ok {
			t.Fatalf("missing phoneme %s", sym)
		}
		if !p.Features.Equal(want) {
			t.Fatalf("phoneme %s: expected %s, got %s", sym, want, p.Features)
		}
	}
	if got := applied[0].String(); got != "i = [-back +high +syll]" {
		t.Fatalf("unexpected confirmation: %s", got)
	}
}

func TestApplySameValueIsNoOp(t *testing.T) {
	table := NewTable()
	mustApply(t, table, Update{Targets: []string{"t"}, Features: []Feature{plus("coronal")}})
	mustApply(t, table, Update{Targets: []string{"t"}, Features: []Feature{plus("coronal")}})
	p, _ := table.Lookup("t")
	if len(p.Features) != 1 {
		t.Fatalf("expected one feature after re-assertion, got %s", p.Features)
	}
}

func TestApplyConflictRejectsStatement(t *testing.T) {
	table := NewTable()
	mustApply(t, table, Update{Targets: []string{"t"}, Features: []Feature{minus("voice")}})
	_, err := table.Apply(Update{Targets: []string{"t"}, Features: []Feature{plus("voice")}})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if conflict.Symbol != "t" || conflict.Feature != "voice" || conflict.Have != Minus || conflict.Want != Plus {
		t.Fatalf("conflict lacks context: %+v", conflict)
	}
	p, _ := table.Lookup("t")
	if p.Features["voice"] != Minus {
		t.Fatalf("conflict must not overwrite: %s", p.Features)
	}
}

func TestApplyConflictWithinStatement(t *testing.T) {
	table := NewTable()
	_, err := table.Apply(Update{
		Targets:  []string{"x"},
		Features: []Feature{plus("voice"), minus("voice")},
	})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if conflict.Symbol != "" {
		t.Fatalf("statement-internal conflict should not name a phoneme: %+v", conflict)
	}
	if table.Len() != 0 {
		t.Fatalf("rejected statement must not create entries, table has %v", table.Symbols())
	}
}

func TestApplyBaseSnapshot(t *testing.T) {
	table := NewTable()
	mustApply(t, table, Update{
		Targets:  []string{"t"},
		Features: []Feature{plus("coronal"), minus("sonorant"), minus("voice")},
	})
	mustApply(t, table, Update{
		Targets:  []string{"d"},
		Bases:    []string{"t"},
		Features: []Feature{plus("voice")},
	})
	d, _ := table.Lookup("d")
	want := FeatureSet{"coronal": Plus, "sonorant": Minus, "voice": Plus}
	if !d.Features.Equal(want) {
		t.Fatalf("expected d %s, got %s", want, d.Features)
	}
	tee, _ := table.Lookup("t")
	if tee.Features["voice"] != Minus {
		t.Fatalf("deriving d must not touch t: %s", tee.Features)
	}
	mustApply(t, table, Update{Targets: []string{"d"}, Features: []Feature{plus("strident")}})
	if _, ok := tee.Features["strident"]; ok {
		t.Fatalf("later edits to d leaked into t: %s", tee.Features)
	}
}

func TestApplyLaterBaseWins(t *testing.T) {
	table := NewTable()
	mustApply(t, table, Update{Targets: []string{"a"}, Features: []Feature{plus("low")}})
	mustApply(t, table, Update{Targets: []string{"b"}, Features: []Feature{minus("low")}})
	mustApply(t, table, Update{Targets: []string{"c"}, Bases: []string{"a", "b"}})
	c, _ := table.Lookup("c")
	if c.Features["low"] != Minus {
		t.Fatalf("later base should win: %s", c.Features)
	}
	mustApply(t, table, Update{Targets: []string{"e"}, Bases: []string{"b", "a"}})
	e, _ := table.Lookup("e")
	if e.Features["low"] != Plus {
		t.Fatalf("later base should win: %s", e.Features)
	}
}

func TestApplyUnknownBase(t *testing.T) {
	table := NewTable()
	_, err := table.Apply(Update{Targets: []string{"d"}, Bases: []string{"t"}})
	var unknown *UnknownPhonemeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected unknown phoneme, got %v", err)
	}
	if unknown.Symbol != "t" {
		t.Fatalf("expected /t/ in error, got %+v", unknown)
	}
	if table.Len() != 0 {
		t.Fatalf("failed reference must not create entries, table has %v", table.Symbols())
	}
}

func TestApplyUnknownBaseSuggests(t *testing.T) {
	table := NewTable()
	mustApply(t, table, Update{Targets: []string{"thorn"}, Features: []Feature{plus("dental")}})
	_, err := table.Apply(Update{Targets: []string{"x"}, Bases: []string{"torn"}})
	var unknown *UnknownPhonemeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected unknown phoneme, got %v", err)
	}
	if len(unknown.Suggestions) == 0 || unknown.Suggestions[0] != "thorn" {
		t.Fatalf("expected thorn suggested, got %+v", unknown.Suggestions)
	}
}

func TestApplyAtomicAcrossTargets(t *testing.T) {
	table := NewTable()
	mustApply(t, table, Update{Targets: []string{"a"}, Features: []Feature{minus("voice")}})
	_, err := table.Apply(Update{Targets: []string{"b", "a"}, Features: []Feature{plus("voice")}})
	if err == nil {
		t.Fatalf("expected conflict on a")
	}
	if _, ok := table.Lookup("b"); ok {
		t.Fatalf("failed statement must not create b")
	}
	a, _ := table.Lookup("a")
	if a.Features["voice"] != Minus {
		t.Fatalf("failed statement must not touch a: %s", a.Features)
	}
}

func TestApplyDuplicateTargets(t *testing.T) {
	table := NewTable()
	applied := mustApply(t, table, Update{
		Targets:  []string{"a", "a"},
		Features: []Feature{plus("syll")},
	})
	if len(applied) != 1 {
		t.Fatalf("expected duplicate targets to collapse, got %d results", len(applied))
	}
}

func TestApplySelfReference(t *testing.T) {
	table := NewTable()
	mustApply(t, table, Update{Targets: []string{"t"}, Features: []Feature{plus("coronal")}})
	mustApply(t, table, Update{
		Targets:  []string{"t"},
		Bases:    []string{"t"},
		Features: []Feature{minus("voice")},
	})
	p, _ := table.Lookup("t")
	want := FeatureSet{"coronal": Plus, "voice": Minus}
	if !p.Features.Equal(want) {
		t.Fatalf("expected %s, got %s", want, p.Features)
	}
}

func TestApplyEmptyUpdates(t *testing.T) {
	table := NewTable()
	if _, err := table.Apply(Update{Features: []Feature{plus("high")}}); err == nil {
		t.Fatalf("expected error for update without targets")
	}
	if _, err := table.Apply(Update{Targets: []string{"a"}}); err == nil {
		t.Fatalf("expected error for update without features")
	}
	if table.Len() != 0 {
		t.Fatalf("rejected updates must not create entries")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	table := NewTable()
	mustApply(t, table, Update{Targets: []string{"t"}, Features: []Feature{plus("coronal")}})
	snap, err := table.Snapshot("t")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	mustApply(t, table, Update{Targets: []string{"t"}, Features: []Feature{minus("voice")}})
	if _, ok := snap["voice"]; ok {
		t.Fatalf("snapshot should not see later writes: %s", snap)
	}
}
