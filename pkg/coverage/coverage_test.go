package coverage

import (
	"testing"

	"semcore/pkg/ast"
)

func TestBooleanExhaustiveness(t *testing.T) {
	c := NewBoolean()
	if c.IsCaseCovered("true") {
		t.Fatalf("true should start uncovered")
	}
	c.MarkCaseAsCovered("true")
	if c.AreAllCasesCovered() {
		t.Fatalf("coverage should have one case remaining after marking true")
	}
	c.MarkCaseAsCovered("false")
	if !c.AreAllCasesCovered() {
		t.Fatalf("coverage should be complete after marking both boolean cases")
	}
}

func TestEnumerationCoverage(t *testing.T) {
	c := NewEnumeration([]ast.Identifier{"Red", "Green", "Blue"})
	if c.AreAllCasesCovered() {
		t.Fatalf("coverage should start with all variants remaining")
	}
	c.MarkCaseAsCovered("Red")
	c.MarkCaseAsCovered("Green")
	if c.AreAllCasesCovered() {
		t.Fatalf("one remaining variant means not all cases covered")
	}
	c.MarkCaseAsCovered("Blue")
	if !c.AreAllCasesCovered() {
		t.Fatalf("all variants marked should report complete coverage")
	}
}

func TestAllSentinelNeverDepletedByMarkingOtherNames(t *testing.T) {
	c := NewOther()
	if c.AreAllCasesCovered() {
		t.Fatalf("non-boolean, non-enum subjects must never start covered")
	}
	// Simulate a long run of unrelated guard-free cases: none of them
	// names the "all" sentinel, so coverage never empties.
	for _, name := range []ast.Identifier{"1", "2", "3"} {
		c.MarkCaseAsCovered(name)
	}
	if c.AreAllCasesCovered() {
		t.Fatalf("marking unrelated case names must not complete coverage")
	}
}
