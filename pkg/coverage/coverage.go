// Package coverage tracks unmatched cases for boolean and enumeration
// match subjects.
package coverage

import "semcore/pkg/ast"

// AllSentinel is the case identifier used for any subject that is
// neither boolean nor an enumeration; it is never marked covered by
// any single non-wildcard pattern, a deliberate design limitation
// (§9's open question (i)) rather than an omission.
const AllSentinel ast.Identifier = "all"

// MatchCoverage is the small state from §4.3: a set of case-name
// identifiers remaining to cover.
type MatchCoverage struct {
	remaining map[ast.Identifier]struct{}
}

// NewBoolean seeds coverage for a boolean subject.
func NewBoolean() *MatchCoverage {
	return newCoverage("true", "false")
}

// NewEnumeration seeds coverage with one identifier per enum variant
// constructor, in declaration order.
func NewEnumeration(variantNames []ast.Identifier) *MatchCoverage {
	return newCoverage(variantNames...)
}

// NewOther seeds coverage with the AllSentinel, the case for any
// subject that is neither boolean nor an enumeration.
func NewOther() *MatchCoverage {
	return newCoverage(AllSentinel)
}

func newCoverage(names ...ast.Identifier) *MatchCoverage {
	m := &MatchCoverage{remaining: make(map[ast.Identifier]struct{}, len(names))}
	for _, n := range names {
		m.remaining[n] = struct{}{}
	}
	return m
}

// IsCaseCovered reports n ∉ remaining.
func (c *MatchCoverage) IsCaseCovered(n ast.Identifier) bool {
	_, remains := c.remaining[n]
	return !remains
}

// MarkCaseAsCovered erases n from the remaining set. Marking
// AllSentinel is a caller error the pattern layer must never commit
// (see §9's open question (i)); MatchCoverage itself does not guard
// against it, leaving the "never actually marked" behavior to callers
// simply never calling this with AllSentinel.
func (c *MatchCoverage) MarkCaseAsCovered(n ast.Identifier) {
	delete(c.remaining, n)
}

// AreAllCasesCovered reports emptiness of the remaining set.
func (c *MatchCoverage) AreAllCasesCovered() bool {
	return len(c.remaining) == 0
}
