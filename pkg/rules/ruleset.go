package rules

import (
	"fmt"
	"math/bits"
)

// RuleSet is a fixed-width bit set of enabled rule identifiers. Bit N
// corresponds to RuleID N; only the low Count bits are meaningful.
// The zero value is the empty set.
type RuleSet uint64

// NewRuleSet returns the set containing the given identifiers.
func NewRuleSet(ids ...RuleID) RuleSet {
	var s RuleSet
	for _, id := range ids {
		s |= 1 << id
	}
	return s
}

// Contains reports whether id is in the set.
func (s RuleSet) Contains(id RuleID) bool {
	return s&(1<<id) != 0
}

// With returns s with id added.
func (s RuleSet) With(id RuleID) RuleSet {
	return s | 1<<id
}

// Len returns the number of identifiers in the set, counting bits
// outside the defined rule range.
func (s RuleSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IDs decodes the set into ascending identifier order. It fails with
// ErrUnknownRule if any set bit falls outside the registry's defined
// range, so IDs(NewRuleSet(ids...)) round-trips for any valid subset
// and rejects everything else.
func (s RuleSet) IDs() ([]RuleID, error) {
	ids := make([]RuleID, 0, s.Len())
	flags := uint64(s)
	for id := RuleID(0); flags != 0; id++ {
		set := flags&1 != 0
		flags >>= 1
		if !set {
			continue
		}
		if id >= Count {
			return nil, fmt.Errorf("%w: bit %d set", ErrUnknownRule, id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ActiveRules decodes the set into its registry entries, preserving
// ascending identifier order. An empty set yields an empty slice, not
// an error. A set bit outside the registry range, or a decoded count
// exceeding the registry size, indicates a corrupt or
// forward-incompatible policy and fails the whole call.
func ActiveRules(s RuleSet) ([]*Rule, error) {
	ids, err := s.IDs()
	if err != nil {
		return nil, err
	}
	if len(ids) > int(Count) {
		return nil, fmt.Errorf("%w: %d active, %d defined", ErrTooManyRules, len(ids), Count)
	}
	selected := make([]*Rule, len(ids))
	for i, id := range ids {
		selected[i] = &registry[id]
	}
	return selected, nil
}
