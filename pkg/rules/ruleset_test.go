package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSetRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ids  []RuleID
	}{
		{name: "empty", ids: nil},
		{name: "single", ids: []RuleID{PerfectForwardSecrecy}},
		{name: "sparse", ids: []RuleID{NoLegacyAlgorithms, ModernSignatures}},
		{name: "all", ids: []RuleID{PerfectForwardSecrecy, NoLegacyAlgorithms, AuthenticatedEncryption, ModernSignatures}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewRuleSet(tt.ids...)
			decoded, err := set.IDs()
			require.NoError(t, err)
			assert.Len(t, decoded, len(tt.ids))
			assert.Equal(t, len(tt.ids), set.Len())
			for _, id := range tt.ids {
				assert.True(t, set.Contains(id))
			}
		})
	}
}

func TestRuleSetDecodeAscending(t *testing.T) {
	// Bits 1 and 3 set, in declaration-independent order.
	set := NewRuleSet(ModernSignatures, NoLegacyAlgorithms)

	ids, err := set.IDs()
	require.NoError(t, err)
	assert.Equal(t, []RuleID{NoLegacyAlgorithms, ModernSignatures}, ids)
	assert.Equal(t, 2, set.Len())
}

func TestRuleSetRejectsUndefinedBit(t *testing.T) {
	set := RuleSet(1 << Count)

	_, err := set.IDs()
	assert.ErrorIs(t, err, ErrUnknownRule)

	_, err = ActiveRules(set)
	assert.ErrorIs(t, err, ErrUnknownRule)
}

func TestRuleSetWith(t *testing.T) {
	var set RuleSet
	set = set.With(PerfectForwardSecrecy).With(AuthenticatedEncryption)

	assert.True(t, set.Contains(PerfectForwardSecrecy))
	assert.True(t, set.Contains(AuthenticatedEncryption))
	assert.False(t, set.Contains(NoLegacyAlgorithms))
}

func TestActiveRulesEmptySet(t *testing.T) {
	selected, err := ActiveRules(0)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestActiveRulesOrder(t *testing.T) {
	selected, err := ActiveRules(NewRuleSet(ModernSignatures, PerfectForwardSecrecy))
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "Perfect Forward Secrecy", selected[0].Name)
	assert.Equal(t, "Modern Signatures", selected[1].Name)
}

func TestRegistryEntriesComplete(t *testing.T) {
	for id := RuleID(0); id < Count; id++ {
		rule, err := Get(id)
		require.NoError(t, err)
		assert.NotEmpty(t, rule.Name)
		assert.NotNil(t, rule.CheckCipherSuite, "%s: cipher suite predicate", rule.Name)
		assert.NotNil(t, rule.CheckSignatureScheme, "%s: signature scheme predicate", rule.Name)
		assert.NotNil(t, rule.CheckCertSignatureScheme, "%s: cert signature scheme predicate", rule.Name)
		assert.NotNil(t, rule.CheckCurve, "%s: curve predicate", rule.Name)
	}
}

func TestGetOutOfRange(t *testing.T) {
	_, err := Get(Count)
	assert.ErrorIs(t, err, ErrUnknownRule)
	_, err = Get(-1)
	assert.ErrorIs(t, err, ErrUnknownRule)
}

func TestByName(t *testing.T) {
	id, ok := ByName("Perfect Forward Secrecy")
	require.True(t, ok)
	assert.Equal(t, PerfectForwardSecrecy, id)

	_, ok = ByName("No Such Rule")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names()
	require.Len(t, names, int(Count))
	assert.Equal(t, "Perfect Forward Secrecy", names[PerfectForwardSecrecy])
}
