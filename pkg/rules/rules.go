// Package rules implements the security-rule validation engine: a
// fixed registry of named compliance rules, a compact set encoding of
// a policy's enabled rules, and a validator that classifies every
// entry of a policy's preference lists against every active rule.
//
// The engine never mutates policies and performs no cryptographic
// work; it only classifies configuration values as compliant or not.
// All registry state is immutable after process start and safe for
// concurrent reads.
package rules

import (
	"fmt"

	"github.com/policylint/policylint/pkg/primitives"
)

// RuleID identifies a built-in security rule.
type RuleID int

const (
	// PerfectForwardSecrecy requires every cipher suite's key
	// exchange to be ephemeral.
	PerfectForwardSecrecy RuleID = iota

	// NoLegacyAlgorithms rejects catalog entries flagged legacy in
	// any category (RC4/3DES/CBC-SHA1 suites, SHA-1 signatures,
	// sub-256-bit curves).
	NoLegacyAlgorithms

	// AuthenticatedEncryption requires AEAD cipher modes.
	AuthenticatedEncryption

	// ModernSignatures rejects RSASSA-PKCS1-v1_5 signature schemes,
	// matching the TLS 1.3 CertificateVerify restrictions.
	ModernSignatures

	// Count is the number of defined rules and bounds the meaningful
	// low-order bits of a RuleSet.
	Count
)

// Rule is a named compliance rule: one predicate per primitive
// category. Rules that do not constrain a category carry an
// always-valid predicate in that slot so the validator can invoke all
// four uniformly; no slot is ever nil.
//
// Predicates are pure: they never mutate their argument. A predicate
// returns an error only when the primitive itself is malformed; a
// non-compliant value is (false, nil).
type Rule struct {
	Name string

	CheckCipherSuite         func(*primitives.CipherSuite) (bool, error)
	CheckSignatureScheme     func(*primitives.SignatureScheme) (bool, error)
	CheckCertSignatureScheme func(*primitives.SignatureScheme) (bool, error)
	CheckCurve               func(*primitives.NamedCurve) (bool, error)
}

func forwardSecret(cs *primitives.CipherSuite) (bool, error) {
	if cs.KeyExchange == nil {
		return false, fmt.Errorf("%w: cipher suite %s has no key exchange", ErrMalformedPrimitive, cs.Name)
	}
	return cs.KeyExchange.Ephemeral, nil
}

func nonLegacySuite(cs *primitives.CipherSuite) (bool, error) {
	return !cs.Legacy, nil
}

func aeadSuite(cs *primitives.CipherSuite) (bool, error) {
	return cs.AEAD, nil
}

func nonLegacyScheme(s *primitives.SignatureScheme) (bool, error) {
	return !s.Legacy, nil
}

func nonPKCS1Scheme(s *primitives.SignatureScheme) (bool, error) {
	return !s.PKCS1, nil
}

func nonLegacyCurve(c *primitives.NamedCurve) (bool, error) {
	return !c.Legacy, nil
}

func anySuite(*primitives.CipherSuite) (bool, error)      { return true, nil }
func anyScheme(*primitives.SignatureScheme) (bool, error) { return true, nil }
func anyCurve(*primitives.NamedCurve) (bool, error)       { return true, nil }

// registry maps RuleID to its definition. Adding a rule means adding a
// RuleID above and one entry here, filling unused slots with the
// always-valid predicates.
var registry = [Count]Rule{
	PerfectForwardSecrecy: {
		Name:                     "Perfect Forward Secrecy",
		CheckCipherSuite:         forwardSecret,
		CheckSignatureScheme:     anyScheme,
		CheckCertSignatureScheme: anyScheme,
		CheckCurve:               anyCurve,
	},
	NoLegacyAlgorithms: {
		Name:                     "No Legacy Algorithms",
		CheckCipherSuite:         nonLegacySuite,
		CheckSignatureScheme:     nonLegacyScheme,
		CheckCertSignatureScheme: nonLegacyScheme,
		CheckCurve:               nonLegacyCurve,
	},
	AuthenticatedEncryption: {
		Name:                     "Authenticated Encryption",
		CheckCipherSuite:         aeadSuite,
		CheckSignatureScheme:     anyScheme,
		CheckCertSignatureScheme: anyScheme,
		CheckCurve:               anyCurve,
	},
	ModernSignatures: {
		Name:                     "Modern Signatures",
		CheckCipherSuite:         anySuite,
		CheckSignatureScheme:     nonPKCS1Scheme,
		CheckCertSignatureScheme: nonPKCS1Scheme,
		CheckCurve:               anyCurve,
	},
}

// Get returns the registry entry for id.
func Get(id RuleID) (*Rule, error) {
	if id < 0 || id >= Count {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRule, id)
	}
	return &registry[id], nil
}

// ByName resolves a rule's display name to its identifier.
func ByName(name string) (RuleID, bool) {
	for id := RuleID(0); id < Count; id++ {
		if registry[id].Name == name {
			return id, true
		}
	}
	return 0, false
}

// Names returns the display names of all defined rules in identifier
// order.
func Names() []string {
	names := make([]string, Count)
	for id := RuleID(0); id < Count; id++ {
		names[id] = registry[id].Name
	}
	return names
}
