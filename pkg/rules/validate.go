package rules

import (
	"fmt"

	"github.com/policylint/policylint/internal/hexutil"
	"github.com/policylint/policylint/pkg/primitives"
)

// Policy is the read-only view of a security policy the validator
// consumes. The certificate-signature list is the only optional
// category: a nil slice skips it entirely, it is never a violation.
type Policy interface {
	// Version returns the policy's display name, or "" when
	// unavailable (rendered as "unnamed" in diagnostics).
	Version() string

	CipherSuitePreferences() []*primitives.CipherSuite
	SignaturePreferences() []*primitives.SignatureScheme
	CertificateSignaturePreferences() []*primitives.SignatureScheme
	CurvePreferences() []*primitives.NamedCurve

	// EnabledRules returns the policy's enabled-rules bit set.
	EnabledRules() RuleSet
}

// Category labels used in diagnostic lines.
const (
	categoryCipherSuite   = "cipher suite"
	categorySigScheme     = "signature scheme"
	categoryCertSigScheme = "certificate signature scheme"
	categoryCurve         = "curve"
)

// ValidateRule checks every entry of every category of p against one
// rule. Violations never short-circuit: all entries are evaluated and
// every violation flows into res. Only structural problems (a missing
// mandatory list, an entry that cannot be evaluated) return an error,
// aborting the remaining scan for this call.
func ValidateRule(rule *Rule, p Policy, res *Result) error {
	if rule == nil || p == nil || res == nil {
		return fmt.Errorf("%w: nil argument", ErrMalformedPrimitive)
	}

	policyName := p.Version()
	if policyName == "" {
		policyName = "unnamed"
	}

	suites := p.CipherSuitePreferences()
	if len(suites) == 0 {
		return fmt.Errorf("%w: cipher suites", ErrIncompletePolicy)
	}
	for i, cs := range suites {
		if cs == nil {
			return fmt.Errorf("%w: cipher suite #%d is nil", ErrMalformedPrimitive, i+1)
		}
		ok, err := rule.CheckCipherSuite(cs)
		if err != nil {
			return err
		}
		res.record(ok, rule.Name, policyName, categoryCipherSuite, cs.Name, i+1)
	}

	schemes := p.SignaturePreferences()
	if len(schemes) == 0 {
		return fmt.Errorf("%w: signature schemes", ErrIncompletePolicy)
	}
	for i, s := range schemes {
		if s == nil {
			return fmt.Errorf("%w: signature scheme #%d is nil", ErrMalformedPrimitive, i+1)
		}
		ok, err := rule.CheckSignatureScheme(s)
		if err != nil {
			return err
		}
		res.record(ok, rule.Name, policyName, categorySigScheme, hexutil.Uint16(s.ID), i+1)
	}

	for i, s := range p.CertificateSignaturePreferences() {
		if s == nil {
			return fmt.Errorf("%w: certificate signature scheme #%d is nil", ErrMalformedPrimitive, i+1)
		}
		ok, err := rule.CheckCertSignatureScheme(s)
		if err != nil {
			return err
		}
		res.record(ok, rule.Name, policyName, categoryCertSigScheme, hexutil.Uint16(s.ID), i+1)
	}

	curves := p.CurvePreferences()
	if len(curves) == 0 {
		return fmt.Errorf("%w: curves", ErrIncompletePolicy)
	}
	for i, c := range curves {
		if c == nil {
			return fmt.Errorf("%w: curve #%d is nil", ErrMalformedPrimitive, i+1)
		}
		ok, err := rule.CheckCurve(c)
		if err != nil {
			return err
		}
		res.record(ok, rule.Name, policyName, categoryCurve, c.Name, i+1)
	}

	return nil
}

// ValidateAll runs every rule enabled by p's rule set, in ascending
// identifier order, aggregating all violations into res. The first
// structural error from any rule aborts the whole pass; violations
// alone never do. On a nil error return, res.FoundError reports
// compliance.
func ValidateAll(p Policy, res *Result) error {
	if p == nil || res == nil {
		return fmt.Errorf("%w: nil argument", ErrMalformedPrimitive)
	}
	selected, err := ActiveRules(p.EnabledRules())
	if err != nil {
		return err
	}
	for _, rule := range selected {
		if err := ValidateRule(rule, p, res); err != nil {
			return err
		}
	}
	return nil
}
