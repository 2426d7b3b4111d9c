// Package policy defines the security policy value consumed by the
// rules engine, the built-in named policies, and YAML policy file
// loading. A Policy is built once and read-only afterwards; the
// engine never mutates it.
package policy

import (
	"github.com/policylint/policylint/pkg/primitives"
	"github.com/policylint/policylint/pkg/rules"
)

// Policy is a named bundle of allowed cryptographic preferences plus
// the set of security rules it claims to satisfy. CipherSuites,
// SignatureSchemes and Curves are mandatory and ordered;
// CertSignatureSchemes is optional — nil means the category is not
// constrained and validation skips it.
type Policy struct {
	Name                 string
	CipherSuites         []*primitives.CipherSuite
	SignatureSchemes     []*primitives.SignatureScheme
	CertSignatureSchemes []*primitives.SignatureScheme
	Curves               []*primitives.NamedCurve
	Rules                rules.RuleSet
}

// Version implements rules.Policy.
func (p *Policy) Version() string { return p.Name }

// CipherSuitePreferences implements rules.Policy.
func (p *Policy) CipherSuitePreferences() []*primitives.CipherSuite { return p.CipherSuites }

// SignaturePreferences implements rules.Policy.
func (p *Policy) SignaturePreferences() []*primitives.SignatureScheme { return p.SignatureSchemes }

// CertificateSignaturePreferences implements rules.Policy.
func (p *Policy) CertificateSignaturePreferences() []*primitives.SignatureScheme {
	return p.CertSignatureSchemes
}

// CurvePreferences implements rules.Policy.
func (p *Policy) CurvePreferences() []*primitives.NamedCurve { return p.Curves }

// EnabledRules implements rules.Policy.
func (p *Policy) EnabledRules() rules.RuleSet { return p.Rules }

// AllowsSuite reports whether the policy's cipher suite list contains
// the given IANA wire identifier.
func (p *Policy) AllowsSuite(id uint16) bool {
	for _, cs := range p.CipherSuites {
		if cs != nil && cs.ID == id {
			return true
		}
	}
	return false
}

var _ rules.Policy = (*Policy)(nil)
