package policy

import (
	"fmt"
	"sort"

	"github.com/policylint/policylint/pkg/primitives"
	"github.com/policylint/policylint/pkg/rules"
)

// Built-in policies, keyed by name. "strict" enables every rule and
// admits only TLS 1.3 and ECDHE AEAD suites; "default" is a modern
// baseline with forward secrecy; "compat" trades rules away for reach
// into legacy clients.
var builtins = map[string]*Policy{
	"default": {
		Name: "default",
		CipherSuites: []*primitives.CipherSuite{
			primitives.SuiteAES128GCMSHA256,
			primitives.SuiteAES256GCMSHA384,
			primitives.SuiteChaCha20Poly1305,
			primitives.SuiteECDHEECDSAAES128GCM,
			primitives.SuiteECDHEECDSAAES256GCM,
			primitives.SuiteECDHERSAAES128GCM,
			primitives.SuiteECDHERSAAES256GCM,
			primitives.SuiteDHERSAAES128GCM,
			primitives.SuiteDHERSAAES256GCM,
		},
		SignatureSchemes: []*primitives.SignatureScheme{
			primitives.SchemeRSAPSSSHA256,
			primitives.SchemeRSAPSSSHA384,
			primitives.SchemeEd25519,
			primitives.SchemeECDSASHA256,
			primitives.SchemeECDSASHA384,
			primitives.SchemeRSAPKCS1SHA256,
		},
		Curves: []*primitives.NamedCurve{
			primitives.CurveX25519,
			primitives.CurveSecp256r1,
			primitives.CurveSecp384r1,
		},
		Rules: rules.NewRuleSet(rules.PerfectForwardSecrecy, rules.NoLegacyAlgorithms),
	},
	"strict": {
		Name: "strict",
		CipherSuites: []*primitives.CipherSuite{
			primitives.SuiteAES128GCMSHA256,
			primitives.SuiteAES256GCMSHA384,
			primitives.SuiteChaCha20Poly1305,
			primitives.SuiteECDHEECDSAAES128GCM,
			primitives.SuiteECDHEECDSAAES256GCM,
		},
		SignatureSchemes: []*primitives.SignatureScheme{
			primitives.SchemeRSAPSSSHA256,
			primitives.SchemeEd25519,
			primitives.SchemeECDSASHA256,
			primitives.SchemeECDSASHA384,
		},
		CertSignatureSchemes: []*primitives.SignatureScheme{
			primitives.SchemeRSAPSSSHA256,
			primitives.SchemeECDSASHA256,
			primitives.SchemeEd25519,
		},
		Curves: []*primitives.NamedCurve{
			primitives.CurveX25519,
			primitives.CurveSecp256r1,
			primitives.CurveSecp384r1,
		},
		Rules: rules.NewRuleSet(
			rules.PerfectForwardSecrecy,
			rules.NoLegacyAlgorithms,
			rules.AuthenticatedEncryption,
			rules.ModernSignatures,
		),
	},
	"compat": {
		Name: "compat",
		CipherSuites: []*primitives.CipherSuite{
			primitives.SuiteAES128GCMSHA256,
			primitives.SuiteAES256GCMSHA384,
			primitives.SuiteECDHERSAAES128GCM,
			primitives.SuiteECDHERSAAES256GCM,
			primitives.SuiteECDHERSAAES128CBCSHA,
			primitives.SuiteECDHERSAAES256CBCSHA,
			primitives.SuiteRSAAES128GCM,
			primitives.SuiteRSAAES128CBCSHA,
			primitives.SuiteRSA3DESEDECBCSHA,
		},
		SignatureSchemes: []*primitives.SignatureScheme{
			primitives.SchemeRSAPSSSHA256,
			primitives.SchemeRSAPKCS1SHA256,
			primitives.SchemeECDSASHA256,
			primitives.SchemeRSAPKCS1SHA1,
		},
		Curves: []*primitives.NamedCurve{
			primitives.CurveX25519,
			primitives.CurveSecp256r1,
			primitives.CurveSecp384r1,
			primitives.CurveSecp224r1,
		},
	},
}

// Lookup returns the built-in policy with the given name.
func Lookup(name string) (*Policy, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: built-in policy %q", ErrPolicyNotFound, name)
	}
	return p, nil
}

// Names returns the built-in policy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
