package policy

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/policylint/policylint/pkg/primitives"
	"github.com/policylint/policylint/pkg/rules"
)

// policyFile is the YAML schema for a policy file. Primitives are
// named by their IANA display name or given as a hex wire identifier
// ("0x1301"); rules are named by display name.
type policyFile struct {
	Name                 string   `yaml:"name"`
	Rules                []string `yaml:"rules"`
	CipherSuites         []string `yaml:"cipher_suites"`
	SignatureSchemes     []string `yaml:"signature_schemes"`
	CertSignatureSchemes []string `yaml:"certificate_signature_schemes"`
	Curves               []string `yaml:"curves"`
}

// Load reads and resolves a YAML policy file.
// Returns ErrPolicyNotFound if the file doesn't exist and
// ErrInvalidPolicy if it cannot be parsed or resolved.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPolicyNotFound, path)
		}
		return nil, fmt.Errorf("reading policy file: %w", err)
	}
	return Parse(data)
}

// Parse resolves YAML policy bytes against the primitive catalogs and
// the rule registry.
func Parse(data []byte) (*Policy, error) {
	var f policyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	p := &Policy{Name: f.Name}

	if len(f.CipherSuites) == 0 {
		return nil, fmt.Errorf("%w: cipher_suites is required", ErrInvalidPolicy)
	}
	for _, name := range f.CipherSuites {
		cs, err := resolveSuite(name)
		if err != nil {
			return nil, err
		}
		p.CipherSuites = append(p.CipherSuites, cs)
	}

	if len(f.SignatureSchemes) == 0 {
		return nil, fmt.Errorf("%w: signature_schemes is required", ErrInvalidPolicy)
	}
	for _, name := range f.SignatureSchemes {
		s, err := resolveScheme(name)
		if err != nil {
			return nil, err
		}
		p.SignatureSchemes = append(p.SignatureSchemes, s)
	}

	for _, name := range f.CertSignatureSchemes {
		s, err := resolveScheme(name)
		if err != nil {
			return nil, err
		}
		p.CertSignatureSchemes = append(p.CertSignatureSchemes, s)
	}

	if len(f.Curves) == 0 {
		return nil, fmt.Errorf("%w: curves is required", ErrInvalidPolicy)
	}
	for _, name := range f.Curves {
		c, err := resolveCurve(name)
		if err != nil {
			return nil, err
		}
		p.Curves = append(p.Curves, c)
	}

	for _, name := range f.Rules {
		id, ok := rules.ByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown rule %q", ErrInvalidPolicy, name)
		}
		p.Rules = p.Rules.With(id)
	}

	return p, nil
}

func resolveSuite(name string) (*primitives.CipherSuite, error) {
	if cs, ok := primitives.SuiteByName(name); ok {
		return cs, nil
	}
	if id, ok := parseHexID(name); ok {
		if cs, found := primitives.SuiteByID(id); found {
			return cs, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown cipher suite %q", ErrInvalidPolicy, name)
}

func resolveScheme(name string) (*primitives.SignatureScheme, error) {
	if s, ok := primitives.SchemeByName(name); ok {
		return s, nil
	}
	if id, ok := parseHexID(name); ok {
		if s, found := primitives.SchemeByID(id); found {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown signature scheme %q", ErrInvalidPolicy, name)
}

func resolveCurve(name string) (*primitives.NamedCurve, error) {
	if c, ok := primitives.CurveByName(name); ok {
		return c, nil
	}
	if id, ok := parseHexID(name); ok {
		if c, found := primitives.CurveByID(id); found {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown curve %q", ErrInvalidPolicy, name)
}

// parseHexID accepts "0x"-prefixed 16-bit identifiers.
func parseHexID(s string) (uint16, bool) {
	rest, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(rest, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
