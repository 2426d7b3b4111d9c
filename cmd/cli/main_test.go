package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policylint/policylint/pkg/rules"
)

func TestParseRuleNames(t *testing.T) {
	set, err := parseRuleNames("Perfect Forward Secrecy, No Legacy Algorithms")
	require.NoError(t, err)
	assert.True(t, set.Contains(rules.PerfectForwardSecrecy))
	assert.True(t, set.Contains(rules.NoLegacyAlgorithms))
	assert.Equal(t, 2, set.Len())

	_, err = parseRuleNames("Quantum Resistance")
	assert.Error(t, err)
}

func TestRunListRules(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-list-rules"}, &stdout, &stderr)
	assert.Equal(t, exitCompliant, code)
	assert.Contains(t, stdout.String(), "Perfect Forward Secrecy")
}

func TestRunListPolicies(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-list-policies"}, &stdout, &stderr)
	assert.Equal(t, exitCompliant, code)
	assert.Contains(t, stdout.String(), "strict")
}

func TestRunBuiltinCompliant(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-policy", "strict", "-no-color"}, &stdout, &stderr)
	assert.Equal(t, exitCompliant, code)
	assert.Contains(t, stdout.String(), "compliant with all enabled rules")
}

func TestRunViolations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weak.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: weak
rules: [Perfect Forward Secrecy]
cipher_suites:
  - TLS_DHE_RSA_WITH_AES_128_GCM_SHA256
  - TLS_RSA_WITH_AES_128_GCM_SHA256
signature_schemes: [ed25519]
curves: [x25519]
`), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-policy", path, "-no-color"}, &stdout, &stderr)
	assert.Equal(t, exitViolations, code)
	assert.Contains(t, stdout.String(),
		"Perfect Forward Secrecy: policy weak: cipher suite: TLS_RSA_WITH_AES_128_GCM_SHA256 (#2)")
}

func TestRunJSONFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-policy", "default", "-format", "json"}, &stdout, &stderr)
	assert.Equal(t, exitCompliant, code)
	assert.True(t, strings.Contains(stdout.String(), `"compliant"`))
}

func TestRunUnknownPolicy(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-policy", "no-such-policy"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "not found")
}

func TestRunUnknownFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-policy", "default", "-format", "xml"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
}

func TestRunRuleOverride(t *testing.T) {
	// compat enables no rules; forcing PFS on it exposes its RSA
	// key-exchange suites.
	var stdout, stderr bytes.Buffer
	code := run([]string{"-policy", "compat", "-rules", "Perfect Forward Secrecy", "-no-color"}, &stdout, &stderr)
	assert.Equal(t, exitViolations, code)
	assert.Contains(t, stdout.String(), "Perfect Forward Secrecy: policy compat: cipher suite:")
}

func TestRunNoCapture(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-policy", "compat", "-rules", "Perfect Forward Secrecy", "-no-capture", "-no-color"}, &stdout, &stderr)
	assert.Equal(t, exitViolations, code)
	assert.Contains(t, stdout.String(), "run with capture for details")
	assert.NotContains(t, stdout.String(), "cipher suite:")
}
