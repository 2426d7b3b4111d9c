package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policylint/policylint/pkg/rules"
)

const validPolicyYAML = `
name: edge-tls
rules:
  - Perfect Forward Secrecy
  - No Legacy Algorithms
cipher_suites:
  - TLS_AES_128_GCM_SHA256
  - "0xc02f"
signature_schemes:
  - rsa_pss_rsae_sha256
  - "0x0807"
certificate_signature_schemes:
  - ecdsa_secp256r1_sha256
curves:
  - x25519
  - secp256r1
`

func TestParseValidPolicy(t *testing.T) {
	p, err := Parse([]byte(validPolicyYAML))
	require.NoError(t, err)

	assert.Equal(t, "edge-tls", p.Name)
	require.Len(t, p.CipherSuites, 2)
	assert.Equal(t, "TLS_AES_128_GCM_SHA256", p.CipherSuites[0].Name)
	assert.Equal(t, "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256", p.CipherSuites[1].Name, "hex IDs resolve against the catalog")
	require.Len(t, p.SignatureSchemes, 2)
	assert.Equal(t, "ed25519", p.SignatureSchemes[1].Name)
	require.Len(t, p.CertSignatureSchemes, 1)
	require.Len(t, p.Curves, 2)
	assert.True(t, p.Rules.Contains(rules.PerfectForwardSecrecy))
	assert.True(t, p.Rules.Contains(rules.NoLegacyAlgorithms))
	assert.Equal(t, 2, p.Rules.Len())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "malformed yaml",
			yaml: "cipher_suites: [unterminated",
		},
		{
			name: "unknown cipher suite",
			yaml: `
cipher_suites: [TLS_NOT_REAL]
signature_schemes: [ed25519]
curves: [x25519]
`,
		},
		{
			name: "unknown signature scheme",
			yaml: `
cipher_suites: [TLS_AES_128_GCM_SHA256]
signature_schemes: [md5_forever]
curves: [x25519]
`,
		},
		{
			name: "unknown curve",
			yaml: `
cipher_suites: [TLS_AES_128_GCM_SHA256]
signature_schemes: [ed25519]
curves: [secp111r1]
`,
		},
		{
			name: "unknown rule",
			yaml: `
rules: [Quantum Resistance]
cipher_suites: [TLS_AES_128_GCM_SHA256]
signature_schemes: [ed25519]
curves: [x25519]
`,
		},
		{
			name: "missing cipher suites",
			yaml: `
signature_schemes: [ed25519]
curves: [x25519]
`,
		},
		{
			name: "missing signature schemes",
			yaml: `
cipher_suites: [TLS_AES_128_GCM_SHA256]
curves: [x25519]
`,
		},
		{
			name: "missing curves",
			yaml: `
cipher_suites: [TLS_AES_128_GCM_SHA256]
signature_schemes: [ed25519]
`,
		},
		{
			name: "hex ID outside catalog",
			yaml: `
cipher_suites: ["0xfefe"]
signature_schemes: [ed25519]
curves: [x25519]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidPolicy)
		})
	}
}

func TestParseCertSchemesOptional(t *testing.T) {
	p, err := Parse([]byte(`
cipher_suites: [TLS_AES_128_GCM_SHA256]
signature_schemes: [ed25519]
curves: [x25519]
`))
	require.NoError(t, err)
	assert.Nil(t, p.CertSignatureSchemes)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validPolicyYAML), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "edge-tls", p.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestLoadedPolicyValidates(t *testing.T) {
	p, err := Parse([]byte(validPolicyYAML))
	require.NoError(t, err)

	var res rules.Result
	defer res.Release()
	res.InitCapture()

	require.NoError(t, rules.ValidateAll(p, &res))
	assert.False(t, res.FoundError(), "violations:\n%s", res.Output())
}
