// Package primitives defines the cryptographic primitive catalogs that
// security policies reference: cipher suites, signature schemes, and
// named curves. Catalog entries are immutable after process start;
// policies hold pointers into the catalogs and never copy or mutate
// them.
package primitives

// KeyExchange describes a cipher suite's key exchange algorithm.
type KeyExchange struct {
	// Name is the algorithm's display name (e.g. "ECDHE").
	Name string

	// Ephemeral reports whether the key exchange uses session-unique
	// keys, i.e. whether suites using it provide forward secrecy.
	Ephemeral bool
}

// CipherSuite is a single TLS cipher suite catalog entry.
type CipherSuite struct {
	// Name is the IANA display name (e.g. "TLS_AES_128_GCM_SHA256").
	Name string

	// ID is the IANA wire identifier.
	ID uint16

	// KeyExchange describes the suite's key exchange. TLS 1.3 suites
	// always negotiate an ephemeral (EC)DHE exchange.
	KeyExchange *KeyExchange

	// AEAD reports whether the suite uses an authenticated-encryption
	// cipher mode (GCM, ChaCha20-Poly1305).
	AEAD bool

	// Legacy marks suites from the RC4/3DES/CBC-SHA1 era that remain
	// in the catalog only for compatibility policies.
	Legacy bool
}

// SignatureScheme is a TLS signature scheme catalog entry
// (the signature_algorithms registry).
type SignatureScheme struct {
	// Name is the IANA display name (e.g. "rsa_pss_rsae_sha256").
	Name string

	// ID is the IANA wire identifier, rendered in hex in diagnostics.
	ID uint16

	// PKCS1 marks RSASSA-PKCS1-v1_5 schemes, which TLS 1.3 forbids
	// for CertificateVerify.
	PKCS1 bool

	// Legacy marks SHA-1 based schemes.
	Legacy bool
}

// NamedCurve is a TLS named group catalog entry.
type NamedCurve struct {
	// Name is the IANA display name (e.g. "x25519").
	Name string

	// ID is the IANA named-group identifier.
	ID uint16

	// Legacy marks groups below modern strength (secp192/224 class).
	Legacy bool
}
