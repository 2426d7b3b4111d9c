package primitives

// Key exchange descriptors shared by the cipher suite catalog.
var (
	KexRSA   = &KeyExchange{Name: "RSA"}
	KexDHE   = &KeyExchange{Name: "DHE", Ephemeral: true}
	KexECDHE = &KeyExchange{Name: "ECDHE", Ephemeral: true}

	// KexTLS13 covers TLS 1.3 suites, which always negotiate an
	// ephemeral (EC)DHE exchange regardless of the suite identifier.
	KexTLS13 = &KeyExchange{Name: "TLS1.3-ECDHE", Ephemeral: true}
)

// Named suite entries referenced by built-in policies and tests.
var (
	SuiteAES128GCMSHA256       = &CipherSuite{Name: "TLS_AES_128_GCM_SHA256", ID: 0x1301, KeyExchange: KexTLS13, AEAD: true}
	SuiteAES256GCMSHA384       = &CipherSuite{Name: "TLS_AES_256_GCM_SHA384", ID: 0x1302, KeyExchange: KexTLS13, AEAD: true}
	SuiteChaCha20Poly1305      = &CipherSuite{Name: "TLS_CHACHA20_POLY1305_SHA256", ID: 0x1303, KeyExchange: KexTLS13, AEAD: true}
	SuiteECDHEECDSAAES128GCM   = &CipherSuite{Name: "TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256", ID: 0xc02b, KeyExchange: KexECDHE, AEAD: true}
	SuiteECDHEECDSAAES256GCM   = &CipherSuite{Name: "TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384", ID: 0xc02c, KeyExchange: KexECDHE, AEAD: true}
	SuiteECDHERSAAES128GCM     = &CipherSuite{Name: "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256", ID: 0xc02f, KeyExchange: KexECDHE, AEAD: true}
	SuiteECDHERSAAES256GCM     = &CipherSuite{Name: "TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384", ID: 0xc030, KeyExchange: KexECDHE, AEAD: true}
	SuiteECDHERSAChaCha20      = &CipherSuite{Name: "TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256", ID: 0xcca8, KeyExchange: KexECDHE, AEAD: true}
	SuiteECDHEECDSAChaCha20    = &CipherSuite{Name: "TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256", ID: 0xcca9, KeyExchange: KexECDHE, AEAD: true}
	SuiteDHERSAAES128GCM       = &CipherSuite{Name: "TLS_DHE_RSA_WITH_AES_128_GCM_SHA256", ID: 0x009e, KeyExchange: KexDHE, AEAD: true}
	SuiteDHERSAAES256GCM       = &CipherSuite{Name: "TLS_DHE_RSA_WITH_AES_256_GCM_SHA384", ID: 0x009f, KeyExchange: KexDHE, AEAD: true}
	SuiteRSAAES128GCM          = &CipherSuite{Name: "TLS_RSA_WITH_AES_128_GCM_SHA256", ID: 0x009c, KeyExchange: KexRSA, AEAD: true}
	SuiteRSAAES256GCM          = &CipherSuite{Name: "TLS_RSA_WITH_AES_256_GCM_SHA384", ID: 0x009d, KeyExchange: KexRSA, AEAD: true}
	SuiteECDHERSAAES128CBCSHA  = &CipherSuite{Name: "TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA", ID: 0xc013, KeyExchange: KexECDHE, Legacy: true}
	SuiteECDHERSAAES256CBCSHA  = &CipherSuite{Name: "TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA", ID: 0xc014, KeyExchange: KexECDHE, Legacy: true}
	SuiteRSAAES128CBCSHA       = &CipherSuite{Name: "TLS_RSA_WITH_AES_128_CBC_SHA", ID: 0x002f, KeyExchange: KexRSA, Legacy: true}
	SuiteRSAAES256CBCSHA       = &CipherSuite{Name: "TLS_RSA_WITH_AES_256_CBC_SHA", ID: 0x0035, KeyExchange: KexRSA, Legacy: true}
	SuiteRSA3DESEDECBCSHA      = &CipherSuite{Name: "TLS_RSA_WITH_3DES_EDE_CBC_SHA", ID: 0x000a, KeyExchange: KexRSA, Legacy: true}
	SuiteRSARC4128SHA          = &CipherSuite{Name: "TLS_RSA_WITH_RC4_128_SHA", ID: 0x0005, KeyExchange: KexRSA, Legacy: true}
)

// CipherSuites is the full ordered catalog, strongest preference first.
var CipherSuites = []*CipherSuite{
	SuiteAES128GCMSHA256,
	SuiteAES256GCMSHA384,
	SuiteChaCha20Poly1305,
	SuiteECDHEECDSAAES128GCM,
	SuiteECDHEECDSAAES256GCM,
	SuiteECDHERSAAES128GCM,
	SuiteECDHERSAAES256GCM,
	SuiteECDHERSAChaCha20,
	SuiteECDHEECDSAChaCha20,
	SuiteDHERSAAES128GCM,
	SuiteDHERSAAES256GCM,
	SuiteRSAAES128GCM,
	SuiteRSAAES256GCM,
	SuiteECDHERSAAES128CBCSHA,
	SuiteECDHERSAAES256CBCSHA,
	SuiteRSAAES128CBCSHA,
	SuiteRSAAES256CBCSHA,
	SuiteRSA3DESEDECBCSHA,
	SuiteRSARC4128SHA,
}

var (
	suitesByName = make(map[string]*CipherSuite, len(CipherSuites))
	suitesByID   = make(map[uint16]*CipherSuite, len(CipherSuites))
)

func init() {
	for _, s := range CipherSuites {
		suitesByName[s.Name] = s
		suitesByID[s.ID] = s
	}
}

// SuiteByName looks up a cipher suite by its IANA display name.
func SuiteByName(name string) (*CipherSuite, bool) {
	s, ok := suitesByName[name]
	return s, ok
}

// SuiteByID looks up a cipher suite by its IANA wire identifier.
func SuiteByID(id uint16) (*CipherSuite, bool) {
	s, ok := suitesByID[id]
	return s, ok
}
