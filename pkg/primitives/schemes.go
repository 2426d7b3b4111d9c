package primitives

// Named signature scheme entries referenced by built-in policies and tests.
var (
	SchemeRSAPKCS1SHA256 = &SignatureScheme{Name: "rsa_pkcs1_sha256", ID: 0x0401, PKCS1: true}
	SchemeRSAPKCS1SHA384 = &SignatureScheme{Name: "rsa_pkcs1_sha384", ID: 0x0501, PKCS1: true}
	SchemeRSAPKCS1SHA512 = &SignatureScheme{Name: "rsa_pkcs1_sha512", ID: 0x0601, PKCS1: true}
	SchemeECDSASHA256    = &SignatureScheme{Name: "ecdsa_secp256r1_sha256", ID: 0x0403}
	SchemeECDSASHA384    = &SignatureScheme{Name: "ecdsa_secp384r1_sha384", ID: 0x0503}
	SchemeECDSASHA512    = &SignatureScheme{Name: "ecdsa_secp521r1_sha512", ID: 0x0603}
	SchemeRSAPSSSHA256   = &SignatureScheme{Name: "rsa_pss_rsae_sha256", ID: 0x0804}
	SchemeRSAPSSSHA384   = &SignatureScheme{Name: "rsa_pss_rsae_sha384", ID: 0x0805}
	SchemeRSAPSSSHA512   = &SignatureScheme{Name: "rsa_pss_rsae_sha512", ID: 0x0806}
	SchemeEd25519        = &SignatureScheme{Name: "ed25519", ID: 0x0807}
	SchemeRSAPKCS1SHA1   = &SignatureScheme{Name: "rsa_pkcs1_sha1", ID: 0x0201, PKCS1: true, Legacy: true}
	SchemeECDSASHA1      = &SignatureScheme{Name: "ecdsa_sha1", ID: 0x0203, Legacy: true}
)

// SignatureSchemes is the full ordered catalog.
var SignatureSchemes = []*SignatureScheme{
	SchemeRSAPSSSHA256,
	SchemeRSAPSSSHA384,
	SchemeRSAPSSSHA512,
	SchemeEd25519,
	SchemeECDSASHA256,
	SchemeECDSASHA384,
	SchemeECDSASHA512,
	SchemeRSAPKCS1SHA256,
	SchemeRSAPKCS1SHA384,
	SchemeRSAPKCS1SHA512,
	SchemeRSAPKCS1SHA1,
	SchemeECDSASHA1,
}

var (
	schemesByName = make(map[string]*SignatureScheme, len(SignatureSchemes))
	schemesByID   = make(map[uint16]*SignatureScheme, len(SignatureSchemes))
)

func init() {
	for _, s := range SignatureSchemes {
		schemesByName[s.Name] = s
		schemesByID[s.ID] = s
	}
}

// SchemeByName looks up a signature scheme by its IANA display name.
func SchemeByName(name string) (*SignatureScheme, bool) {
	s, ok := schemesByName[name]
	return s, ok
}

// SchemeByID looks up a signature scheme by its IANA wire identifier.
func SchemeByID(id uint16) (*SignatureScheme, bool) {
	s, ok := schemesByID[id]
	return s, ok
}
