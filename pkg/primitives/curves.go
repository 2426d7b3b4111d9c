package primitives

// Named curve entries referenced by built-in policies and tests.
var (
	CurveSecp256r1 = &NamedCurve{Name: "secp256r1", ID: 23}
	CurveSecp384r1 = &NamedCurve{Name: "secp384r1", ID: 24}
	CurveSecp521r1 = &NamedCurve{Name: "secp521r1", ID: 25}
	CurveX25519    = &NamedCurve{Name: "x25519", ID: 29}
	CurveX448      = &NamedCurve{Name: "x448", ID: 30}
	CurveSecp192r1 = &NamedCurve{Name: "secp192r1", ID: 19, Legacy: true}
	CurveSecp224r1 = &NamedCurve{Name: "secp224r1", ID: 21, Legacy: true}
)

// NamedCurves is the full ordered catalog.
var NamedCurves = []*NamedCurve{
	CurveX25519,
	CurveSecp256r1,
	CurveSecp384r1,
	CurveSecp521r1,
	CurveX448,
	CurveSecp192r1,
	CurveSecp224r1,
}

var (
	curvesByName = make(map[string]*NamedCurve, len(NamedCurves))
	curvesByID   = make(map[uint16]*NamedCurve, len(NamedCurves))
)

func init() {
	for _, c := range NamedCurves {
		curvesByName[c.Name] = c
		curvesByID[c.ID] = c
	}
}

// CurveByName looks up a named curve by its IANA display name.
func CurveByName(name string) (*NamedCurve, bool) {
	c, ok := curvesByName[name]
	return c, ok
}

// CurveByID looks up a named curve by its IANA group identifier.
func CurveByID(id uint16) (*NamedCurve, bool) {
	c, ok := curvesByID[id]
	return c, ok
}
