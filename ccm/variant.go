package ccm

// Variant is an i.MX RT chip family. It decides which peripheral instances
// exist and the width of some divider fields.
type Variant uint8

const (
	// VariantUnknown resolves to DefaultVariant in New.
	VariantUnknown Variant = iota
	// Conservative allows only what every supported family provides.
	Conservative
	IMXRT1010
	IMXRT1060
)

func (v Variant) String() string {
	switch v {
	case Conservative:
		return "conservative"
	case IMXRT1010:
		return "imxrt1010"
	case IMXRT1060:
		return "imxrt1060"
	}
	return "unknown"
}

func (v Variant) resolve() Variant {
	if v == VariantUnknown || v > IMXRT1060 {
		return DefaultVariant
	}
	return v
}

type family uint8

const (
	famI2C family = iota
	famUART
	famSPI
	famGPT
	famADC
	famPWM
	numFamilies
)

// instanceLimits[v][f] is the highest populated instance number.
var instanceLimits = [...][numFamilies]uint8{
	VariantUnknown: {},
	Conservative:   {famI2C: 2, famUART: 4, famSPI: 2, famGPT: 2, famADC: 1, famPWM: 1},
	IMXRT1010:      {famI2C: 2, famUART: 4, famSPI: 2, famGPT: 2, famADC: 1, famPWM: 1},
	IMXRT1060:      {famI2C: 4, famUART: 8, famSPI: 4, famGPT: 2, famADC: 2, famPWM: 4},
}

func (v Variant) has(f family, n uint8) bool {
	if int(v) >= len(instanceLimits) || n == 0 {
		return false
	}
	return n <= instanceLimits[v][f]
}

// known reports whether v names a real family; singletons exist on all of them.
func (v Variant) known() bool { return v != VariantUnknown && v <= IMXRT1060 }
