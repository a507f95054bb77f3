package ccm

import "imxrt-ccm-go/regs"

// Register block addresses (i.MX RT 1010/1060 reference manuals, chapter CCM).
const (
	CCMBase    = 0x400F_C000
	CCMSize    = 0x4000
	AnalogBase = 0x400D_8000 // CCM_ANALOG
	AnalogSize = 0x1000

	regCACRR  = CCMBase + 0x10
	regCBCDR  = CCMBase + 0x14
	regCBCMR  = CCMBase + 0x18
	regCSCMR1 = CCMBase + 0x1C
	regCSCDR1 = CCMBase + 0x24
	regCSCDR2 = CCMBase + 0x38
	regCDHIPR = CCMBase + 0x48
	regCCGR0  = CCMBase + 0x68

	regPLLARM = AnalogBase + 0x00

	numCCGR = 8
)

// Crystal oscillator and fixed PLL frequencies.
const (
	OscillatorHz = 24_000_000
	PLL2Hz       = 528_000_000
)

// ARM / AHB / IPG fields.
var (
	fARMPODF        = regs.NewField(0, 3)  // CACRR
	fIPGPODF        = regs.NewField(8, 2)  // CBCDR
	fAHBPODF        = regs.NewField(10, 3) // CBCDR
	fPeriphClkSel   = regs.NewField(25, 1) // CBCDR
	fPeriphClk2PODF = regs.NewField(27, 3) // CBCDR
	fPeriphClk2Sel  = regs.NewField(12, 2) // CBCMR
	fPrePeriphSel   = regs.NewField(18, 2) // CBCMR

	fPLLDivSel    = regs.NewField(0, 7)
	fPLLPowerdown = regs.NewField(12, 1)
	fPLLEnable    = regs.NewField(13, 1)
)

const pllLock = 1 << 31

// Selection encodings written by the root controllers.
const (
	selPeriphClk2Osc = 1
	selPrePeriphPLL1 = 3
	selUARTOsc       = 1
	selI2COsc        = 1
	selSPIPLL2       = 2
)

// layout holds the per-variant register description of the clock roots.
type layout struct {
	perclk regs.Register
	uart   regs.Register
	i2c    regs.Register
	spi    regs.Register

	// perclkSel maps the raw PERCLK_CLK_SEL encoding to a Selection.
	// Encodings beyond the table are indeterminate.
	perclkSel []Selection
}

var baseLayout = layout{
	perclk: regs.Register{Addr: regCSCMR1, Divider: regs.NewField(0, 6), Select: regs.NewField(6, 1)},
	uart:   regs.Register{Addr: regCSCDR1, Divider: regs.NewField(0, 6), Select: regs.NewField(6, 2)},
	i2c:    regs.Register{Addr: regCSCDR2, Divider: regs.NewField(19, 6), Select: regs.NewField(18, 1)},
	spi:    regs.Register{Addr: regCBCMR, Divider: regs.NewField(26, 3), Select: regs.NewField(4, 2)},

	perclkSel: []Selection{SelectIPG, SelectOscillator},
}

func layoutFor(v Variant) layout {
	l := baseLayout
	if v == IMXRT1010 {
		l.spi.Divider = regs.NewField(26, 4)
	}
	return l
}

// maxDivider is the largest divider a divide-by-(field+1) field encodes.
func maxDivider(f regs.Field) uint32 { return f.Max() + 1 }

func regName(addr uint32) string {
	switch addr {
	case regCACRR:
		return "CACRR"
	case regCBCDR:
		return "CBCDR"
	case regCBCMR:
		return "CBCMR"
	case regCSCMR1:
		return "CSCMR1"
	case regCSCDR1:
		return "CSCDR1"
	case regCSCDR2:
		return "CSCDR2"
	case regPLLARM:
		return "PLL_ARM"
	}
	if addr >= regCCGR0 && addr < regCCGR0+4*numCCGR {
		return "CCGR" + string(rune('0'+(addr-regCCGR0)/4))
	}
	return "?"
}
