package ccm

// I2C identifies an LPI2C instance.
type I2C uint8

const (
	I2C1 I2C = iota + 1
	I2C2
	I2C3
	I2C4
)

// UART identifies an LPUART instance.
type UART uint8

const (
	UART1 UART = iota + 1
	UART2
	UART3
	UART4
	UART5
	UART6
	UART7
	UART8
)

// SPI identifies an LPSPI instance.
type SPI uint8

const (
	SPI1 SPI = iota + 1
	SPI2
	SPI3
	SPI4
)

// GPT identifies a general purpose timer.
type GPT uint8

const (
	GPT1 GPT = iota + 1
	GPT2
)

// ADC identifies an ADC instance.
type ADC uint8

const (
	ADC1 ADC = iota + 1
	ADC2
)

// PWM identifies a FlexPWM instance.
type PWM uint8

const (
	PWM1 PWM = iota + 1
	PWM2
	PWM3
	PWM4
)

// PIT is the periodic interrupt timer.
type PIT struct{}

// DMA is the eDMA controller.
type DMA struct{}

// DCDC is the DCDC buck converter.
type DCDC struct{}

// All instances of each family, in numeric order.
var (
	AllI2C  = []I2C{I2C1, I2C2, I2C3, I2C4}
	AllUART = []UART{UART1, UART2, UART3, UART4, UART5, UART6, UART7, UART8}
	AllSPI  = []SPI{SPI1, SPI2, SPI3, SPI4}
	AllGPT  = []GPT{GPT1, GPT2}
	AllADC  = []ADC{ADC1, ADC2}
	AllPWM  = []PWM{PWM1, PWM2, PWM3, PWM4}
)

// Gate tables, indexed by instance number - 1.
var (
	i2cGates  = [...]Location{loc(2, 3), loc(2, 4), loc(2, 5), loc(6, 12)}
	uartGates = [...]Location{
		loc(5, 12), loc(0, 14), loc(0, 6), loc(1, 12),
		loc(3, 1), loc(3, 3), loc(5, 13), loc(6, 7),
	}
	spiGates = [...]Location{loc(1, 0), loc(1, 1), loc(1, 2), loc(1, 3)}
	gptGates = [...]Location{loc(1, 10, 11), loc(0, 12, 13)}
	adcGates = [...]Location{loc(1, 8), loc(1, 4)}
	pwmGates = [...]Location{loc(4, 8), loc(4, 9), loc(4, 10), loc(4, 11)}

	pitGate  = loc(1, 6)
	dmaGate  = loc(5, 3)
	dcdcGate = loc(6, 3)
)

func lookup(table []Location, n uint8) Location {
	if n == 0 || int(n) > len(table) {
		return Location{}
	}
	return table[n-1]
}

func name(prefix string, n uint8) string {
	if n == 0 || n > 9 {
		return prefix + "?"
	}
	return prefix + string(rune('0'+n))
}

func (i I2C) Location() Location { return lookup(i2cGates[:], uint8(i)) }
func (i I2C) Valid(v Variant) bool { return v.has(famI2C, uint8(i)) }
func (i I2C) String() string { return name("I2C", uint8(i)) }
func (i I2C) Instance() I2C { return i }
func (u UART) Location() Location { return lookup(uartGates[:], uint8(u)) }
func (u UART) Valid(v Variant) bool { return v.has(famUART, uint8(u)) }
func (u UART) String() string { return name("UART", uint8(u)) }
func (u UART) Instance() UART { return u }
func (s SPI) Location() Location { return lookup(spiGates[:], uint8(s)) }
func (s SPI) Valid(v Variant) bool { return v.has(famSPI, uint8(s)) }
func (s SPI) String() string { return name("SPI", uint8(s)) }
func (s SPI) Instance() SPI { return s }
func (g GPT) Location() Location { return lookup(gptGates[:], uint8(g)) }
func (g GPT) Valid(v Variant) bool { return v.has(famGPT, uint8(g)) }
func (g GPT) String() string { return name("GPT", uint8(g)) }
func (g GPT) Instance() GPT { return g }
func (a ADC) Location() Location { return lookup(adcGates[:], uint8(a)) }
func (a ADC) Valid(v Variant) bool { return v.has(famADC, uint8(a)) }
func (a ADC) String() string { return name("ADC", uint8(a)) }
func (a ADC) Instance() ADC { return a }
func (p PWM) Location() Location { return lookup(pwmGates[:], uint8(p)) }
func (p PWM) Valid(v Variant) bool { return v.has(famPWM, uint8(p)) }
func (p PWM) String() string { return name("PWM", uint8(p)) }
func (p PWM) Instance() PWM { return p }
func (PIT) Location() Location { return pitGate }
func (PIT) Valid(v Variant) bool { return v.known() }
func (PIT) String() string { return "PIT" }
func (p PIT) Instance() PIT { return p }
func (DMA) Location() Location { return dmaGate }
func (DMA) Valid(v Variant) bool { return v.known() }
func (DMA) String() string { return "DMA" }
func (d DMA) Instance() DMA { return d }
func (DCDC) Location() Location { return dcdcGate }
func (DCDC) Valid(v Variant) bool { return v.known() }
func (DCDC) String() string { return "DCDC" }
func (d DCDC) Instance() DCDC { return d }
