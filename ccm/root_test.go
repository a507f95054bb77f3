package ccm

import (
	"errors"
	"testing"

	"imxrt-ccm-go/errcode"
)

type dividerRoot interface {
	ConfigureDivider(div uint32) (uint32, error)
	Frequency() uint32
	MaxDivider() uint32
}

func TestRootDividers(t *testing.T) {
	for _, v := range variants {
		c, _ := newTestCCM(v)
		roots := []struct {
			name string
			r    dividerRoot
			base uint32
			max  uint32
		}{
			{"uart", c.UART(), OscillatorHz, 64},
			{"i2c", c.I2C(), OscillatorHz, 64},
			{"spi", c.SPI(), PLL2Hz, 8},
		}
		if v == IMXRT1010 {
			roots[2].max = 16
		}
		for _, rt := range roots {
			if got := rt.r.MaxDivider(); got != rt.max {
				t.Fatalf("%s/%s: MaxDivider = %d, want %d", v, rt.name, got, rt.max)
			}
			for div := uint32(1); div <= rt.max; div++ {
				hz, err := rt.r.ConfigureDivider(div)
				if err != nil {
					t.Fatalf("%s/%s: ConfigureDivider(%d): %v", v, rt.name, div, err)
				}
				if want := rt.base / div; hz != want || rt.r.Frequency() != want {
					t.Fatalf("%s/%s div %d: got %d / %d, want %d", v, rt.name, div, hz, rt.r.Frequency(), want)
				}
			}
		}
	}
}

func TestRootRejectsOutOfRange(t *testing.T) {
	c, mem := newTestCCM(IMXRT1060)
	if _, err := c.UART().ConfigureDivider(64); err != nil {
		t.Fatalf("UART 64: %v", err)
	}
	before := mem.Writes()
	for _, div := range []uint32{0, 65, 1000} {
		_, err := c.UART().ConfigureDivider(div)
		if !errors.Is(err, errcode.InvalidDivider) {
			t.Fatalf("UART %d: got %v, want invalid_divider", div, err)
		}
	}
	if mem.Writes() != before {
		t.Fatal("rejected divider wrote registers")
	}
	if got := c.UART().Frequency(); got != OscillatorHz/64 {
		t.Fatalf("frequency changed to %d", got)
	}
	if _, err := c.SPI().ConfigureDivider(9); errcode.Of(err) != errcode.InvalidDivider {
		t.Fatalf("SPI 9 on 1060: %v", err)
	}
}

func TestRootDefaults(t *testing.T) {
	c, _ := newTestCCM(IMXRT1060)
	for _, tc := range []struct {
		name string
		cfg  func() (uint32, error)
		want uint32
	}{
		{"i2c", c.I2C().Configure, 8_000_000},
		{"spi", c.SPI().Configure, 105_600_000},
		{"uart", c.UART().Configure, 24_000_000},
		{"perclock", c.PerClock().Configure, 1_000_000},
	} {
		got, err := tc.cfg()
		if err != nil || got != tc.want {
			t.Fatalf("%s: got %d (%v), want %d", tc.name, got, err, tc.want)
		}
	}
}

func TestRootWritesSelection(t *testing.T) {
	c, mem := newTestCCM(IMXRT1060)
	mem.Poke(regCSCDR1, 0xFFFF_FFFF)
	if _, err := c.UART().ConfigureDivider(2); err != nil {
		t.Fatal(err)
	}
	// PODF [5:0] = 1, SEL [7:6] = 1, everything else untouched.
	if got, want := mem.Read32(regCSCDR1), uint32(0xFFFF_FF41); got != want {
		t.Fatalf("CSCDR1 = %#x, want %#x", got, want)
	}
	if _, err := c.SPI().ConfigureDivider(5); err != nil {
		t.Fatal(err)
	}
	if got := mem.Read32(regCBCMR); got != 4<<26|2<<4 {
		t.Fatalf("CBCMR = %#x", got)
	}
}

func TestConfigureTurnsGatesOff(t *testing.T) {
	c, _ := newTestCCM(IMXRT1060)
	for _, u := range AllUART {
		if err := c.UART().SetClockGate(u, On); err != nil {
			t.Fatal(err)
		}
	}
	// I2C gates are left alone by the UART root.
	if err := c.I2C().SetClockGate(I2C1, On); err != nil {
		t.Fatal(err)
	}
	if _, err := c.UART().Configure(); err != nil {
		t.Fatal(err)
	}
	for _, u := range AllUART {
		if g, _ := c.UART().ClockGate(u); g != Off {
			t.Fatalf("%s: gate %s after Configure", u, g)
		}
	}
	if g, _ := c.I2C().ClockGate(I2C1); g != On {
		t.Fatalf("I2C1 gate %s", g)
	}
}

func TestConfigureSkipsAbsentInstances(t *testing.T) {
	c, mem := newTestCCM(IMXRT1010)
	// UART5 location on the 1010 belongs to no present peripheral; leave it.
	l := UART5.Location()
	mem.Poke(l.Addr(), 0b11<<(2*1))
	if _, err := c.UART().Configure(); err != nil {
		t.Fatal(err)
	}
	if mem.Read32(l.Addr())&(0b11<<2) == 0 {
		t.Fatal("absent UART5 gate was written")
	}
}

func TestConfigureFrequency(t *testing.T) {
	c, _ := newTestCCM(IMXRT1060)
	for _, tc := range []struct {
		want, got uint32
	}{
		{8_000_000, 8_000_000},
		{7_000_000, 6_000_000},
		{100_000_000, 24_000_000},
		{375_000, 375_000},
	} {
		got, err := c.I2C().ConfigureFrequency(tc.want)
		if err != nil || got != tc.got {
			t.Fatalf("I2C %d: got %d (%v), want %d", tc.want, got, err, tc.got)
		}
	}
	if _, err := c.I2C().ConfigureFrequency(374_999); !errors.Is(err, errcode.InvalidDivider) {
		t.Fatalf("below range: %v", err)
	}
	if _, err := c.UART().ConfigureFrequency(0); !errors.Is(err, errcode.InvalidDivider) {
		t.Fatalf("zero: %v", err)
	}
	if got, err := c.SPI().ConfigureFrequency(100_000_000); err != nil || got != 88_000_000 {
		t.Fatalf("SPI: got %d (%v)", got, err)
	}
}

func TestPerClockOscillator(t *testing.T) {
	c, _ := newTestCCM(IMXRT1060)
	p := c.PerClock()
	hz, err := p.ConfigureSelectionDivider(SelectOscillator, 24)
	if err != nil || hz != 1_000_000 {
		t.Fatalf("got %d (%v), want 1 MHz", hz, err)
	}
	if sel, ok := p.Selection(); !ok || sel != SelectOscillator {
		t.Fatalf("selection %s %v", sel, ok)
	}
	if hz, ok := p.TryFrequency(); !ok || hz != 1_000_000 {
		t.Fatalf("TryFrequency = %d %v", hz, ok)
	}
}

func TestPerClockIPG(t *testing.T) {
	c, mem := newTestCCM(IMXRT1060)
	mem.Poke(regPLLARM, 75)                 // 900 MHz
	mem.Poke(regCBCDR, fIPGPODF.Put(0, 3)) // IPG = 900 / 4
	p := c.PerClock()
	hz, err := p.ConfigureSelectionDivider(SelectIPG, 9)
	if err != nil || hz != 25_000_000 {
		t.Fatalf("got %d (%v), want 25 MHz", hz, err)
	}

	fPeriphClkSel.Modify(mem, regCBCDR, 1)
	if hz, ok := p.TryFrequency(); ok || hz != 0 {
		t.Fatalf("parked AHB: TryFrequency = %d %v", hz, ok)
	}
	if p.Frequency() != 0 {
		t.Fatal("Frequency should report 0 when indeterminate")
	}
	if sel, ok := p.Selection(); !ok || sel != SelectIPG {
		t.Fatalf("selection %s %v", sel, ok)
	}
}

func TestPerClockErrors(t *testing.T) {
	c, mem := newTestCCM(IMXRT1060)
	p := c.PerClock()
	if _, err := p.ConfigureSelectionDivider(Selection(7), 1); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("bad selection: %v", err)
	}
	if _, err := p.ConfigureSelectionDivider(SelectOscillator, 65); errcode.Of(err) != errcode.InvalidDivider {
		t.Fatalf("divider 65: %v", err)
	}
	if mem.Writes() != 0 {
		t.Fatal("rejected configuration wrote registers")
	}
}

func TestPerClockConfigureGatesOff(t *testing.T) {
	c, _ := newTestCCM(IMXRT1060)
	p := c.PerClock()
	_ = p.SetClockGateGPT(GPT2, On)
	_ = p.SetClockGatePIT(PIT{}, On)
	if _, err := p.ConfigureFrequency(SelectOscillator, 2_000_000); err != nil {
		t.Fatal(err)
	}
	if g, _ := p.ClockGateGPT(GPT2); g != Off {
		t.Fatalf("GPT2 %s", g)
	}
	if g, _ := p.ClockGatePIT(PIT{}); g != Off {
		t.Fatalf("PIT %s", g)
	}
	if got := p.Frequency(); got != 2_000_000 {
		t.Fatalf("frequency %d", got)
	}
}
