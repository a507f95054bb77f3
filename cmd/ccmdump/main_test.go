//go:build linux

package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeImage(t *testing.T, name string, size int, words map[int]uint32) string {
	t.Helper()
	img := make([]byte, size)
	for off, v := range words {
		binary.LittleEndian.PutUint32(img[off:], v)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, img, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDumpFromImages(t *testing.T) {
	ccmImg := writeImage(t, "ccm.bin", 0x4000, map[int]uint32{
		0x10: 1,                 // CACRR: ARM_PODF = 2
		0x14: 3 << 8,            // CBCDR: IPG_PODF = 4
		0x1C: 1<<6 | 23,         // CSCMR1: oscillator / 24
		0x24: 1 << 6,            // CSCDR1: UART / 1
		0x68: 0b11 << 28,        // CCGR0: UART2 on
		0x6C: 0b0101 << 20,      // CCGR1: GPT1 only-run
		0x70: 0b10 << 6,         // CCGR2: I2C1 reserved
		0x18: 4<<26 | 2<<4,      // CBCMR: SPI PLL2 / 5
		0x38: 2<<19 | 1<<18,     // CSCDR2: I2C / 3
		0x7C: 0b11<<6 | 0b11<<2, // CCGR5: DMA on, unrelated bits
	})
	analogImg := writeImage(t, "analog.bin", 0x1000, map[int]uint32{
		0x00: 1<<31 | 1<<13 | 100, // PLL_ARM locked, 1.2 GHz
	})

	var out bytes.Buffer
	if err := run(&out, ccmImg, 0, analogImg, 0, nil); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{
		"variant  conservative\n",
		"arm      600MHz\n",
		"ipg      150MHz\n",
		"perclk   1MHz (oscillator)\n",
		"uart     24MHz\n",
		"i2c      8MHz\n",
		"spi      105.6MHz\n",
		"gate UART2  on\n",
		"gate GPT1   only_run\n",
		"gate DMA    on\n",
		"gate I2C1   ClockGate: reserved_gate: I2C1\n",
		"gate UART1  off\n",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "UART5") {
		t.Fatalf("conservative dump lists UART5:\n%s", s)
	}
}

func TestScript(t *testing.T) {
	ccmImg := writeImage(t, "ccm.bin", 0x4000, nil)
	analogImg := writeImage(t, "analog.bin", 0x1000, map[int]uint32{
		0x00: 1<<31 | 1<<13 | 75, // PLL_ARM locked, 900 MHz
	})
	var out bytes.Buffer
	script := []string{
		"uart 2",
		"i2c 24",
		"perclk osc 24",
		"arm 2",
		"ipg 3",
		"gate UART3 on",
		`gate "GPT2" run`,
		"",
	}
	if err := run(&out, ccmImg, 0, analogImg, 0, script); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{
		"arm      450MHz\n",
		"ipg      150MHz\n",
		"uart     12MHz\n",
		"i2c      1MHz\n",
		"perclk   1MHz (oscillator)\n",
		"gate UART3  on\n",
		"gate GPT2   only_run\n",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("output missing %q:\n%s", want, s)
		}
	}

	raw, err := os.ReadFile(ccmImg)
	if err != nil {
		t.Fatal(err)
	}
	// UART root divider 2, oscillator selected.
	if got := binary.LittleEndian.Uint32(raw[0x24:]); got != 1<<6|1 {
		t.Fatalf("CSCDR1 in image = %#x", got)
	}
}

func TestScriptErrors(t *testing.T) {
	ccmImg := writeImage(t, "ccm.bin", 0x4000, nil)
	analogImg := writeImage(t, "analog.bin", 0x1000, nil)
	for _, line := range []string{
		"uart 65",
		"gate UART5 on",
		"gate FOO on",
		"gate UART1 maybe",
		"perclk pll 1",
		"spi",
		"bogus",
		`uart "2`,
	} {
		var out bytes.Buffer
		if err := run(&out, ccmImg, 0, analogImg, 0, []string{line}); err == nil {
			t.Fatalf("%q: expected an error", line)
		}
	}
}
