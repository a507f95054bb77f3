//go:build linux

// Command ccmdump prints the clock tree and clock gates of an i.MX RT CCM,
// optionally after applying configuration commands.
//
// By default it maps the live registers through /dev/mem. With -img it works
// on register images instead: the CCM block (0x4000 bytes) and CCM_ANALOG
// (0x1000 bytes), each starting at file offset 0.
//
//	ccmdump [-img ccm.bin analog.bin] ['command args' ...]
//
// Commands:
//
//	uart|i2c|spi <div>      set a root divider
//	perclk osc|ipg <div>    set the periodic clock source and divider
//	arm <div>               set ARM_PODF
//	ipg <div>               set IPG_PODF
//	armhz <hz>              retune the ARM PLL and dividers
//	gate <NAME> off|run|on  set a clock gate, e.g. "gate UART1 on"
package main

import (
	"fmt"
	"io"
	"os"

	"imxrt-ccm-go/ccm"
	"imxrt-ccm-go/ral"
	"imxrt-ccm-go/regs"
	"imxrt-ccm-go/x/conv"
)

func main() {
	args := os.Args[1:]
	ccmPath, analogPath := regs.DevMem, regs.DevMem
	var fileCCM, fileAnalog uint32 = ccm.CCMBase, ccm.AnalogBase
	if len(args) > 0 && args[0] == "-img" {
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: ccmdump [-img ccm.bin analog.bin] ['command args' ...]")
			os.Exit(2)
		}
		ccmPath, analogPath, fileCCM, fileAnalog = args[1], args[2], 0, 0
		args = args[3:]
	}
	if err := run(os.Stdout, ccmPath, fileCCM, analogPath, fileAnalog, args); err != nil {
		fmt.Fprintln(os.Stderr, "ccmdump:", err)
		os.Exit(1)
	}
}

// run maps the two register blocks, applies script and dumps the result.
// fileCCM and fileAnalog are the offsets of each block inside its file.
func run(w io.Writer, ccmPath string, fileCCM uint32, analogPath string, fileAnalog uint32, script []string) error {
	cw, err := regs.OpenWindow(ccmPath, fileCCM, ccm.CCMSize)
	if err != nil {
		return err
	}
	defer cw.Close()
	aw, err := regs.OpenWindow(analogPath, fileAnalog, ccm.AnalogSize)
	if err != nil {
		return err
	}
	defer aw.Close()

	c := ral.From(
		regs.Offset{Bus: cw, Delta: ccm.CCMBase - fileCCM},
		regs.Offset{Bus: aw, Delta: ccm.AnalogBase - fileAnalog},
		ccm.Config{},
	)
	for _, line := range script {
		if err := apply(c, line); err != nil {
			return fmt.Errorf("%q: %w", line, err)
		}
	}
	dump(w, c)
	return nil
}

func dump(w io.Writer, c *ccm.CCM) {
	arm, ipg := c.ARM().Frequency()
	fmt.Fprintf(w, "variant  %s\n", c.Variant())
	fmt.Fprintf(w, "arm      %s\n", conv.Hz(uint32(arm)))
	fmt.Fprintf(w, "ipg      %s\n", conv.Hz(uint32(ipg)))
	if hz, ok := c.PerClock().TryFrequency(); ok {
		sel, _ := c.PerClock().Selection()
		fmt.Fprintf(w, "perclk   %s (%s)\n", conv.Hz(hz), sel)
	} else {
		fmt.Fprintln(w, "perclk   indeterminate")
	}
	fmt.Fprintf(w, "uart     %s\n", conv.Hz(c.UART().Frequency()))
	fmt.Fprintf(w, "i2c      %s\n", conv.Hz(c.I2C().Frequency()))
	fmt.Fprintf(w, "spi      %s\n", conv.Hz(c.SPI().Frequency()))

	h := c.Handle()
	gates(w, h, ccm.AllI2C)
	gates(w, h, ccm.AllUART)
	gates(w, h, ccm.AllSPI)
	gates(w, h, ccm.AllGPT)
	gates(w, h, ccm.AllADC)
	gates(w, h, ccm.AllPWM)
	gates(w, h, []ccm.PIT{{}})
	gates(w, h, []ccm.DMA{{}})
	gates(w, h, []ccm.DCDC{{}})
}

func gates[P ccm.Peripheral](w io.Writer, h *ccm.Handle, all []P) {
	for _, p := range all {
		if !p.Valid(h.Variant()) {
			continue
		}
		g, err := ccm.ClockGateOf(h, p)
		if err != nil {
			fmt.Fprintf(w, "gate %-6s %v\n", p, err)
			continue
		}
		fmt.Fprintf(w, "gate %-6s %s\n", p, g)
	}
}
