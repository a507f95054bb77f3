//go:build linux

package main

import (
	"errors"
	"strconv"

	"imxrt-ccm-go/ccm"

	"github.com/google/shlex"
)

var errUsage = errors.New("bad command")

// apply runs one script command against c.
func apply(c *ccm.CCM, line string) error {
	f, err := shlex.Split(line)
	if err != nil {
		return err
	}
	if len(f) == 0 {
		return nil
	}
	num := func(i int) (uint32, error) {
		if i >= len(f) {
			return 0, errUsage
		}
		n, err := strconv.ParseUint(f[i], 0, 32)
		return uint32(n), err
	}

	switch f[0] {
	case "uart", "i2c", "spi":
		div, err := num(1)
		if err != nil {
			return err
		}
		switch f[0] {
		case "uart":
			_, err = c.UART().ConfigureDivider(div)
		case "i2c":
			_, err = c.I2C().ConfigureDivider(div)
		default:
			_, err = c.SPI().ConfigureDivider(div)
		}
		return err
	case "perclk":
		if len(f) < 2 {
			return errUsage
		}
		sel := ccm.SelectOscillator
		switch f[1] {
		case "osc":
		case "ipg":
			sel = ccm.SelectIPG
		default:
			return errUsage
		}
		div, err := num(2)
		if err != nil {
			return err
		}
		_, err = c.PerClock().ConfigureSelectionDivider(sel, div)
		return err
	case "arm":
		div, err := num(1)
		if err != nil {
			return err
		}
		_, _, err = c.ARM().ConfigureDivider(div)
		return err
	case "ipg":
		div, err := num(1)
		if err != nil {
			return err
		}
		_, err = c.ARM().ConfigureIPGDivider(div)
		return err
	case "armhz":
		hz, err := num(1)
		if err != nil {
			return err
		}
		_, _, err = c.ARM().SetFrequency(hz)
		return err
	case "gate":
		if len(f) != 3 {
			return errUsage
		}
		g, ok := parseGate(f[2])
		if !ok {
			return errUsage
		}
		return setGate(c.Handle(), f[1], g)
	}
	return errUsage
}

func parseGate(s string) (ccm.ClockGate, bool) {
	switch s {
	case "off":
		return ccm.Off, true
	case "run":
		return ccm.OnlyRun, true
	case "on":
		return ccm.On, true
	}
	return 0, false
}

func setGate(h *ccm.Handle, name string, g ccm.ClockGate) error {
	for _, try := range []func() (bool, error){
		func() (bool, error) { return setNamed(h, ccm.AllI2C, name, g) },
		func() (bool, error) { return setNamed(h, ccm.AllUART, name, g) },
		func() (bool, error) { return setNamed(h, ccm.AllSPI, name, g) },
		func() (bool, error) { return setNamed(h, ccm.AllGPT, name, g) },
		func() (bool, error) { return setNamed(h, ccm.AllADC, name, g) },
		func() (bool, error) { return setNamed(h, ccm.AllPWM, name, g) },
		func() (bool, error) { return setNamed(h, []ccm.PIT{{}}, name, g) },
		func() (bool, error) { return setNamed(h, []ccm.DMA{{}}, name, g) },
		func() (bool, error) { return setNamed(h, []ccm.DCDC{{}}, name, g) },
	} {
		if found, err := try(); found {
			return err
		}
	}
	return errors.New("unknown peripheral " + name)
}

func setNamed[P ccm.Peripheral](h *ccm.Handle, all []P, name string, g ccm.ClockGate) (bool, error) {
	for _, p := range all {
		if p.String() == name {
			return true, ccm.SetClockGate(h, p, g)
		}
	}
	return false, nil
}
