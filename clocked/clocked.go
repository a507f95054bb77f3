// Package clocked binds tinygo.org/x/drivers buses to the CCM clock gate of
// the peripheral behind them.
//
// A bus built here refuses to exist while its peripheral's gate is off, and
// re-checks the gate on every transfer: reconfiguring a clock root turns its
// gates off, and touching an unclocked peripheral hangs the core instead of
// failing.
package clocked

import (
	"imxrt-ccm-go/ccm"
	"imxrt-ccm-go/errcode"

	"tinygo.org/x/drivers"
)

// Root is the part of a CCM clock root the adapters need. *ccm.I2CClock and
// *ccm.SPIClock implement it.
type Root[P ccm.Peripheral] interface {
	ClockGate(ccm.Instance[P]) (ccm.ClockGate, error)
	Frequency() uint32
}

type gated[P ccm.Peripheral] struct {
	root Root[P]
	inst ccm.Instance[P]
	id   P
}

func gate[P ccm.Peripheral](root Root[P], inst ccm.Instance[P]) gated[P] {
	return gated[P]{root: root, inst: inst, id: inst.Instance()}
}

func (g gated[P]) check(op string) error {
	cg, err := g.root.ClockGate(g.inst)
	if err != nil {
		return err
	}
	if cg == ccm.Off {
		return errcode.New(errcode.ClockGated, op, g.id.String())
	}
	return nil
}

// I2C is a drivers.I2C that only talks while its LPI2C instance is clocked.
type I2C struct {
	gated[ccm.I2C]
	bus drivers.I2C
}

var _ drivers.I2C = (*I2C)(nil)

// NewI2C binds bus to inst. It fails with errcode.ClockGated when the gate is
// off, or with the CCM's error when inst does not exist on the chip.
func NewI2C(root Root[ccm.I2C], inst ccm.Instance[ccm.I2C], bus drivers.I2C) (*I2C, error) {
	d := &I2C{gated: gate(root, inst), bus: bus}
	if err := d.check("clocked.NewI2C"); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *I2C) Tx(addr uint16, w, r []byte) error {
	if err := d.check("clocked.I2C.Tx"); err != nil {
		return err
	}
	return d.bus.Tx(addr, w, r)
}

// Instance returns the LPI2C instance the bus is bound to.
func (d *I2C) Instance() ccm.I2C { return d.id }

// Frequency is the I2C root frequency, the input to the LPI2C prescaler.
func (d *I2C) Frequency() uint32 { return d.root.Frequency() }

// SPI is a drivers.SPI that only talks while its LPSPI instance is clocked.
type SPI struct {
	gated[ccm.SPI]
	bus drivers.SPI
}

var _ drivers.SPI = (*SPI)(nil)

// NewSPI binds bus to inst, with the same checks as NewI2C.
func NewSPI(root Root[ccm.SPI], inst ccm.Instance[ccm.SPI], bus drivers.SPI) (*SPI, error) {
	d := &SPI{gated: gate(root, inst), bus: bus}
	if err := d.check("clocked.NewSPI"); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *SPI) Tx(w, r []byte) error {
	if err := d.check("clocked.SPI.Tx"); err != nil {
		return err
	}
	return d.bus.Tx(w, r)
}

func (d *SPI) Transfer(b byte) (byte, error) {
	if err := d.check("clocked.SPI.Transfer"); err != nil {
		return 0, err
	}
	return d.bus.Transfer(b)
}

func (d *SPI) Instance() ccm.SPI { return d.id }

// Frequency is the SPI root frequency, the input to the LPSPI clock divider.
func (d *SPI) Frequency() uint32 { return d.root.Frequency() }
