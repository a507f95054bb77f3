//go:build imxrt

package ral

import (
	"imxrt-ccm-go/ccm"
	"imxrt-ccm-go/regs"
)

// New takes the on-chip CCM. Call it once; the result owns the registers.
func New(v ccm.Variant) *CCM {
	return From(regs.MMIO{}, regs.MMIO{}, ccm.Config{Variant: v})
}
