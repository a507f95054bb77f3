//go:build imxrt1060

package ccm

// DefaultVariant is the variant used when Config.Variant is unset.
const DefaultVariant = IMXRT1060
