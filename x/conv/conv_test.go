package conv

import "testing"

func TestUtoa(t *testing.T) {
	var b [20]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{528000000, "528000000"},
		{18446744073709551615, "18446744073709551615"},
	} {
		if got := string(Utoa(b[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestHex32(t *testing.T) {
	if got := Hex32(0x400FC068); got != "0x400FC068" {
		t.Fatalf("Hex32 = %q", got)
	}
	if got := Hex32(0x3F); got != "0x0000003F" {
		t.Fatalf("Hex32 = %q", got)
	}
}

func TestHz(t *testing.T) {
	for hz, want := range map[uint32]string{
		24_000_000:  "24MHz",
		105_600_000: "105.6MHz",
		3_428_571:   "3.428MHz",
		375_000:     "375kHz",
		1_500:       "1.5kHz",
		999:         "999Hz",
		0:           "0Hz",
	} {
		if got := Hz(hz); got != want {
			t.Fatalf("Hz(%d) = %q, want %q", hz, got, want)
		}
	}
}
