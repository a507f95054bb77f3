package regs

import "testing"

var (
	lpi2cPODF = NewField(19, 6)
	lpi2cSEL  = NewField(18, 1)
)

const testAddr = 0x400F_C038

func TestFieldGetPut(t *testing.T) {
	if lpi2cPODF.Max() != 0x3F {
		t.Fatalf("Max = %#x, want 0x3f", lpi2cPODF.Max())
	}
	if got := lpi2cPODF.Put(0, 0xFFFF_FFFF); got != 0x3F<<19 {
		t.Fatalf("Put = %#x, want %#x", got, uint32(0x3F<<19))
	}
	if got := lpi2cSEL.Put(0, 0xFFFF_FFFF); got != 1<<18 {
		t.Fatalf("Put = %#x, want single bit", got)
	}
	if got := lpi2cPODF.Get(0x0018_0000); got != 3 {
		t.Fatalf("Get = %d, want 3", got)
	}
}

func TestRegisterSet(t *testing.T) {
	m := NewMemory()
	r := Register{Addr: testAddr, Divider: lpi2cPODF, Select: lpi2cSEL}

	r.Set(m, 0xFFFF_FFFF, 0xFFFF_FFFF)
	if got := m.Read32(testAddr); got != 0x01FC_0000 {
		t.Fatalf("reg = %#x, want 0x01fc0000", got)
	}
	r.Set(m, 0, 0)
	if got := m.Read32(testAddr); got != 0 {
		t.Fatalf("reg = %#x, want 0", got)
	}
	m.Poke(testAddr, 0xFFFF_FFFF)
	r.Set(m, 3, 1)
	if got := m.Read32(testAddr); got != 0xFE1F_FFFF {
		t.Fatalf("reg = %#x, want 0xfe1fffff", got)
	}
	if r.RawDivider(m) != 3 || r.Selection(m) != 1 {
		t.Fatalf("readback = (%d,%d), want (3,1)", r.RawDivider(m), r.Selection(m))
	}
}

func TestFieldModifyAndWriteZero(t *testing.T) {
	m := NewMemory()
	m.Poke(testAddr, 0x8000_0001)
	lpi2cPODF.Modify(m, testAddr, 5)
	if got := m.Read32(testAddr); got != 0x8000_0001|5<<19 {
		t.Fatalf("Modify kept = %#x", got)
	}
	lpi2cPODF.WriteZero(m, testAddr, 2)
	if got := m.Read32(testAddr); got != 2<<19 {
		t.Fatalf("WriteZero = %#x", got)
	}
	if m.Writes() != 2 {
		t.Fatalf("writes = %d, want 2", m.Writes())
	}
}

func TestMemoryForcedBits(t *testing.T) {
	m := NewMemory()
	m.Force(0x400D_8000, 1<<31)
	m.Write32(0x400D_8000, 0x12)
	if got := m.Read32(0x400D_8000); got != 1<<31|0x12 {
		t.Fatalf("read = %#x", got)
	}
}

func TestRouter(t *testing.T) {
	a, b := NewMemory(), NewMemory()
	r := Router{
		{Base: 0x400F_C000, Size: 0x4000, Bus: a},
		{Base: 0x400D_8000, Size: 0x1000, Bus: b},
	}
	r.Write32(0x400F_C068, 7)
	r.Write32(0x400D_8000, 9)
	if a.Read32(0x400F_C068) != 7 || b.Read32(0x400D_8000) != 9 {
		t.Fatal("router wrote to the wrong span")
	}
	if a.Writes() != 1 || b.Writes() != 1 {
		t.Fatalf("writes = (%d,%d), want (1,1)", a.Writes(), b.Writes())
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unmapped address")
		}
	}()
	r.Read32(0x1000_0000)
}

func TestOffset(t *testing.T) {
	m := NewMemory()
	o := Offset{Bus: m, Delta: 0x400F_C000}
	o.Write32(0x400F_C068, 3)
	if m.Read32(0x68) != 3 || o.Read32(0x400F_C068) != 3 {
		t.Fatal("offset bus did not shift addresses")
	}
}
