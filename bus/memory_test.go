package bus_test

import (
	"testing"

	"github.com/thumbsim/core/bus"
)

func TestMemory_WordRoundTrip(t *testing.T) {
	m := bus.NewMemory()
	if err := m.WriteWord(bus.SRAMStart, 0xdeadbeef); err != nil {
		t.Fatalf("WriteWord: %v", err)
	}
	got, err := m.ReadWord(bus.SRAMStart)
	if err != nil {
		t.Fatalf("ReadWord: %v", err)
	}
	if got != 0xdeadbeef {
		t.Fatalf("got 0x%08x, want 0xdeadbeef", got)
	}
}

func TestMemory_LittleEndianByteOrder(t *testing.T) {
	m := bus.NewMemory()
	if err := m.WriteWord(bus.SRAMStart, 0x01020304); err != nil {
		t.Fatalf("WriteWord: %v", err)
	}
	b0, _ := m.ReadByte(bus.SRAMStart)
	b3, _ := m.ReadByte(bus.SRAMStart + 3)
	if b0 != 0x04 || b3 != 0x01 {
		t.Fatalf("byte order wrong: b0=0x%02x b3=0x%02x", b0, b3)
	}
}

func TestMemory_UnalignedWordRejected(t *testing.T) {
	m := bus.NewMemory()
	if _, err := m.ReadWord(bus.SRAMStart + 1); err == nil {
		t.Fatal("expected alignment error, got nil")
	}
}

func TestMemory_FlashIsExecuteReadOnly(t *testing.T) {
	m := bus.NewMemory()
	if err := m.WriteByte(bus.FlashStart, 0x42); err == nil {
		t.Fatal("expected write-denied error for flash segment")
	}
}

func TestMemory_UnmappedAddressErrors(t *testing.T) {
	m := bus.NewMemory()
	if _, err := m.ReadByte(0xffffffff); err == nil {
		t.Fatal("expected unmapped-address error")
	}
}

func TestMemory_LoadBytes(t *testing.T) {
	m := bus.NewMemory()
	img := []byte{0x01, 0x20, 0x02, 0x48}
	if err := m.LoadBytes(bus.FlashStart, img); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	word, err := m.ReadWord(bus.FlashStart)
	if err != nil {
		t.Fatalf("ReadWord: %v", err)
	}
	if word != 0x48022001 {
		t.Fatalf("got 0x%08x, want 0x48022001", word)
	}
}
