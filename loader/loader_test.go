package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thumbsim/core/bus"
	"github.com/thumbsim/core/core"
	"github.com/thumbsim/core/loader"
)

func TestReadFileThenLoad_ArmsCoreForExecution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firmware.bin")
	program := []byte{0x00, 0x20, 0x01, 0x30} // movs r0,#0; adds r0,#1
	if err := os.WriteFile(path, program, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	img, err := loader.ReadFile(path, bus.FlashStart, bus.StackStart+bus.StackSize)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	mem := bus.NewMemory()
	table := core.BuildDecoderTable()
	c := core.NewCore("test", mem, table)

	if err := loader.Load(mem, c, img); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.R[core.PC] != bus.FlashStart {
		t.Fatalf("PC = 0x%x, want 0x%x", c.R[core.PC], bus.FlashStart)
	}
	if c.R[core.SP] != bus.StackStart+bus.StackSize {
		t.Fatalf("SP = 0x%x, want top of stack region", c.R[core.SP])
	}

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.R[core.R0] != 0 {
		t.Fatalf("R0 after movs r0,#0 = %d, want 0", c.R[core.R0])
	}
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.R[core.R0] != 1 {
		t.Fatalf("R0 after adds r0,#1 = %d, want 1", c.R[core.R0])
	}
}
