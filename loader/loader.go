// Package loader places a raw firmware image into a bus's memory and
// arms a core to start executing it, the way a bootloader would map a
// flashed binary before release from reset.
package loader

import (
	"fmt"
	"os"

	"github.com/thumbsim/core/bus"
	"github.com/thumbsim/core/core"
)

// Image is a loaded firmware binary plus where it wants execution to
// begin.
type Image struct {
	Bytes      []byte
	LoadAddr   uint32
	EntryPoint uint32
	StackTop   uint32
}

// ReadFile reads a flat binary image from disk. The image is assumed
// to start with its own entry point at offset 0, matching how
// thumbsim's own asm/bus pair produce one; a vector-table-based image
// should set EntryPoint explicitly after ReadFile returns.
func ReadFile(path string, loadAddr, stackTop uint32) (*Image, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-specified firmware path
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read %s: %w", path, err)
	}
	return &Image{
		Bytes:      data,
		LoadAddr:   loadAddr,
		EntryPoint: loadAddr,
		StackTop:   stackTop,
	}, nil
}

// Load copies the image into mem and arms c to start executing it:
// PC is set to EntryPoint and SP to StackTop, per the ARMv6-M reset
// convention of taking both from a known location before the first
// Step (here supplied directly rather than read from a vector table,
// since thumbsim's bus has no boot ROM).
func Load(mem *bus.Memory, c *core.Core, img *Image) error {
	if err := mem.LoadBytes(img.LoadAddr, img.Bytes); err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	c.Reset()
	c.SetEntry(img.EntryPoint, img.StackTop)
	return nil
}
