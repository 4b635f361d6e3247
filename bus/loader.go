package bus

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
)

// LoadImage copies data into the Bus starting at origin, the adaptation of
// the teacher's Bus.LoadBytes (which copied an NES ROM image into RAM at a
// fixed offset) to "load a program image into core memory at a fixed
// address". It fails rather than silently truncating if the image would
// run past the top of the address space.
func (b *Bus) LoadImage(data []byte, origin uint16) error {
	if int(origin)+len(data) > len(b.Ram) {
		return errors.Wrapf(errOrigin, "origin %#06o, image length %d", origin, len(data))
	}
	copy(b.Ram[origin:], data)
	return nil
}

// LoadWords is LoadImage for a slice of pre-assembled 16-bit words, written
// little-endian the way the architecture's word format requires.
func (b *Bus) LoadWords(words []uint16, origin uint16) error {
	data := make([]byte, 2*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint16(data[2*i:], w)
	}
	return b.LoadImage(data, origin)
}

// LoadFile reads filepath from disk and loads it at origin, the direct
// counterpart of the teacher's Bus.Load (which read a ROM file and called
// log.Fatalf on failure); here the failure is returned instead so a driver
// can decide how to report it.
func (b *Bus) LoadFile(filepath string, origin uint16) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return errors.Wrapf(err, "reading image %s", filepath)
	}
	return b.LoadImage(data, origin)
}
