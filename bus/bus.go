// Package bus is a reference implementation of pdp11.Memory: a flat 64K-byte
// address space backing a single, exclusively-owned CPU. It is not part of
// the instruction-set core; it is the kind of embedder a core needs to be
// useful, the way the teacher's nes.Bus sits beside (not inside) its CPU.
package bus

import (
	"log"

	"github.com/pkg/errors"
)

// Bus is a flat, unmirrored PDP-11 address space: 65536 bytes, addressed by
// the full range of a uint16. Word accesses must be address-aligned; odd-
// address word access is rejected the way real PDP-11 hardware traps on it.
type Bus struct {
	Ram [1 << 16]byte

	log       *log.Logger
	isLogging bool
}

// New returns an empty Bus. A Bus is meant to back exactly one CPU; callers
// sharing a Bus across goroutines must supply their own synchronization.
func New(isLogging bool) *Bus {
	return &Bus{
		log:       log.New(log.Writer(), "bus: ", log.LstdFlags),
		isLogging: isLogging,
	}
}

// Read implements pdp11.Memory. It always returns a full word; addr must be
// even. An odd address or out-of-range access fails the read.
func (b *Bus) Read(addr uint16) (int32, bool) {
	if addr&1 != 0 {
		b.logf("odd-address word read at %#06o", addr)
		return 0, false
	}
	lo := int32(b.Ram[addr])
	hi := int32(b.Ram[addr+1])
	return int32(int16(lo | hi<<8)), true
}

// Write implements pdp11.Memory. size must be 1 (byte) or 2 (word); a word
// write to an odd address fails, matching Read.
func (b *Bus) Write(addr uint16, value int32, size int) bool {
	switch size {
	case 1:
		b.Ram[addr] = byte(value)
		return true
	case 2:
		if addr&1 != 0 {
			b.logf("odd-address word write at %#06o", addr)
			return false
		}
		b.Ram[addr] = byte(value)
		b.Ram[addr+1] = byte(value >> 8)
		return true
	default:
		b.logf("write with unsupported size %d at %#06o", size, addr)
		return false
	}
}

// ReadByte reads a single byte without the alignment check Read applies to
// words. Used by cmd/pdp11's dump subcommand.
func (b *Bus) ReadByte(addr uint16) byte {
	return b.Ram[addr]
}

func (b *Bus) logf(format string, args ...interface{}) {
	if b.isLogging {
		b.log.Printf(format, args...)
	}
}

// errOrigin is returned (wrapped) when an image would run past the end of
// the address space.
var errOrigin = errors.New("image does not fit in the address space at the given origin")
