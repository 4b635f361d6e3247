// Package pdp11 implements the core of a PDP-11 instruction-set simulator:
// register file and PSW, effective-address computation, the ALU primitives
// that back every dual- and single-operand instruction, and the three-level
// opcode decode tree rooted at Step.
//
// The package never touches physical memory directly; every read or write
// goes through the Memory interface supplied by the embedder. That interface
// is the sole concurrency boundary: a CPU value itself carries no lock and
// must be exclusively owned for the duration of a Step call.
package pdp11

// Memory is the external collaborator the core reads and writes through.
// Read always returns a full 16-bit word; byte operands are narrowed by the
// addressing-mode evaluator after the read. Write honours size (1 or 2
// bytes). Both report success; a false return aborts the in-flight
// instruction and propagates to the caller of Step.
type Memory interface {
	Read(addr uint16) (value int32, ok bool)
	Write(addr uint16, value int32, size int) bool
}

// Register indices with architectural meaning.
const (
	SP = 6 // stack pointer
	PC = 7 // program counter
)

// CPU holds the architectural register file and processor status word, plus
// the operand buffer used internally by a single Step call. The operand
// buffer fields (A, reg, S) are only meaningful while a Step is executing;
// an embedder should never read them between calls.
type CPU struct {
	R  [8]int16
	PS uint16

	Mem Memory

	// Transient operand buffer, scoped to the current Step.
	A   uint16   // effective address of the most recently resolved operand
	reg bool     // true if the operand lives in a register, not memory
	S   [2]int32 // slot 0 = source, slot 1 = destination
}

// New returns a CPU wired to mem with all registers and PS cleared.
func New(mem Memory) *CPU {
	return &CPU{Mem: mem}
}
