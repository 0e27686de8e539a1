package hw

import (
	"io"

	"nescore/emu/log"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request
)

// Interrupt is the kind of interrupt latched by the CPU. Kinds are ordered
// by priority, a pending interrupt is only replaced by a higher priority one.
type Interrupt uint8

const (
	NoInterrupt Interrupt = iota
	IRQ
	NMI
	ResetInterrupt
)

func (i Interrupt) String() string {
	switch i {
	case NoInterrupt:
		return "none"
	case IRQ:
		return "irq"
	case NMI:
		return "nmi"
	case ResetInterrupt:
		return "reset"
	}
	return "unknown"
}

type CPU struct {
	Bus AddressBus

	// Non-nil when execution tracing is enabled.
	tracer *tracer

	Cycles int64 // CPU cycles

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	pending Interrupt
	busy    int // cycles left before the next instruction
	jammed  bool
}

// NewCPU creates a new CPU connected to bus. Call Reset to load the program
// counter from the reset vector.
func NewCPU(bus AddressBus) *CPU {
	return &CPU{
		Bus: bus,
		SP:  0xFD,
		P:   IntDisable | Reserved,
	}
}

// Reset puts the CPU in its power-up state.
func (c *CPU) Reset() {
	c.A = 0x00
	c.X = 0x00
	c.Y = 0x00
	c.SP = 0xFD
	c.P = IntDisable | Reserved
	c.PC = c.read16(ResetVector)

	c.pending = NoInterrupt
	c.Cycles = 0
	c.busy = 0
	c.jammed = false

	log.ModCPU.DebugZ("reset").Hex16("PC", c.PC).End()
}

// Tick advances the CPU by one cycle. Instructions execute atomically on the
// first cycle they occupy, the following cycles are idle.
func (c *CPU) Tick() {
	if c.busy > 0 {
		c.busy--
		return
	}

	var ncycles int
	if c.pending != NoInterrupt {
		ncycles = c.serviceInterrupt()
	} else {
		if c.tracer != nil {
			c.tracer.write(c.state())
		}
		ncycles = c.execute()
	}

	c.Cycles += int64(ncycles)
	c.busy = ncycles - 1
}

// Step completes the instruction (or interrupt sequence) in flight, if any,
// then runs the next one to completion. It returns the number of cycles the
// latter took.
func (c *CPU) Step() int {
	for c.busy > 0 {
		c.Tick()
	}
	start := c.Cycles
	c.Tick()
	for c.busy > 0 {
		c.Tick()
	}
	return int(c.Cycles - start)
}

// Run runs the CPU for ncycles cycles.
func (c *CPU) Run(ncycles int64) {
	for range ncycles {
		c.Tick()
	}
}

// Jammed reports whether the CPU executed one of the opcodes that lock up
// real hardware. Emulation goes on regardless; it's up to the caller to stop.
func (c *CPU) Jammed() bool {
	return c.jammed
}

// Busy returns the number of cycles remaining before the next instruction.
func (c *CPU) Busy() int {
	return c.busy
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := c.Bus.Read8(addr)
	hi := c.Bus.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

/* stack operations */

func (c *CPU) push8(val uint8) {
	top := uint16(c.SP) + 0x0100
	c.Bus.Write8(top, val)
	c.SP -= 1
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xff))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	top := uint16(c.SP) + 0x0100
	return c.Bus.Read8(top)
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

/* interrupt handling */

// RequestInterrupt latches an interrupt, to be serviced before the next
// instruction. IRQs are ignored while the interrupt disable flag is set.
func (c *CPU) RequestInterrupt(kind Interrupt) {
	if kind == IRQ && c.P.I() {
		log.ModCPU.DebugZ("IRQ masked").Hex16("PC", c.PC).End()
		return
	}
	if kind > c.pending {
		c.pending = kind
	}
}

// Pending returns the latched interrupt.
func (c *CPU) Pending() Interrupt {
	return c.pending
}

func (c *CPU) serviceInterrupt() int {
	kind := c.pending
	c.pending = NoInterrupt
	prevpc := c.PC

	switch kind {
	case ResetInterrupt:
		// No writes happen during reset, the stack pointer is just decremented.
		c.SP -= 3
		c.P.setI(true)
		c.PC = c.read16(ResetVector)
		c.jammed = false
	case NMI, IRQ:
		c.push16(c.PC)
		c.push8(uint8(c.P | Break | Reserved))
		c.P.setI(true)
		if kind == NMI {
			c.PC = c.read16(NMIVector)
		} else {
			c.PC = c.read16(IRQVector)
		}
	}

	log.ModCPU.DebugZ("interrupt").
		Stringer("kind", kind).
		Hex16("from", prevpc).
		Hex16("to", c.PC).
		End()
	return 7
}

/* tracing */

// SetTraceOutput enables execution tracing to w, one line per instruction.
// Passing a nil writer disables tracing.
func (c *CPU) SetTraceOutput(w io.Writer) {
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = &tracer{w: w, d: c}
}

func (c *CPU) state() cpuState {
	return cpuState{
		A:     c.A,
		X:     c.X,
		Y:     c.Y,
		P:     c.P,
		SP:    c.SP,
		PC:    c.PC,
		Clock: c.Cycles,
	}
}
