package hw

import (
	"fmt"

	"github.com/go-faster/jx"
)

// CPUState is a snapshot of the CPU registers and internal state.
type CPUState struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	P      uint8
	Cycles int64

	Pending Interrupt
	Busy    int
	Jammed  bool
}

// Snapshot returns the current state of the CPU.
func (c *CPU) Snapshot() CPUState {
	return CPUState{
		PC:      c.PC,
		A:       c.A,
		X:       c.X,
		Y:       c.Y,
		SP:      c.SP,
		P:       uint8(c.P),
		Cycles:  c.Cycles,
		Pending: c.pending,
		Busy:    c.busy,
		Jammed:  c.jammed,
	}
}

// Restore sets the CPU state from a snapshot.
func (c *CPU) Restore(s CPUState) {
	c.PC = s.PC
	c.A = s.A
	c.X = s.X
	c.Y = s.Y
	c.SP = s.SP
	c.P = P(s.P)
	c.Cycles = s.Cycles
	c.pending = s.Pending
	c.busy = s.Busy
	c.jammed = s.Jammed
}

func (s CPUState) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	s.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes s as a JSON object.
func (s CPUState) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("pc")
	e.UInt16(s.PC)
	e.FieldStart("a")
	e.UInt8(s.A)
	e.FieldStart("x")
	e.UInt8(s.X)
	e.FieldStart("y")
	e.UInt8(s.Y)
	e.FieldStart("sp")
	e.UInt8(s.SP)
	e.FieldStart("p")
	e.UInt8(s.P)
	e.FieldStart("cycles")
	e.Int64(s.Cycles)
	e.FieldStart("pending")
	e.Str(s.Pending.String())
	e.FieldStart("busy")
	e.Int(s.Busy)
	e.FieldStart("jammed")
	e.Bool(s.Jammed)
	e.ObjEnd()
}

func (s *CPUState) UnmarshalJSON(data []byte) error {
	return s.Decode(jx.DecodeBytes(data))
}

// Decode reads s from a JSON object. Unknown fields are ignored.
func (s *CPUState) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "pc":
			s.PC, err = d.UInt16()
		case "a":
			s.A, err = d.UInt8()
		case "x":
			s.X, err = d.UInt8()
		case "y":
			s.Y, err = d.UInt8()
		case "sp":
			s.SP, err = d.UInt8()
		case "p":
			s.P, err = d.UInt8()
		case "cycles":
			s.Cycles, err = d.Int64()
		case "busy":
			s.Busy, err = d.Int()
		case "jammed":
			s.Jammed, err = d.Bool()
		case "pending":
			var str string
			if str, err = d.Str(); err == nil {
				s.Pending, err = parseInterrupt(str)
			}
		default:
			err = d.Skip()
		}
		if err != nil {
			return fmt.Errorf("cpu state field %q: %w", key, err)
		}
		return nil
	})
}

func parseInterrupt(s string) (Interrupt, error) {
	for i := NoInterrupt; i <= ResetInterrupt; i++ {
		if i.String() == s {
			return i, nil
		}
	}
	return NoInterrupt, fmt.Errorf("unknown interrupt kind %q", s)
}
