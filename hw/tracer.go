package hw

import (
	"io"
	"strconv"
)

// cpuState stores the CPU state for the execution trace.
type cpuState struct {
	A, X, Y uint8
	P       P
	SP      uint8
	PC      uint16

	Clock int64
}

type disasmer interface {
	Disasm(pc uint16) DisasmOp
}

type tracer struct {
	d disasmer
	w io.Writer
}

func hexEncode(dst []byte, v byte) {
	const hextable = "0123456789ABCDEF"
	dst[0] = hextable[v>>4]
	dst[1] = hextable[v&0x0f]
}

func appendReg(buf []byte, name string, v uint8) []byte {
	buf = append(buf, name...)
	buf = append(buf, ':', 0, 0, ' ')
	hexEncode(buf[len(buf)-3:], v)
	return buf
}

// write the execution trace for current instruction, in a format close to
// the one of nestest.log.
func (t *tracer) write(state cpuState) {
	dis := t.d.Disasm(state.PC)
	buf := dis.Bytes()

	buf = appendReg(buf, "A", state.A)
	buf = appendReg(buf, "X", state.X)
	buf = appendReg(buf, "Y", state.Y)
	buf = appendReg(buf, "P", uint8(state.P))
	buf = appendReg(buf, "SP", state.SP)
	buf = append(buf, "CYC:"...)
	buf = strconv.AppendInt(buf, state.Clock, 10)
	buf = append(buf, '\n')
	t.w.Write(buf)
}

type DisasmOp struct {
	Opcode  string
	Oper    string
	Buf     []byte
	PC      uint16
	Illegal bool // undocumented opcode
}

func (d DisasmOp) String() string {
	return string(d.Bytes())
}

// Bytes returns the string representation of a DisasmOp, this is optimized
// version, suitable for the execution tracer.
func (d DisasmOp) Bytes() []byte {
	const totalLen = 48
	buf := make([]byte, totalLen)

	hexEncode(buf[0:], byte(d.PC>>8))
	hexEncode(buf[2:], byte(d.PC))
	buf[4] = ' '
	buf[5] = ' '

	off := 6
	for i := range d.Buf {
		hexEncode(buf[off:], d.Buf[i])
		buf[off+2] = ' '
		off += 3
	}

	for ; off < 16; off++ {
		buf[off] = ' '
	}
	if d.Illegal {
		buf[15] = '*'
	}

	off += copy(buf[off:], d.Opcode)
	buf[off] = ' '
	off++

	buf = append(buf[:off], d.Oper...)
	off += len(d.Oper)
	if len(buf) > totalLen {
		buf = append(buf, ' ')
	} else {
		buf = buf[:totalLen]
		for i := off; i < totalLen; i++ {
			buf[i] = ' '
		}
	}

	return buf
}
