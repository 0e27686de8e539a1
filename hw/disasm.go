package hw

import "fmt"

// name returns the assembler name of the mnemonic.
func (m mnemonic) name() string {
	if m == opUSB {
		return "SBC"
	}
	return m.String()
}

// Disasm disassembles the instruction at pc. It has no side effects on the
// emulated state.
func (c *CPU) Disasm(pc uint16) DisasmOp {
	opcode := c.Bus.Peek8(pc)
	def := opcodes[opcode]

	n := operandSize[def.mode]
	buf := make([]byte, 1+n)
	buf[0] = opcode
	for i := range n {
		buf[1+i] = c.Bus.Peek8(pc + 1 + uint16(i))
	}

	return DisasmOp{
		Opcode:  def.mnemonic.name(),
		Oper:    formatOperand(def.mode, pc, buf[1:]),
		Buf:     buf,
		PC:      pc,
		Illegal: def.illegal,
	}
}

func formatOperand(mode addrMode, pc uint16, oper []byte) string {
	var val uint16
	switch len(oper) {
	case 1:
		val = uint16(oper[0])
	case 2:
		val = uint16(oper[1])<<8 | uint16(oper[0])
	}

	switch mode {
	case acc:
		return "A"
	case imm:
		return fmt.Sprintf("#$%02X", val)
	case zpg:
		return fmt.Sprintf("$%02X", val)
	case zpx:
		return fmt.Sprintf("$%02X,X", val)
	case zpy:
		return fmt.Sprintf("$%02X,Y", val)
	case rel:
		return fmt.Sprintf("$%04X", pc+2+uint16(int8(val)))
	case abs:
		return fmt.Sprintf("$%04X", val)
	case abx:
		return fmt.Sprintf("$%04X,X", val)
	case aby:
		return fmt.Sprintf("$%04X,Y", val)
	case ind:
		return fmt.Sprintf("($%04X)", val)
	case izx:
		return fmt.Sprintf("($%02X,X)", val)
	case izy:
		return fmt.Sprintf("($%02X),Y", val)
	}
	return ""
}
