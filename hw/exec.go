package hw

import "nescore/emu/log"

// Value of the internal bus that ANE and LXA mix into the accumulator. Real
// hardware gives unpredictable results for these 2 opcodes, depending on
// temperature and chip series; we use a fixed value.
const magicConst = 0xFF

// operations that take an extra cycle when indexing crosses a page.
var pageCrossPenalty = [opUSB + 1]bool{
	opADC: true,
	opAND: true,
	opCMP: true,
	opEOR: true,
	opLDA: true,
	opLDX: true,
	opLDY: true,
	opORA: true,
	opSBC: true,
	opNOP: true,
	opLAS: true,
	opLAX: true,
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

func (c *CPU) fetch8() uint8 {
	val := c.Bus.Read8(c.PC)
	c.PC++
	return val
}

func (c *CPU) fetch16() uint16 {
	val := c.read16(c.PC)
	c.PC += 2
	return val
}

// read a 16-bit pointer from the zero page, wrapping within it.
func (c *CPU) zpread16(zp uint8) uint16 {
	lo := c.Bus.Read8(uint16(zp))
	hi := c.Bus.Read8(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// operand fetches the operand bytes for the given mode and computes the
// effective address. crossed reports whether indexing crossed a page.
func (c *CPU) operand(mode addrMode) (addr uint16, crossed bool) {
	switch mode {
	case imp, acc:
	case imm:
		addr = c.PC
		c.PC++
	case zpg:
		addr = uint16(c.fetch8())
	case zpx:
		addr = uint16(c.fetch8() + c.X)
	case zpy:
		addr = uint16(c.fetch8() + c.Y)
	case rel:
		off := int8(c.fetch8())
		addr = c.PC + uint16(off)
	case abs:
		addr = c.fetch16()
	case abx:
		base := c.fetch16()
		addr = base + uint16(c.X)
		crossed = pageCrossed(base, addr)
	case aby:
		base := c.fetch16()
		addr = base + uint16(c.Y)
		crossed = pageCrossed(base, addr)
	case ind:
		// The 6502 doesn't carry into the high byte of the pointer: JMP ($xxFF)
		// fetches the high byte of the target from $xx00.
		ptr := c.fetch16()
		lo := c.Bus.Read8(ptr)
		hi := c.Bus.Read8(ptr&0xFF00 | uint16(uint8(ptr)+1))
		addr = uint16(hi)<<8 | uint16(lo)
	case izx:
		addr = c.zpread16(c.fetch8() + c.X)
	case izy:
		base := c.zpread16(c.fetch8())
		addr = base + uint16(c.Y)
		crossed = pageCrossed(base, addr)
	default:
		log.ModCPU.PanicZ("invalid addressing mode").
			Stringer("mode", mode).
			Hex16("PC", c.PC).
			End()
	}
	return addr, crossed
}

// execute fetches, decodes and executes the instruction at PC, and returns
// the number of cycles it takes.
func (c *CPU) execute() int {
	pc := c.PC
	opcode := c.fetch8()
	def := &opcodes[opcode]
	addr, crossed := c.operand(def.mode)

	ncycles := int(def.cycles)
	if crossed && pageCrossPenalty[def.mnemonic] {
		ncycles++
	}

	switch def.mnemonic {
	// load/store
	case opLDA:
		c.A = c.Bus.Read8(addr)
		c.P.checkNZ(c.A)
	case opLDX:
		c.X = c.Bus.Read8(addr)
		c.P.checkNZ(c.X)
	case opLDY:
		c.Y = c.Bus.Read8(addr)
		c.P.checkNZ(c.Y)
	case opSTA:
		c.Bus.Write8(addr, c.A)
	case opSTX:
		c.Bus.Write8(addr, c.X)
	case opSTY:
		c.Bus.Write8(addr, c.Y)

	// transfers
	case opTAX:
		c.X = c.A
		c.P.checkNZ(c.X)
	case opTAY:
		c.Y = c.A
		c.P.checkNZ(c.Y)
	case opTSX:
		c.X = c.SP
		c.P.checkNZ(c.X)
	case opTXA:
		c.A = c.X
		c.P.checkNZ(c.A)
	case opTXS:
		c.SP = c.X
	case opTYA:
		c.A = c.Y
		c.P.checkNZ(c.A)

	// stack
	case opPHA:
		c.push8(c.A)
	case opPHP:
		c.push8(uint8(c.P | Break | Reserved))
	case opPLA:
		c.A = c.pull8()
		c.P.checkNZ(c.A)
	case opPLP:
		c.pullP()

	// arithmetic and logic
	case opADC:
		c.adc(c.Bus.Read8(addr))
	case opSBC, opUSB:
		c.adc(^c.Bus.Read8(addr))
	case opAND:
		c.A &= c.Bus.Read8(addr)
		c.P.checkNZ(c.A)
	case opORA:
		c.A |= c.Bus.Read8(addr)
		c.P.checkNZ(c.A)
	case opEOR:
		c.A ^= c.Bus.Read8(addr)
		c.P.checkNZ(c.A)
	case opBIT:
		val := c.Bus.Read8(addr)
		c.P.setZ(c.A&val == 0)
		c.P.setV(val&0x40 != 0)
		c.P.setN(val&0x80 != 0)
	case opCMP:
		c.compare(c.A, c.Bus.Read8(addr))
	case opCPX:
		c.compare(c.X, c.Bus.Read8(addr))
	case opCPY:
		c.compare(c.Y, c.Bus.Read8(addr))

	// increments, decrements
	case opINC:
		c.P.checkNZ(c.rmw(def.mode, addr, inc))
	case opDEC:
		c.P.checkNZ(c.rmw(def.mode, addr, dec))
	case opINX:
		c.X++
		c.P.checkNZ(c.X)
	case opINY:
		c.Y++
		c.P.checkNZ(c.Y)
	case opDEX:
		c.X--
		c.P.checkNZ(c.X)
	case opDEY:
		c.Y--
		c.P.checkNZ(c.Y)

	// shifts
	case opASL:
		c.rmw(def.mode, addr, c.asl)
	case opLSR:
		c.rmw(def.mode, addr, c.lsr)
	case opROL:
		c.rmw(def.mode, addr, c.rol)
	case opROR:
		c.rmw(def.mode, addr, c.ror)

	// jumps and calls
	case opJMP:
		c.PC = addr
	case opJSR:
		c.push16(c.PC - 1)
		c.PC = addr
	case opRTS:
		c.PC = c.pull16() + 1
	case opRTI:
		c.pullP()
		c.PC = c.pull16()
	case opBRK:
		c.PC++ // padding byte
		c.push16(c.PC)
		c.push8(uint8(c.P | Break | Reserved))
		c.P.setI(true)
		c.PC = c.read16(IRQVector)

	// branches
	case opBCC:
		ncycles += c.branch(!c.P.C(), addr)
	case opBCS:
		ncycles += c.branch(c.P.C(), addr)
	case opBEQ:
		ncycles += c.branch(c.P.Z(), addr)
	case opBNE:
		ncycles += c.branch(!c.P.Z(), addr)
	case opBMI:
		ncycles += c.branch(c.P.N(), addr)
	case opBPL:
		ncycles += c.branch(!c.P.N(), addr)
	case opBVS:
		ncycles += c.branch(c.P.V(), addr)
	case opBVC:
		ncycles += c.branch(!c.P.V(), addr)

	// flags
	case opCLC:
		c.P.setC(false)
	case opCLD:
		c.P.setD(false)
	case opCLI:
		c.P.setI(false)
	case opCLV:
		c.P.setV(false)
	case opSEC:
		c.P.setC(true)
	case opSED:
		c.P.setD(true)
	case opSEI:
		c.P.setI(true)

	case opNOP:

	// unofficial
	case opSLO:
		c.A |= c.rmw(def.mode, addr, c.asl)
		c.P.checkNZ(c.A)
	case opRLA:
		c.A &= c.rmw(def.mode, addr, c.rol)
		c.P.checkNZ(c.A)
	case opSRE:
		c.A ^= c.rmw(def.mode, addr, c.lsr)
		c.P.checkNZ(c.A)
	case opRRA:
		c.adc(c.rmw(def.mode, addr, c.ror))
	case opDCP:
		c.compare(c.A, c.rmw(def.mode, addr, dec))
	case opISB:
		c.adc(^c.rmw(def.mode, addr, inc))
	case opSAX:
		c.Bus.Write8(addr, c.A&c.X)
	case opLAX:
		c.A = c.Bus.Read8(addr)
		c.X = c.A
		c.P.checkNZ(c.A)
	case opLAS:
		c.SP &= c.Bus.Read8(addr)
		c.A = c.SP
		c.X = c.SP
		c.P.checkNZ(c.A)
	case opANC:
		c.A &= c.Bus.Read8(addr)
		c.P.checkNZ(c.A)
		c.P.setC(c.P.N())
	case opALR:
		c.A &= c.Bus.Read8(addr)
		c.A = c.lsr(c.A)
	case opARR:
		val := (c.A&c.Bus.Read8(addr))>>1 | c.P.carry()<<7
		c.A = val
		c.P.checkNZ(val)
		c.P.setC(val&0x40 != 0)
		c.P.setV((val>>6^val>>5)&1 != 0)
	case opANE:
		c.A = (c.A | magicConst) & c.X & c.Bus.Read8(addr)
		c.P.checkNZ(c.A)
	case opLXA:
		c.A = (c.A | magicConst) & c.Bus.Read8(addr)
		c.X = c.A
		c.P.checkNZ(c.A)
	case opSBX:
		val := c.Bus.Read8(addr)
		ax := c.A & c.X
		c.P.setC(ax >= val)
		c.X = ax - val
		c.P.checkNZ(c.X)
	case opSHA:
		c.Bus.Write8(addr, c.A&c.X&(uint8(addr>>8)+1))
	case opSHX:
		c.Bus.Write8(addr, c.X&(uint8(addr>>8)+1))
	case opSHY:
		c.Bus.Write8(addr, c.Y&(uint8(addr>>8)+1))
	case opTAS:
		c.SP = c.A & c.X
		c.Bus.Write8(addr, c.SP&(uint8(addr>>8)+1))
	case opJAM:
		if !c.jammed {
			log.ModCPU.WarnZ("CPU jammed").
				Hex16("PC", pc).
				Hex8("opcode", opcode).
				End()
		}
		c.jammed = true

	default:
		log.ModCPU.PanicZ("unimplemented mnemonic").
			Stringer("mnemonic", def.mnemonic).
			Hex8("opcode", opcode).
			Hex16("PC", pc).
			End()
	}

	return ncycles
}

func (c *CPU) pullP() {
	// B and U bits don't exist in the register, they're only set when pushed.
	const mask = Break | Reserved
	c.P = P(c.pull8())&^mask | c.P&mask
}

func (c *CPU) adc(val uint8) {
	sum := uint16(c.A) + uint16(val) + uint16(c.P.carry())
	c.P.checkCV(c.A, val, sum)
	c.A = uint8(sum)
	c.P.checkNZ(c.A)
}

func (c *CPU) compare(reg, val uint8) {
	c.P.setC(reg >= val)
	c.P.checkNZ(reg - val)
}

// branch jumps to target if cond is true, and returns the extra cycles.
func (c *CPU) branch(cond bool, target uint16) int {
	if !cond {
		return 0
	}
	extra := 1
	if pageCrossed(c.PC, target) {
		extra = 2
	}
	c.PC = target
	return extra
}

// rmw performs a read-modify-write of the operand (memory or accumulator)
// and returns the written value.
func (c *CPU) rmw(mode addrMode, addr uint16, modify func(uint8) uint8) uint8 {
	if mode == acc {
		c.A = modify(c.A)
		return c.A
	}
	val := modify(c.Bus.Read8(addr))
	c.Bus.Write8(addr, val)
	return val
}

func inc(val uint8) uint8 { return val + 1 }
func dec(val uint8) uint8 { return val - 1 }

func (c *CPU) asl(val uint8) uint8 {
	c.P.setC(val&0x80 != 0)
	val <<= 1
	c.P.checkNZ(val)
	return val
}

func (c *CPU) lsr(val uint8) uint8 {
	c.P.setC(val&0x01 != 0)
	val >>= 1
	c.P.checkNZ(val)
	return val
}

func (c *CPU) rol(val uint8) uint8 {
	carry := c.P.carry()
	c.P.setC(val&0x80 != 0)
	val = val<<1 | carry
	c.P.checkNZ(val)
	return val
}

func (c *CPU) ror(val uint8) uint8 {
	carry := c.P.carry()
	c.P.setC(val&0x01 != 0)
	val = val>>1 | carry<<7
	c.P.checkNZ(val)
	return val
}
