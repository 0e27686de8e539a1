package hw

//go:generate go tool stringer -type=mnemonic -trimprefix=op
//go:generate go tool stringer -type=addrMode

// mnemonic identifies the operation an opcode performs.
type mnemonic uint8

const (
	// official
	opADC mnemonic = iota
	opAND
	opASL
	opBCC
	opBCS
	opBEQ
	opBIT
	opBMI
	opBNE
	opBPL
	opBRK
	opBVC
	opBVS
	opCLC
	opCLD
	opCLI
	opCLV
	opCMP
	opCPX
	opCPY
	opDEC
	opDEX
	opDEY
	opEOR
	opINC
	opINX
	opINY
	opJMP
	opJSR
	opLDA
	opLDX
	opLDY
	opLSR
	opNOP
	opORA
	opPHA
	opPHP
	opPLA
	opPLP
	opROL
	opROR
	opRTI
	opRTS
	opSBC
	opSEC
	opSED
	opSEI
	opSTA
	opSTX
	opSTY
	opTAX
	opTAY
	opTSX
	opTXA
	opTXS
	opTYA

	// unofficial
	opALR
	opANC
	opANE // uses the unstable magic constant
	opARR
	opDCP
	opISB
	opJAM // locks real hardware
	opLAS
	opLAX
	opLXA // uses the unstable magic constant
	opRLA
	opRRA
	opSAX
	opSBX
	opSHA
	opSHX
	opSHY
	opSLO
	opSRE
	opTAS
	opUSB // $EB, same as SBC
)

// addrMode is an addressing mode, it determines how the operand of an
// instruction is fetched and how the effective address is computed.
type addrMode uint8

const (
	imp addrMode = iota // implied
	acc                 // accumulator
	imm                 // immediate
	zpg                 // zero page
	zpx                 // zero page,X
	zpy                 // zero page,Y
	rel                 // relative
	abs                 // absolute
	abx                 // absolute,X
	aby                 // absolute,Y
	ind                 // indirect (JMP only)
	izx                 // (indirect,X)
	izy                 // (indirect),Y
)

// operand size in bytes, per addressing mode.
var operandSize = [...]uint8{
	imp: 0, acc: 0, imm: 1, zpg: 1, zpx: 1, zpy: 1, rel: 1,
	abs: 2, abx: 2, aby: 2, ind: 2, izx: 1, izy: 1,
}

type opcodeDef struct {
	mnemonic mnemonic
	mode     addrMode
	cycles   uint8 // base cycle count
	illegal  bool  // undocumented opcode
}

// opcodes is the decode table, indexed by opcode byte.
var opcodes = [256]opcodeDef{
	// $00-$0F
	0x00: {opBRK, imp, 7, false},
	0x01: {opORA, izx, 6, false},
	0x02: {opJAM, imp, 2, true},
	0x03: {opSLO, izx, 8, true},
	0x04: {opNOP, zpg, 3, true},
	0x05: {opORA, zpg, 3, false},
	0x06: {opASL, zpg, 5, false},
	0x07: {opSLO, zpg, 5, true},
	0x08: {opPHP, imp, 3, false},
	0x09: {opORA, imm, 2, false},
	0x0A: {opASL, acc, 2, false},
	0x0B: {opANC, imm, 2, true},
	0x0C: {opNOP, abs, 4, true},
	0x0D: {opORA, abs, 4, false},
	0x0E: {opASL, abs, 6, false},
	0x0F: {opSLO, abs, 6, true},
	// $10-$1F
	0x10: {opBPL, rel, 2, false},
	0x11: {opORA, izy, 5, false},
	0x12: {opJAM, imp, 2, true},
	0x13: {opSLO, izy, 8, true},
	0x14: {opNOP, zpx, 4, true},
	0x15: {opORA, zpx, 4, false},
	0x16: {opASL, zpx, 6, false},
	0x17: {opSLO, zpx, 6, true},
	0x18: {opCLC, imp, 2, false},
	0x19: {opORA, aby, 4, false},
	0x1A: {opNOP, imp, 2, true},
	0x1B: {opSLO, aby, 7, true},
	0x1C: {opNOP, abx, 4, true},
	0x1D: {opORA, abx, 4, false},
	0x1E: {opASL, abx, 7, false},
	0x1F: {opSLO, abx, 7, true},
	// $20-$2F
	0x20: {opJSR, abs, 6, false},
	0x21: {opAND, izx, 6, false},
	0x22: {opJAM, imp, 2, true},
	0x23: {opRLA, izx, 8, true},
	0x24: {opBIT, zpg, 3, false},
	0x25: {opAND, zpg, 3, false},
	0x26: {opROL, zpg, 5, false},
	0x27: {opRLA, zpg, 5, true},
	0x28: {opPLP, imp, 4, false},
	0x29: {opAND, imm, 2, false},
	0x2A: {opROL, acc, 2, false},
	0x2B: {opANC, imm, 2, true},
	0x2C: {opBIT, abs, 4, false},
	0x2D: {opAND, abs, 4, false},
	0x2E: {opROL, abs, 6, false},
	0x2F: {opRLA, abs, 6, true},
	// $30-$3F
	0x30: {opBMI, rel, 2, false},
	0x31: {opAND, izy, 5, false},
	0x32: {opJAM, imp, 2, true},
	0x33: {opRLA, izy, 8, true},
	0x34: {opNOP, zpx, 4, true},
	0x35: {opAND, zpx, 4, false},
	0x36: {opROL, zpx, 6, false},
	0x37: {opRLA, zpx, 6, true},
	0x38: {opSEC, imp, 2, false},
	0x39: {opAND, aby, 4, false},
	0x3A: {opNOP, imp, 2, true},
	0x3B: {opRLA, aby, 7, true},
	0x3C: {opNOP, abx, 4, true},
	0x3D: {opAND, abx, 4, false},
	0x3E: {opROL, abx, 7, false},
	0x3F: {opRLA, abx, 7, true},
	// $40-$4F
	0x40: {opRTI, imp, 6, false},
	0x41: {opEOR, izx, 6, false},
	0x42: {opJAM, imp, 2, true},
	0x43: {opSRE, izx, 8, true},
	0x44: {opNOP, zpg, 3, true},
	0x45: {opEOR, zpg, 3, false},
	0x46: {opLSR, zpg, 5, false},
	0x47: {opSRE, zpg, 5, true},
	0x48: {opPHA, imp, 3, false},
	0x49: {opEOR, imm, 2, false},
	0x4A: {opLSR, acc, 2, false},
	0x4B: {opALR, imm, 2, true},
	0x4C: {opJMP, abs, 3, false},
	0x4D: {opEOR, abs, 4, false},
	0x4E: {opLSR, abs, 6, false},
	0x4F: {opSRE, abs, 6, true},
	// $50-$5F
	0x50: {opBVC, rel, 2, false},
	0x51: {opEOR, izy, 5, false},
	0x52: {opJAM, imp, 2, true},
	0x53: {opSRE, izy, 8, true},
	0x54: {opNOP, zpx, 4, true},
	0x55: {opEOR, zpx, 4, false},
	0x56: {opLSR, zpx, 6, false},
	0x57: {opSRE, zpx, 6, true},
	0x58: {opCLI, imp, 2, false},
	0x59: {opEOR, aby, 4, false},
	0x5A: {opNOP, imp, 2, true},
	0x5B: {opSRE, aby, 7, true},
	0x5C: {opNOP, abx, 4, true},
	0x5D: {opEOR, abx, 4, false},
	0x5E: {opLSR, abx, 7, false},
	0x5F: {opSRE, abx, 7, true},
	// $60-$6F
	0x60: {opRTS, imp, 6, false},
	0x61: {opADC, izx, 6, false},
	0x62: {opJAM, imp, 2, true},
	0x63: {opRRA, izx, 8, true},
	0x64: {opNOP, zpg, 3, true},
	0x65: {opADC, zpg, 3, false},
	0x66: {opROR, zpg, 5, false},
	0x67: {opRRA, zpg, 5, true},
	0x68: {opPLA, imp, 4, false},
	0x69: {opADC, imm, 2, false},
	0x6A: {opROR, acc, 2, false},
	0x6B: {opARR, imm, 2, true},
	0x6C: {opJMP, ind, 5, false},
	0x6D: {opADC, abs, 4, false},
	0x6E: {opROR, abs, 6, false},
	0x6F: {opRRA, abs, 6, true},
	// $70-$7F
	0x70: {opBVS, rel, 2, false},
	0x71: {opADC, izy, 5, false},
	0x72: {opJAM, imp, 2, true},
	0x73: {opRRA, izy, 8, true},
	0x74: {opNOP, zpx, 4, true},
	0x75: {opADC, zpx, 4, false},
	0x76: {opROR, zpx, 6, false},
	0x77: {opRRA, zpx, 6, true},
	0x78: {opSEI, imp, 2, false},
	0x79: {opADC, aby, 4, false},
	0x7A: {opNOP, imp, 2, true},
	0x7B: {opRRA, aby, 7, true},
	0x7C: {opNOP, abx, 4, true},
	0x7D: {opADC, abx, 4, false},
	0x7E: {opROR, abx, 7, false},
	0x7F: {opRRA, abx, 7, true},
	// $80-$8F
	0x80: {opNOP, imm, 2, true},
	0x81: {opSTA, izx, 6, false},
	0x82: {opNOP, imm, 2, true},
	0x83: {opSAX, izx, 6, true},
	0x84: {opSTY, zpg, 3, false},
	0x85: {opSTA, zpg, 3, false},
	0x86: {opSTX, zpg, 3, false},
	0x87: {opSAX, zpg, 3, true},
	0x88: {opDEY, imp, 2, false},
	0x89: {opNOP, imm, 2, true},
	0x8A: {opTXA, imp, 2, false},
	0x8B: {opANE, imm, 2, true},
	0x8C: {opSTY, abs, 4, false},
	0x8D: {opSTA, abs, 4, false},
	0x8E: {opSTX, abs, 4, false},
	0x8F: {opSAX, abs, 4, true},
	// $90-$9F
	0x90: {opBCC, rel, 2, false},
	0x91: {opSTA, izy, 6, false},
	0x92: {opJAM, imp, 2, true},
	0x93: {opSHA, izy, 6, true},
	0x94: {opSTY, zpx, 4, false},
	0x95: {opSTA, zpx, 4, false},
	0x96: {opSTX, zpy, 4, false},
	0x97: {opSAX, zpy, 4, true},
	0x98: {opTYA, imp, 2, false},
	0x99: {opSTA, aby, 5, false},
	0x9A: {opTXS, imp, 2, false},
	0x9B: {opTAS, aby, 5, true},
	0x9C: {opSHY, abx, 5, true},
	0x9D: {opSTA, abx, 5, false},
	0x9E: {opSHX, aby, 5, true},
	0x9F: {opSHA, aby, 5, true},
	// $A0-$AF
	0xA0: {opLDY, imm, 2, false},
	0xA1: {opLDA, izx, 6, false},
	0xA2: {opLDX, imm, 2, false},
	0xA3: {opLAX, izx, 6, true},
	0xA4: {opLDY, zpg, 3, false},
	0xA5: {opLDA, zpg, 3, false},
	0xA6: {opLDX, zpg, 3, false},
	0xA7: {opLAX, zpg, 3, true},
	0xA8: {opTAY, imp, 2, false},
	0xA9: {opLDA, imm, 2, false},
	0xAA: {opTAX, imp, 2, false},
	0xAB: {opLXA, imm, 2, true},
	0xAC: {opLDY, abs, 4, false},
	0xAD: {opLDA, abs, 4, false},
	0xAE: {opLDX, abs, 4, false},
	0xAF: {opLAX, abs, 4, true},
	// $B0-$BF
	0xB0: {opBCS, rel, 2, false},
	0xB1: {opLDA, izy, 5, false},
	0xB2: {opJAM, imp, 2, true},
	0xB3: {opLAX, izy, 5, true},
	0xB4: {opLDY, zpx, 4, false},
	0xB5: {opLDA, zpx, 4, false},
	0xB6: {opLDX, zpy, 4, false},
	0xB7: {opLAX, zpy, 4, true},
	0xB8: {opCLV, imp, 2, false},
	0xB9: {opLDA, aby, 4, false},
	0xBA: {opTSX, imp, 2, false},
	0xBB: {opLAS, aby, 4, true},
	0xBC: {opLDY, abx, 4, false},
	0xBD: {opLDA, abx, 4, false},
	0xBE: {opLDX, aby, 4, false},
	0xBF: {opLAX, aby, 4, true},
	// $C0-$CF
	0xC0: {opCPY, imm, 2, false},
	0xC1: {opCMP, izx, 6, false},
	0xC2: {opNOP, imm, 2, true},
	0xC3: {opDCP, izx, 8, true},
	0xC4: {opCPY, zpg, 3, false},
	0xC5: {opCMP, zpg, 3, false},
	0xC6: {opDEC, zpg, 5, false},
	0xC7: {opDCP, zpg, 5, true},
	0xC8: {opINY, imp, 2, false},
	0xC9: {opCMP, imm, 2, false},
	0xCA: {opDEX, imp, 2, false},
	0xCB: {opSBX, imm, 2, true},
	0xCC: {opCPY, abs, 4, false},
	0xCD: {opCMP, abs, 4, false},
	0xCE: {opDEC, abs, 6, false},
	0xCF: {opDCP, abs, 6, true},
	// $D0-$DF
	0xD0: {opBNE, rel, 2, false},
	0xD1: {opCMP, izy, 5, false},
	0xD2: {opJAM, imp, 2, true},
	0xD3: {opDCP, izy, 8, true},
	0xD4: {opNOP, zpx, 4, true},
	0xD5: {opCMP, zpx, 4, false},
	0xD6: {opDEC, zpx, 6, false},
	0xD7: {opDCP, zpx, 6, true},
	0xD8: {opCLD, imp, 2, false},
	0xD9: {opCMP, aby, 4, false},
	0xDA: {opNOP, imp, 2, true},
	0xDB: {opDCP, aby, 7, true},
	0xDC: {opNOP, abx, 4, true},
	0xDD: {opCMP, abx, 4, false},
	0xDE: {opDEC, abx, 7, false},
	0xDF: {opDCP, abx, 7, true},
	// $E0-$EF
	0xE0: {opCPX, imm, 2, false},
	0xE1: {opSBC, izx, 6, false},
	0xE2: {opNOP, imm, 2, true},
	0xE3: {opISB, izx, 8, true},
	0xE4: {opCPX, zpg, 3, false},
	0xE5: {opSBC, zpg, 3, false},
	0xE6: {opINC, zpg, 5, false},
	0xE7: {opISB, zpg, 5, true},
	0xE8: {opINX, imp, 2, false},
	0xE9: {opSBC, imm, 2, false},
	0xEA: {opNOP, imp, 2, false},
	0xEB: {opUSB, imm, 2, true},
	0xEC: {opCPX, abs, 4, false},
	0xED: {opSBC, abs, 4, false},
	0xEE: {opINC, abs, 6, false},
	0xEF: {opISB, abs, 6, true},
	// $F0-$FF
	0xF0: {opBEQ, rel, 2, false},
	0xF1: {opSBC, izy, 5, false},
	0xF2: {opJAM, imp, 2, true},
	0xF3: {opISB, izy, 8, true},
	0xF4: {opNOP, zpx, 4, true},
	0xF5: {opSBC, zpx, 4, false},
	0xF6: {opINC, zpx, 6, false},
	0xF7: {opISB, zpx, 6, true},
	0xF8: {opSED, imp, 2, false},
	0xF9: {opSBC, aby, 4, false},
	0xFA: {opNOP, imp, 2, true},
	0xFB: {opISB, aby, 7, true},
	0xFC: {opNOP, abx, 4, true},
	0xFD: {opSBC, abx, 4, false},
	0xFE: {opINC, abx, 7, false},
	0xFF: {opISB, abx, 7, true},
}
