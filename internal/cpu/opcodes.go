package cpu

// Op identifies the operation performed by an opcode, independent of its
// addressing mode. The disassembler and the interpreter share this table so
// mnemonic, mode and cycle count can never drift between them.
type Op int

const (
	OpADC Op = iota
	OpAND
	OpASL
	OpBCC
	OpBCS
	OpBEQ
	OpBIT
	OpBMI
	OpBNE
	OpBPL
	OpBRA
	OpBRK
	OpBRL
	OpBVC
	OpBVS
	OpCLC
	OpCLD
	OpCLI
	OpCLV
	OpCMP
	OpCOP
	OpCPX
	OpCPY
	OpDEC
	OpDEX
	OpDEY
	OpEOR
	OpINC
	OpINX
	OpINY
	OpJML
	OpJMP
	OpJSL
	OpJSR
	OpLDA
	OpLDX
	OpLDY
	OpLSR
	OpMVN
	OpMVP
	OpNOP
	OpORA
	OpPEA
	OpPEI
	OpPER
	OpPHA
	OpPHB
	OpPHD
	OpPHK
	OpPHP
	OpPHX
	OpPHY
	OpPLA
	OpPLB
	OpPLD
	OpPLP
	OpPLX
	OpPLY
	OpREP
	OpROL
	OpROR
	OpRTI
	OpRTL
	OpRTS
	OpSBC
	OpSEC
	OpSED
	OpSEI
	OpSEP
	OpSTA
	OpSTP
	OpSTX
	OpSTY
	OpSTZ
	OpTAX
	OpTAY
	OpTCD
	OpTCS
	OpTDC
	OpTRB
	OpTSB
	OpTSC
	OpTSX
	OpTXA
	OpTXS
	OpTXY
	OpTYA
	OpTYX
	OpWAI
	OpWDM
	OpXBA
	OpXCE
)

// Instr describes one opcode: its mnemonic (for the disassembler), the
// operation it performs, its addressing mode, and its base cycle count
// before any mode-dependent or width-dependent adjustment.
type Instr struct {
	Mnemonic string
	Op       Op
	Mode     Mode
	Cycles   int
}

// OpcodeTable maps the 256 possible opcode bytes to their instruction
// descriptor. A zero-value Mnemonic marks a byte with no defined
// instruction on the 65C816; Step reports UnknownOpcode for those.
var OpcodeTable [256]Instr

func def(op int, mnemonic string, o Op, mode Mode, cycles int) {
	OpcodeTable[op] = Instr{Mnemonic: mnemonic, Op: o, Mode: mode, Cycles: cycles}
}

func init() {
	def(0x00, "BRK", OpBRK, ModeImmediate8, 7)
	def(0x01, "ORA", OpORA, ModeDirectIndirectX, 6)
	def(0x02, "COP", OpCOP, ModeImmediate8, 7)
	def(0x03, "ORA", OpORA, ModeStackRelative, 4)
	def(0x04, "TSB", OpTSB, ModeDirect, 5)
	def(0x05, "ORA", OpORA, ModeDirect, 3)
	def(0x06, "ASL", OpASL, ModeDirect, 5)
	def(0x07, "ORA", OpORA, ModeDirectIndirectLong, 6)
	def(0x08, "PHP", OpPHP, ModeImplied, 3)
	def(0x09, "ORA", OpORA, ModeImmediateM, 2)
	def(0x0A, "ASL", OpASL, ModeAccumulator, 2)
	def(0x0B, "PHD", OpPHD, ModeImplied, 4)
	def(0x0C, "TSB", OpTSB, ModeAbsolute, 6)
	def(0x0D, "ORA", OpORA, ModeAbsolute, 4)
	def(0x0E, "ASL", OpASL, ModeAbsolute, 6)
	def(0x0F, "ORA", OpORA, ModeLong, 5)

	def(0x10, "BPL", OpBPL, ModeRelative8, 2)
	def(0x11, "ORA", OpORA, ModeDirectIndirectY, 5)
	def(0x12, "ORA", OpORA, ModeDirectIndirect, 5)
	def(0x13, "ORA", OpORA, ModeStackRelativeIndirectY, 7)
	def(0x14, "TRB", OpTRB, ModeDirect, 5)
	def(0x15, "ORA", OpORA, ModeDirectX, 4)
	def(0x16, "ASL", OpASL, ModeDirectX, 6)
	def(0x17, "ORA", OpORA, ModeDirectIndirectLongY, 6)
	def(0x18, "CLC", OpCLC, ModeImplied, 2)
	def(0x19, "ORA", OpORA, ModeAbsoluteY, 4)
	def(0x1A, "INC", OpINC, ModeAccumulator, 2)
	def(0x1B, "TCS", OpTCS, ModeImplied, 2)
	def(0x1C, "TRB", OpTRB, ModeAbsolute, 6)
	def(0x1D, "ORA", OpORA, ModeAbsoluteX, 4)
	def(0x1E, "ASL", OpASL, ModeAbsoluteX, 7)
	def(0x1F, "ORA", OpORA, ModeLongX, 5)

	def(0x20, "JSR", OpJSR, ModeAbsolute, 6)
	def(0x21, "AND", OpAND, ModeDirectIndirectX, 6)
	def(0x22, "JSL", OpJSL, ModeLong, 8)
	def(0x23, "AND", OpAND, ModeStackRelative, 4)
	def(0x24, "BIT", OpBIT, ModeDirect, 3)
	def(0x25, "AND", OpAND, ModeDirect, 3)
	def(0x26, "ROL", OpROL, ModeDirect, 5)
	def(0x27, "AND", OpAND, ModeDirectIndirectLong, 6)
	def(0x28, "PLP", OpPLP, ModeImplied, 4)
	def(0x29, "AND", OpAND, ModeImmediateM, 2)
	def(0x2A, "ROL", OpROL, ModeAccumulator, 2)
	def(0x2B, "PLD", OpPLD, ModeImplied, 5)
	def(0x2C, "BIT", OpBIT, ModeAbsolute, 4)
	def(0x2D, "AND", OpAND, ModeAbsolute, 4)
	def(0x2E, "ROL", OpROL, ModeAbsolute, 6)
	def(0x2F, "AND", OpAND, ModeLong, 5)

	def(0x30, "BMI", OpBMI, ModeRelative8, 2)
	def(0x31, "AND", OpAND, ModeDirectIndirectY, 5)
	def(0x32, "AND", OpAND, ModeDirectIndirect, 5)
	def(0x33, "AND", OpAND, ModeStackRelativeIndirectY, 7)
	def(0x34, "BIT", OpBIT, ModeDirectX, 4)
	def(0x35, "AND", OpAND, ModeDirectX, 4)
	def(0x36, "ROL", OpROL, ModeDirectX, 6)
	def(0x37, "AND", OpAND, ModeDirectIndirectLongY, 6)
	def(0x38, "SEC", OpSEC, ModeImplied, 2)
	def(0x39, "AND", OpAND, ModeAbsoluteY, 4)
	def(0x3A, "DEC", OpDEC, ModeAccumulator, 2)
	def(0x3B, "TSC", OpTSC, ModeImplied, 2)
	def(0x3C, "BIT", OpBIT, ModeAbsoluteX, 4)
	def(0x3D, "AND", OpAND, ModeAbsoluteX, 4)
	def(0x3E, "ROL", OpROL, ModeAbsoluteX, 7)
	def(0x3F, "AND", OpAND, ModeLongX, 5)

	def(0x40, "RTI", OpRTI, ModeImplied, 6)
	def(0x41, "EOR", OpEOR, ModeDirectIndirectX, 6)
	def(0x42, "WDM", OpWDM, ModeImmediate8, 2)
	def(0x43, "EOR", OpEOR, ModeStackRelative, 4)
	def(0x44, "MVP", OpMVP, ModeBlockMove, 7)
	def(0x45, "EOR", OpEOR, ModeDirect, 3)
	def(0x46, "LSR", OpLSR, ModeDirect, 5)
	def(0x47, "EOR", OpEOR, ModeDirectIndirectLong, 6)
	def(0x48, "PHA", OpPHA, ModeImplied, 3)
	def(0x49, "EOR", OpEOR, ModeImmediateM, 2)
	def(0x4A, "LSR", OpLSR, ModeAccumulator, 2)
	def(0x4B, "PHK", OpPHK, ModeImplied, 3)
	def(0x4C, "JMP", OpJMP, ModeAbsolute, 3)
	def(0x4D, "EOR", OpEOR, ModeAbsolute, 4)
	def(0x4E, "LSR", OpLSR, ModeAbsolute, 6)
	def(0x4F, "EOR", OpEOR, ModeLong, 5)

	def(0x50, "BVC", OpBVC, ModeRelative8, 2)
	def(0x51, "EOR", OpEOR, ModeDirectIndirectY, 5)
	def(0x52, "EOR", OpEOR, ModeDirectIndirect, 5)
	def(0x53, "EOR", OpEOR, ModeStackRelativeIndirectY, 7)
	def(0x54, "MVN", OpMVN, ModeBlockMove, 7)
	def(0x55, "EOR", OpEOR, ModeDirectX, 4)
	def(0x56, "LSR", OpLSR, ModeDirectX, 6)
	def(0x57, "EOR", OpEOR, ModeDirectIndirectLongY, 6)
	def(0x58, "CLI", OpCLI, ModeImplied, 2)
	def(0x59, "EOR", OpEOR, ModeAbsoluteY, 4)
	def(0x5A, "PHY", OpPHY, ModeImplied, 3)
	def(0x5B, "TCD", OpTCD, ModeImplied, 2)
	def(0x5C, "JML", OpJML, ModeLong, 4)
	def(0x5D, "EOR", OpEOR, ModeAbsoluteX, 4)
	def(0x5E, "LSR", OpLSR, ModeAbsoluteX, 7)
	def(0x5F, "EOR", OpEOR, ModeLongX, 5)

	def(0x60, "RTS", OpRTS, ModeImplied, 6)
	def(0x61, "ADC", OpADC, ModeDirectIndirectX, 6)
	def(0x62, "PER", OpPER, ModeRelative16, 6)
	def(0x63, "ADC", OpADC, ModeStackRelative, 4)
	def(0x64, "STZ", OpSTZ, ModeDirect, 3)
	def(0x65, "ADC", OpADC, ModeDirect, 3)
	def(0x66, "ROR", OpROR, ModeDirect, 5)
	def(0x67, "ADC", OpADC, ModeDirectIndirectLong, 6)
	def(0x68, "PLA", OpPLA, ModeImplied, 4)
	def(0x69, "ADC", OpADC, ModeImmediateM, 2)
	def(0x6A, "ROR", OpROR, ModeAccumulator, 2)
	def(0x6B, "RTL", OpRTL, ModeImplied, 6)
	def(0x6C, "JMP", OpJMP, ModeAbsoluteIndirect, 5)
	def(0x6D, "ADC", OpADC, ModeAbsolute, 4)
	def(0x6E, "ROR", OpROR, ModeAbsolute, 6)
	def(0x6F, "ADC", OpADC, ModeLong, 5)

	def(0x70, "BVS", OpBVS, ModeRelative8, 2)
	def(0x71, "ADC", OpADC, ModeDirectIndirectY, 5)
	def(0x72, "ADC", OpADC, ModeDirectIndirect, 5)
	def(0x73, "ADC", OpADC, ModeStackRelativeIndirectY, 7)
	def(0x74, "STZ", OpSTZ, ModeDirectX, 4)
	def(0x75, "ADC", OpADC, ModeDirectX, 4)
	def(0x76, "ROR", OpROR, ModeDirectX, 6)
	def(0x77, "ADC", OpADC, ModeDirectIndirectLongY, 6)
	def(0x78, "SEI", OpSEI, ModeImplied, 2)
	def(0x79, "ADC", OpADC, ModeAbsoluteY, 4)
	def(0x7A, "PLY", OpPLY, ModeImplied, 4)
	def(0x7B, "TDC", OpTDC, ModeImplied, 2)
	def(0x7C, "JMP", OpJMP, ModeAbsoluteIndirectX, 6)
	def(0x7D, "ADC", OpADC, ModeAbsoluteX, 4)
	def(0x7E, "ROR", OpROR, ModeAbsoluteX, 7)
	def(0x7F, "ADC", OpADC, ModeLongX, 5)

	def(0x80, "BRA", OpBRA, ModeRelative8, 3)
	def(0x81, "STA", OpSTA, ModeDirectIndirectX, 6)
	def(0x82, "BRL", OpBRL, ModeRelative16, 4)
	def(0x83, "STA", OpSTA, ModeStackRelative, 4)
	def(0x84, "STY", OpSTY, ModeDirect, 3)
	def(0x85, "STA", OpSTA, ModeDirect, 3)
	def(0x86, "STX", OpSTX, ModeDirect, 3)
	def(0x87, "STA", OpSTA, ModeDirectIndirectLong, 6)
	def(0x88, "DEY", OpDEY, ModeImplied, 2)
	def(0x89, "BIT", OpBIT, ModeImmediateM, 2)
	def(0x8A, "TXA", OpTXA, ModeImplied, 2)
	def(0x8B, "PHB", OpPHB, ModeImplied, 3)
	def(0x8C, "STY", OpSTY, ModeAbsolute, 4)
	def(0x8D, "STA", OpSTA, ModeAbsolute, 4)
	def(0x8E, "STX", OpSTX, ModeAbsolute, 4)
	def(0x8F, "STA", OpSTA, ModeLong, 5)

	def(0x90, "BCC", OpBCC, ModeRelative8, 2)
	def(0x91, "STA", OpSTA, ModeDirectIndirectY, 6)
	def(0x92, "STA", OpSTA, ModeDirectIndirect, 5)
	def(0x93, "STA", OpSTA, ModeStackRelativeIndirectY, 7)
	def(0x94, "STY", OpSTY, ModeDirectX, 4)
	def(0x95, "STA", OpSTA, ModeDirectX, 4)
	def(0x96, "STX", OpSTX, ModeDirectY, 4)
	def(0x97, "STA", OpSTA, ModeDirectIndirectLongY, 6)
	def(0x98, "TYA", OpTYA, ModeImplied, 2)
	def(0x99, "STA", OpSTA, ModeAbsoluteY, 5)
	def(0x9A, "TXS", OpTXS, ModeImplied, 2)
	def(0x9B, "TXY", OpTXY, ModeImplied, 2)
	def(0x9C, "STZ", OpSTZ, ModeAbsolute, 4)
	def(0x9D, "STA", OpSTA, ModeAbsoluteX, 5)
	def(0x9E, "STZ", OpSTZ, ModeAbsoluteX, 5)
	def(0x9F, "STA", OpSTA, ModeLongX, 5)

	def(0xA0, "LDY", OpLDY, ModeImmediateX, 2)
	def(0xA1, "LDA", OpLDA, ModeDirectIndirectX, 6)
	def(0xA2, "LDX", OpLDX, ModeImmediateX, 2)
	def(0xA3, "LDA", OpLDA, ModeStackRelative, 4)
	def(0xA4, "LDY", OpLDY, ModeDirect, 3)
	def(0xA5, "LDA", OpLDA, ModeDirect, 3)
	def(0xA6, "LDX", OpLDX, ModeDirect, 3)
	def(0xA7, "LDA", OpLDA, ModeDirectIndirectLong, 6)
	def(0xA8, "TAY", OpTAY, ModeImplied, 2)
	def(0xA9, "LDA", OpLDA, ModeImmediateM, 2)
	def(0xAA, "TAX", OpTAX, ModeImplied, 2)
	def(0xAB, "PLB", OpPLB, ModeImplied, 4)
	def(0xAC, "LDY", OpLDY, ModeAbsolute, 4)
	def(0xAD, "LDA", OpLDA, ModeAbsolute, 4)
	def(0xAE, "LDX", OpLDX, ModeAbsolute, 4)
	def(0xAF, "LDA", OpLDA, ModeLong, 5)

	def(0xB0, "BCS", OpBCS, ModeRelative8, 2)
	def(0xB1, "LDA", OpLDA, ModeDirectIndirectY, 5)
	def(0xB2, "LDA", OpLDA, ModeDirectIndirect, 5)
	def(0xB3, "LDA", OpLDA, ModeStackRelativeIndirectY, 7)
	def(0xB4, "LDY", OpLDY, ModeDirectX, 4)
	def(0xB5, "LDA", OpLDA, ModeDirectX, 4)
	def(0xB6, "LDX", OpLDX, ModeDirectY, 4)
	def(0xB7, "LDA", OpLDA, ModeDirectIndirectLongY, 6)
	def(0xB8, "CLV", OpCLV, ModeImplied, 2)
	def(0xB9, "LDA", OpLDA, ModeAbsoluteY, 4)
	def(0xBA, "TSX", OpTSX, ModeImplied, 2)
	def(0xBB, "TYX", OpTYX, ModeImplied, 2)
	def(0xBC, "LDY", OpLDY, ModeAbsoluteX, 4)
	def(0xBD, "LDA", OpLDA, ModeAbsoluteX, 4)
	def(0xBE, "LDX", OpLDX, ModeAbsoluteY, 4)
	def(0xBF, "LDA", OpLDA, ModeLongX, 5)

	def(0xC0, "CPY", OpCPY, ModeImmediateX, 2)
	def(0xC1, "CMP", OpCMP, ModeDirectIndirectX, 6)
	def(0xC2, "REP", OpREP, ModeImmediate8, 3)
	def(0xC3, "CMP", OpCMP, ModeStackRelative, 4)
	def(0xC4, "CPY", OpCPY, ModeDirect, 3)
	def(0xC5, "CMP", OpCMP, ModeDirect, 3)
	def(0xC6, "DEC", OpDEC, ModeDirect, 5)
	def(0xC7, "CMP", OpCMP, ModeDirectIndirectLong, 6)
	def(0xC8, "INY", OpINY, ModeImplied, 2)
	def(0xC9, "CMP", OpCMP, ModeImmediateM, 2)
	def(0xCA, "DEX", OpDEX, ModeImplied, 2)
	def(0xCB, "WAI", OpWAI, ModeImplied, 3)
	def(0xCC, "CPY", OpCPY, ModeAbsolute, 4)
	def(0xCD, "CMP", OpCMP, ModeAbsolute, 4)
	def(0xCE, "DEC", OpDEC, ModeAbsolute, 6)
	def(0xCF, "CMP", OpCMP, ModeLong, 5)

	def(0xD0, "BNE", OpBNE, ModeRelative8, 2)
	def(0xD1, "CMP", OpCMP, ModeDirectIndirectY, 5)
	def(0xD2, "CMP", OpCMP, ModeDirectIndirect, 5)
	def(0xD3, "CMP", OpCMP, ModeStackRelativeIndirectY, 7)
	def(0xD4, "PEI", OpPEI, ModeDirect, 6)
	def(0xD5, "CMP", OpCMP, ModeDirectX, 4)
	def(0xD6, "DEC", OpDEC, ModeDirectX, 6)
	def(0xD7, "CMP", OpCMP, ModeDirectIndirectLongY, 6)
	def(0xD8, "CLD", OpCLD, ModeImplied, 2)
	def(0xD9, "CMP", OpCMP, ModeAbsoluteY, 4)
	def(0xDA, "PHX", OpPHX, ModeImplied, 3)
	def(0xDB, "STP", OpSTP, ModeImplied, 3)
	def(0xDC, "JML", OpJML, ModeAbsoluteIndirectLong, 6)
	def(0xDD, "CMP", OpCMP, ModeAbsoluteX, 4)
	def(0xDE, "DEC", OpDEC, ModeAbsoluteX, 7)
	def(0xDF, "CMP", OpCMP, ModeLongX, 5)

	def(0xE0, "CPX", OpCPX, ModeImmediateX, 2)
	def(0xE1, "SBC", OpSBC, ModeDirectIndirectX, 6)
	def(0xE2, "SEP", OpSEP, ModeImmediate8, 3)
	def(0xE3, "SBC", OpSBC, ModeStackRelative, 4)
	def(0xE4, "CPX", OpCPX, ModeDirect, 3)
	def(0xE5, "SBC", OpSBC, ModeDirect, 3)
	def(0xE6, "INC", OpINC, ModeDirect, 5)
	def(0xE7, "SBC", OpSBC, ModeDirectIndirectLong, 6)
	def(0xE8, "INX", OpINX, ModeImplied, 2)
	def(0xE9, "SBC", OpSBC, ModeImmediateM, 2)
	def(0xEA, "NOP", OpNOP, ModeImplied, 2)
	def(0xEB, "XBA", OpXBA, ModeImplied, 3)
	def(0xEC, "CPX", OpCPX, ModeAbsolute, 4)
	def(0xED, "SBC", OpSBC, ModeAbsolute, 4)
	def(0xEE, "INC", OpINC, ModeAbsolute, 6)
	def(0xEF, "SBC", OpSBC, ModeLong, 5)

	def(0xF0, "BEQ", OpBEQ, ModeRelative8, 2)
	def(0xF1, "SBC", OpSBC, ModeDirectIndirectY, 5)
	def(0xF2, "SBC", OpSBC, ModeDirectIndirect, 5)
	def(0xF3, "SBC", OpSBC, ModeStackRelativeIndirectY, 7)
	def(0xF4, "PEA", OpPEA, ModeAbsolute, 5)
	def(0xF5, "SBC", OpSBC, ModeDirectX, 4)
	def(0xF6, "INC", OpINC, ModeDirectX, 6)
	def(0xF7, "SBC", OpSBC, ModeDirectIndirectLongY, 6)
	def(0xF8, "SED", OpSED, ModeImplied, 2)
	def(0xF9, "SBC", OpSBC, ModeAbsoluteY, 4)
	def(0xFA, "PLX", OpPLX, ModeImplied, 4)
	def(0xFB, "XCE", OpXCE, ModeImplied, 2)
	def(0xFC, "JSR", OpJSR, ModeAbsoluteIndirectX, 8)
	def(0xFD, "SBC", OpSBC, ModeAbsoluteX, 4)
	def(0xFE, "INC", OpINC, ModeAbsoluteX, 7)
	def(0xFF, "SBC", OpSBC, ModeLongX, 5)
}
