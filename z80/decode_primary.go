package z80

// regPair names the four 16-bit pairs the "group 1" opcodes (LD rr,nn,
// ADD HL,rr, INC rr, DEC rr) index by bits 4-5 of the opcode.
type regPair byte

const (
	pairBC regPair = iota
	pairDE
	pairHL
	pairSP
)

func (c *CPU) getPair(p regPair) uint16 {
	switch p {
	case pairBC:
		return c.BC()
	case pairDE:
		return c.DE()
	case pairHL:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) setPair(p regPair, value uint16) {
	switch p {
	case pairBC:
		c.SetBC(value)
	case pairDE:
		c.SetDE(value)
	case pairHL:
		c.SetHL(value)
	default:
		c.SP = value
	}
}

// pushPopPair names the four 16-bit pairs PUSH/POP index by bits 4-5 —
// identical to regPair except the fourth slot is AF, not SP.
type pushPopPair byte

const (
	ppBC pushPopPair = iota
	ppDE
	ppHL
	ppAF
)

func (c *CPU) getPushPair(p pushPopPair) uint16 {
	switch p {
	case ppBC:
		return c.BC()
	case ppDE:
		return c.DE()
	case ppHL:
		return c.HL()
	default:
		return c.AF()
	}
}

func (c *CPU) setPushPair(p pushPopPair, value uint16) {
	switch p {
	case ppBC:
		c.SetBC(value)
	case ppDE:
		c.SetDE(value)
	case ppHL:
		c.SetHL(value)
	default:
		c.SetAF(value)
	}
}

// condition is one of the eight flag tests the Jp/Jr/Call/Ret-cc opcode
// families share, keyed by the opcode's 3-bit cc field.
type condition struct {
	mask  byte
	sense bool
}

var conditions = [8]condition{
	{z80FlagZ, false},  // NZ
	{z80FlagZ, true},   // Z
	{z80FlagC, false},  // NC
	{z80FlagC, true},   // C
	{z80FlagPV, false}, // PO
	{z80FlagPV, true},  // PE
	{z80FlagS, false},  // P (sign positive)
	{z80FlagS, true},   // M (sign negative)
}

func (c *CPU) test(cc byte) bool {
	cond := conditions[cc&0x07]
	return c.Flag(cond.mask) == cond.sense
}

// initBaseOps builds the unprefixed 256-entry opcode table.
func (c *CPU) initBaseOps() {
	for i := range c.baseOps {
		c.baseOps[i] = (*CPU).opUnimplemented
	}

	c.baseOps[0x00] = (*CPU).opNOP
	c.baseOps[0x76] = (*CPU).opHALT

	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dest := byte((opcode >> 3) & 0x07)
		src := byte(opcode & 0x07)
		c.baseOps[opcode] = func(cpu *CPU) {
			cpu.opLDRegReg(dest, src)
		}
	}

	for reg := byte(0); reg < 8; reg++ {
		opcode := 0x06 + reg<<3
		dest := reg
		c.baseOps[opcode] = func(cpu *CPU) {
			cpu.opLDRegImm(dest)
		}
	}

	aluBands := []struct {
		start byte
		op    aluOp
	}{
		{0x80, aluAdd}, {0x88, aluAdc}, {0x90, aluSub}, {0x98, aluSbc},
		{0xA0, aluAnd}, {0xA8, aluXor}, {0xB0, aluOr}, {0xB8, aluCp},
	}
	for _, band := range aluBands {
		for opcode := band.start; opcode < band.start+8; opcode++ {
			src := opcode & 0x07
			alu := band.op
			c.baseOps[opcode] = func(cpu *CPU) {
				cpu.opALUReg(alu, src)
			}
		}
	}
	c.baseOps[0xC6] = func(cpu *CPU) { cpu.performALU(aluAdd, cpu.fetchByte()); cpu.tick(7) }
	c.baseOps[0xCE] = func(cpu *CPU) { cpu.performALU(aluAdc, cpu.fetchByte()); cpu.tick(7) }
	c.baseOps[0xD6] = func(cpu *CPU) { cpu.performALU(aluSub, cpu.fetchByte()); cpu.tick(7) }
	c.baseOps[0xDE] = func(cpu *CPU) { cpu.performALU(aluSbc, cpu.fetchByte()); cpu.tick(7) }
	c.baseOps[0xE6] = func(cpu *CPU) { cpu.performALU(aluAnd, cpu.fetchByte()); cpu.tick(7) }
	c.baseOps[0xEE] = func(cpu *CPU) { cpu.performALU(aluXor, cpu.fetchByte()); cpu.tick(7) }
	c.baseOps[0xF6] = func(cpu *CPU) { cpu.performALU(aluOr, cpu.fetchByte()); cpu.tick(7) }
	c.baseOps[0xFE] = func(cpu *CPU) { cpu.performALU(aluCp, cpu.fetchByte()); cpu.tick(7) }

	c.baseOps[0x27] = (*CPU).opDAA
	c.baseOps[0x2F] = (*CPU).opCPL
	c.baseOps[0x37] = (*CPU).opSCF
	c.baseOps[0x3F] = (*CPU).opCCF

	for _, p := range [4]regPair{pairBC, pairDE, pairHL, pairSP} {
		pair := p
		base := byte(pair) << 4
		c.baseOps[0x01+base] = func(cpu *CPU) { cpu.setPair(pair, cpu.fetchWord()); cpu.tick(10) }
		c.baseOps[0x09+base] = func(cpu *CPU) { cpu.addHL(cpu.getPair(pair)); cpu.tick(11) }
		c.baseOps[0x03+base] = func(cpu *CPU) { cpu.setPair(pair, cpu.getPair(pair)+1); cpu.tick(6) }
		c.baseOps[0x0B+base] = func(cpu *CPU) { cpu.setPair(pair, cpu.getPair(pair)-1); cpu.tick(6) }
	}

	for _, p := range [4]pushPopPair{ppBC, ppDE, ppHL, ppAF} {
		pair := p
		base := byte(pair) << 4
		c.baseOps[0xC5+base] = func(cpu *CPU) { cpu.pushWord(cpu.getPushPair(pair)); cpu.tick(11) }
		c.baseOps[0xC1+base] = func(cpu *CPU) { cpu.setPushPair(pair, cpu.popWord()); cpu.tick(10) }
	}

	for n := byte(0); n < 8; n++ {
		vector := uint16(n) * 8
		c.baseOps[0xC7+n*8] = func(cpu *CPU) { cpu.opRST(vector) }
	}

	for cc := byte(0); cc < 8; cc++ {
		cond := cc
		c.baseOps[0xC2+cc*8] = func(cpu *CPU) { cpu.jpCond(cpu.test(cond)) }
		c.baseOps[0xC4+cc*8] = func(cpu *CPU) { cpu.callCond(cpu.test(cond)) }
		c.baseOps[0xC0+cc*8] = func(cpu *CPU) { cpu.retCond(cpu.test(cond)) }
	}
	for cc := byte(0); cc < 4; cc++ {
		cond := cc
		c.baseOps[0x20+cc*8] = func(cpu *CPU) { cpu.jrCond(cpu.test(cond)) }
	}

	for _, reg := range []byte{0, 1, 2, 3, 4, 5, 7} {
		r := reg
		c.baseOps[0x04+r<<3] = func(cpu *CPU) { cpu.writeReg8(r, cpu.inc8(cpu.readReg8(r))); cpu.tick(4) }
		c.baseOps[0x05+r<<3] = func(cpu *CPU) { cpu.writeReg8(r, cpu.dec8(cpu.readReg8(r))); cpu.tick(4) }
	}
	c.baseOps[0x34] = (*CPU).opINCHLMem
	c.baseOps[0x35] = (*CPU).opDECHLMem

	c.baseOps[0xC3] = (*CPU).opJPNN
	c.baseOps[0x18] = (*CPU).opJR
	c.baseOps[0x10] = (*CPU).opDJNZ
	c.baseOps[0xCD] = (*CPU).opCALLNN
	c.baseOps[0xC9] = (*CPU).opRET
	c.baseOps[0xE3] = (*CPU).opEXSPHL
	c.baseOps[0x08] = (*CPU).opEXAF
	c.baseOps[0xEB] = (*CPU).opEXDEHL
	c.baseOps[0xD9] = (*CPU).opEXX
	c.baseOps[0xE9] = (*CPU).opJPHL
	c.baseOps[0x22] = (*CPU).opLDNNHL
	c.baseOps[0x2A] = (*CPU).opLDHLNN
	c.baseOps[0x32] = (*CPU).opLDNNA
	c.baseOps[0x3A] = (*CPU).opLDANN
	c.baseOps[0x02] = (*CPU).opLDBCA
	c.baseOps[0x0A] = (*CPU).opLDABC
	c.baseOps[0x12] = (*CPU).opLDDEA
	c.baseOps[0x1A] = (*CPU).opLDADE
	c.baseOps[0xF9] = (*CPU).opLDSPHL
	c.baseOps[0xD3] = (*CPU).opOUTNA
	c.baseOps[0xDB] = (*CPU).opINAN
	c.baseOps[0x07] = (*CPU).opRLCA
	c.baseOps[0x0F] = (*CPU).opRRCA
	c.baseOps[0x17] = (*CPU).opRLA
	c.baseOps[0x1F] = (*CPU).opRRA
	c.baseOps[0xCB] = (*CPU).opCBPrefix
	c.baseOps[0xDD] = (*CPU).opDDPrefix
	c.baseOps[0xFD] = (*CPU).opFDPrefix
	c.baseOps[0xED] = (*CPU).opEDPrefix
	c.baseOps[0xF3] = (*CPU).opDI
	c.baseOps[0xFB] = (*CPU).opEI
}

func (c *CPU) opUnimplemented() {
	c.tick(4)
}

func (c *CPU) opNOP() {
	c.tick(4)
}

func (c *CPU) opHALT() {
	c.Halted = true
	c.tick(4)
}

func (c *CPU) opLDRegReg(dest, src byte) {
	value := c.readReg8(src)
	c.writeReg8(dest, value)
	if dest == 6 || src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opLDRegImm(dest byte) {
	value := c.fetchByte()
	c.writeReg8(dest, value)
	if dest == 6 {
		c.tick(10)
	} else {
		c.tick(7)
	}
}

func (c *CPU) opALUReg(op aluOp, src byte) {
	value := c.readReg8(src)
	c.performALU(op, value)
	if src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opJPNN() { c.PC = c.fetchWord(); c.tick(10) }

func (c *CPU) opJR() {
	disp := int8(c.fetchByte())
	c.PC = uint16(int32(c.PC) + int32(disp))
	c.tick(12)
}

func (c *CPU) opDJNZ() {
	disp := int8(c.fetchByte())
	c.B--
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.tick(13)
	} else {
		c.tick(8)
	}
}

func (c *CPU) opCALLNN() {
	addr := c.fetchWord()
	c.pushWord(c.PC)
	c.PC = addr
	c.tick(17)
}

func (c *CPU) opRET() {
	c.PC = c.popWord()
	c.tick(10)
}

func (c *CPU) opEXSPHL() {
	low := c.read(c.SP)
	high := c.read(c.SP + 1)
	memVal := uint16(high)<<8 | uint16(low)
	hl := c.HL()
	c.write(c.SP, byte(hl))
	c.write(c.SP+1, byte(hl>>8))
	c.SetHL(memVal)
	c.tick(19)
}

func (c *CPU) opEXAF() {
	c.ExAF()
	c.tick(4)
}

func (c *CPU) opEXDEHL() {
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
	c.tick(4)
}

func (c *CPU) opEXX() {
	c.Exx()
	c.tick(4)
}

func (c *CPU) opJPHL() {
	c.PC = c.HL()
	c.tick(4)
}

func (c *CPU) opLDNNHL() {
	addr := c.fetchWord()
	value := c.HL()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.tick(16)
}

func (c *CPU) opLDHLNN() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetHL(uint16(high)<<8 | uint16(low))
	c.tick(16)
}

func (c *CPU) opLDNNA() {
	addr := c.fetchWord()
	c.write(addr, c.A)
	c.tick(13)
}

func (c *CPU) opLDANN() {
	addr := c.fetchWord()
	c.A = c.read(addr)
	c.tick(13)
}

func (c *CPU) opLDBCA() { c.write(c.BC(), c.A); c.tick(7) }
func (c *CPU) opLDABC() { c.A = c.read(c.BC()); c.tick(7) }
func (c *CPU) opLDDEA() { c.write(c.DE(), c.A); c.tick(7) }
func (c *CPU) opLDADE() { c.A = c.read(c.DE()); c.tick(7) }

func (c *CPU) opLDSPHL() {
	c.SP = c.HL()
	c.tick(6)
}

func (c *CPU) opOUTNA() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.out(port, c.A)
	c.tick(11)
}

// opINAN implements IN A,(n); unlike the ED-prefixed IN r,(C) family,
// this form never touches the flags.
func (c *CPU) opINAN() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.A = c.in(port)
	c.tick(11)
}

func (c *CPU) opRLCA() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *CPU) opRRCA() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *CPU) opRLA() {
	carryIn := c.Flag(z80FlagC)
	carryOut := c.A&0x80 != 0
	c.A = c.A << 1
	if carryIn {
		c.A |= 0x01
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *CPU) opRRA() {
	carryIn := c.Flag(z80FlagC)
	carryOut := c.A&0x01 != 0
	c.A = c.A >> 1
	if carryIn {
		c.A |= 0x80
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *CPU) opRST(vector uint16) {
	c.pushWord(c.PC)
	c.PC = vector
	c.tick(11)
}

func (c *CPU) opINCHLMem() {
	addr := c.HL()
	c.write(addr, c.inc8(c.read(addr)))
	c.tick(11)
}

func (c *CPU) opDECHLMem() {
	addr := c.HL()
	c.write(addr, c.dec8(c.read(addr)))
	c.tick(11)
}

func (c *CPU) jpCond(cond bool) {
	addr := c.fetchWord()
	if cond {
		c.PC = addr
	}
	c.tick(10)
}

func (c *CPU) jrCond(cond bool) {
	disp := int8(c.fetchByte())
	if cond {
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.tick(12)
	} else {
		c.tick(7)
	}
}

func (c *CPU) callCond(cond bool) {
	addr := c.fetchWord()
	if cond {
		c.pushWord(c.PC)
		c.PC = addr
		c.tick(17)
	} else {
		c.tick(10)
	}
}

func (c *CPU) retCond(cond bool) {
	if cond {
		c.PC = c.popWord()
		c.tick(11)
	} else {
		c.tick(5)
	}
}

func (c *CPU) opEDPrefix() {
	opcode := c.fetchOpcode()
	c.edOps[opcode](c)
}

// opFDPrefix stands in for the IY-indexed instruction set, which this
// core doesn't implement. It consumes the FD prefix and the following
// opcode byte and performs no semantic effect; callers relying on IY
// addressing are out of scope (see the core's documented register
// support). An FD CB sequence also consumes its displacement and opcode
// bytes and charges 23 T-states, the same cost-only no-op as DDCB.
func (c *CPU) opFDPrefix() {
	if c.fetchByte() == 0xCB {
		c.fetchByte()
		c.fetchByte()
		c.tick(23)
		return
	}
	c.tick(8)
}
