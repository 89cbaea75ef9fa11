package z80

// initEDOps builds the ED-prefix dispatch table. Every opcode ED never
// assigns here falls to opEDUnimplemented, which matches real silicon's
// behavior for the large swath of undefined ED codes: an 8-T-state,
// two-byte no-op.
func (c *CPU) initEDOps() {
	for i := range c.edOps {
		c.edOps[i] = (*CPU).opEDUnimplemented
	}

	for opcode := byte(0x40); opcode <= 0x78; opcode += 8 {
		op := opcode
		reg := byte((op >> 3) & 0x07)
		c.edOps[op] = func(cpu *CPU) {
			cpu.opInRegC(reg)
		}
	}
	for opcode := byte(0x41); opcode <= 0x79; opcode += 8 {
		op := opcode
		reg := byte((op >> 3) & 0x07)
		c.edOps[op] = func(cpu *CPU) {
			cpu.opOutRegC(reg)
		}
	}

	for _, op := range []byte{0x44, 0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C} {
		c.edOps[op] = (*CPU).opNEG
	}

	c.edOps[0x47] = (*CPU).opLDIA
	c.edOps[0x4F] = (*CPU).opLDRA
	c.edOps[0x57] = (*CPU).opLDAI
	c.edOps[0x5F] = (*CPU).opLDAR

	imSlots := map[byte]byte{
		0x46: interruptMode0, 0x66: interruptMode0, 0x6E: interruptMode0,
		0x56: interruptMode1, 0x76: interruptMode1,
		0x5E: interruptMode2, 0x7E: interruptMode2,
	}
	for opcode, mode := range imSlots {
		c.edOps[opcode] = setIM(mode)
	}

	for _, op := range []byte{0x45, 0x55, 0x65, 0x75} {
		c.edOps[op] = (*CPU).opRETN
	}
	for _, op := range []byte{0x4D, 0x5D, 0x6D, 0x7D} {
		c.edOps[op] = (*CPU).opRETI
	}

	c.edOps[0x67] = (*CPU).opRRD
	c.edOps[0x6F] = (*CPU).opRLD

	c.edOps[0xA0] = (*CPU).opLDI
	c.edOps[0xB0] = (*CPU).opLDIR
	c.edOps[0xA8] = (*CPU).opLDD
	c.edOps[0xB8] = (*CPU).opLDDR
	c.edOps[0xA1] = (*CPU).opCPI
	c.edOps[0xB1] = (*CPU).opCPIR
	c.edOps[0xA9] = (*CPU).opCPD
	c.edOps[0xB9] = (*CPU).opCPDR
	c.edOps[0xA2] = (*CPU).opINI
	c.edOps[0xB2] = (*CPU).opINIR
	c.edOps[0xAA] = (*CPU).opIND
	c.edOps[0xBA] = (*CPU).opINDR
	c.edOps[0xA3] = (*CPU).opOUTI
	c.edOps[0xB3] = (*CPU).opOTIR
	c.edOps[0xAB] = (*CPU).opOUTD
	c.edOps[0xBB] = (*CPU).opOTDR

	c.edOps[0x43] = (*CPU).opLDNNBC
	c.edOps[0x4B] = (*CPU).opLDBCNNmem
	c.edOps[0x53] = (*CPU).opLDNNDE
	c.edOps[0x5B] = (*CPU).opLDDENNmem
	c.edOps[0x63] = (*CPU).opLDNNHLed
	c.edOps[0x6B] = (*CPU).opLDHLNNmem
	c.edOps[0x73] = (*CPU).opLDNNSP
	c.edOps[0x7B] = (*CPU).opLDSPNNmem

	c.edOps[0x4A] = (*CPU).opADCHLBC
	c.edOps[0x5A] = (*CPU).opADCHLDE
	c.edOps[0x6A] = (*CPU).opADCHLHL
	c.edOps[0x7A] = (*CPU).opADCHLSP
	c.edOps[0x42] = (*CPU).opSBCHLBC
	c.edOps[0x52] = (*CPU).opSBCHLDE
	c.edOps[0x62] = (*CPU).opSBCHLHL
	c.edOps[0x72] = (*CPU).opSBCHLSP
}

func (c *CPU) opEDUnimplemented() {
	c.tick(8)
}

// opInRegC implements IN r,(C); register code 6 is the undocumented
// "IN (C)" form that sets flags from the port read without storing it
// anywhere.
func (c *CPU) opInRegC(reg byte) {
	value := c.in(c.BC())
	if reg != 6 {
		c.writeReg8Plain(reg, value)
	}
	c.updateInFlags(value)
	c.tick(12)
}

// opOutRegC implements OUT (C),r; register code 6 is the undocumented
// "OUT (C),0" form.
func (c *CPU) opOutRegC(reg byte) {
	var value byte
	if reg == 6 {
		value = 0
	} else {
		value = c.readReg8Plain(reg)
	}
	c.out(c.BC(), value)
	c.tick(12)
}

func (c *CPU) opNEG() {
	c.negA()
	c.tick(8)
}

func (c *CPU) opRRD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value>>4)|(c.A<<4))
	c.A = (c.A & 0xF0) | (value & 0x0F)
	c.updateAParityFlagsPreserveCarry()
	c.tick(18)
}

func (c *CPU) opRLD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value<<4)|(c.A&0x0F))
	c.A = (c.A & 0xF0) | (value >> 4)
	c.updateAParityFlagsPreserveCarry()
	c.tick(18)
}

func (c *CPU) opLDNNBC() {
	addr := c.fetchWord()
	value := c.BC()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.tick(20)
}

func (c *CPU) opLDBCNNmem() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetBC(uint16(high)<<8 | uint16(low))
	c.tick(20)
}

func (c *CPU) opLDNNDE() {
	addr := c.fetchWord()
	value := c.DE()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.tick(20)
}

func (c *CPU) opLDDENNmem() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetDE(uint16(high)<<8 | uint16(low))
	c.tick(20)
}

func (c *CPU) opLDNNHLed() {
	addr := c.fetchWord()
	value := c.HL()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.tick(20)
}

func (c *CPU) opLDHLNNmem() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetHL(uint16(high)<<8 | uint16(low))
	c.tick(20)
}

func (c *CPU) opLDNNSP() {
	addr := c.fetchWord()
	c.write(addr, byte(c.SP))
	c.write(addr+1, byte(c.SP>>8))
	c.tick(20)
}

func (c *CPU) opLDSPNNmem() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SP = uint16(high)<<8 | uint16(low)
	c.tick(20)
}

func (c *CPU) opADCHLBC() { c.adcHL(c.BC()); c.tick(15) }
func (c *CPU) opADCHLDE() { c.adcHL(c.DE()); c.tick(15) }
func (c *CPU) opADCHLHL() { c.adcHL(c.HL()); c.tick(15) }
func (c *CPU) opADCHLSP() { c.adcHL(c.SP); c.tick(15) }
func (c *CPU) opSBCHLBC() { c.sbcHL(c.BC()); c.tick(15) }
func (c *CPU) opSBCHLDE() { c.sbcHL(c.DE()); c.tick(15) }
func (c *CPU) opSBCHLHL() { c.sbcHL(c.HL()); c.tick(15) }
func (c *CPU) opSBCHLSP() { c.sbcHL(c.SP); c.tick(15) }
