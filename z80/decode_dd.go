package z80

// initDDOps builds the DD-prefix table. Most of the 256 entries are left
// at opDDUnimplemented, which re-dispatches through the base table with
// a 4-cycle tax — this is how opcodes like "LD B,H" correctly become
// "LD B,IXH" under a DD prefix without a dedicated DD-table entry: the
// base opLDRegReg still reads register 4/5 through readIndexHigh/Low,
// and prefixMode is still set to DD while the base op runs.
//
// Only the opcodes that address memory through IX (indexed loads/ALU,
// the whole-pair loads/arithmetic, PUSH/POP, JP (IX), EX (SP),IX) need
// explicit entries, since those require a displacement fetch or operate
// on IX as a pair rather than falling back to an H/L-field reinterpretation.
func (c *CPU) initDDOps() {
	for i := range c.ddOps {
		c.ddOps[i] = (*CPU).opDDUnimplemented
	}

	c.ddOps[0x21] = (*CPU).opLDIXNN
	c.ddOps[0x22] = (*CPU).opLDNNIX
	c.ddOps[0x2A] = (*CPU).opLDIXNNMem
	c.ddOps[0xE5] = (*CPU).opPUSHIX
	c.ddOps[0xE1] = (*CPU).opPOPIX
	c.ddOps[0xF9] = (*CPU).opLDSPIX
	c.ddOps[0x36] = (*CPU).opLDIXdN
	c.ddOps[0x34] = (*CPU).opINCIXd
	c.ddOps[0x35] = (*CPU).opDECIXd
	c.ddOps[0xE9] = (*CPU).opJPIX
	c.ddOps[0xCB] = (*CPU).opDDCBPrefix
	c.ddOps[0xE3] = (*CPU).opEXSPIX
	c.ddOps[0x09] = (*CPU).opADDIXBC
	c.ddOps[0x19] = (*CPU).opADDIXDE
	c.ddOps[0x29] = (*CPU).opADDIXIX
	c.ddOps[0x39] = (*CPU).opADDIXSP
	c.ddOps[0x23] = (*CPU).opINCIX
	c.ddOps[0x2B] = (*CPU).opDECIX

	for opcode := byte(0x46); opcode <= 0x7E; opcode += 0x08 {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		dest := byte((op >> 3) & 0x07)
		c.ddOps[op] = func(cpu *CPU) {
			cpu.opLDRegIXd(dest)
		}
	}
	for opcode := byte(0x70); opcode <= 0x77; opcode++ {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		src := byte(op & 0x07)
		c.ddOps[op] = func(cpu *CPU) {
			cpu.opLDIXdReg(src)
		}
	}
	for opcode := byte(0x86); opcode <= 0xBE; opcode += 0x08 {
		op := opcode
		alu := aluOp((op >> 3) & 0x07)
		c.ddOps[op] = func(cpu *CPU) {
			cpu.opALUIXd(alu)
		}
	}
}

func (c *CPU) opDDPrefix() {
	opcode := c.fetchOpcode()
	c.prefixMode = prefixModeDD
	c.prefixOpcode = opcode
	c.ddOps[opcode](c)
	c.prefixMode = prefixModeNone
}

func (c *CPU) opDDUnimplemented() {
	c.tick(4)
	c.baseOps[c.prefixOpcode](c)
}

// opDDCBPrefix consumes the displacement and opcode bytes of a DDCB
// (IX-indexed bit/rotate) instruction but performs no semantic effect.
// IX-indexed bit operations are out of scope for this core; the cost
// still matches real hardware's 23 T-states so timing-sensitive code
// paces correctly even though the effect is a no-op.
func (c *CPU) opDDCBPrefix() {
	c.fetchByte()
	c.fetchByte()
	c.tick(23)
}

func (c *CPU) opLDIXNN() {
	c.IX = c.fetchWord()
	c.tick(14)
}

func (c *CPU) opLDNNIX() {
	addr := c.fetchWord()
	c.write(addr, byte(c.IX))
	c.write(addr+1, byte(c.IX>>8))
	c.tick(20)
}

func (c *CPU) opLDIXNNMem() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.IX = uint16(high)<<8 | uint16(low)
	c.tick(20)
}

func (c *CPU) opPUSHIX() {
	c.pushWord(c.IX)
	c.tick(15)
}

func (c *CPU) opPOPIX() {
	c.IX = c.popWord()
	c.tick(14)
}

func (c *CPU) opLDSPIX() {
	c.SP = c.IX
	c.tick(10)
}

func (c *CPU) opLDIXdN() {
	disp := int8(c.fetchByte())
	value := c.fetchByte()
	addr := uint16(int32(c.IX) + int32(disp))
	c.write(addr, value)
	c.tick(19)
}

func (c *CPU) opINCIXd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	value := c.inc8(c.read(addr))
	c.write(addr, value)
	c.tick(23)
}

func (c *CPU) opDECIXd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	value := c.dec8(c.read(addr))
	c.write(addr, value)
	c.tick(23)
}

func (c *CPU) opJPIX() {
	c.PC = c.IX
	c.tick(8)
}

func (c *CPU) opEXSPIX() {
	low := c.read(c.SP)
	high := c.read(c.SP + 1)
	memVal := uint16(high)<<8 | uint16(low)
	c.write(c.SP, byte(c.IX))
	c.write(c.SP+1, byte(c.IX>>8))
	c.IX = memVal
	c.tick(23)
}

func (c *CPU) opADDIXBC() { c.addIX(c.BC()); c.tick(15) }
func (c *CPU) opADDIXDE() { c.addIX(c.DE()); c.tick(15) }
func (c *CPU) opADDIXIX() { c.addIX(c.IX); c.tick(15) }
func (c *CPU) opADDIXSP() { c.addIX(c.SP); c.tick(15) }

func (c *CPU) opINCIX() {
	c.IX++
	c.tick(10)
}

func (c *CPU) opDECIX() {
	c.IX--
	c.tick(10)
}

func (c *CPU) opLDRegIXd(dest byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	c.writeReg8Plain(dest, c.read(addr))
	c.tick(19)
}

func (c *CPU) opLDIXdReg(src byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	c.write(addr, c.readReg8Plain(src))
	c.tick(19)
}

func (c *CPU) opALUIXd(op aluOp) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	c.performALU(op, c.read(addr))
	c.tick(19)
}
