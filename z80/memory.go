package z80

// fetchOpcode reads the byte at PC, advances PC, and bumps the refresh
// counter the way every opcode fetch (but not operand fetch) does on real
// silicon.
func (c *CPU) fetchOpcode() byte {
	opcode := c.read(c.PC)
	c.PC++
	c.incrementR()
	return opcode
}

// fetchByte reads an operand byte at PC and advances PC. Operand fetches
// do not touch R.
func (c *CPU) fetchByte() byte {
	value := c.read(c.PC)
	c.PC++
	return value
}

// fetchWord reads a little-endian 16-bit immediate following PC.
func (c *CPU) fetchWord() uint16 {
	low := c.fetchByte()
	high := c.fetchByte()
	return uint16(high)<<8 | uint16(low)
}

func (c *CPU) incrementR() {
	c.R = (c.R & 0x80) | ((c.R + 1) & 0x7F)
}

func (c *CPU) read(addr uint16) byte         { return c.bus.Read(addr) }
func (c *CPU) write(addr uint16, value byte) { c.bus.Write(addr, value) }
func (c *CPU) in(port uint16) byte           { return c.bus.In(port) }
func (c *CPU) out(port uint16, value byte)   { c.bus.Out(port, value) }
func (c *CPU) tick(cycles int) {
	c.Cycles += uint64(cycles)
	c.bus.Tick(cycles)
}

// pushWord implements the PUSH stack discipline: high byte at SP-1, low
// byte at SP-2, SP -= 2.
func (c *CPU) pushWord(value uint16) {
	c.SP--
	c.write(c.SP, byte(value>>8))
	c.SP--
	c.write(c.SP, byte(value))
}

// popWord implements the POP stack discipline: low byte at SP, high byte
// at SP+1, SP += 2.
func (c *CPU) popWord() uint16 {
	low := c.read(c.SP)
	c.SP++
	high := c.read(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

// plainRegPtr resolves a register-field encoding to its backing byte for
// the five encodings (B,C,D,E,A) that never change meaning under a DD
// prefix. The other three encodings (H/L, which redirect through the
// active index prefix, and 6, the memory operand) have no fixed storage
// and are handled by the caller.
func (c *CPU) plainRegPtr(code byte) *byte {
	switch code {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 7:
		return &c.A
	default:
		return nil
	}
}

// readReg8 resolves one of the eight Z80 register-field encodings,
// routing register 4/5 (H/L) through the active index prefix and reading
// memory at HL for encoding 6; the (IX+d) forms of encoding 6 have their
// own DD-table entries and never reach this path.
func (c *CPU) readReg8(code byte) byte {
	if p := c.plainRegPtr(code); p != nil {
		return *p
	}
	switch code {
	case 4:
		return c.readIndexHigh()
	case 5:
		return c.readIndexLow()
	default: // code == 6
		return c.read(c.HL())
	}
}

func (c *CPU) writeReg8(code byte, value byte) {
	if p := c.plainRegPtr(code); p != nil {
		*p = value
		return
	}
	switch code {
	case 4:
		c.writeIndexHigh(value)
	case 5:
		c.writeIndexLow(value)
	default: // code == 6
		c.write(c.HL(), value)
	}
}

// readReg8Plain/writeReg8Plain always address H/L directly, never IX —
// used by the DD-prefixed LD r,(IX+d) forms, where the register field in
// the opcode names a plain register even though the memory operand is
// indexed.
func (c *CPU) readReg8Plain(code byte) byte {
	if p := c.plainRegPtr(code); p != nil {
		return *p
	}
	switch code {
	case 4:
		return c.H
	case 5:
		return c.L
	default: // code == 6
		return c.read(c.HL())
	}
}

func (c *CPU) writeReg8Plain(code byte, value byte) {
	if p := c.plainRegPtr(code); p != nil {
		*p = value
		return
	}
	switch code {
	case 4:
		c.H = value
	case 5:
		c.L = value
	default: // code == 6
		c.write(c.HL(), value)
	}
}

func (c *CPU) readIndexHigh() byte {
	if c.prefixMode == prefixModeDD {
		return byte(c.IX >> 8)
	}
	return c.H
}

func (c *CPU) readIndexLow() byte {
	if c.prefixMode == prefixModeDD {
		return byte(c.IX)
	}
	return c.L
}

func (c *CPU) writeIndexHigh(value byte) {
	if c.prefixMode == prefixModeDD {
		c.IX = (c.IX & 0x00FF) | uint16(value)<<8
		return
	}
	c.H = value
}

func (c *CPU) writeIndexLow(value byte) {
	if c.prefixMode == prefixModeDD {
		c.IX = (c.IX & 0xFF00) | uint16(value)
		return
	}
	c.L = value
}
