package z80

// repeatBlockOp rewinds PC by 2 and charges the extra 5 T-states a
// repeating block instruction (LDIR/LDDR/CPIR/CPDR/INIR/INDR/OTIR/OTDR)
// pays on every iteration but the last; done reports whether the counter
// side of the instruction has nothing left to repeat.
func (c *CPU) repeatBlockOp(done bool) {
	if done {
		return
	}
	c.PC -= 2
	c.tick(5)
}

// opLDI, opLDD and their repeating forms implement the LDI/LDIR/LDD/LDDR
// family: copy (HL)->(DE), step HL/DE by ±1, decrement BC. The repeating
// forms re-execute the single-step form via repeatBlockOp until BC hits
// zero, which is how a 16-bit-counted block copy is expressed as a
// single two-byte opcode on real hardware.
func (c *CPU) ldBlock(step int16) {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(uint16(int32(c.HL()) + int32(step)))
	c.SetDE(uint16(int32(c.DE()) + int32(step)))
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
	c.tick(16)
}

func (c *CPU) opLDI() { c.ldBlock(1) }
func (c *CPU) opLDD() { c.ldBlock(-1) }

func (c *CPU) opLDIR() {
	c.opLDI()
	c.repeatBlockOp(c.BC() == 0)
}

func (c *CPU) opLDDR() {
	c.opLDD()
	c.repeatBlockOp(c.BC() == 0)
}

// cpBlock implements CPI/CPD: compare A against (HL) without storing,
// step HL by ±1, decrement BC, then set PV from the post-decrement BC
// rather than from the comparison itself. CF must survive the comparison
// untouched — it is not part of CPI/CPD's flag contract even though the
// shared subA helper computes a fresh C bit for ordinary CP.
func (c *CPU) cpBlock(step int16) {
	value := c.read(c.HL())
	c.SetHL(uint16(int32(c.HL()) + int32(step)))
	bc := c.BC() - 1
	c.SetBC(bc)

	carry := c.F & z80FlagC
	c.subA(value, 0, false)
	c.F = (c.F &^ z80FlagC) | carry

	if bc != 0 {
		c.F |= z80FlagPV
	} else {
		c.F &^= z80FlagPV
	}
	c.tick(16)
}

func (c *CPU) opCPI() { c.cpBlock(1) }
func (c *CPU) opCPD() { c.cpBlock(-1) }

// opCPIR/opCPDR stop repeating the moment either BC reaches zero or the
// comparison matches (Z set) — whichever comes first.
func (c *CPU) opCPIR() {
	c.opCPI()
	c.repeatBlockOp(c.BC() == 0 || c.Flag(z80FlagZ))
}

func (c *CPU) opCPDR() {
	c.opCPD()
	c.repeatBlockOp(c.BC() == 0 || c.Flag(z80FlagZ))
}

// ioBlock moves one byte between a port addressed by BC and (HL), stepping
// HL by ±1 and using B (not BC) as the repeat counter — the block I/O
// family counts down from B only, unlike the LD/CP family which counts
// BC. portToMemory controls the transfer direction: true reads the port into
// memory (INI/IND), false reads memory onto the port (OUTI/OUTD).
func (c *CPU) ioBlock(step int16, portToMemory bool) {
	if portToMemory {
		value := c.in(c.BC())
		c.write(c.HL(), value)
		c.B--
	} else {
		value := c.read(c.HL())
		c.B--
		c.out(c.BC(), value)
	}
	c.SetHL(uint16(int32(c.HL()) + int32(step)))
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opINI()  { c.ioBlock(1, true) }
func (c *CPU) opIND()  { c.ioBlock(-1, true) }
func (c *CPU) opOUTI() { c.ioBlock(1, false) }
func (c *CPU) opOUTD() { c.ioBlock(-1, false) }

func (c *CPU) opINIR() {
	c.opINI()
	c.repeatBlockOp(c.B == 0)
}

func (c *CPU) opINDR() {
	c.opIND()
	c.repeatBlockOp(c.B == 0)
}

func (c *CPU) opOTIR() {
	c.opOUTI()
	c.repeatBlockOp(c.B == 0)
}

func (c *CPU) opOTDR() {
	c.opOUTD()
	c.repeatBlockOp(c.B == 0)
}
