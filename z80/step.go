package z80

import "time"

// StepInstruction advances the CPU by exactly one instruction boundary:
// service a pending NMI, then a pending maskable interrupt (if IFF1
// permits), then either tick through a HALT or fetch-decode-execute one
// opcode. This is the unit Step's frame loop repeats; callers that want
// single-instruction control (a debugger, a test) call this directly.
func (c *CPU) StepInstruction() {
	if !c.running {
		return
	}

	if c.nmiPending {
		c.serviceNMI()
		return
	}

	if c.irqPending && c.IFF1 {
		c.serviceIRQ()
		return
	}

	if c.Halted {
		c.tick(4)
		return
	}

	c.prefixMode = prefixModeNone
	opcode := c.fetchOpcode()
	c.baseOps[opcode](c)
	c.finishInstruction()
}

// Step runs one real-time frame: StepInstruction repeatedly until Cycles
// advances by Frequency/RefreshRate T-states, then sleeps off whatever
// budget remains. A frame that overruns its budget (slow host, a long
// block instruction) never sleeps negative — it just starts the next
// frame immediately.
func (c *CPU) Step() {
	budget := uint64(c.Frequency / c.RefreshRate)
	target := c.Cycles + budget
	start := c.clock.Now()

	for c.running && c.Cycles < target {
		c.StepInstruction()
	}

	frameDuration := time.Second / time.Duration(c.RefreshRate)
	elapsed := c.clock.Now().Sub(start)
	if remaining := frameDuration - elapsed; remaining > 0 {
		c.clock.Sleep(remaining)
	}
}
