package z80

import "testing"

// TestScenarioImmediateLoadAndAdd is S1: LD A,0x05; ADD A,0x03.
func TestScenarioImmediateLoadAndAdd(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x3E, 0x05, 0xC6, 0x03})

	rig.cpu.StepInstruction()
	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x08)
	requireFalse(t, "ZF", rig.cpu.Flag(z80FlagZ))
	requireFalse(t, "CF", rig.cpu.Flag(z80FlagC))
	requireFalse(t, "HF", rig.cpu.Flag(z80FlagH))
	requireFalse(t, "NF", rig.cpu.Flag(z80FlagN))
	requireFalse(t, "SF", rig.cpu.Flag(z80FlagS))
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0004)
}

// TestScenarioZeroFlag is S2: LD A,0xFF; INC A.
func TestScenarioZeroFlag(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x3E, 0xFF, 0x3C})

	rig.cpu.StepInstruction()
	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x00)
	requireTrue(t, "ZF", rig.cpu.Flag(z80FlagZ))
	requireTrue(t, "HF", rig.cpu.Flag(z80FlagH))
	requireFalse(t, "NF", rig.cpu.Flag(z80FlagN))
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0003)
}

// TestScenarioCallRet is S3: LD SP,0x8000; CALL 0x0007; ... ; RET.
func TestScenarioCallRet(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{
		0x31, 0x00, 0x80, // LD SP,0x8000
		0xCD, 0x07, 0x00, // CALL 0x0007
		0x76, // HALT (at 0x0006, never reached directly)
		0xC9, // RET (at 0x0007)
	})

	rig.cpu.StepInstruction() // LD SP,0x8000
	rig.cpu.StepInstruction() // CALL 0x0007

	requireEqualU16(t, "SP", rig.cpu.SP, 0x7FFE)
	requireEqualU8(t, "low return byte", rig.bus.mem[0x7FFE], 0x06)
	requireEqualU8(t, "high return byte", rig.bus.mem[0x7FFF], 0x00)
	requireEqualU16(t, "PC", rig.cpu.PC, 0x0007)

	rig.cpu.StepInstruction() // RET

	requireEqualU16(t, "PC after ret", rig.cpu.PC, 0x0006)
}

// TestScenarioExAFRoundTrip is S4: EX AF,AF' ; EX AF,AF'.
func TestScenarioExAFRoundTrip(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x08, 0x08})
	rig.cpu.A, rig.cpu.F = 0x12, 0x34
	rig.cpu.A2, rig.cpu.F2 = 0x56, 0x78

	rig.cpu.StepInstruction()
	rig.cpu.StepInstruction()

	requireEqualU16(t, "AF", rig.cpu.AF(), 0x1234)
	requireEqualU16(t, "AF2", rig.cpu.AF2(), 0x5678)
}

// TestScenarioConditionalJumpNotTaken is S5: JR Z,+0x10 with ZF clear.
func TestScenarioConditionalJumpNotTaken(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x28, 0x10})
	rig.cpu.A = 0x00
	rig.cpu.F &^= z80FlagZ

	cyclesBefore := rig.cpu.Cycles
	rig.cpu.StepInstruction()

	requireEqualU16(t, "PC falls through", rig.cpu.PC, 0x0002)
	requireEqualU16(t, "cycle delta", uint16(rig.cpu.Cycles-cyclesBefore), 7)
}

// TestScenarioBlockTransfer is S6: LDIR copying four bytes.
func TestScenarioBlockTransfer(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0xED, 0xB0})
	rig.cpu.SetHL(0x4000)
	rig.cpu.SetDE(0x5000)
	rig.cpu.SetBC(0x0004)
	rig.bus.mem[0x4000] = 1
	rig.bus.mem[0x4001] = 2
	rig.bus.mem[0x4002] = 3
	rig.bus.mem[0x4003] = 4

	for rig.cpu.PC == 0x0000 {
		rig.cpu.StepInstruction()
	}

	requireEqualU8(t, "mem[0x5000]", rig.bus.mem[0x5000], 1)
	requireEqualU8(t, "mem[0x5001]", rig.bus.mem[0x5001], 2)
	requireEqualU8(t, "mem[0x5002]", rig.bus.mem[0x5002], 3)
	requireEqualU8(t, "mem[0x5003]", rig.bus.mem[0x5003], 4)
	requireEqualU16(t, "HL", rig.cpu.HL(), 0x4004)
	requireEqualU16(t, "DE", rig.cpu.DE(), 0x5004)
	requireEqualU16(t, "BC", rig.cpu.BC(), 0x0000)
	requireFalse(t, "P/V", rig.cpu.Flag(z80FlagPV))
}
