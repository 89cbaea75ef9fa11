package z80

import "testing"

func TestALUAdd(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x80}) // ADD A,B
	rig.cpu.A = 0x0F
	rig.cpu.B = 0x01

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x10)
	requireEqualU8(t, "F", rig.cpu.F, 0x10)
}

func TestALUAddOverflow(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x80}) // ADD A,B
	rig.cpu.A = 0x7F
	rig.cpu.B = 0x01

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x80)
	requireEqualU8(t, "F", rig.cpu.F, 0x94)
}

func TestALUAdcWithCarry(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x88}) // ADC A,B
	rig.cpu.A = 0xFF
	rig.cpu.B = 0x00
	rig.cpu.F = z80FlagC

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x00)
	requireEqualU8(t, "F", rig.cpu.F, 0x51)
}

func TestALUSub(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x90}) // SUB B
	rig.cpu.A = 0x10
	rig.cpu.B = 0x01

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x0F)
	requireEqualU8(t, "F", rig.cpu.F, 0x1A)
}

func TestALUSbcWithCarry(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x98}) // SBC A,B
	rig.cpu.A = 0x00
	rig.cpu.B = 0x00
	rig.cpu.F = z80FlagC

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0xFF)
	requireEqualU8(t, "F", rig.cpu.F, 0xBB)
}

func TestALUAnd(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0xA0}) // AND B
	rig.cpu.A = 0xF0
	rig.cpu.B = 0x0F

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x00)
	requireEqualU8(t, "F", rig.cpu.F, 0x54)
}

func TestALUXor(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0xA8}) // XOR B
	rig.cpu.A = 0xFF
	rig.cpu.B = 0x0F

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0xF0)
	requireEqualU8(t, "F", rig.cpu.F, 0xA4)
}

func TestALUOr(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0xB0}) // OR B
	rig.cpu.A = 0x01
	rig.cpu.B = 0x80

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x81)
	requireEqualU8(t, "F", rig.cpu.F, 0x84)
}

func TestALUCp(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0xFE, 0x20}) // CP 0x20
	rig.cpu.A = 0x10

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x10)
	requireEqualU8(t, "F", rig.cpu.F, 0xA3)
}

func TestALUTiming(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{
		0x80,       // ADD A,B
		0x86,       // ADD A,(HL)
		0xC6, 0x01, // ADD A,0x01
	})
	rig.cpu.B = 0x01
	rig.cpu.SetHL(0x2000)
	rig.bus.mem[0x2000] = 0x01

	rig.cpu.StepInstruction()
	requireEqualU16(t, "Cycles", uint16(rig.cpu.Cycles), 4)
	rig.cpu.StepInstruction()
	requireEqualU16(t, "Cycles", uint16(rig.cpu.Cycles), 11)
	rig.cpu.StepInstruction()
	requireEqualU16(t, "Cycles", uint16(rig.cpu.Cycles), 18)
}

func TestALUIncDoesNotTouchCarry(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x3C}) // INC A
	rig.cpu.A = 0xFF
	rig.cpu.F = z80FlagC

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x00)
	requireTrue(t, "carry preserved", rig.cpu.Flag(z80FlagC))
	requireTrue(t, "zero set", rig.cpu.Flag(z80FlagZ))
}

func TestALUDecOverflow(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x05}) // DEC B
	rig.cpu.B = 0x80

	rig.cpu.StepInstruction()

	requireEqualU8(t, "B", rig.cpu.B, 0x7F)
	requireTrue(t, "overflow", rig.cpu.Flag(z80FlagPV))
}

func TestDAAAfterAdd(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x27}) // DAA
	rig.cpu.A = 0x0F
	rig.cpu.F = z80FlagH

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0x15)
}

func TestCPLComplementsAndSetsHN(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x2F}) // CPL
	rig.cpu.A = 0x55

	rig.cpu.StepInstruction()

	requireEqualU8(t, "A", rig.cpu.A, 0xAA)
	requireTrue(t, "H set", rig.cpu.Flag(z80FlagH))
	requireTrue(t, "N set", rig.cpu.Flag(z80FlagN))
}

func TestADDHLSetsHalfAndFullCarry(t *testing.T) {
	rig := newCPUTestRig()
	rig.resetAndLoad(0x0000, []byte{0x09}) // ADD HL,BC
	rig.cpu.SetHL(0x0FFF)
	rig.cpu.SetBC(0x0001)

	rig.cpu.StepInstruction()

	requireEqualU16(t, "HL", rig.cpu.HL(), 0x1000)
	requireTrue(t, "half carry", rig.cpu.Flag(z80FlagH))
	requireFalse(t, "carry", rig.cpu.Flag(z80FlagC))
}

func TestParity8(t *testing.T) {
	if !parity8(0x00) {
		t.Fatalf("parity8(0x00) = false, want true")
	}
	if parity8(0x01) {
		t.Fatalf("parity8(0x01) = true, want false")
	}
	if !parity8(0xFF) {
		t.Fatalf("parity8(0xFF) = false, want true")
	}
	if !parity8(0x03) {
		t.Fatalf("parity8(0x03) = false, want true")
	}
}
