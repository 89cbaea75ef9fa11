package z80bus

import "z80emu/z80"

// Config binds the knobs a driver (the CLI, a test harness) sets before
// running a Machine: which ROM to map, how fast the core paces itself,
// and which IM 0/2 vector byte an external interrupt source would drive
// onto the data bus.
type Config struct {
	ROMPath     string
	Frequency   int
	RefreshRate int
	Vector      byte
}

// Machine couples a CPU core to a reference Bus, giving a driver the
// "load a ROM, step it, raise an interrupt" surface spec.md's §6 external
// interfaces describe, without folding any of that into the core itself.
type Machine struct {
	CPU    *z80.CPU
	Bus    *Bus
	vector byte
}

// NewMachine builds a Bus, loads cfg.ROMPath into it, and wires a CPU
// against it with cfg's pacing parameters. A zero Frequency/RefreshRate
// leaves the core's own defaults in place.
func NewMachine(cfg Config) (*Machine, error) {
	bus := NewBus()
	if cfg.ROMPath != "" {
		if err := bus.LoadROM(cfg.ROMPath); err != nil {
			return nil, err
		}
	}

	cpu := z80.NewCPU(bus)
	cpu.Frequency = cfg.Frequency
	cpu.RefreshRate = cfg.RefreshRate
	cpu.Reset()

	return &Machine{CPU: cpu, Bus: bus, vector: cfg.Vector}, nil
}

// Interrupt raises the maskable interrupt line using the vector byte the
// Machine was configured with. This is the minimal external signal
// spec.md's §6 describes: a collaborator asserting an interrupt source
// without knowing which IM the guest ROM has selected.
func (m *Machine) Interrupt() {
	m.CPU.RequestInterrupt(m.vector)
	m.Bus.SetPin(PinHalt, m.CPU.Halted)
}

// NMI raises the non-maskable interrupt line via PinNMI.
func (m *Machine) NMI() {
	m.Bus.SetPin(PinNMI, true)
	m.CPU.RequestNMI()
}

// Run steps the core one real-time frame at a time until it stops
// running (a driver calling SetRunning(false)), mirroring the CPU's
// halt state onto PinHalt after each frame.
func (m *Machine) Run() {
	for m.CPU.Running() {
		m.CPU.Step()
		m.Bus.SetPin(PinHalt, m.CPU.Halted)
	}
}
