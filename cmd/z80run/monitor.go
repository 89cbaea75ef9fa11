package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"z80emu/z80bus"
)

// runMonitor puts stdin in raw mode and drives a tiny interactive
// register dump: 's' single-steps one instruction, 'q' quits. This is a
// terminal convenience, not a debugger — no breakpoints, no trace
// protocol, just a readable snapshot between steps.
func runMonitor(m *z80bus.Machine) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("z80run: monitor requires a terminal: %w", err)
	}
	defer term.Restore(fd, oldState)

	printRegisters(m)

	reader := bufio.NewReader(os.Stdin)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return nil
		}
		switch b {
		case 's':
			m.CPU.StepInstruction()
			printRegisters(m)
		case 'q', 0x03: // q or Ctrl-C
			return nil
		}
	}
}

func printRegisters(m *z80bus.Machine) {
	c := m.CPU
	fmt.Printf("\r\nPC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X IX=%04X  IM=%d IFF1=%v halted=%v cycles=%d\r\n",
		c.PC, c.SP, c.AF(), c.BC(), c.DE(), c.HL(), c.IX, c.IM, c.IFF1, c.Halted, c.Cycles)
}
