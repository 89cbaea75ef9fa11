package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"z80emu/z80bus"
)

var runFlags struct {
	rom     string
	freq    int
	refresh int
	vector  int
	monitor bool
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "z80run",
		Short: "Run a raw Z80 ROM image against the core",
		RunE:  runRun,
	}

	cmd.Flags().StringVar(&runFlags.rom, "rom", "", "path to the raw binary ROM image (required)")
	cmd.Flags().IntVar(&runFlags.freq, "freq", 0, "CPU clock frequency in Hz (0 = core default)")
	cmd.Flags().IntVar(&runFlags.refresh, "refresh", 0, "frame refresh rate in Hz (0 = core default)")
	cmd.Flags().IntVar(&runFlags.vector, "vector", 0xFF, "IM 0/2 interrupt vector byte Interrupt() asserts")
	cmd.Flags().BoolVar(&runFlags.monitor, "monitor", false, "drop into an interactive single-step register monitor")
	_ = cmd.MarkFlagRequired("rom")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	m, err := z80bus.NewMachine(z80bus.Config{
		ROMPath:     runFlags.rom,
		Frequency:   runFlags.freq,
		RefreshRate: runFlags.refresh,
		Vector:      byte(runFlags.vector),
	})
	if err != nil {
		return err
	}

	fmt.Printf("z80run: loaded %d bytes from %s\n", m.Bus.ROMSize(), runFlags.rom)

	if runFlags.monitor {
		return runMonitor(m)
	}

	m.Run()

	fmt.Printf("z80run: stopped after %d cycles, halted=%v, PC=0x%04X\n", m.CPU.Cycles, m.CPU.Halted, m.CPU.PC)
	return nil
}
