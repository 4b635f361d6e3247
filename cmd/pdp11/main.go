// Command pdp11 loads a program image into a bus.Bus and drives a
// pdp11.CPU across it: single-step or run-to-halt (both then print the
// register file), or dump a slice of memory without executing. It is a
// demonstration harness, not part of the architectural core.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retrosim/pdp11/bus"
	"github.com/retrosim/pdp11/pdp11"
)

func main() {
	var origin uint16
	var pc uint16
	var originStr, pcStr string

	rootCmd := &cobra.Command{
		Use:   "pdp11 [image]",
		Short: "PDP-11 instruction-set simulator",
		Args:  cobra.ExactArgs(1),
	}
	rootCmd.PersistentFlags().StringVar(&originStr, "origin", "0", "address to load the image at (octal, e.g. 01000)")
	rootCmd.PersistentFlags().StringVar(&pcStr, "pc", "", "initial PC (defaults to the load origin)")

	loadAndRun := func(args []string) (*pdp11.CPU, *bus.Bus, error) {
		var err error
		origin, err = parseAddr(originStr)
		if err != nil {
			return nil, nil, fmt.Errorf("--origin: %w", err)
		}
		pc = origin
		if pcStr != "" {
			pc, err = parseAddr(pcStr)
			if err != nil {
				return nil, nil, fmt.Errorf("--pc: %w", err)
			}
		}

		b := bus.New(false)
		if err := b.LoadFile(args[0], origin); err != nil {
			return nil, nil, err
		}
		cpu := pdp11.New(b)
		cpu.R[pdp11.PC] = int16(pc)
		return cpu, b, nil
	}

	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Load an image and step until a host failure or step limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			cpu, _, err := loadAndRun(args)
			if err != nil {
				return err
			}
			n := 0
			for n < limit {
				if !cpu.Step() {
					break
				}
				n++
			}
			fmt.Printf("stopped after %d instructions\n", n)
			printRegisters(cpu)
			return nil
		},
	}
	runCmd.Flags().Int("limit", 1_000_000, "maximum number of instructions to execute")

	stepCmd := &cobra.Command{
		Use:   "step [image]",
		Short: "Load an image and execute a fixed number of instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			cpu, _, err := loadAndRun(args)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				if !cpu.Step() {
					return fmt.Errorf("host failure after %d instruction(s)", i)
				}
			}
			printRegisters(cpu)
			return nil
		},
	}
	stepCmd.Flags().Int("count", 1, "number of instructions to execute")

	dumpCmd := &cobra.Command{
		Use:   "dump [image]",
		Short: "Load an image and print a range of memory without executing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startStr, _ := cmd.Flags().GetString("start")
			lenFlag, _ := cmd.Flags().GetInt("length")
			_, b, err := loadAndRun(args)
			if err != nil {
				return err
			}
			start, err := parseAddr(startStr)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			printDump(b, start, lenFlag)
			return nil
		},
	}
	dumpCmd.Flags().String("start", "0", "address to begin the dump at (octal)")
	dumpCmd.Flags().Int("length", 64, "number of bytes to dump")

	rootCmd.AddCommand(runCmd, stepCmd, dumpCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("pdp11: %v", err)
		os.Exit(1)
	}
}

func printRegisters(cpu *pdp11.CPU) {
	for i, r := range cpu.R {
		fmt.Printf("R%d=%06o ", i, uint16(r))
	}
	fmt.Println()
	fmt.Printf("PS=%04o  N=%v Z=%v V=%v C=%v\n", cpu.PS,
		pdp11.Get(cpu.PS, pdp11.FlagN), pdp11.Get(cpu.PS, pdp11.FlagZ),
		pdp11.Get(cpu.PS, pdp11.FlagV), pdp11.Get(cpu.PS, pdp11.FlagC))
}

func printDump(b *bus.Bus, start uint16, length int) {
	for i := 0; i < length; i += 16 {
		fmt.Printf("%06o: ", start+uint16(i))
		for j := 0; j < 16 && i+j < length; j++ {
			fmt.Printf("%03o ", b.ReadByte(start+uint16(i+j)))
		}
		fmt.Println()
	}
}

// parseAddr parses an address given in octal (PDP-11 convention) unless
// explicitly prefixed with 0x for hex or 0d for decimal.
func parseAddr(s string) (uint16, error) {
	switch {
	case len(s) > 2 && s[:2] == "0x":
		v, err := strconv.ParseUint(s[2:], 16, 16)
		return uint16(v), err
	case len(s) > 2 && s[:2] == "0d":
		v, err := strconv.ParseUint(s[2:], 10, 16)
		return uint16(v), err
	default:
		v, err := strconv.ParseUint(s, 8, 16)
		return uint16(v), err
	}
}
