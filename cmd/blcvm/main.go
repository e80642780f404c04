// Command blcvm runs programs encoded in Tromp's binary lambda
// calculus against the tagged-cell evaluator in package blcvm.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/moneytech/blcvm"
)

var (
	flagArenaCells     int
	flagArenaRegisters int
	flagVerboseGC      bool
	flagColor          bool
)

func newMachine() *blcvm.Machine {
	cfg := blcvm.NewConfig()
	cfg.SetInt("arena.cells", flagArenaCells)
	cfg.SetInt("arena.registers", flagArenaRegisters)
	cfg.SetBool("gc.verbose", flagVerboseGC)
	return blcvm.NewMachine(cfg)
}

func main() {
	root := &cobra.Command{
		Use:   "blcvm",
		Short: "A binary lambda calculus virtual machine",
	}
	root.PersistentFlags().IntVar(&flagArenaCells, "arena-cells", 1<<20, "number of cells in the arena")
	root.PersistentFlags().IntVar(&flagArenaRegisters, "arena-registers", 4096, "depth of the GC root stack")
	root.PersistentFlags().BoolVar(&flagVerboseGC, "gc-verbose", false, "log a line per collection")

	root.AddCommand(runCmd(), dumpCmd(), replCmd(), selftestCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runCmd() *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate a BLC-encoded program and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			m := newMachine()
			ref, _, err := m.Parse(data)
			if err != nil {
				return err
			}

			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				ref = m.Arena.Call(ref, m.Arena.NewInputStream(f))
			}

			result := m.Eval(ref)
			if inputPath != "" {
				// By convention, a program driven over -input produces a
				// lazy byte list; write it out raw instead of Show's
				// human-readable rendering.
				os.Stdout.Write(m.ToStr(result))
				return nil
			}
			fmt.Println(m.Show(result))
			return nil
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "apply the program to a lazy byte stream read from this file")
	return cmd
}

func dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the parsed term as a tree, without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			m := newMachine()
			ref, _, err := m.Parse(data)
			if err != nil {
				return err
			}
			fmt.Println(m.Dump(ref, flagColor))
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagColor, "color", true, "colorize the tree output")
	return cmd
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl [program.blc]",
		Short: "Drive the REPL-skeleton term over interactive input",
		Long: "Feeds lines typed at the prompt into a single continuous byte\n" +
			"stream and drives it through the REPL-skeleton term (buffering\n" +
			"digits, stripping spaces and tabs, echoing a flushed line back\n" +
			"with its trailing newline). With a program argument, that\n" +
			"program is applied to the skeleton's output instead of printing\n" +
			"it directly.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMachine()

			program := blcvm.NIL
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				ref, _, err := m.Parse(data)
				if err != nil {
					return err
				}
				program = ref
			}

			rl, err := readline.New("blc> ")
			if err != nil {
				return err
			}
			defer rl.Close()

			repl := blcvm.NewRepl(m, program, os.Stdout)
			return repl.Run(rl)
		},
	}
}

func selftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run a handful of built-in sanity checks against the standard library",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMachine()
			checks := []struct {
				name string
				ok   bool
			}{
				{"first(pair(a,b))=a", m.ToInt(m.Eval(m.First(m.Pair(m.FromInt(1), m.FromInt(2))))) == 1},
				{"rest(pair(a,b))=b", m.ToInt(m.Eval(m.Rest(m.Pair(m.FromInt(1), m.FromInt(2))))) == 2},
				{"empty(false)=true", m.IsTrue(m.Empty(m.Nil()))},
				{"empty(pair)=false", !m.IsTrue(m.Empty(m.Pair(m.FromInt(1), m.Nil())))},
				{"add(2,3)=5", m.ToInt(m.Eval(m.Add(m.FromInt(2), m.FromInt(3)))) == 5},
				{"mul(6,7)=42", m.ToInt(m.Eval(m.Mul(m.FromInt(6), m.FromInt(7)))) == 42},
			}
			failed := 0
			for _, c := range checks {
				status := "ok"
				if !c.ok {
					status = "FAIL"
					failed++
				}
				fmt.Printf("%-28s %s\n", c.name, status)
			}
			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
