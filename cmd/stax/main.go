package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgomes/stax/stax"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "eval":
		return evalCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	persist := fs.Bool("persist", false, "keep one machine across all lines so def bindings survive")
	checkOnly := fs.Bool("check", false, "parse every line's blocks without evaluating")
	configPath := fs.String("config", "", "path to a config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("stax run: script path required")
	}
	input, err := os.ReadFile(remaining[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	if *checkOnly {
		return checkScript(input)
	}

	machine := stax.NewMachine(cfg.machineConfig())
	failed := 0
	scanner := bufio.NewScanner(bytes.NewReader(input))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if !*persist {
			machine = stax.NewMachine(cfg.machineConfig())
		}
		stack, err := machine.EvalLine(line)
		if err != nil {
			// A fault aborts the current line only; later lines still run.
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			failed++
			continue
		}
		fmt.Println(stax.FormatStack(stack))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d line(s) failed", failed)
	}
	return nil
}

func checkScript(input []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(input))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := stax.CheckLine(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func evalCommand(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	configPath := fs.String("config", "", "path to a config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("stax eval: program words required")
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	machine := stax.NewMachine(cfg.machineConfig())
	stack, err := machine.EvalLine(strings.Join(remaining, " "))
	if err != nil {
		return fmt.Errorf("eval failed: %w", err)
	}
	fmt.Println(stax.FormatStack(stack))
	return nil
}

func replCommand(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	plain := fs.Bool("plain", false, "use the line-editing REPL instead of the TUI")
	configPath := fs.String("config", "", "path to a config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *plain || cfg.Plain {
		return runPlainREPL(cfg)
	}
	return runREPL(cfg)
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <run|eval|repl> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [-persist] [-check] [-config <path>] <script>")
	fmt.Fprintln(os.Stderr, "    evaluate a script line by line, printing each line's final stack")
	fmt.Fprintln(os.Stderr, "  eval [-config <path>] <words...>")
	fmt.Fprintln(os.Stderr, "    evaluate one line given as arguments")
	fmt.Fprintln(os.Stderr, "  repl [-plain] [-config <path>]")
	fmt.Fprintln(os.Stderr, "    interactive session with a persistent machine")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
