package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/mgomes/stax/stax"
)

const plainHelpText = `REPL commands:
  :vars    List defined names
  :reset   Reset stack and definitions
  :help    Show this help
  :quit    Exit the REPL`

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func gray(s string) string  { return "\x1b[90m" + s + "\x1b[0m" }

// runPlainREPL is the line-editing fallback for terminals where the TUI is
// unwanted. One machine lives for the whole session.
func runPlainREPL(cfg cliConfig) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	machine := stax.NewMachine(cfg.machineConfig())

	fmt.Println(gray("stax REPL. Ctrl+D exits, :help lists commands."))
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch trimmed {
			case ":quit", ":q":
				return nil
			case ":help", ":h":
				fmt.Println(plainHelpText)
			case ":vars", ":v":
				names := machine.DefinedNames()
				if len(names) == 0 {
					fmt.Println(gray("no names defined"))
					break
				}
				bindings := machine.Bindings()
				for _, name := range names {
					fmt.Printf("%s = %s\n", name, bindings[name])
				}
			case ":reset", ":r":
				machine.Reset()
				fmt.Println(gray("machine reset"))
			default:
				fmt.Printf("unknown command %s. Type :help.\n", trimmed)
			}
			continue
		}

		stack, err := machine.EvalLine(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			ln.AppendHistory(line)
			continue
		}
		fmt.Println(green(stax.FormatStack(stack)))
		ln.AppendHistory(line)
	}
}
