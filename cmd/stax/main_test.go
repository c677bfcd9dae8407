package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"stax", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"stax", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"stax"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandRequiresScriptPath(t *testing.T) {
	err := runCommand(nil)
	if err == nil {
		t.Fatalf("expected script path error")
	}
	if !strings.Contains(err.Error(), "script path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandPrintsStackPerLine(t *testing.T) {
	t.Chdir(t.TempDir())
	scriptPath := writeScript(t, "1 2 +\n{ 3 4 }\n")

	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	want := "stack: [3]\nstack: [{ 3 4 }]\n"
	if out != want {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRunCommandFreshMachinePerLineByDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	scriptPath := writeScript(t, "5 /x def\nx\n")

	_, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err == nil {
		t.Fatalf("expected second line to fail without -persist")
	}
	if !strings.Contains(err.Error(), "1 line(s) failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandPersistKeepsBindings(t *testing.T) {
	t.Chdir(t.TempDir())
	scriptPath := writeScript(t, "5 /x def\nx\n")

	out, err := captureStdout(t, func() error {
		return runCommand([]string{"-persist", scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand -persist failed: %v", err)
	}
	if !strings.HasSuffix(out, "stack: [5]\n") {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRunCommandCheckOnly(t *testing.T) {
	t.Chdir(t.TempDir())

	good := writeScript(t, "1 2 + { 3 4 }\n{ { 1 } { 2 } if }\n")
	if err := runCommand([]string{"-check", good}); err != nil {
		t.Fatalf("check of valid script failed: %v", err)
	}

	bad := writeScript(t, "1 2 +\n{ 1 2\n")
	err := runCommand([]string{"-check", bad})
	if err == nil {
		t.Fatalf("expected unterminated block error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEvalCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := captureStdout(t, func() error {
		return evalCommand([]string{"1", "2", "+"})
	})
	if err != nil {
		t.Fatalf("evalCommand failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != "stack: [3]" {
		t.Fatalf("unexpected stdout: %q", got)
	}
}

func TestEvalCommandReportsFaults(t *testing.T) {
	t.Chdir(t.TempDir())

	err := evalCommand([]string{"1", "0", "/"})
	if err == nil {
		t.Fatalf("expected division fault")
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEvalCommandRequiresWords(t *testing.T) {
	err := evalCommand(nil)
	if err == nil {
		t.Fatalf("expected words required error")
	}
	if !strings.Contains(err.Error(), "program words required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.stax")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
