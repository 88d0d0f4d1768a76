//go:build e2e

package e2e

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command("calc", "eval", "--quiet", "--start", "2", "--", "+8", "*3", "<<")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("command failed: %v\nstdout: %s\nstderr: %s", err, stdout.String(), stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "3" {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestEvalNotDivisible(t *testing.T) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command("calc", "eval", "--start", "9", "/4")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected command to fail\nstdout: %s", stdout.String())
	}
	var e *exec.ExitError
	if !errors.As(err, &e) || e.ExitCode() != 1 {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr.String(), "not evenly divisible") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}
