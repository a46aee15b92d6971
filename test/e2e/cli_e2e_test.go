package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/armcalc into a temporary directory. go test runs
// with the package directory as working directory, so the build runs from
// the module root two levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "armcalc"
	if runtime.GOOS == "windows" {
		binName = "armcalc.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/armcalc")
	cmd.Dir = filepath.Join("..", "..")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build armcalc: %v", err)
	}
	return binPath
}

func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{
			name:    "Armstrong number",
			args:    []string{"-n", "153", "-r", "10", "--no-reference"},
			wantOut: "153 is an Armstrong number",
		},
		{
			name:    "Not an Armstrong number",
			args:    []string{"-n", "154", "-r", "10"},
			wantOut: "154 is not an Armstrong number",
		},
		{
			name:    "Quiet mode",
			args:    []string{"-n", "9474", "-r", "5", "--quiet"},
			wantOut: "9474 true",
		},
		{
			name:    "Candidate from environment",
			args:    []string{"-r", "5", "-q"},
			env:     []string{"ARMCALC_N=370"},
			wantOut: "370 true",
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: "usage",
		},
		{
			name:    "Version flag",
			args:    []string{"--version"},
			wantOut: "armcalc",
		},
		{
			name:    "Completion",
			args:    []string{"--completion", "zsh"},
			wantOut: "compdef",
		},
		{
			name:     "Missing candidate",
			args:     []string{"-r", "5"},
			wantOut:  "invalid input",
			wantCode: 4,
		},
		{
			name:     "Candidate too large",
			args:     []string{"-n", "1000000000000000000"},
			wantOut:  "at most 18 digits",
			wantCode: 4,
		},
		{
			name:     "Very short timeout",
			args:     []string{"-n", "153", "--timeout", "1ns"},
			wantCode: 2,
		},
		{
			name:     "Unknown reference set",
			args:     []string{"-n", "153", "--reference", "nope"},
			wantOut:  "unrecognized reference set",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			if err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("command did not run: %v", err)
				}
				code = exitErr.ExitCode()
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}

func TestCLI_E2E_Export(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}
	binPath := buildBinary(t)
	path := filepath.Join(t.TempDir(), "session.yaml")

	cmd := exec.Command(binPath, "-n", "407", "-r", "5", "-o", path)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("export run failed: %v\n%s", err, output)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("session file missing: %v", err)
	}
	for _, want := range []string{"candidate: 407", "is_armstrong: true", "reference:"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("export should contain %q, got:\n%s", want, data)
		}
	}
}
