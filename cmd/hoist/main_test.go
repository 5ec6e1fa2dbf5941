package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	_ = w.Close()
	output := <-done
	_ = r.Close()
	os.Stderr = originalStderr

	return output
}

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		snapshot     string
		args         []string
		expectedExit int
	}{
		{
			name: "Success with compatible snapshot",
			snapshot: `version: "1"
packages:
  - name: left-pad
    version: 1.3.0
  - name: fsevents
    version: 2.3.3
    os: ["someNonexistentPlatform"]
    optional: true
`,
			args:         []string{"hoist", "check"},
			expectedExit: 0,
		},
		{
			name: "Failure with required incompatible package",
			snapshot: `version: "1"
packages:
  - name: native-gadget
    version: 0.1.0
    os: ["someNonexistentPlatform"]
`,
			args:         []string{"hoist", "check"},
			expectedExit: 1,
		},
		{
			name:         "Error with missing snapshot",
			args:         []string{"hoist", "check", "-c", "nonexistent.yaml"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			if tt.snapshot != "" {
				err := os.WriteFile(filepath.Join(tmpDir, "hoist.yaml"), []byte(tt.snapshot), 0o600)
				if err != nil {
					t.Fatalf("failed to write snapshot: %v", err)
				}
			}

			// Change to tmpDir for relative path resolution
			originalWd, _ := os.Getwd()
			err := os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestRun_IncompatibleExitsQuietly(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	snapshot := `version: "1"
packages:
  - name: native-gadget
    version: 0.1.0
    os: ["someNonexistentPlatform"]
`
	if err := os.WriteFile(filepath.Join(tmpDir, "hoist.yaml"), []byte(snapshot), 0o600); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}

	originalWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"hoist", "check"}

	var exitCode int
	output := captureStderr(t, func() {
		exitCode = run()
	})

	assert.Equal(t, 1, exitCode)

	// The violations were already reported per package; the raw
	// "incompatible module" error must not be dumped on top of them.
	assert.NotContains(t, output, "incompatible module")
}
