package tests

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/minijava/internal/config"
)

// TestFunctional runs .mj files through the compiled binary and compares
// diagnostics with .want files. This tests the actual binary - what
// users see.
func TestFunctional(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary test in short mode")
	}

	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("Failed to get project root: %v", err)
	}

	binaryPath := filepath.Join(projectRoot, "mjc-test-binary")
	defer os.Remove(binaryPath)

	t.Log("Building fresh binary...")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/mjc")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, output)
	}

	var testFiles []string
	err = filepath.Walk("testdata", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		for _, ext := range config.SourceFileExtensions {
			if strings.HasSuffix(path, ext) {
				wantFile := strings.TrimSuffix(path, ext) + ".want"
				if _, err := os.Stat(wantFile); err == nil {
					testFiles = append(testFiles, path)
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk testdata: %v", err)
	}
	if len(testFiles) == 0 {
		t.Skip("No test files with .want found")
	}

	for _, testFile := range testFiles {
		testFile := testFile
		name := strings.TrimSuffix(filepath.Base(testFile), filepath.Ext(testFile))
		t.Run(name, func(t *testing.T) {
			wantFile := strings.TrimSuffix(testFile, filepath.Ext(testFile)) + ".want"
			want, err := os.ReadFile(wantFile)
			if err != nil {
				t.Fatalf("Failed to read want file: %v", err)
			}

			absFile, err := filepath.Abs(testFile)
			if err != nil {
				t.Fatal(err)
			}

			cmd := exec.Command(binaryPath, "check", "--no-cache", absFile)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, runErr := cmd.CombinedOutput()

			// Diagnostics carry absolute paths; strip them so the .want
			// files stay portable.
			got := strings.ReplaceAll(string(output), absFile, filepath.Base(testFile))

			wantText := strings.TrimSpace(string(want))
			gotText := strings.TrimSpace(got)
			if gotText != wantText {
				t.Errorf("output mismatch for %s\ngot:\n%s\nwant:\n%s", testFile, gotText, wantText)
			}

			wantFailure := wantText != ""
			gotFailure := runErr != nil
			if wantFailure != gotFailure {
				t.Errorf("exit status mismatch for %s: failed=%v, want failed=%v",
					testFile, gotFailure, wantFailure)
			}
		})
	}
}
