//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
	buildOut  []byte
)

// buildBinary compiles the pngchunk binary once per test run.
func buildBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "pngchunk-bin-")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "pngchunk")
		cmd := exec.Command("go", "build", "-o", binPath, "github.com/rekal-dev/pngchunk/cmd/pngchunk")
		buildOut, buildErr = cmd.CombinedOutput()
	})
	if buildErr != nil {
		t.Fatalf("build pngchunk: %v\n%s", buildErr, buildOut)
	}
	return binPath
}

// TestEnv is a scratch directory plus the compiled CLI.
type TestEnv struct {
	t   *testing.T
	Bin string
	Dir string
}

func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return &TestEnv{t: t, Bin: buildBinary(t), Dir: t.TempDir()}
}

// Init creates the chunk index in the env directory.
func (e *TestEnv) Init() {
	e.t.Helper()
	if _, stderr, err := e.RunCLI("init"); err != nil {
		e.t.Fatalf("init: %v (stderr: %s)", err, stderr)
	}
}

// RunCLI runs the binary in the env directory.
func (e *TestEnv) RunCLI(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(e.Bin, args...)
	cmd.Dir = e.Dir
	cmd.Env = append(os.Environ(), "PNGCHUNK_LOG_LEVEL=info")
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// WriteFile writes name under the env directory.
func (e *TestEnv) WriteFile(name string, data []byte) {
	e.t.Helper()
	path := filepath.Join(e.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		e.t.Fatal(err)
	}
}

// ReadFile reads name from the env directory.
func (e *TestEnv) ReadFile(name string) []byte {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.Dir, name))
	if err != nil {
		e.t.Fatal(err)
	}
	return data
}

func assertQueryContains(t *testing.T, env *TestEnv, sql, want string) {
	t.Helper()
	stdout, stderr, err := env.RunCLI("query", sql)
	if err != nil {
		t.Fatalf("query %q: %v (stderr: %s)", sql, err, stderr)
	}
	if !strings.Contains(stdout, want) {
		t.Errorf("query %q: expected %s, got: %q", sql, want, stdout)
	}
}
