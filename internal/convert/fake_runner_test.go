package convert

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
)

// fakeRunner scripts engine responses per command name and records
// every invocation.
type fakeRunner struct {
	stdout map[string][]byte // keyed by command name
	stderr map[string][]byte
	fail   map[string]bool
	// touch lists argument indexes (from the end) of paths the fake
	// should create, emulating an engine writing its output.
	touchLast map[string]bool

	calls [][]string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		stdout:    map[string][]byte{},
		stderr:    map[string][]byte{},
		fail:      map[string]bool{},
		touchLast: map[string]bool{},
	}
}

func (f *fakeRunner) Run(_ context.Context, name string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.fail[name] {
		return nil, f.stderr[name], errors.New("exit status 1")
	}
	if f.touchLast[name] && len(args) > 0 {
		out := args[len(args)-1]
		// untwine takes -o <out>, not a trailing positional
		for i, a := range args {
			if a == "-o" && i+1 < len(args) {
				out = args[i+1]
			}
		}
		_ = os.WriteFile(out, []byte("engine output"), 0o644)
	}
	return f.stdout[name], f.stderr[name], nil
}

func (f *fakeRunner) called(name string) bool {
	for _, c := range f.calls {
		if c[0] == name {
			return true
		}
	}
	return false
}

func (f *fakeRunner) argsFor(name string) []string {
	for _, c := range f.calls {
		if c[0] == name {
			return c[1:]
		}
	}
	return nil
}

func containsArg(args []string, want string) bool {
	for _, a := range args {
		if strings.Contains(a, want) {
			return true
		}
	}
	return false
}
