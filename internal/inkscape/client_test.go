package inkscape_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"keysmith/internal/inkscape"
)

type stubExecutor struct {
	stderr  string
	err     error
	calls   int
	binary  string
	args    [][]string
	convert func(inPath, outPath string) error
}

func (s *stubExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	s.calls++
	s.binary = binary
	s.args = append(s.args, append([]string(nil), args...))
	if s.convert != nil {
		inPath := args[len(args)-3]
		outPath := args[len(args)-1]
		if err := s.convert(inPath, outPath); err != nil {
			return s.stderr, err
		}
	}
	return s.stderr, s.err
}

func passthrough(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

func TestConvertWritesInputAndInvokesTool(t *testing.T) {
	tmp := t.TempDir()
	inPath := filepath.Join(tmp, "a.in.svg")
	outPath := filepath.Join(tmp, "a.out.svg")

	exec := &stubExecutor{convert: passthrough}
	client, err := inkscape.New("inkscape", 5, inkscape.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	doc := `<svg><text>A</text></svg>`
	if err := client.Convert(context.Background(), doc, inPath, outPath); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	written, err := os.ReadFile(inPath)
	if err != nil {
		t.Fatalf("expected input transfer file: %v", err)
	}
	if string(written) != doc {
		t.Fatalf("input file mismatch: %q", written)
	}
	if exec.calls != 1 {
		t.Fatalf("expected 1 invocation, got %d", exec.calls)
	}
	want := []string{"--actions", inkscape.DefaultActions, inPath, "-o", outPath}
	got := exec.args[0]
	if len(got) != len(want) {
		t.Fatalf("unexpected args: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("arg %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestConvertErrorsWhenToolProducesNoOutput(t *testing.T) {
	tmp := t.TempDir()
	client, err := inkscape.New("inkscape", 5, inkscape.WithExecutor(&stubExecutor{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	err = client.Convert(context.Background(), "<svg/>",
		filepath.Join(tmp, "in.svg"), filepath.Join(tmp, "out.svg"))
	if err == nil {
		t.Fatal("expected error when no output file is produced")
	}
	if !strings.Contains(err.Error(), "no output file") {
		t.Fatalf("expected 'no output file' error, got: %v", err)
	}
}

func TestConvertSurfacesStderrTail(t *testing.T) {
	tmp := t.TempDir()
	exec := &stubExecutor{
		err:    errors.New("exit status 1"),
		stderr: "loading fonts\nmore detail\nInkscapeApplication: no document\n",
	}
	client, err := inkscape.New("inkscape", 5, inkscape.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	err = client.Convert(context.Background(), "<svg/>",
		filepath.Join(tmp, "in.svg"), filepath.Join(tmp, "out.svg"))
	if err == nil {
		t.Fatal("expected executor error to propagate")
	}
	if !strings.Contains(err.Error(), "no document") {
		t.Fatalf("expected stderr tail in error, got: %v", err)
	}
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := inkscape.New("  ", 5); err == nil {
		t.Fatal("expected error for empty binary")
	}
}

func TestWithActionsOverride(t *testing.T) {
	tmp := t.TempDir()
	exec := &stubExecutor{convert: passthrough}
	client, err := inkscape.New("inkscape", 0,
		inkscape.WithExecutor(exec),
		inkscape.WithActions("select-all;object-to-path;"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := client.Convert(context.Background(), "<svg/>",
		filepath.Join(tmp, "in.svg"), filepath.Join(tmp, "out.svg")); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if exec.args[0][1] != "select-all;object-to-path;" {
		t.Fatalf("expected action override, got %v", exec.args[0])
	}
}
