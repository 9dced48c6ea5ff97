package exit

import (
	"bytes"
	"os"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	result := Success("done")
	if result.ExitCode != CodeMatch {
		t.Fatalf("ExitCode = %d, want %d", result.ExitCode, CodeMatch)
	}
	if result.Output != os.Stdout {
		t.Fatal("Output should be stdout")
	}
	if result.Message != "done" {
		t.Fatalf("Message = %q, want done", result.Message)
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	result := Error("boom")
	if result.ExitCode != CodeError {
		t.Fatalf("ExitCode = %d, want %d", result.ExitCode, CodeError)
	}
	if result.Output != os.Stderr {
		t.Fatal("Output should be stderr")
	}
}

func TestErrorf(t *testing.T) {
	t.Parallel()

	result := Errorf("failed: %d", 42)
	if result.Message != "failed: 42" {
		t.Fatalf("Message = %q, want failed: 42", result.Message)
	}
	if result.ExitCode != CodeError {
		t.Fatalf("ExitCode = %d, want %d", result.ExitCode, CodeError)
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	result := &Result{Output: &buf, Message: "hello"}
	result.Print()

	if buf.String() != "hello" {
		t.Fatalf("Print() wrote %q, want hello", buf.String())
	}
}
