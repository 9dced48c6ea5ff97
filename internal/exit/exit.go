package exit

import (
	"fmt"
	"io"
	"os"
)

// Process exit codes, diff(1)-style: 0 when the documents match, 1 when
// differences were found, 2 for usage or I/O errors.
const (
	CodeMatch       = 0
	CodeDifferences = 1
	CodeError       = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeMatch,
		Message:  message,
	}
}

func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeError,
		Message:  message,
	}
}

func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
