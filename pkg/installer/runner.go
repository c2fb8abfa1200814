package installer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
	"github.com/OlaoluwaM/scaffy/pkg/stringutil"
)

var runnerLog = logger.New("installer:runner")

// maxOutputInError bounds how much captured process output an error carries.
const maxOutputInError = 2000

// CommandRunner runs external programs. Tests substitute a fake.
type CommandRunner interface {
	// Run executes name with args in dir and waits for it to finish.
	Run(ctx context.Context, dir, name string, args ...string) error
	// LookPath reports where name is on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner runs programs with os/exec. When Stream is set, program output
// goes to Output as it is produced; otherwise it is captured and attached to
// the error on failure.
type ExecRunner struct {
	Stream bool
	Output io.Writer
}

// NewExecRunner returns a runner streaming to stderr when verbose.
func NewExecRunner(verbose bool) *ExecRunner {
	return &ExecRunner{Stream: verbose, Output: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	runnerLog.Printf("Running in %s: %s %s", dir, name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var captured bytes.Buffer
	if r.Stream && r.Output != nil {
		cmd.Stdout = r.Output
		cmd.Stderr = r.Output
	} else {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	}

	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(captured.String())
		if output == "" {
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return fmt.Errorf("%s failed: %w\n%s", name, err, stringutil.Truncate(output, maxOutputInError))
	}
	return nil
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
