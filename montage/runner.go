package montage

import (
	"bytes"
	"context"
	"os/exec"
)

// commandRunner is the seam between the pipeline and the external tools.
// The real implementation shells out; tests substitute a fake to drive the
// pipeline without ffmpeg or ImageMagick installed.
type commandRunner interface {
	run(ctx context.Context, name string, args []string) (stdout, stderr []byte, err error)
}

// execRunner invokes tools through os/exec, capturing both output streams.
// Cancelling the context kills the child process.
type execRunner struct{}

func (execRunner) run(ctx context.Context, name string, args []string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// runTool executes one external tool invocation under the configured
// timeout, logging the full argument vector at debug level.
func (b *Builder) runTool(ctx context.Context, name string, args []string) ([]byte, []byte, error) {
	if b.cfg.ToolTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.ToolTimeout)
		defer cancel()
	}

	b.log.Debug().Str("tool", name).Strs("args", args).Msg("running")
	stdout, stderr, err := b.runner.run(ctx, name, args)
	if err != nil {
		b.log.Debug().Err(err).Str("tool", name).Msg("tool failed")
	}
	return stdout, stderr, err
}
