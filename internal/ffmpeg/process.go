// Package ffmpeg owns the lifecycle of decoder child processes: the
// streaming PPM pipe a session reads incrementally, and the batch frame
// extraction used by one-shot conversions.
package ffmpeg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
)

// DefaultBin is the decoder binary resolved from PATH when no explicit
// path is configured.
const DefaultBin = "ffmpeg"

// State tracks a decoder process's lifecycle.
type State int32

const (
	StateNotStarted State = iota
	StateRunning
	StateDraining
	StateExited
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateExited:
		return "exited"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExitError reports a decoder process that terminated with a non-zero
// status. Code is -1 when the process died from a signal.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("ffmpeg exited with code %d", e.Code)
}

// StreamConfig describes one streaming decode: the source file and the
// fps/scale filter applied before PPM output.
type StreamConfig struct {
	Input string
	Width int
	FPS   int
}

// Process runs one ffmpeg decode that emits a P6 stream on stdout.
// Lifecycle: NotStarted -> Running -> Draining -> Exited or Failed.
// Start may be called once; Wait and Cancel are safe to call from
// multiple goroutines and the stderr drain is always joined before a
// final status is reported.
type Process struct {
	bin string
	log *slog.Logger

	state atomic.Int32

	cmd       *exec.Cmd
	stdout    io.ReadCloser
	drainDone chan struct{}

	killOnce sync.Once
	waitOnce sync.Once
	waitErr  error
}

func NewProcess(bin string, logger *slog.Logger) *Process {
	if bin == "" {
		bin = DefaultBin
	}
	return &Process{
		bin: bin,
		log: logger.With("component", "ffmpeg"),
	}
}

// State returns the current lifecycle state.
func (p *Process) State() State {
	return State(p.state.Load())
}

// Start spawns the decoder. The context bounds the process lifetime:
// cancelling it kills the child.
func (p *Process) Start(ctx context.Context, cfg StreamConfig) error {
	if !p.state.CompareAndSwap(int32(StateNotStarted), int32(StateRunning)) {
		return fmt.Errorf("ffmpeg: start called in state %s", p.State())
	}

	cmd := exec.CommandContext(ctx, p.bin,
		"-i", cfg.Input,
		"-vf", fmt.Sprintf("fps=%d,scale=%d:-1", cfg.FPS, cfg.Width),
		"-f", "image2pipe",
		"-c:v", "ppm",
		"-",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		p.state.Store(int32(StateFailed))
		return fmt.Errorf("ffmpeg: stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		p.state.Store(int32(StateFailed))
		return fmt.Errorf("ffmpeg: stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		p.state.Store(int32(StateFailed))
		return fmt.Errorf("ffmpeg: start %s: %w", p.bin, err)
	}

	p.cmd = cmd
	p.stdout = stdout
	p.drainDone = make(chan struct{})
	go p.drainStderr(stderr)

	p.log.Info("decoder started",
		"pid", cmd.Process.Pid,
		"input", cfg.Input,
		"width", cfg.Width,
		"fps", cfg.FPS)
	return nil
}

// Output is the process's primary output. Read it to EOF before calling
// Wait.
func (p *Process) Output() io.Reader {
	return p.stdout
}

// PID returns the child's process id, or 0 before Start.
func (p *Process) PID() int {
	if p.cmd != nil && p.cmd.Process != nil {
		return p.cmd.Process.Pid
	}
	return 0
}

// drainStderr keeps the diagnostic pipe flowing for the whole process
// lifetime so ffmpeg can never block writing to it. Lines are logged at
// debug; if a line overflows the scanner the rest of the stream is
// discarded unread rather than left to back up the pipe.
func (p *Process) drainStderr(r io.Reader) {
	defer close(p.drainDone)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			p.log.Debug("decoder stderr", "line", line)
		}
	}
	if err := sc.Err(); err != nil {
		p.log.Debug("decoder stderr drain stopped early", "error", err)
		_, _ = io.Copy(io.Discard, r)
	}
}

// Wait joins the stderr drain, reaps the process, and reports the final
// status: nil after exit 0, an *ExitError after a non-zero exit, or a
// wrapped context error when the spawn context killed the child.
// Idempotent; concurrent callers all observe the first result.
func (p *Process) Wait() error {
	p.waitOnce.Do(func() {
		if p.cmd == nil {
			p.waitErr = errors.New("ffmpeg: wait called before start")
			return
		}
		p.state.CompareAndSwap(int32(StateRunning), int32(StateDraining))
		<-p.drainDone

		err := p.cmd.Wait()
		if err == nil {
			p.state.Store(int32(StateExited))
			p.log.Info("decoder finished")
			return
		}

		p.state.Store(int32(StateFailed))
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			p.waitErr = &ExitError{Code: exitErr.ExitCode()}
		} else {
			p.waitErr = fmt.Errorf("ffmpeg: wait: %w", err)
		}
		p.log.Warn("decoder failed", "error", p.waitErr)
	})
	return p.waitErr
}

// Cancel forcibly terminates the process, reaps it, and joins the drain
// task. It is idempotent, safe in any state, and never leaves an orphan
// or zombie behind.
func (p *Process) Cancel() {
	p.killOnce.Do(func() {
		if p.cmd == nil || p.cmd.Process == nil {
			return
		}
		if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			p.log.Debug("decoder kill", "error", err)
		}
	})
	if p.cmd != nil {
		_ = p.Wait()
	}
}
