// Package session launches terminal sessions from resolved settings
// records: a PTY sized to the record's geometry, running the record's
// command line in the record's starting directory.
package session

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/creack/pty"

	"github.com/framegrace/texelsettings/settings"
)

// Session is one running terminal process attached to a PTY.
type Session struct {
	title string
	cmd   *exec.Cmd
	ptmx  *os.File

	mu       sync.Mutex
	stop     chan struct{}
	stopOnce sync.Once
}

// Launch starts the record's command line on a new PTY. An empty command
// line falls back to $SHELL (then /bin/sh). The PTY is created with the
// record's initial geometry and TERM set for 256-color output.
func Launch(es *settings.EffectiveSettings) (*Session, error) {
	if es == nil {
		return nil, fmt.Errorf("session: nil settings")
	}

	argv, err := splitCommandline(es.Commandline())
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		argv = []string{defaultShell()}
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
	)
	if dir := es.StartingDirectory(); dir != "" {
		cmd.Dir = dir
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(es.InitialRows()),
		Cols: uint16(es.InitialCols()),
	})
	if err != nil {
		log.Printf("Session: Failed to start pty for %q: %v", argv[0], err)
		return nil, fmt.Errorf("session: start %q: %w", argv[0], err)
	}

	log.Printf("Session: Started %q (%s) at %dx%d", es.StartingTitle(), argv[0], es.InitialCols(), es.InitialRows())
	return &Session{
		title: es.StartingTitle(),
		cmd:   cmd,
		ptmx:  ptmx,
		stop:  make(chan struct{}),
	}, nil
}

func defaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

// Title returns the session's starting title.
func (s *Session) Title() string { return s.title }

// PTY returns the master side of the session's terminal.
func (s *Session) PTY() *os.File { return s.ptmx }

// Done reports session shutdown; closed by Stop.
func (s *Session) Done() <-chan struct{} { return s.stop }

// Resize adjusts the PTY to a new geometry. Non-positive sizes are ignored.
func (s *Session) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ptmx != nil {
		pty.Setsize(s.ptmx, &pty.Winsize{
			Rows: uint16(rows),
			Cols: uint16(cols),
		})
	}
}

// Wait blocks until the process exits.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}

// Stop closes the PTY and asks the process to terminate.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.ptmx != nil {
			s.ptmx.Close()
		}
		if s.cmd != nil && s.cmd.Process != nil {
			s.cmd.Process.Signal(syscall.SIGTERM)
		}
	})
}
