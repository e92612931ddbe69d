package ptyio

import (
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// PTY is a running pseudoterminal with a shell attached to its slave end.
// It mirrors the Start/Read/Write/Resize/Close shape the core's driver
// needs, implemented on top of github.com/creack/pty instead of a raw cgo
// ptmx/ptsname dance.
type PTY struct {
	master *os.File
	cmd    *exec.Cmd
}

// Start spawns cmd attached to a new pseudoterminal sized cols x rows and
// returns the master end.
func Start(cmd *exec.Cmd, cols, rows int) (*PTY, error) {
	master, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
	if err != nil {
		return nil, err
	}
	return &PTY{master: master, cmd: cmd}, nil
}

func (p *PTY) Read(b []byte) (int, error)  { return p.master.Read(b) }
func (p *PTY) Write(b []byte) (int, error) { return p.master.Write(b) }

// Resize updates the PTY's window size, which the kernel reports to the
// shell as SIGWINCH.
func (p *PTY) Resize(cols, rows int) error {
	return pty.Setsize(p.master, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// Close closes the master end. The child typically exits on SIGHUP once
// its controlling terminal goes away.
func (p *PTY) Close() error {
	return p.master.Close()
}

// Wait blocks until the child process exits and returns its error, if any.
func (p *PTY) Wait() error {
	return p.cmd.Wait()
}
