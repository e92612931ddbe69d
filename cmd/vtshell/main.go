// Command vtshell spawns a shell behind a pseudoterminal and drives it
// through the vt package's parser and grid, rendering the resulting frame
// back to the host terminal. It is the runnable counterpart to the vt
// package's library surface: everything it does is wiring.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sam-mccall/vtcore"
	"github.com/sam-mccall/vtcore/internal/ptyio"
	"github.com/sam-mccall/vtcore/internal/vtconfig"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	app := &cli.App{
		Name:  "vtshell",
		Usage: "run a shell behind the vt terminal core",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a vtshell config file"},
			&cli.StringFlag{Name: "shell", Usage: "shell to spawn (defaults to $SHELL)"},
			&cli.IntFlag{Name: "cols", Usage: "initial column count"},
			&cli.IntFlag{Name: "rows", Usage: "initial row count"},
			&cli.BoolFlag{Name: "debug", Usage: "log every parser event at debug level"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "vtshell:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	loader := vtconfig.NewLoader()
	loader.SetConfigFile(c.String("config"))
	if v := c.String("shell"); v != "" {
		loader.Viper().Set("shell", v)
	}
	if v := c.Int("cols"); v != 0 {
		loader.Viper().Set("cols", v)
	}
	if v := c.Int("rows"); v != 0 {
		loader.Viper().Set("rows", v)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger(c.Bool("debug"))
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	sessionID := uuid.New().String()
	logger = logger.With(zap.String("session_id", sessionID))

	cmd := exec.Command(cfg.Shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	p, err := ptyio.Start(cmd, cfg.Cols, cfg.Rows)
	if err != nil {
		return fmt.Errorf("starting pty: %w", err)
	}
	defer p.Close()

	vtTerm := vt.NewTerminal(cfg.Cols, cfg.Rows)
	var sink vt.ActionSink = vtTerm
	if c.Bool("debug") {
		sink = vt.NewLoggingSink(vtTerm, logger)
	}
	sess := vt.NewSession(vtTerm, sink)

	restore, err := enterRawMode()
	if err != nil {
		logger.Warn("raw mode unavailable, running unmodified", zap.Error(err))
	} else {
		defer restore()
	}

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go watchResize(winch, p, vtTerm)

	r := newRenderer(vtTerm)
	go r.loop()
	defer r.close()

	done := make(chan struct{})
	go inputLoop(p, done)

	readLoop(p, sess, logger)
	close(done)

	return p.Wait()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{os.TempDir() + "/vtshell.log"}
	return cfg.Build()
}

// enterRawMode puts the host terminal into raw mode and returns a function
// that restores it, the way an interactive shell session needs: no line
// buffering, no local echo, signals delivered as raw bytes.
func enterRawMode() (func(), error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, old) }, nil
}

// readLoop is the only goroutine that ever calls into sess; every CSI/OSC/
// Control callback the core dispatches runs on this goroutine, matching the
// "single owning goroutine" contract the core's concurrency story requires.
func readLoop(p *ptyio.PTY, sess *vt.Session, logger *zap.Logger) {
	buf := make([]byte, 4096)
	for {
		n, err := p.Read(buf)
		if n > 0 {
			if _, werr := sess.Write(buf[:n]); werr != nil {
				logger.Error("session write failed", zap.Error(werr))
			}
		}
		if err != nil {
			return
		}
	}
}

func watchResize(winch <-chan os.Signal, p *ptyio.PTY, t *vt.Terminal) {
	for range winch {
		w, h, err := term.GetSize(int(os.Stdin.Fd()))
		if err != nil || w <= 0 || h <= 0 {
			continue
		}
		t.Grid.Resize(w, h)
		_ = p.Resize(w, h)
	}
}
