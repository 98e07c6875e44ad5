// Package shell is a line-mode input surface: each line becomes one app
// command and the lists are reprinted after it.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tasklist-cli/internal/app"
	"tasklist-cli/internal/view"

	"github.com/chzyer/readline"
)

const prompt = "tasklist> "

type Shell struct {
	ctrl    *app.Controller
	in      LineReader
	out     io.Writer
	errOut  io.Writer
	surface view.Surface
}

// New attaches a text surface on out to ctrl, which paints the current lists.
func New(ctrl *app.Controller, in LineReader, out, errOut io.Writer, ascii bool) (*Shell, error) {
	s := &Shell{
		ctrl:    ctrl,
		in:      in,
		out:     out,
		errOut:  errOut,
		surface: view.TextSurface{W: out, ASCII: ascii},
	}
	if err := ctrl.SetSurface(s.surface); err != nil {
		return nil, err
	}
	return s, nil
}

// Run reads commands until quit or end of input. Parse and dispatch errors
// go to errOut and the loop continues; only input failures end it.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.in.ReadLine(prompt)
		if err != nil {
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				continue
			case errors.Is(err, io.EOF):
				return nil
			default:
				return fmt.Errorf("read input: %w", err)
			}
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd, err := Parse(line, s.ctrl.Display())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, errHelp):
			printHelp(s.out)
			continue
		case errors.Is(err, errShow):
			if err := s.surface.Paint(s.ctrl.Display()); err != nil {
				return err
			}
			continue
		case err != nil:
			fmt.Fprintln(s.errOut, err.Error())
			continue
		}

		if _, err := s.ctrl.Dispatch(ctx, cmd); err != nil {
			fmt.Fprintf(s.errOut, "%s: %v\n", cmd.Kind(), err)
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-18s %s\n", c.usage, c.help)
	}
}
