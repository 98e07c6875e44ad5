// Package app owns the app state and runs every command through
// mutate -> persist -> render.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"tasklist-cli/internal/model"
	"tasklist-cli/internal/mutate"
	"tasklist-cli/internal/store"
	"tasklist-cli/internal/view"
)

var ErrUnknownCommand = errors.New("unknown command")

type Controller struct {
	state   model.AppState
	kv      store.KV
	surface view.Surface
	logger  *log.Logger
}

type Option func(*Controller)

// WithLogger sets the diagnostics logger. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Open loads state from kv and paints the initial display onto surface.
// A nil surface is allowed for headless callers.
func Open(ctx context.Context, kv store.KV, surface view.Surface, opts ...Option) (*Controller, error) {
	if kv == nil {
		return nil, errors.New("nil store")
	}
	c := &Controller{
		kv:      kv,
		surface: surface,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	st, err := store.Load(ctx, kv)
	if err != nil {
		return nil, err
	}
	c.state = st
	c.logger.Printf("loaded %d lists (selected=%q)", len(st.Lists), st.SelectedListID)
	if err := c.render(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetSurface replaces the display surface and repaints it.
func (c *Controller) SetSurface(s view.Surface) error {
	c.surface = s
	return c.render()
}

// Dispatch applies cmd, saves, and repaints. Persist and render run even
// when the mutation was a no-op so the surface always mirrors the state.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) (mutate.Result, error) {
	res, err := c.apply(cmd)
	if err != nil {
		return res, err
	}
	c.logger.Printf("%s changed=%v", cmd.Kind(), res.Changed)
	if err := store.Save(ctx, c.kv, c.state); err != nil {
		return detach(res), err
	}
	if err := c.render(); err != nil {
		return detach(res), fmt.Errorf("render: %w", err)
	}
	return detach(res), nil
}

// detach copies the list/task out of the owned state.
func detach(res mutate.Result) mutate.Result {
	if res.List != nil {
		l := res.List.Clone()
		res.List = &l
	}
	if res.Task != nil {
		t := *res.Task
		res.Task = &t
	}
	return res
}

func (c *Controller) apply(cmd Command) (mutate.Result, error) {
	st := &c.state
	switch cmd := cmd.(type) {
	case CreateList:
		return mutate.AddList(st, cmd.Name), nil
	case SelectList:
		return mutate.SelectList(st, cmd.ID), nil
	case DeleteSelectedList:
		return mutate.DeleteSelectedList(st), nil
	case CreateTask:
		return mutate.AddTask(st, cmd.Name), nil
	case ToggleTask:
		return mutate.ToggleTask(st, cmd.ID, cmd.Checked), nil
	case ClearCompleted:
		return mutate.ClearCompleted(st), nil
	case nil:
		return mutate.Result{}, ErrUnknownCommand
	default:
		return mutate.Result{}, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func (c *Controller) render() error {
	if c.surface == nil {
		return nil
	}
	return c.surface.Paint(view.Project(c.state))
}

// State returns a copy of the current state.
func (c *Controller) State() model.AppState {
	return c.state.Clone()
}

// Display returns the current projection without painting it.
func (c *Controller) Display() view.Display {
	return view.Project(c.state)
}
