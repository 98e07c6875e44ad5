// Package view projects app state into display regions and paints them onto
// display surfaces. Rendering never mutates state.
package view

import (
	"fmt"

	"tasklist-cli/internal/model"
)

type ListEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type TaskRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// Detail is the panel for the selected list. When Visible is false the other
// fields are empty.
type Detail struct {
	Visible bool      `json:"visible"`
	ListID  string    `json:"listId,omitempty"`
	Title   string    `json:"title,omitempty"`
	Count   string    `json:"count,omitempty"`
	Rows    []TaskRow `json:"rows,omitempty"`
}

// Display is everything a surface needs to repaint itself from scratch.
type Display struct {
	Lists  []ListEntry `json:"lists"`
	Detail Detail      `json:"detail"`
}

// Surface is a presentation target. Paint replaces whatever was shown before.
type Surface interface {
	Paint(d Display) error
}

// SurfaceFunc adapts a plain function to Surface.
type SurfaceFunc func(d Display) error

func (f SurfaceFunc) Paint(d Display) error { return f(d) }

// Project builds the display for st.
func Project(st model.AppState) Display {
	d := Display{Lists: make([]ListEntry, 0, len(st.Lists))}
	for _, l := range st.Lists {
		d.Lists = append(d.Lists, ListEntry{
			ID:     l.ID,
			Name:   l.Name,
			Active: st.SelectedListID != "" && l.ID == st.SelectedListID,
		})
	}

	sel, ok := st.SelectedList()
	if !ok {
		return d
	}
	d.Detail = Detail{
		Visible: true,
		ListID:  sel.ID,
		Title:   sel.Name,
		Count:   CountText(sel.Remaining()),
		Rows:    make([]TaskRow, 0, len(sel.Tasks)),
	}
	for _, t := range sel.Tasks {
		d.Detail.Rows = append(d.Detail.Rows, TaskRow{ID: t.ID, Name: t.Name, Checked: t.Complete})
	}
	return d
}

// CountText formats the remaining-count line.
func CountText(n int) string {
	if n == 1 {
		return "1 task remaining"
	}
	return fmt.Sprintf("%d tasks remaining", n)
}

// Recorder keeps the last painted display.
type Recorder struct {
	Last   Display
	Paints int
}

func (r *Recorder) Paint(d Display) error {
	r.Last = d
	r.Paints++
	return nil
}
