// Package tui provides the interactive per-column strategy picker used
// by `tabsynth augment --interactive`. In a terminal it shows a tview
// form with one dropdown per column; otherwise it falls back to plain
// numbered prompts on stdin.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/rivo/tview"

	"github.com/synthlab/tabsynth/internal/augment"
	"github.com/synthlab/tabsynth/internal/dataset"
)

// PickStrategies asks the user to choose a strategy for every column of
// the dataset except the identifier column. Returns nil when the user
// cancels.
func PickStrategies(ds *dataset.Dataset) (map[string]augment.Strategy, error) {
	cols := selectable(ds)
	if len(cols) == 0 {
		return map[string]augment.Strategy{}, nil
	}

	if isTerminal() {
		return pickWithForm(cols)
	}
	return pickWithPrompts(os.Stdin, os.Stdout, cols)
}

// selectable lists the columns a strategy applies to. The identifier
// column is recomputed after augmentation, so it is never offered.
func selectable(ds *dataset.Dataset) []*dataset.Column {
	id := ds.IdentifierColumn()
	var cols []*dataset.Column
	for _, col := range ds.Columns {
		if col == id {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// pickWithForm runs the tview dropdown form.
func pickWithForm(cols []*dataset.Column) (map[string]augment.Strategy, error) {
	app := tview.NewApplication()
	chosen := make(map[string]augment.Strategy, len(cols))
	cancelled := false

	form := tview.NewForm()
	form.SetBorder(true).
		SetTitle(" augmentation strategies ").
		SetTitleAlign(tview.AlignLeft)

	for _, col := range cols {
		col := col
		options := optionLabels(col.Kind)

		// Dropdown default mirrors the non-interactive policy.
		chosen[col.Name] = augment.DefaultStrategy(col.Kind)
		form.AddDropDown(
			fmt.Sprintf("%s (%s)", col.Name, col.Kind),
			options,
			0,
			func(option string, _ int) {
				s, err := augment.ParseStrategy(option)
				if err == nil {
					chosen[col.Name] = s
				}
			},
		)
	}

	form.AddButton("Augment", func() {
		app.Stop()
	})
	form.AddButton("Cancel", func() {
		cancelled = true
		app.Stop()
	})

	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			cancelled = true
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(form, true).SetFocus(form).Run(); err != nil {
		return nil, err
	}
	if cancelled {
		return nil, nil
	}
	return chosen, nil
}

// optionLabels orders each kind's valid strategies with the default
// policy first, so index 0 is always the default choice.
func optionLabels(k dataset.Kind) []string {
	def := augment.DefaultStrategy(k)
	labels := []string{def.String()}
	for _, s := range augment.ValidStrategies(k) {
		if s != def {
			labels = append(labels, s.String())
		}
	}
	return labels
}

// pickWithPrompts is the non-TTY fallback: numbered choices per column,
// empty input takes the default.
func pickWithPrompts(in io.Reader, out io.Writer, cols []*dataset.Column) (map[string]augment.Strategy, error) {
	reader := bufio.NewReader(in)
	chosen := make(map[string]augment.Strategy, len(cols))

	for _, col := range cols {
		options := optionLabels(col.Kind)

		fmt.Fprintf(out, "strategy for %s (%s):\n", col.Name, col.Kind)
		for i, opt := range options {
			fmt.Fprintf(out, "  %d. %s\n", i+1, opt)
		}
		fmt.Fprintf(out, "choice [1]: ")

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		line = strings.TrimSpace(line)

		idx := 1
		if line != "" {
			idx, err = strconv.Atoi(line)
			if err != nil || idx < 1 || idx > len(options) {
				return nil, fmt.Errorf("invalid selection %q: must be between 1 and %d", line, len(options))
			}
		}

		s, err := augment.ParseStrategy(options[idx-1])
		if err != nil {
			return nil, err
		}
		chosen[col.Name] = s
	}

	return chosen, nil
}
