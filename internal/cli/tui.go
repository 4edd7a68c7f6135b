package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tripcraft/internal/tui"
)

type TuiCmd struct {
	ID string `arg:"" optional:"" help:"Itinerary ID to browse. Defaults to the most recent."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	saved, err := ctx.LatestItinerary(c.ID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(saved), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
