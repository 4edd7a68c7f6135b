package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tripcraft/internal/models"
)

// Model is a read-only browser for a generated itinerary. Days are
// presented as tabs and navigated with the arrow keys.
type Model struct {
	saved    models.SavedItinerary
	day      int
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

func NewModel(saved models.SavedItinerary) Model {
	return Model{
		saved: saved,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
