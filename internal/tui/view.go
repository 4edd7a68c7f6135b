package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tripcraft/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	it := m.saved.Itinerary
	if len(it.Days) == 0 {
		return docStyle.Render("Itinerary has no days.")
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Itinerary %s", m.saved.ID)),
		m.viewTabs(),
		m.viewDay(it.Days[m.day]),
		summaryStyle.Render(it.Summary),
		m.help.View(m.keys),
	)

	return docStyle.Render(ui)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, day := range m.saved.Itinerary.Days {
		title := fmt.Sprintf("Day %d", day.Day)
		if i == m.day {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDay(day models.DayItinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", day.Date)
	if day.Hotel.Name != "" {
		fmt.Fprintf(&b, "Hotel: %s\n", day.Hotel.Name)
	}
	b.WriteString("\n")

	items := make([]models.ScheduledItem, 0, len(day.Activities)+len(day.Meals))
	items = append(items, day.Activities...)
	items = append(items, day.Meals...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].StartMinute < items[j].StartMinute
	})

	if len(items) == 0 {
		b.WriteString("Nothing scheduled.\n")
	}
	for _, item := range items {
		window := timeStyle.Render(fmt.Sprintf("%s - %s", formatMinutes(item.StartMinute), formatMinutes(item.EndMinute)))
		name := item.Name
		if item.MealSlot != "" {
			name = mealStyle.Render(fmt.Sprintf("%s (%s)", item.Name, item.MealSlot))
		}
		fmt.Fprintf(&b, "%s  %s\n", window, name)
	}

	if day.Summary.TotalActivities > 0 || day.Summary.TotalMeals > 0 {
		fmt.Fprintf(&b, "\n%d activities, %d meals, %d min scheduled\n",
			day.Summary.TotalActivities, day.Summary.TotalMeals,
			day.Summary.TotalActivityTime+day.Summary.TotalMealTime)
	}

	return b.String()
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
