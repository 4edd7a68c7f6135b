package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tripcraft/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dayHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true).
			MarginTop(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// RenderItinerary produces the human-readable day-by-day view
func RenderItinerary(itinerary models.Itinerary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(itinerary.Summary))
	b.WriteString("\n")

	for _, day := range itinerary.Days {
		b.WriteString(dayHeaderStyle.Render(fmt.Sprintf("Day %d  %s", day.Day, day.Date)))
		b.WriteString("\n")

		if len(day.Activities) == 0 && len(day.Meals) == 0 {
			b.WriteString("  (free day)\n")
			continue
		}

		if len(day.Activities) > 0 {
			b.WriteString(sectionStyle.Render("  Activities"))
			b.WriteString("\n")
			for _, item := range day.Activities {
				b.WriteString(fmt.Sprintf("    %s  %s (%s)\n",
					timeStyle.Render(FormatTime(item.StartMinute)+"-"+FormatTime(item.EndMinute)),
					item.Name, item.Category))
			}
		}

		if len(day.Meals) > 0 {
			b.WriteString(sectionStyle.Render("  Meals"))
			b.WriteString("\n")
			for _, item := range day.Meals {
				b.WriteString(fmt.Sprintf("    %s  %s (%s)\n",
					timeStyle.Render(FormatTime(item.StartMinute)+"-"+FormatTime(item.EndMinute)),
					item.Name, item.MealSlot))
			}
		}

		b.WriteString(summaryStyle.Render(fmt.Sprintf("  %d activities (%d min), %d meals (%d min)",
			day.Summary.TotalActivities, day.Summary.TotalActivityTime,
			day.Summary.TotalMeals, day.Summary.TotalMealTime)))
		b.WriteString("\n")
	}

	return b.String()
}
