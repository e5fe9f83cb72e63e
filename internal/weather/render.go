package weather

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tempStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	highStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	lowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Hours of forecast shown in the hourly row.
const hourlySteps = 8

// Render formats a report for the terminal.
func Render(r *Report) string {
	cur := r.Current
	cond := cur.Condition()

	var b strings.Builder
	b.WriteString(titleStyle.Render(cur.Location()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n\n", tempStyle.Render(fmt.Sprintf("%d°C", round(cur.Main.Temp))), cond.Description)

	details := [][2]string{
		{"Feels like", fmt.Sprintf("%d°C", round(cur.Main.FeelsLike))},
		{"Humidity", fmt.Sprintf("%d%%", cur.Main.Humidity)},
		{"Wind", fmt.Sprintf("%.1f m/s", cur.Wind.Speed)},
		{"Pressure", fmt.Sprintf("%d hPa", cur.Main.Pressure)},
		{"Visibility", fmt.Sprintf("%.1f km", float64(cur.Visibility)/1000)},
	}
	for _, d := range details {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-11s", d[0])), d[1])
	}

	if steps := r.Forecast.List; len(steps) > 0 {
		b.WriteString("\n")
		var cols []string
		for _, s := range steps[:min(hourlySteps, len(steps))] {
			t := r.Forecast.LocalTime(s)
			cols = append(cols, fmt.Sprintf("%s\n%3d°", t.Format("15:04"), round(s.Main.Temp)))
		}
		b.WriteString(boxStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, spaced(cols)...)))
		b.WriteString("\n")
	}

	if days := r.Forecast.Daily(5); len(days) > 0 {
		b.WriteString("\n")
		for _, d := range days {
			fmt.Fprintf(&b, "%-4s %s %s  %s\n",
				d.Date.Format("Mon"),
				highStyle.Render(fmt.Sprintf("%3d°", d.High)),
				lowStyle.Render(fmt.Sprintf("%3d°", d.Low)),
				d.Description)
		}
	}
	return b.String()
}

func spaced(cols []string) []string {
	out := make([]string, 0, 2*len(cols))
	for i, c := range cols {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, c)
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
