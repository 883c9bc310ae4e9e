package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/bonita-cli/internal/application"
	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// FadeAfter is the age at which history entries reach the faintest
	// shade. Zero disables fading.
	FadeAfter time.Duration
}

func renderConnection(report application.ConnectionReport, s styles) string {
	lines := []string{
		s.title.Render("Bonita connection"),
		s.header.Render(fmt.Sprintf("profile: %s", report.Profile)),
		keyValue("engine:", report.BaseURL, s),
		keyValue("user:", report.Username, s),
	}

	if len(report.Processes) == 0 {
		lines = append(lines, s.empty.Render("No processes checked."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	processLines := make([]string, 0, len(report.Processes)+1)
	processLines = append(processLines, s.name.Render(fmt.Sprintf("processes: %d", len(report.Processes))))
	for _, check := range report.Processes {
		processLines = append(processLines, processLine(check, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, processLines...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func processLine(check application.ProcessCheck, s styles) string {
	mark := s.ok.Render("ok")
	id := check.ID
	if id == "" {
		mark = s.warning.Render("missing")
		id = "-"
	}

	parts := []string{mark, " ", s.detail.Render(check.Name), " ", s.key.Render("id " + id)}
	if check.Registry {
		parts = append(parts, " ", s.registry.Render("(case registry)"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderProfiles(profiles []domain.Profile, current domain.ProfileID, s styles) string {
	lines := []string{
		s.title.Render("Bonita profiles"),
		s.header.Render(fmt.Sprintf("profiles: %d", len(profiles))),
	}

	if len(profiles) == 0 {
		lines = append(lines, s.empty.Render("No profiles configured. Run `bnt profile set`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, profile := range profiles {
		title := string(profile.ID)
		if profile.ID == current {
			title += " *"
		}

		password := "stored"
		if profile.SecretRef == "" {
			password = "not stored"
		}

		block := []string{
			s.name.Render(title),
			keyValue("engine:", profile.BaseURL, s),
			keyValue("user:", profile.Username, s),
			keyValue("password:", password, s),
		}
		if len(profile.RequiredProcesses) > 0 {
			block = append(block, keyValue("requires:", strings.Join(profile.RequiredProcesses, ", "), s))
		}

		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHistory(records []domain.LaunchRecord, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Launch history"),
		s.header.Render(fmt.Sprintf("records: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("Nothing launched yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, historyLine(record, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func historyLine(record domain.LaunchRecord, opts RenderOptions, s styles) string {
	when := lipgloss.NewStyle().
		Foreground(ageColor(record.At, opts)).
		Render(formatAgo(record.At, opts.Now))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		when,
		" ",
		s.name.Render(record.ProcessName),
		" ",
		s.key.Render("entity "+record.EntityID),
		" ",
		s.detail.Render(record.Summary()),
		" ",
		s.registry.Render("["+string(record.Profile)+"]"),
	)
}

func keyValue(key, value string, s styles) string {
	if strings.TrimSpace(value) == "" {
		value = "n/a"
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key), " ", s.detail.Render(value))
}

func formatAgo(at, now time.Time) string {
	if at.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return at.Format("2006-01-02 15:04")
	}

	elapsed := now.Sub(at)
	if elapsed < time.Minute {
		return "just now"
	}
	if elapsed < time.Hour {
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	}
	if elapsed < 24*time.Hour {
		return plural(int(elapsed.Hours()), "hour") + " ago"
	}

	days := int(math.Floor(elapsed.Hours() / 24))
	return fmt.Sprintf("%s ago (%s)", plural(days, "day"), at.Format("02 Jan"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func ageColor(at time.Time, opts RenderOptions) lipgloss.Color {
	if opts.Now.IsZero() || opts.FadeAfter <= 0 || at.IsZero() {
		return lipgloss.Color("255")
	}

	// newest entries are brightest
	remaining := opts.FadeAfter.Seconds() - opts.Now.Sub(at).Seconds()
	return interpolateColor(remaining, 0, opts.FadeAfter.Seconds())
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp from 240 (faded) to 255 (bright white)
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
