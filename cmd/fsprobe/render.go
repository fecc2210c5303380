package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/fsprobe/internal/filesystem"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			PaddingRight(2) //nolint:mnd

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))
)

type pair struct {
	label string
	value string
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// requiredPairs decides against the same stats that are shown, so the
// verdict cannot disagree with the printed free space.
func requiredPairs(stats filesystem.FilesystemStats, requiredBytes uint64) ([]pair, bool) {
	enough := requiredBytes <= stats.FreeBytes

	return []pair{
		{"Required", humanize.IBytes(requiredBytes)},
		{"Enough", yesNo(enough)},
	}, enough
}

func statsPairs(stats filesystem.FilesystemStats) []pair {
	usedPct := 0.0
	if stats.TotalBytes > 0 {
		usedPct = float64(stats.TotalBytes-stats.FreeBytes) / float64(stats.TotalBytes) * 100 //nolint:mnd
	}

	return []pair{
		{"Free", humanize.IBytes(stats.FreeBytes)},
		{"Available", humanize.IBytes(stats.AvailableBytes)},
		{"Total", humanize.IBytes(stats.TotalBytes)},
		{"Used", fmt.Sprintf("%.1f%%", usedPct)},
		{"Block size", humanize.IBytes(stats.BlockSize)},
		{"Inodes free", humanize.Comma(int64(stats.FreeFiles)) + " / " + humanize.Comma(int64(stats.TotalFiles))}, //nolint:gosec
	}
}

// renderPairs renders a titled two-column table of labels and values.
func renderPairs(title string, pairs []pair) string {
	labels := make([]string, 0, len(pairs))
	values := make([]string, 0, len(pairs))

	for _, p := range pairs {
		labels = append(labels, labelStyle.Render(p.label))
		values = append(values, valueStyle.Render(p.value))
	}

	table := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(labels, "\n"),
		strings.Join(values, "\n"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), table)
}
