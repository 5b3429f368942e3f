package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"example.com/scoreboard/internal/game"
	"example.com/scoreboard/internal/replay"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func renderSummary(w io.Writer, matches []game.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "no matches in progress")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "HOME", "SCORE", "AWAY", "TOTAL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, m := range matches {
		t.Row(
			strconv.Itoa(i+1),
			m.HomeTeam,
			fmt.Sprintf("%d - %d", m.HomeScore, m.AwayScore),
			m.AwayTeam,
			strconv.Itoa(m.Total()),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderRejected(w io.Writer, failed []replay.Outcome) {
	for _, o := range failed {
		fmt.Fprintln(w, rejectedStyle.Render(
			fmt.Sprintf("step %d (%s) rejected: %s: %v", o.Step, o.Op, o.Code, o.Err)))
	}
}

type report struct {
	Script   string         `json:"script"`
	Rejected []rejectedStep `json:"rejected"`
	Summary  []game.Match   `json:"summary"`
}

type rejectedStep struct {
	Step    int    `json:"step"`
	Op      string `json:"op"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newReport(name string, outcomes []replay.Outcome, summary []game.Match) report {
	r := report{
		Script:   name,
		Rejected: []rejectedStep{},
		Summary:  summary,
	}
	for _, o := range replay.Failed(outcomes) {
		r.Rejected = append(r.Rejected, rejectedStep{
			Step:    o.Step,
			Op:      string(o.Op),
			Code:    o.Code,
			Message: o.Err.Error(),
		})
	}
	if r.Summary == nil {
		r.Summary = []game.Match{}
	}
	return r
}
