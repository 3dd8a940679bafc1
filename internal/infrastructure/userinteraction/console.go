package userinteraction

import (
	"fmt"
	"io"
	"os"
	"time"

	"medical-agents/internal/application/port/input"
	"medical-agents/internal/application/port/output"
	"medical-agents/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.PresenterPort = (*ConsolePresenter)(nil)

const maxErrorLen = 300

type ConsolePresenter struct {
	w io.Writer
}

func NewConsolePresenter() *ConsolePresenter {
	return NewConsolePresenterTo(os.Stdout)
}

func NewConsolePresenterTo(w io.Writer) *ConsolePresenter {
	return &ConsolePresenter{w: w}
}

func (p *ConsolePresenter) ShowDiagnosis(d *input.Diagnosis) {
	for _, role := range entity.Specialists() {
		res, ok := d.Specialists[role]
		if !ok {
			continue
		}
		p.showResult(string(role), res)
	}
	p.showResult("Final Diagnosis", d.Team)
}

func (p *ConsolePresenter) showResult(title string, res entity.AgentResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(p.w, "\n━━━ %s (%s) ━━━\n", title, res.Duration.Round(time.Millisecond))

	if !res.OK() {
		red := color.New(color.FgRed)
		red.Fprint(p.w, "❌ No answer: ")

		dim := color.New(color.Faint)
		dim.Fprintln(p.w, truncate(res.Err.Error(), maxErrorLen))
		return
	}

	if res.Content == "" {
		dim := color.New(color.Faint)
		dim.Fprintln(p.w, "(empty answer)")
		return
	}

	fmt.Fprintln(p.w, res.Content)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
