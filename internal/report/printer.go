package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	boxWidth   = 72
	innerWidth = boxWidth - 4
	barWidth   = 20
	nameWidth  = 20
)

// Printer writes text dashboards.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, lines []string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", innerWidth, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", innerWidth, truncate(line, innerWidth))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult prints the full dashboard for one analysis.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	d := BuildDashboard(result)

	overall := []string{
		fmt.Sprintf("%s %3d%% match (%s)", bar(d.MatchScore, barWidth*2), d.MatchScore, d.Tier),
		"",
	}
	p.printBox("OVERALL FIT", append(overall, wrap(d.Summary, innerWidth)...))

	if len(d.Radar) > 0 {
		lines := []string{fmt.Sprintf("%-*s %5s %5s", nameWidth, "Skill", "You", "Job")}
		for _, pt := range d.Radar {
			lines = append(lines, fmt.Sprintf("%-*s %5d %5d", nameWidth, truncate(pt.Subject, nameWidth), pt.You, pt.Job))
		}
		p.printBox("SKILL TOPOLOGY", lines)
	}

	p.printBox("TECHNICAL PROFICIENCY", skillBars(d.TechnicalBars))
	p.printBox("SOFT SKILL ALIGNMENT", skillBars(d.SoftBars))

	if len(d.Gaps) > 0 {
		lines := make([]string, 0, len(d.Gaps))
		for _, s := range d.Gaps {
			lines = append(lines, fmt.Sprintf("%-*s gap %3d  (you %d, job %d)",
				nameWidth, truncate(s.Name, nameWidth), s.Gap(), s.Score, s.Importance))
		}
		p.printBox("BIGGEST GAPS", lines)
	}

	keywords := []string{"Great job! No critical keywords missing."}
	if len(d.MissingKeywords) > 0 {
		keywords = append([]string{"Add these exact terms to improve ATS ranking:"},
			wrap(strings.Join(d.MissingKeywords, ", "), innerWidth)...)
	}
	p.printBox("MISSING KEYWORDS", keywords)

	if len(d.Suggestions) > 0 {
		var lines []string
		for i, s := range d.Suggestions {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, fmt.Sprintf("#%d %s", i+1, strings.ToUpper(s.Section)))
			original := fmt.Sprintf("%q", s.OriginalText)
			if s.IsNewContent() {
				original = "(new content)"
			}
			lines = append(lines, wrapLabeled("Original:  ", original)...)
			lines = append(lines, wrapLabeled("Optimized: ", s.ImprovedText)...)
			lines = append(lines, wrapLabeled("Why:       ", s.Reasoning)...)
		}
		p.printBox("OPTIMIZATION SUGGESTIONS", lines)
	}
}

// PrintError prints a failed analysis message.
func (p *Printer) PrintError(message string) {
	p.printBox("ANALYSIS FAILED", wrap(message, innerWidth))
}

func skillBars(skills []types.SkillPoint) []string {
	if len(skills) == 0 {
		return []string{"No skills reported."}
	}
	lines := make([]string, 0, len(skills)*2)
	for _, s := range skills {
		name := truncate(s.Name, nameWidth)
		lines = append(lines,
			fmt.Sprintf("%-*s you %s %3d", nameWidth, name, bar(s.Score, barWidth), s.Score),
			fmt.Sprintf("%-*s job %s %3d", nameWidth, "", bar(s.Importance, barWidth), s.Importance),
		)
	}
	return lines
}

// bar renders a 0-100 value as a fixed-width block bar.
func bar(value, width int) string {
	value = max(0, min(100, value))
	filled := (value*width + 50) / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// wrap breaks text on spaces into lines of at most width runes.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(w) > width {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	return append(lines, current)
}

func wrapLabeled(label, text string) []string {
	pad := strings.Repeat(" ", utf8.RuneCountInString(label))
	lines := wrap(text, innerWidth-len(pad))
	for i := range lines {
		if i == 0 {
			lines[i] = label + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return lines
}
