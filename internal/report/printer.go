// Package report renders a models.ValidationRun for people and machines.
//
// Console output lists one line per check in a fixed order (agent files,
// framework files, README integration, naming) followed by the pass count and
// a banner. The text depends only on the run's check results, so two runs over
// an unchanged tree print identical bytes when color is off.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/personacheck/internal/content"
	"github.com/harrison/personacheck/internal/display"
	"github.com/harrison/personacheck/internal/framework"
	"github.com/harrison/personacheck/internal/models"
)

// Printer writes the console report
type Printer struct {
	Out           io.Writer
	Color         bool
	Verbose       bool
	DiagramMarker string
	Markers       []content.MarkerGroup

	pass *color.Color
	fail *color.Color
	warn *color.Color
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer, colored, verbose bool) *Printer {
	p := &Printer{
		Out:     out,
		Color:   colored,
		Verbose: verbose,
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.pass, p.fail, p.warn} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes the full report for run
func (p *Printer) Print(run *models.ValidationRun) {
	p.printHeader(run.Title)

	fmt.Fprintf(p.Out, "\n📊 Validation Summary:\n")
	fmt.Fprintf(p.Out, "%s\n", strings.Repeat("-", 30))

	for _, a := range run.Agents {
		if a.Valid {
			p.passLine(a.Path)
			p.printMarkerWarning(a)
			continue
		}
		p.failLine(a.Path, a.Error)
	}

	for _, f := range run.Frameworks {
		if f.Valid {
			p.passLine(f.Path)
		} else {
			p.failLine(f.Path, framework.Describe(f, p.DiagramMarker).Error())
		}
		p.printOutline(f)
	}

	readmeLabel := readmeName(run.Readme.Path) + " integration"
	if run.Readme.Valid {
		p.passLine(readmeLabel)
	} else {
		p.failLine(readmeLabel, run.Readme.Error)
	}

	if run.Naming.Valid {
		p.passLine("File naming consistency")
	} else {
		p.failLine("File naming consistency", models.FormatList(run.Naming.Issues))
	}

	fmt.Fprintf(p.Out, "\n🎯 Overall Result: %d/%d checks passed\n", run.Passed, run.Total)

	if run.AllPassed() {
		p.pass.Fprintf(p.Out, "🎉 %s framework validation PASSED! All components are properly implemented.", run.Title)
	} else {
		p.warn.Fprintf(p.Out, "⚠️  %s framework validation needs attention. %d issues found.", run.Title, run.Failed())
	}
	fmt.Fprintln(p.Out)
}

func (p *Printer) printHeader(title string) {
	fmt.Fprintf(p.Out, "🌸 %s Framework Validation\n", title)
	fmt.Fprintf(p.Out, "%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(p.Out, "🧠 Validating %s Agent Files...\n", title)
	fmt.Fprintf(p.Out, "📚 Validating Framework Documentation...\n")
	fmt.Fprintf(p.Out, "🔗 Validating README Integration...\n")
	fmt.Fprintf(p.Out, "📝 Validating File Naming Consistency...\n")
}

func (p *Printer) passLine(label string) {
	p.pass.Fprintf(p.Out, "✅ %s", label)
	fmt.Fprintln(p.Out)
}

func (p *Printer) failLine(label, reason string) {
	p.fail.Fprintf(p.Out, "❌ %s: %s", label, reason)
	fmt.Fprintln(p.Out)
}

// printMarkerWarning lists marker groups a valid agent did not satisfy (verbose only)
func (p *Printer) printMarkerWarning(a models.AgentFile) {
	if !p.Verbose {
		return
	}

	groups := p.Markers
	if groups == nil {
		for _, name := range sortedKeys(a.ContentChecks) {
			groups = append(groups, content.MarkerGroup{Name: name})
		}
	}

	missing := content.Missing(a.ContentChecks, groups)
	if len(missing) == 0 {
		return
	}
	display.MissingMarkers(a.Path, missing).Display(p.Out, p.Color)
}

// printOutline lists the headings of a readable framework file (verbose only)
func (p *Printer) printOutline(f models.FrameworkFile) {
	if !p.Verbose || f.Error != "" {
		return
	}
	for _, h := range f.Headings {
		fmt.Fprintf(p.Out, "   ↳ %s\n", h)
	}
}

func readmeName(path string) string {
	if path == "" {
		return "README.md"
	}
	return filepath.Base(path)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
