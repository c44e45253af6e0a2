// Package display renders non-fatal notices shown alongside the validation report.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title  string   // Main warning title
	Items  []string // Related items (optional)
	Indent string   // Prefix for every line (optional)
}

// Display writes the warning to out, in yellow when colored is true
func (w Warning) Display(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString(w.Indent)
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	for i, item := range w.Items {
		b.WriteString(w.Indent + "      ")
		b.WriteString(fmt.Sprintf("%d. %s", i+1, item))
		b.WriteString("\n")
	}

	yellow := color.New(color.FgYellow)
	if colored {
		yellow.EnableColor()
	} else {
		yellow.DisableColor()
	}
	yellow.Fprint(out, b.String())
}

// MissingMarkers builds the warning shown for an agent whose content marker
// groups found nothing
func MissingMarkers(agent string, groups []string) Warning {
	return Warning{
		Title:  fmt.Sprintf("%s matched no markers for %d group(s)", agent, len(groups)),
		Items:  groups,
		Indent: "   ",
	}
}
