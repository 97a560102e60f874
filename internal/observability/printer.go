// Package observability provides formatted build output for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for build progress and verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Step prints a single indented progress line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Step(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "  "+format+"\n", args...)
}

// Done prints the final success line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Done(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "\n✓ "+format+"\n", args...)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the loaded career profile.
func (p *Printer) PrintProfile(profile *types.CareerProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.Basics.Name))
	sb.WriteString(fmt.Sprintf("Label:  %s\n", profile.Basics.Label))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.Basics.Email))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Contacts:       %d\n", len(profile.Basics.Contact)))
	sb.WriteString(fmt.Sprintf("Work:           %d\n", len(profile.Work)))
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(profile.Education)))
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(profile.Certifications)))
	sb.WriteString(fmt.Sprintf("Courses:        %d\n", len(profile.Courses)))
	sb.WriteString(fmt.Sprintf("Volunteer:      %d", len(profile.Volunteer)))

	p.printBox("Career Profile", sb.String())
}

// PrintPalette outputs a human-readable summary of the resolved theme palette.
func (p *Printer) PrintPalette(palette *types.ThemePalette) {
	if palette == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Light roles: %d\n", len(palette.Light)))
	sb.WriteString(fmt.Sprintf("Dark roles:  %d\n", len(palette.Dark)))

	roles := make([]string, 0, len(palette.Light))
	for role := range palette.Light {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", role, palette.Light[role]))
	}

	extras := 0
	for _, group := range []map[string]string{
		palette.Scrollbar, palette.DecorativeLight, palette.DecorativeDark, palette.LogoGradients,
	} {
		extras += len(group)
	}
	sb.WriteString(fmt.Sprintf("Decorative vars: %d", extras))

	p.printBox("Theme Palette", sb.String())
}
