package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dwhops/dwhctl/internal/platform/redshift"
)

var (
	statusColorGreen = lipgloss.Color("#22c55e")
	statusColorRed   = lipgloss.Color("#ef4444")
	statusColorBlue  = lipgloss.Color("#3b82f6")
	statusColorDim   = lipgloss.Color("#6b7280")
	statusColorWhite = lipgloss.Color("#f9fafb")
)

var (
	statusTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(statusColorWhite)

	statusDimStyle = lipgloss.NewStyle().
			Foreground(statusColorDim)

	statusGreenStyle = lipgloss.NewStyle().
				Foreground(statusColorGreen)

	statusRedStyle = lipgloss.NewStyle().
			Foreground(statusColorRed)

	statusBlueStyle = lipgloss.NewStyle().
			Foreground(statusColorBlue)

	statusPlainStyle = lipgloss.NewStyle()
)

// colorEnabled gates styling when stdout is not a terminal.
var colorEnabled = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func styled(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}

// statusStyle picks a color for the provider-reported cluster status.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "available":
		return statusGreenStyle
	case "creating", "modifying", "resizing", "restoring":
		return statusBlueStyle
	case "deleting", "unavailable", "hardware-failure":
		return statusRedStyle
	default:
		return statusPlainStyle
	}
}

// renderClusterDetails produces the human-readable cluster summary printed
// by `dwhctl up` and `dwhctl status`.
func renderClusterDetails(d *redshift.ClusterDetails) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styled(statusTitleStyle, fmt.Sprintf("  warehouse: %s", d.Identifier)))
	b.WriteString("\n")
	b.WriteString(styled(statusDimStyle, "  "+strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	writeField(&b, "Status", styled(statusStyle(d.Status), d.Status))
	writeField(&b, "Nodes", fmt.Sprintf("%d x %s (%s)", d.NumNodes, d.NodeType, d.ClusterType))
	writeField(&b, "Database", d.DBName)
	writeField(&b, "Master user", d.MasterUsername)

	if d.Endpoint.Address != "" {
		writeField(&b, "Endpoint", fmt.Sprintf("%s:%d", d.Endpoint.Address, d.Endpoint.Port))
	} else {
		writeField(&b, "Endpoint", styled(statusDimStyle, "not yet assigned"))
	}

	if d.AvailabilityZone != "" {
		writeField(&b, "AZ", d.AvailabilityZone)
	}
	if d.VpcID != "" {
		writeField(&b, "VPC", d.VpcID)
	}
	if d.CreatedAt != nil {
		writeField(&b, "Created", d.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	}
	for _, arn := range d.RoleARNs {
		writeField(&b, "IAM role", arn)
	}

	b.WriteString("\n")
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", styled(statusDimStyle, fmt.Sprintf("%-12s", label+":")), value)
}
