package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - selected cells
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleSelected   = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	styleUnselected = lipgloss.NewStyle().Foreground(colorGray)
	styleLattice    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints mapping statistics on a single line.
func printStats(nodeCount, overhead int, cached bool) {
	status := styleUnselected.Render(iconFresh)
	if cached {
		status = styleIconSuccess.Render(iconCached)
	}

	sep := StyleDim.Render(" · ")
	line := "  " +
		StyleDim.Render(fmt.Sprintf("%d grid nodes", nodeCount)) + sep +
		StyleDim.Render(fmt.Sprintf("overhead %d", overhead)) + sep +
		status
	fmt.Println(line)
}

// =============================================================================
// Weight Heatmap
// =============================================================================

// Ramp endpoints for the weight heatmap, blended in Luv space so the
// perceived brightness climbs with the weight.
var (
	heatCold, _ = colorful.Hex("#4060c0")
	heatHot, _  = colorful.Hex("#f0483c")
)

// heatColor maps t in [0, 1] onto the cold-to-hot ramp. Values outside
// the range clamp to the endpoints.
func heatColor(t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(heatCold.BlendLuv(heatHot, t).Hex())
}
