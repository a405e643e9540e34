package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/grendel/chainaddr/pkg/validate"
)

const (
	// BoxWidth is the standard width for display boxes
	BoxWidth = 80
)

// ColorScheme defines a set of colors for consistent UI formatting
type ColorScheme struct {
	Header   *color.Color // For box borders and section headers
	Title    *color.Color // For main titles
	Subtitle *color.Color // For section titles
	Normal   *color.Color // For normal text
	Param    *color.Color // For parameter names
	Address  *color.Color // For addresses
	Chain    *color.Color // For chain identifiers
	Result   *color.Color // For result messages
	Example  *color.Color // For example commands
	Success  *color.Color // For valid results
	Error    *color.Color // For invalid results
}

// DefaultColorScheme returns the default color scheme for the application
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:   color.New(color.FgBlue, color.Bold),
		Title:    color.New(color.FgHiWhite, color.Bold),
		Subtitle: color.New(color.FgBlue),
		Normal:   color.New(color.FgWhite),
		Param:    color.New(color.FgCyan),
		Address:  color.New(color.FgHiCyan),
		Chain:    color.New(color.FgHiWhite, color.Bold),
		Result:   color.New(color.FgBlue),
		Example:  color.New(color.FgGreen),
		Success:  color.New(color.FgGreen, color.Bold),
		Error:    color.New(color.FgRed),
	}
}

// PrintHeader prints a formatted header box with the given title
func PrintHeader(cs *ColorScheme, title string) {
	padding := BoxWidth - 4 - len(title)

	fmt.Println()
	cs.Header.Println("╭─────────────────────────────────────────────────────────────────────────────╮")
	cs.Header.Printf("│  ")
	cs.Title.Print(title)
	cs.Header.Printf("%s│\n", strings.Repeat(" ", padding))
	cs.Header.Println("╰─────────────────────────────────────────────────────────────────────────────╯")
	fmt.Println()
}

// PrintFooter prints a formatted footer box with the given message
func PrintFooter(cs *ColorScheme, message string) {
	if len(message) > BoxWidth-6 {
		message = message[:BoxWidth-9] + "..."
	}

	padding := BoxWidth - 4 - len(message)
	if padding < 0 {
		padding = 0
	}

	fmt.Println()
	cs.Header.Println("╭──────────────────────────────────────────────────────────────────────────────╮")
	cs.Header.Printf("│  ")
	cs.Result.Print(message)
	cs.Header.Printf("%s│\n", strings.Repeat(" ", padding))
	cs.Header.Println("╰──────────────────────────────────────────────────────────────────────────────╯")
	fmt.Println()
}

// PrintResult prints one validation result with its details
func PrintResult(cs *ColorScheme, res validate.Result) {
	if res.Valid {
		cs.Success.Print("VALID  ")
		cs.Chain.Printf("[%s]\n", res.Chain)
		printField(cs, "Address", res.NormalizedAddress)
		if res.ChecksumAddress != "" {
			printField(cs, "Checksum", res.ChecksumAddress)
		}
		if res.DisplayName != "" {
			printField(cs, "Resolved from", res.DisplayName)
		}
		return
	}

	cs.Error.Print("INVALID  ")
	cs.Chain.Printf("[%s]\n", res.Chain)
	printField(cs, "Reason", res.Err.Error())
	if res.Err.Suggestion != "" {
		printField(cs, "Did you mean", res.Err.Suggestion)
	}
	if len(res.Err.ExpectedVersions) > 0 {
		printField(cs, "Expected version", fmt.Sprintf("% 02x", res.Err.ExpectedVersions))
		printField(cs, "Actual version", fmt.Sprintf("%02x", res.Err.ActualVersion))
	}
}

func printField(cs *ColorScheme, name, value string) {
	cs.Normal.Print("  ")
	cs.Param.Printf("%-17s", name+":")
	cs.Address.Println(value)
}

// PrintOption prints a command line option with description
func PrintOption(cs *ColorScheme, flag, description string) {
	cs.Normal.Print("  ")
	cs.Param.Print(flag)
	cs.Normal.Println(description)
}

// PrintExample prints a usage example
func PrintExample(cs *ColorScheme, example, description string) {
	cs.Example.Printf("  %s", example)
	if description != "" {
		cs.Example.Printf("  # %s", description)
	}
	fmt.Println()
}

// PrintSectionHeader prints a section header
func PrintSectionHeader(cs *ColorScheme, title string) {
	cs.Subtitle.Println(title)
}
