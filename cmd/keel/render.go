package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"keel/internal/diag"
)

type colorMode string

const (
	colorModeAuto colorMode = "auto"
	colorModeOn   colorMode = "on"
	colorModeOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorModeAuto, nil
	case "on":
		return colorModeOn, nil
	case "off":
		return colorModeOff, nil
	default:
		return "", fmt.Errorf("invalid color value %q (expected auto|on|off)", value)
	}
}

func shouldColorize(mode colorMode) bool {
	switch mode {
	case colorModeOn:
		return true
	case colorModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	locusColor   = color.New(color.Faint)
)

func severityLabel(s diag.Severity, colorize bool) string {
	label, c := "info", infoColor
	switch s {
	case diag.SevWarning:
		label, c = "warning", warningColor
	case diag.SevError:
		label, c = "error", errorColor
	}
	if colorize {
		return c.Sprint(label)
	}
	return label
}

func renderDiagnostics(out io.Writer, bag *diag.Bag, colorize bool) {
	for _, d := range bag.Items() {
		locus := d.Primary.String()
		if colorize {
			locus = locusColor.Sprint(locus)
		}
		fmt.Fprintf(out, "%s[%s]: %s\n  --> %s\n",
			severityLabel(d.Severity, colorize), d.Code, d.Message, locus)
		for _, n := range d.Notes {
			fmt.Fprintf(out, "  note: %s: %s\n", n.Locus, n.Msg)
		}
	}
}
