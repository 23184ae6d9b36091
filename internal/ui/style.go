package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	updStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	sameStyle   = lipgloss.NewStyle().Faint(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	absentStyle = lipgloss.NewStyle().Faint(true)
)

func UpdLine(w io.Writer, path, tag string) {
	fmt.Fprintln(w, updStyle.Render("upd")+"  "+path+" <"+tag+">")
}

func SameLine(w io.Writer, path, tag string) {
	fmt.Fprintln(w, sameStyle.Render("same")+" "+path+" <"+tag+">")
}

func ValueLine(w io.Writer, value string) {
	fmt.Fprintln(w, valueStyle.Render(value))
}

func AbsentLine(w io.Writer) {
	fmt.Fprintln(w, absentStyle.Render("no class attribute"))
}

func LogRow(w io.Writer, path, tag, ordinal, value string, pathWidth, tagWidth, ordWidth int) {
	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n",
		pathWidth, path,
		tagWidth, tag,
		ordWidth, ordinal,
		valueStyle.Render(value))
}
