package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/peterstace/lineseek"
)

var gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// printLines writes one line of output per extracted line. With number set,
// each line is prefixed by its right aligned line number, which is dimmed
// when styled is set.
func printLines(w io.Writer, lines []lineseek.NumberedLine, number, styled bool) error {
	bw := bufio.NewWriter(w)

	var width int
	if number {
		for _, ln := range lines {
			width = max(width, len(strconv.Itoa(ln.Number)))
		}
	}

	for _, ln := range lines {
		if number {
			gutter := fmt.Sprintf("%*d", width, ln.Number)
			if styled {
				gutter = gutterStyle.Render(gutter)
			}
			fmt.Fprintf(bw, "%s  ", gutter)
		}
		fmt.Fprintln(bw, ln.Text)
	}
	return bw.Flush()
}
