package main

import "github.com/muesli/termenv"

var (
	checkingStyle  = termenv.Style{}.Foreground(termenv.ANSIYellow)
	connectedStyle = termenv.Style{}.Foreground(termenv.ANSIGreen)
	failedStyle    = termenv.Style{}.Foreground(termenv.ANSIRed)
)

var addressStyle = termenv.Style{}.Bold()

// paint styles text unless out cannot render colors (pipes, NO_COLOR).
func paint(out *termenv.Output, style termenv.Style, text string) string {
	if out.EnvColorProfile() == termenv.Ascii {
		return text
	}
	return style.Styled(text)
}
