package colors

import (
	"fmt"
	"io"
	"strings"
)

// Print methods (default to stdout)
func (c COLOR) Printf(format string, args ...any) {
	fmt.Print(c.Sprintf(format, args...))
}

func (c COLOR) Println(args ...any) {
	fmt.Print(c.Sprintln(args...))
}

func (c COLOR) Print(args ...any) {
	fmt.Print(c.Sprint(args...))
}

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, c.Sprintf(format, args...))
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, c.open())
	fmt.Fprintln(w, args...)
	fmt.Fprint(w, c.close())
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, c.Sprint(args...))
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return c.open() + fmt.Sprintf(format, args...) + c.close()
}

func (c COLOR) Sprintln(args ...any) string {
	return c.open() + fmt.Sprintln(args...) + c.close()
}

func (c COLOR) Sprint(args ...any) string {
	return c.open() + fmt.Sprint(args...) + c.close()
}

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

var ansiToHTML = map[COLOR]string{
	RESET:       "</span>",
	RED:         "<span style=\"color: #ef4444\">",
	GREEN:       "<span style=\"color: #10b981\">",
	YELLOW:      "<span style=\"color: #f59e0b\">",
	BLUE:        "<span style=\"color: #3b82f6\">",
	PURPLE:      "<span style=\"color: #c678dd\">",
	CYAN:        "<span style=\"color: #56b6c2\">",
	WHITE:       "<span style=\"color: #f3f4f6\">",
	GREY:        "<span style=\"color: #5c6370\">",
	ORANGE:      "<span style=\"color: #ff8700\">",
	BOLD:        "<span style=\"font-weight: bold\">",
	BOLD_RED:    "<span style=\"color: #ef4444; font-weight: bold\">",
	BOLD_GREEN:  "<span style=\"color: #10b981; font-weight: bold\">",
	BOLD_YELLOW: "<span style=\"color: #f59e0b; font-weight: bold\">",
	BOLD_BLUE:   "<span style=\"color: #3b82f6; font-weight: bold\">",
	BOLD_PURPLE: "<span style=\"color: #a855f7; font-weight: bold\">",
	BOLD_CYAN:   "<span style=\"color: #56b6c2; font-weight: bold\">",
}

// ConvertANSIToHTML converts ANSI color codes to HTML span tags
func ConvertANSIToHTML(text string) string {
	// First, escape HTML entities
	result := strings.ReplaceAll(text, "&", "&amp;")
	result = strings.ReplaceAll(result, "<", "&lt;")
	result = strings.ReplaceAll(result, ">", "&gt;")

	for ansi, html := range ansiToHTML {
		result = strings.ReplaceAll(result, string(ansi), html)
	}

	result = strings.ReplaceAll(result, "\n", "<br>")
	result = strings.ReplaceAll(result, "  ", "&nbsp;&nbsp;")

	return result
}
