package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/synthlab/tabsynth/internal/tserr"
)

// FormatError formats an error for CLI display in Cargo/rustc style.
// If the error is a *tserr.Error, it extracts the code, context, and
// help suggestions. Otherwise it formats as a generic error.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	terr, ok := err.(*tserr.Error)
	if !ok {
		return formatGenericError(err)
	}

	var b strings.Builder

	// First line: error[E2001]: message
	b.WriteString(Error("error"))
	b.WriteString("[")
	b.WriteString(Code(string(terr.GetCode())))
	b.WriteString("]: ")
	b.WriteString(terr.GetMessage())
	b.WriteString("\n")

	ctx := terr.GetContext()

	// Offending prompt fragment, quoted on its own line.
	if fragment, ok := ctx["fragment"].(string); ok && fragment != "" {
		b.WriteString("   ")
		b.WriteString(Pipe())
		b.WriteString("\n   ")
		b.WriteString(Pipe())
		b.WriteString(" ")
		b.WriteString(fragment)
		b.WriteString("\n")
	}

	// Remaining context details in stable order.
	excluded := map[string]bool{"fragment": true, "helps": true}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		if !excluded[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("   ")
		b.WriteString(Pipe())
		b.WriteString(" ")
		b.WriteString(Dim(k))
		b.WriteString(": ")
		fmt.Fprintf(&b, "%v", ctx[k])
		b.WriteString("\n")
	}

	for _, help := range terr.Helps() {
		b.WriteString(Help("help"))
		b.WriteString(": ")
		b.WriteString(help)
		b.WriteString("\n")
	}

	if cause := terr.Unwrap(); cause != nil {
		b.WriteString(Note("cause"))
		b.WriteString(": ")
		b.WriteString(cause.Error())
		b.WriteString("\n")
	}

	return b.String()
}

func formatGenericError(err error) string {
	var b strings.Builder
	b.WriteString(Error("error"))
	b.WriteString(": ")
	b.WriteString(err.Error())
	b.WriteString("\n")
	return b.String()
}

// FormatWarning formats a warning message in Cargo style.
func FormatWarning(msg string) string {
	return Warning("warning") + ": " + msg + "\n"
}

// FormatNote formats a note message.
func FormatNote(msg string) string {
	return Note("note") + ": " + msg + "\n"
}

// FormatHelp formats a help message.
func FormatHelp(msg string) string {
	return Help("help") + ": " + msg + "\n"
}

// FormatSuccess formats a success message.
func FormatSuccess(msg string) string {
	return Success("success") + ": " + msg + "\n"
}
