package infrastructure

import "strings"

// shellSpecials are the characters that force an argument into quotes when a
// command line is echoed to the log.
const shellSpecials = " \t\n\r'\"$`\\!*?[](){}|;<>&~#%"

// ShellEscape quotes a string for safe display in a logged command line.
// exec.Command passes arguments directly, so this is for humans reading the
// debug log, never for a shell.
func ShellEscape(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, shellSpecials) {
		return s
	}
	// Single quotes protect everything except an embedded single quote,
	// which becomes '"'"' (close, quote, reopen).
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// ShellEscapeCommand renders a binary and its arguments as one displayable
// command line.
func ShellEscapeCommand(binary string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, ShellEscape(binary))
	for _, arg := range args {
		parts = append(parts, ShellEscape(arg))
	}
	return strings.Join(parts, " ")
}
