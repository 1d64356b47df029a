package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptReader reuses an existing buffered reader so chained prompts
// never lose input that an earlier prompt buffered past its newline.
func promptReader(in io.Reader) *bufio.Reader {
	if br, ok := in.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(in)
}

// Confirm asks a yes/no question and returns the answer. The default
// on an empty line or read error is no.
func Confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	line, err := promptReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// ConfirmExact asks the operator to type expected verbatim. Used to
// guard destructive operations.
func ConfirmExact(in io.Reader, out io.Writer, question, expected string) bool {
	fmt.Fprintf(out, "%s\nType %q to confirm: ", question, expected)

	line, err := promptReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.TrimSpace(line) == expected
}
