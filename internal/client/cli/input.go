package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetRequiredText re-prompts until a non-empty line is entered.
func GetRequiredText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil || s != "" {
			return s, err
		}
		fmt.Fprintln(w, "This field is required.")
	}
}

// GetAmount re-prompts until a positive amount is entered.
func GetAmount(reader *bufio.Reader, prompt string, w io.Writer) (decimal.Decimal, error) {
	for {
		s, err := GetRequiredText(reader, prompt, w)
		if err != nil {
			return decimal.Zero, err
		}
		d, perr := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
		if perr == nil && d.IsPositive() {
			return d, nil
		}
		fmt.Fprintln(w, "Enter an amount greater than zero, e.g. 1500 or 250.50.")
	}
}

// GetWithDefault reads a line and falls back to def when it is empty.
func GetWithDefault(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	s, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, def), w)
	if err != nil || s != "" {
		return s, err
	}
	return def, nil
}

// GetPassword reads a password without echo when stdin is a terminal, and
// as a plain line from reader otherwise (piped input).
func GetPassword(reader *bufio.Reader, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return GetSimpleText(reader, "Enter password", w)
	}

	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered. The collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// openAttachment opens the file at path for upload. An empty path means no
// attachment. The caller closes the returned closer.
func openAttachment(path string) (*models.Attachment, io.Closer, error) {
	if path == "" {
		return nil, nopCloser{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return &models.Attachment{FileName: filepath.Base(path), Content: f}, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// idArg parses a single positive id argument.
func idArg(args []string) (int64, bool) {
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetID re-prompts until a positive whole number is entered.
func GetID(reader *bufio.Reader, prompt string, w io.Writer) (int64, error) {
	for {
		s, err := GetRequiredText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		if id, ok := idArg([]string{s}); ok {
			return id, nil
		}
		fmt.Fprintln(w, "Enter a number, e.g. 12.")
	}
}
