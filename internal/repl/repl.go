// Package repl implements the interactive command loop around
// modregex.ModRegex: read "divisor base remainder [x]" lines, print the
// expression or write it to a file when a fourth token is present, and stop
// on "q".
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	u "github.com/araddon/gou"

	"github.com/katalvlaran/modregex"
	"github.com/katalvlaran/modregex/eliminate"
)

var (
	// ErrArgCount indicates a line with fewer than 3 or more than 4 tokens.
	ErrArgCount = errors.New("repl: invalid number of arguments")

	// ErrNotNumber indicates a token that is not a non-negative integer.
	ErrNotNumber = errors.New("repl: input restricted to non-negative integers")
)

const (
	// DefaultPrompt is printed before every line is read.
	DefaultPrompt = "Provide space-separated divisor, base, and remainder, and any optional fourth argument to redirect to output.txt.\n'q' to quit: "

	// DefaultOutput is the file a fourth token redirects the expression to.
	DefaultOutput = "output.txt"

	// QuitCommand ends the loop.
	QuitCommand = "q"

	// Divisors above these thresholds produce very large expressions.
	hangDivisor    = 30
	cautionDivisor = 15
)

// Config controls the loop.
type Config struct {
	// Prompt is printed before each line; empty disables prompting.
	Prompt string

	// Output is the redirect target for four-token lines.
	Output string

	// Options are passed through to the elimination engine.
	Options []eliminate.Option
}

// DefaultConfig returns the interactive defaults.
func DefaultConfig() Config {
	return Config{
		Prompt: DefaultPrompt,
		Output: DefaultOutput,
	}
}

// Request is one parsed input line.
type Request struct {
	Divisor   int
	Base      int
	Remainder int

	// ToFile is set when a fourth token was given.
	ToFile bool
}

// ParseLine splits line into a Request.
// Errors: ErrArgCount, ErrNotNumber.
func ParseLine(line string) (Request, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 || len(fields) > 4 {
		return Request{}, fmt.Errorf("%d tokens: %w", len(fields), ErrArgCount)
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(fields[i])
		if err != nil || n < 0 {
			return Request{}, fmt.Errorf("%q: %w", fields[i], ErrNotNumber)
		}
		nums[i] = n
	}

	return Request{
		Divisor:   nums[0],
		Base:      nums[1],
		Remainder: nums[2],
		ToFile:    len(fields) == 4,
	}, nil
}

// SizeWarning returns a warning for divisors likely to make the computation
// slow, or "" when the divisor is small enough.
func SizeWarning(divisor int) string {
	switch {
	case divisor > hangDivisor:
		return "Warning: likely to hang"
	case divisor > cautionDivisor:
		return "Caution: this divisor may hang for large bases"
	default:
		return ""
	}
}

// Run reads lines from in until QuitCommand or EOF, writing prompts and
// results to out. Invalid lines are reported and the loop continues; only
// I/O failures end it with an error.
func Run(in io.Reader, out io.Writer, cfg Config) error {
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	sc := bufio.NewScanner(in)

	for {
		if cfg.Prompt != "" {
			if _, err := io.WriteString(out, cfg.Prompt); err != nil {
				return err
			}
		}
		if !sc.Scan() {
			return sc.Err()
		}

		line := strings.TrimSpace(sc.Text())
		if line == QuitCommand {
			return nil
		}

		msg := Eval(line, cfg)
		if _, err := fmt.Fprintln(out, msg); err != nil {
			return err
		}
	}
}

// Eval handles one line and returns the text to show the user: the
// expression, a confirmation of the file write, or a one-line error message.
// Parse and engine errors are reported the same way.
func Eval(line string, cfg Config) string {
	req, err := ParseLine(line)
	if err != nil {
		u.Debugf("rejected line %q: %v", line, err)
		return userMessage(err)
	}
	if w := SizeWarning(req.Divisor); w != "" {
		u.Warnf("divisor=%d: %s", req.Divisor, w)
	}

	expr, err := modregex.ModRegex(req.Divisor, req.Base, req.Remainder, cfg.Options...)
	if err != nil {
		u.Errorf("ModRegex(%d, %d, %d): %v", req.Divisor, req.Base, req.Remainder, err)
		return userMessage(err)
	}

	if !req.ToFile {
		return expr
	}
	if err := os.WriteFile(cfg.Output, []byte(expr), 0o644); err != nil {
		u.Errorf("write %s: %v", cfg.Output, err)
		return fmt.Sprintf("Could not write '%s': %v", cfg.Output, err)
	}
	u.Infof("wrote %d bytes to %s", len(expr), cfg.Output)

	return fmt.Sprintf("Regex written to '%s'", cfg.Output)
}

// userMessage maps sentinel errors to the short texts shown in the loop.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrArgCount):
		return "Invalid number of arguments"
	case errors.Is(err, ErrNotNumber):
		return "Input restricted to non-negative integers..."
	case errors.Is(err, modregex.ErrZeroDivisor):
		return "Cannot divide by 0"
	case errors.Is(err, modregex.ErrRemainderRange):
		return "Remainder must be less than divisor"
	case errors.Is(err, modregex.ErrBaseRange):
		return "Base must be at most 16"
	case errors.Is(err, eliminate.ErrUnreachable):
		return "No numeral has that remainder"
	default:
		return err.Error()
	}
}
