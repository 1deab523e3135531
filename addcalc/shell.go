package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"code.selman.me/addcalc/addition"
)

var errNoNumbers = errors.New("no numbers provided")

// TokenError is returned for a whitespace separated token that is not a
// number.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("'%s' is not a valid number", e.Token)
}

func (e *TokenError) Unwrap() error { return e.Err }

type evaluation struct {
	input    string
	operands []addition.Number
	result   addition.Number
}

// evaluate routes line to the expression parser when it contains a '+' and
// treats it as whitespace separated numbers otherwise.
func evaluate(line string) (evaluation, error) {
	if strings.Contains(line, "+") {
		return evaluateExpression(line)
	}

	return evaluateList(strings.Fields(line))
}

func evaluateExpression(expr string) (evaluation, error) {
	operands, err := addition.ParseExpression(expr)
	if err != nil {
		return evaluation{}, err
	}

	result, err := addition.Sum(operands...)
	if err != nil {
		return evaluation{}, err
	}

	return evaluation{input: expr, operands: operands, result: addition.Normalize(result)}, nil
}

func evaluateList(tokens []string) (evaluation, error) {
	operands, err := parseTokens(tokens)
	if err != nil {
		return evaluation{}, err
	}

	result, err := addition.Sum(operands...)
	if err != nil {
		return evaluation{}, err
	}

	return evaluation{input: strings.Join(tokens, " "), operands: operands, result: result}, nil
}

// evaluateSequence is evaluateList going through the list entry point.
func evaluateSequence(tokens []string) (evaluation, error) {
	operands, err := parseTokens(tokens)
	if err != nil {
		return evaluation{}, err
	}

	result, err := addition.SumList(operands)
	if err != nil {
		return evaluation{}, err
	}

	return evaluation{input: strings.Join(tokens, " "), operands: operands, result: result}, nil
}

func parseTokens(tokens []string) ([]addition.Number, error) {
	if len(tokens) == 0 {
		return nil, errNoNumbers
	}

	operands := make([]addition.Number, 0, len(tokens))
	for _, tok := range tokens {
		n, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		operands = append(operands, n)
	}

	return operands, nil
}

func parseToken(tok string) (addition.Number, error) {
	n, err := addition.ParseNumber(tok)
	if err != nil {
		return addition.Number{}, &TokenError{Token: tok, Err: err}
	}
	return n, nil
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

type shell struct {
	in     io.Reader
	out    io.Writer
	prompt string
	banner bool
	print  *printer
	logf   func(format string, args ...any)
}

const banner = `=== Addition Calculator ===
Examples:
- Separated numbers: 2 3 4
- Expression: 2+3+4
- Type 'quit' to exit
`

func (s *shell) run(ctx context.Context) error {
	if s.banner {
		fmt.Fprint(s.out, banner+"\n")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, scanErr := readLines(ctx, s.in)

	for {
		fmt.Fprint(s.out, s.prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		case line, ok = <-lines:
		}

		if !ok {
			fmt.Fprintln(s.out)
			return <-scanErr
		}

		line = strings.TrimSpace(line)
		if isQuit(line) {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		if err := s.handle(line); err != nil {
			return err
		}
	}
}

// readLines sends the lines of r until r is exhausted or ctx is done. The
// error channel receives exactly once, after the goroutine has stopped
// sending and before lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// handle evaluates a single line. Only write failures are returned;
// evaluation errors are printed and the loop goes on.
func (s *shell) handle(line string) error {
	if strings.Contains(line, "+") {
		s.logf("routing %q to expression", line)
	} else {
		s.logf("routing %q to numbers", line)
	}

	ev, err := evaluate(line)
	switch {
	case errors.Is(err, errNoNumbers):
		return s.print.message("No numbers provided")
	case err != nil:
		return s.print.failure(err)
	}

	return s.print.result(ev)
}
