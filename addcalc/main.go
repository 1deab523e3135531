package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := realMain(
		ctx,
		os.Stdin,
		os.Stdout,
		os.Stderr,
		os.Args,
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

type config struct {
	color   string
	comma   bool
	explain bool
	prompt  string
	quiet   bool
	verbose bool
}

func realMain(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	args []string,
) error {
	exec := args[0]

	var cfg config
	rootFlags := flag.NewFlagSet(exec, flag.ContinueOnError)
	rootFlags.SetOutput(stderr)
	rootFlags.StringVar(&cfg.color, "color", "auto", "colorize output: auto, always or never")
	rootFlags.BoolVar(&cfg.comma, "comma", false, "print results with thousands separators")
	rootFlags.BoolVar(&cfg.explain, "explain", false, "print a table of operands after each result")
	rootFlags.StringVar(&cfg.prompt, "prompt", "Enter your calculation: ", "interactive prompt")
	rootFlags.BoolVar(&cfg.quiet, "quiet", false, "do not print the banner")
	rootFlags.BoolVar(&cfg.verbose, "v", false, "print diagnostics to stderr")
	_ = rootFlags.String("config", "", "YAML config file")

	newPrinter := func() (*printer, error) {
		return newPrinterFor(stdout, cfg)
	}

	logf := func(format string, args ...any) {
		if cfg.verbose {
			fmt.Fprintf(stderr, "addcalc: "+format+"\n", args...)
		}
	}

	replCmd := &ffcli.Command{
		Name:       "repl",
		ShortUsage: fmt.Sprintf("%v repl", exec),
		ShortHelp:  "Read calculations line by line (default)",
		Exec: func(ctx context.Context, _ []string) error {
			p, err := newPrinter()
			if err != nil {
				return err
			}

			return (&shell{
				in:     stdin,
				out:    stdout,
				prompt: cfg.prompt,
				banner: !cfg.quiet,
				print:  p,
				logf:   logf,
			}).run(ctx)
		},
	}

	exprCmd := &ffcli.Command{
		Name:       "expr",
		ShortUsage: fmt.Sprintf("%v expr <expression>", exec),
		ShortHelp:  "Evaluate an addition expression such as 2+3+4",
		Exec: func(_ context.Context, args []string) error {
			p, err := newPrinter()
			if err != nil {
				return err
			}

			ev, err := evaluateExpression(strings.Join(args, " "))
			if err != nil {
				return err
			}

			return p.result(ev)
		},
	}

	listCmd := &ffcli.Command{
		Name:       "list",
		ShortUsage: fmt.Sprintf("%v list <number>...", exec),
		ShortHelp:  "Sum the given numbers",
		Exec: func(_ context.Context, args []string) error {
			p, err := newPrinter()
			if err != nil {
				return err
			}

			ev, err := evaluateSequence(args)
			if err != nil {
				return err
			}

			return p.result(ev)
		},
	}

	tuiCmd := &ffcli.Command{
		Name:       "tui",
		ShortUsage: fmt.Sprintf("%v tui", exec),
		ShortHelp:  "Full-screen calculator",
		Exec: func(ctx context.Context, _ []string) error {
			p, err := newPrinter()
			if err != nil {
				return err
			}

			return runTUI(ctx, stdin, stdout, p)
		},
	}

	rootCmd := &ffcli.Command{
		ShortUsage:  fmt.Sprintf("%v [flags] [<subcommand>|<calculation>]", exec),
		FlagSet:     rootFlags,
		Options: []ff.Option{
			ff.WithEnvVarPrefix("ADDCALC"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(parseYAMLConfig),
		},
		Subcommands: []*ffcli.Command{replCmd, exprCmd, listCmd, tuiCmd},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return replCmd.Exec(ctx, nil)
			}

			p, err := newPrinter()
			if err != nil {
				return err
			}

			line := strings.Join(args, " ")
			logf("evaluating %q", line)

			ev, err := evaluate(line)
			if err != nil {
				return err
			}

			return p.result(ev)
		},
	}

	for _, c := range rootCmd.Subcommands {
		c.FlagSet = flag.NewFlagSet(c.Name, flag.ContinueOnError)
		c.FlagSet.SetOutput(stderr)
	}

	err := rootCmd.ParseAndRun(ctx, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	return err
}
