package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"code.selman.me/addcalc/addition"
)

func main() {
	if err := realMain(
		os.Args,
		os.Stdin,
		os.Stdout,
	); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func realMain(
	args []string,
	in io.Reader,
	out io.Writer,
) error {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flagNormalize := fs.Bool("n", false, "print whole float sums as integers")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)

	var values []addition.Number
	var l int64
	for scanner.Scan() {
		l++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := addition.ParseNumber(line)
		if err != nil {
			return fmt.Errorf("line# %v: %w", l, err)
		}

		values = append(values, v)
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if len(values) == 0 {
		fmt.Fprintln(out, addition.Int(0))
		return nil
	}

	total, err := addition.Sum(values...)
	if err != nil {
		return err
	}

	if *flagNormalize {
		total = addition.Normalize(total)
	}

	fmt.Fprintln(out, total)

	return nil
}
