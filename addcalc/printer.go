package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	ansicolor "github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"code.selman.me/addcalc/addition"
)

type printer struct {
	out     io.Writer
	comma   bool
	explain bool

	colorResult *ansicolor.Color
	colorError  *ansicolor.Color
}

func newPrinterFor(out io.Writer, cfg config) (*printer, error) {
	p := &printer{
		out:         out,
		comma:       cfg.comma,
		explain:     cfg.explain,
		colorResult: ansicolor.New(ansicolor.Bold),
		colorError:  ansicolor.New(ansicolor.FgRed),
	}

	var enable bool
	switch cfg.color {
	case "always":
		enable = true
	case "never":
		enable = false
	case "auto", "":
		f, ok := out.(*os.File)
		enable = ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	default:
		return nil, fmt.Errorf("invalid -color value %q: want auto, always or never", cfg.color)
	}

	for _, c := range []*ansicolor.Color{p.colorResult, p.colorError} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p, nil
}

func (p *printer) format(n addition.Number) string {
	if !p.comma {
		return n.String()
	}

	if n.IsInt() {
		return humanize.Comma(n.Int64())
	}

	s := humanize.Commaf(n.Float64())
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func (p *printer) result(ev evaluation) error {
	if _, err := fmt.Fprintf(p.out, "Result: %s\n", p.colorResult.Sprint(p.format(ev.result))); err != nil {
		return err
	}

	if p.explain {
		return p.table(ev)
	}

	return nil
}

func (p *printer) failure(err error) error {
	_, werr := fmt.Fprintf(p.out, "%s %v\n", p.colorError.Sprint("Error:"), err)
	return werr
}

func (p *printer) message(msg string) error {
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

func (p *printer) table(ev evaluation) error {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"#", "operand", "kind", "running total"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)

	total := addition.Int(0)
	for i, op := range ev.operands {
		var err error
		total, err = addition.Sum(total, op)
		if err != nil {
			return err
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			p.format(op),
			op.Kind().String(),
			p.format(total),
		})
	}

	table.Render()
	return nil
}
