package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cc-details-portal/internal/form"
	"github.com/fatih/color"
)

var fieldLabels = []struct {
	field string
	label string
}{
	{form.FieldCardName, "Name on Card"},
	{form.FieldCardNumber, "Card Number (16 digit)"},
	{form.FieldCardExpirationMonth, "Expiration Month (Ex: 01)"},
	{form.FieldCardExpirationYear, "Expiration Year (Ex: 24)"},
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// fill asks for every field that is empty or listed in errs, showing the
// inline message first.
func (p *prompter) fill(f *form.Form, errs form.FieldErrors) error {
	current := fieldValues(f.Values())

	for _, fl := range fieldLabels {
		msg, invalid := errs[fl.field]
		if current[fl.field] != "" && !invalid {
			continue
		}
		if invalid {
			color.New(color.FgRed).Fprintf(p.out, "  %s\n", msg)
		}

		fmt.Fprintf(p.out, "%s: ", fl.label)
		line, err := p.in.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return fmt.Errorf("reading %s: %w", fl.field, err)
		}

		if err := f.Set(fl.field, strings.TrimRight(line, "\r\n")); err != nil {
			return err
		}
	}

	return nil
}

func fieldValues(v form.Values) map[string]string {
	return map[string]string{
		form.FieldCardNumber:          v.CardNumber,
		form.FieldCardName:            v.CardName,
		form.FieldCardExpirationMonth: v.CardExpirationMonth,
		form.FieldCardExpirationYear:  v.CardExpirationYear,
	}
}
