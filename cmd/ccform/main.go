package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cc-details-portal/internal/form"
	"cc-details-portal/internal/relayclient"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
)

// maxAttempts bounds how often invalid input is re-prompted.
const maxAttempts = 3

func main() {
	cfg, err := ReadConfig()
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Secured Credit Card Information Portal\nWelcome, %s\n", cfg.Name)
	color.New(color.FgCyan).Fprintf(out, "# Booking Reference: %s\n\n", cfg.Ref)

	f := form.New(cfg.Ref, relayclient.New(cfg.Endpoint, nil), consoleNotifier{out: out})
	defer f.Close()

	f.SetValues(form.Values{
		CardNumber:          cfg.CardNumber,
		CardName:            cfg.CardName,
		CardExpirationMonth: cfg.CardExpirationMonth,
		CardExpirationYear:  cfg.CardExpirationYear,
	})

	p := newPrompter(in, out)
	errs := form.FieldErrors{}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := p.fill(f, errs); err != nil {
			return err
		}

		if len(form.Validate(f.Values())) == 0 {
			fmt.Fprintln(out, "Please wait...")
		}

		err := f.Submit(ctx)
		switch {
		case err == nil:
			color.New(color.FgGreen, color.Bold).Fprintln(out, "Success! Credit Card Information has been sent")
			return nil
		case errors.Is(err, form.ErrInvalid):
			errs = f.Errors()
		default:
			return err
		}
	}

	return fmt.Errorf("%w after %d attempts", form.ErrInvalid, maxAttempts)
}
