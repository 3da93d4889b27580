package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/studio/internal/app"
	"github.com/example/studio/internal/catalog"
	"github.com/example/studio/internal/wire"
)

// BookCmd returns the interactive booking/quotation wizard command.
func BookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Start the booking wizard",
		Long:  "Walks through the four-step studio consultation: locale, sector, requirements, particulars.",
		RunE:  runBook,
	}
	cmd.Flags().Bool("quote", false, "Request a quotation instead of a booking")
	cmd.Flags().String("service", "", "Preselect a service id (see 'studio services')")
	return cmd
}

func runBook(cmd *cobra.Command, args []string) error {
	quote, _ := cmd.Flags().GetBool("quote")
	serviceID, _ := cmd.Flags().GetString("service")

	c, err := wire.Get()
	if err != nil {
		return fmt.Errorf("failed to open the studio store: %w", err)
	}

	kind := "booking"
	if quote {
		kind = "quotation"
	}

	w := app.NewWizard(kind, c.Leads, c.Dispatch)
	if serviceID != "" {
		w.Preselect(serviceID)
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	title := "Studio Consultation"
	if quote {
		title = "Service Quotation"
	}
	color.New(color.Bold).Fprintf(out, "\nThe Garden Architect — %s\n\n", title)

	for w.Step() != app.StepComplete {
		var err error
		switch w.Step() {
		case app.StepLocale:
			err = stepLocale(w, in, out)
		case app.StepSector:
			err = stepSector(w, in, out)
		case app.StepRequirements:
			err = stepRequirements(w, in, out)
		case app.StepParticulars:
			err = stepParticulars(cmd, w, in, out)
		}
		if err != nil {
			return err
		}
	}

	printConfirmation(out, w)
	return nil
}

func stepLocale(w *app.Wizard, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "Step 01 — Property Locale")
	for {
		value, err := prompt(in, out, "Postal code (e.g. M5V 2L1): ")
		if err != nil {
			return err
		}
		w.SetField(app.FieldPostalCode, strings.TrimSpace(value))
		w.Blur(app.FieldPostalCode)
		if w.Next() {
			return nil
		}
		fmt.Fprintln(out, errorText(w.VisibleError(app.FieldPostalCode)))
	}
}

func stepSector(w *app.Wizard, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "\nStep 02 — Select Sector")
	fmt.Fprintln(out, "  1) Residential  — private estates, urban gardens, botanical residences")
	fmt.Fprintln(out, "  2) Commercial   — corporate campuses, public spaces, retail institutions")
	for {
		value, err := prompt(in, out, "Sector [1/2, b=back]: ")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(value) {
		case "1":
			w.ChooseSector(app.PropertyResidential)
			return nil
		case "2":
			w.ChooseSector(app.PropertyCommercial)
			return nil
		case "b":
			w.Prev()
			return nil
		}
	}
}

func stepRequirements(w *app.Wizard, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "\nStep 03 — Architectural Requirements")
	for {
		for i, svc := range catalog.Services {
			mark := " "
			for _, id := range w.Data.SelectedServices {
				if id == svc.ID {
					mark = "✓"
				}
			}
			fmt.Fprintf(out, "  [%s] %d) %s\n", mark, i+1, svc.Title)
		}
		value, err := prompt(in, out, "Toggle service [number, d=done, b=back]: ")
		if err != nil {
			return err
		}
		switch v := strings.TrimSpace(value); v {
		case "d":
			if w.Next() {
				return nil
			}
			fmt.Fprintln(out, errorText("Select at least one service to continue"))
		case "b":
			w.Prev()
			return nil
		default:
			if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(catalog.Services) {
				w.ToggleService(catalog.Services[n-1].ID)
			}
		}
	}
}

func stepParticulars(cmd *cobra.Command, w *app.Wizard, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "\nStep 04 — Personal Particulars (enter 'b' to go back)")

	fields := []struct {
		field app.Field
		label string
	}{
		{app.FieldContactName, "Full name"},
		{app.FieldPhone, "Contact phone"},
		{app.FieldEmail, "Email address"},
		{app.FieldAddress, "Street address"},
	}
	for _, f := range fields {
		back, err := promptField(w, in, out, f.field, f.label)
		if err != nil {
			return err
		}
		if back {
			w.Prev()
			return nil
		}
	}

	for {
		showToast(out, "Initiating Studio Dispatch...", "info")
		err := w.Submit(cmd.Context())
		if err == nil {
			showToast(out, "Inquiry logged and studio alerted.", "success")
			return nil
		}
		if errors.Is(err, app.ErrValidation) {
			for field, msg := range w.Errors() {
				fmt.Fprintf(out, "%s: %s\n", field, errorText(msg))
			}
			return nil // wizard stays in Particulars; loop re-prompts
		}

		showToast(out, "Transmission failed. Please check your connection.", "error")
		value, perr := prompt(in, out, "Press enter to retry, or 'q' to abandon: ")
		if perr != nil {
			return perr
		}
		if strings.TrimSpace(value) == "q" {
			return err
		}
	}
}

func promptField(w *app.Wizard, in *bufio.Scanner, out io.Writer, field app.Field, label string) (back bool, err error) {
	for {
		value, err := prompt(in, out, label+": ")
		if err != nil {
			return false, err
		}
		value = strings.TrimSpace(value)
		if value == "b" {
			return true, nil
		}
		w.SetField(field, value)
		w.Blur(field)
		if msg := w.VisibleError(field); msg != "" {
			fmt.Fprintln(out, errorText(msg))
			continue
		}
		return false, nil
	}
}

func printConfirmation(out io.Writer, w *app.Wizard) {
	var titles []string
	for _, id := range w.Data.SelectedServices {
		titles = append(titles, catalog.Title(id))
	}

	color.New(color.FgGreen, color.Bold).Fprintln(out, "\nTransmission Successful")
	fmt.Fprintf(out, "Greetings, %s. Your request has been received by The Studio.\n\n", w.Data.ContactName)
	fmt.Fprintf(out, "  Reference Number:  %s\n", w.ReferenceCode())
	fmt.Fprintf(out, "  Property Locale:   %s • %s\n", w.Data.PostalCode, w.Data.Address)
	fmt.Fprintf(out, "  Summary:           %s\n", strings.Join(titles, ", "))
}

func prompt(in *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("input closed")
	}
	return in.Text(), nil
}
