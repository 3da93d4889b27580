package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/studio/internal/app"
	"github.com/example/studio/internal/ports/primary"
	"github.com/example/studio/internal/wire"
)

// ContactCmd returns the contact-form submission command.
func ContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Submit a contact inquiry to the studio",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			phone, _ := cmd.Flags().GetString("phone")
			subject, _ := cmd.Flags().GetString("subject")
			out := cmd.OutOrStdout()

			if msg := app.ValidateName(name); msg != "" {
				return fmt.Errorf("%s", msg)
			}
			if msg := app.ValidateEmail(email); msg != "" {
				return fmt.Errorf("%s", msg)
			}
			if phone != "" {
				if msg := app.ValidatePhone(phone); msg != "" {
					return fmt.Errorf("%s", msg)
				}
			}

			c, err := wire.Get()
			if err != nil {
				return fmt.Errorf("failed to open the studio store: %w", err)
			}

			showToast(out, "Initiating Studio Dispatch...", "info")
			res, err := c.Leads.SubmitContact(cmd.Context(), primary.ContactRequest{
				Name:    name,
				Email:   email,
				Phone:   phone,
				Subject: subject,
			})
			if err != nil {
				showToast(out, "Transmission failed. Please check your connection.", "error")
				return err
			}

			showToast(out, "Inquiry logged and studio alerted.", "success")
			fmt.Fprintf(out, "Lead #%d recorded.\n", res.LeadID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Contact name (required)")
	cmd.Flags().String("email", "", "Email address (required)")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("subject", "", "Inquiry subject (defaults to \"Studio Commission\")")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	return cmd
}
