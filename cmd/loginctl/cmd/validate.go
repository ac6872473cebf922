package cmd

import (
	"fmt"

	"loginflow/internal/domain/auth"

	"github.com/spf13/cobra"
)

type validateOutput struct {
	Email  string             `json:"email"`
	Valid  bool               `json:"valid"`
	Errors []*auth.FieldError `json:"errors"`
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	var creds auth.Credentials

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an email/password pair against the form rules",
		Long: `Validate runs the field rules the form applies before submitting.
Nothing is sent to the auth backend.

Examples:
  loginctl validate --email " Demo@Example.com " --password hunter2hunter2
  loginctl validate --email not-an-email --password short -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := auth.ValidateLoginForm(creds)
			out := validateOutput{
				Email:  auth.SanitizeEmail(creds.Email),
				Valid:  result.IsValid,
				Errors: result.Errors,
			}
			if out.Errors == nil {
				out.Errors = []*auth.FieldError{}
			}

			w := cmd.OutOrStdout()
			if root.json() {
				if err := writeJSON(w, out); err != nil {
					return err
				}
			} else if result.IsValid {
				fmt.Fprintf(w, "✅ form is valid (email %q)\n", out.Email)
			} else {
				for _, fe := range result.Errors {
					fmt.Fprintf(w, "❌ %s: %s (%s)\n", fe.Field, fe.Message, fe.Type)
				}
			}

			if !result.IsValid {
				return ErrInvalidForm
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "email address as typed")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password as typed")
	return cmd
}
