// Package cmd holds the loginctl commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"loginflow/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	ErrInvalidForm    = errs.New("login form is invalid")
	ErrUnsafeRedirect = errs.New("redirect target is not allowed")
	ErrLoginFailed    = errs.New("login failed")
	ErrMissingBaseURL = errs.New("auth backend url is not set")
	ErrUnknownOutput  = errs.New("unknown output format")
)

const (
	outputText = "text"
	outputJSON = "json"
)

type rootOptions struct {
	output string
}

// NewRootCmd builds a fresh command tree so tests never share flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "loginctl",
		Short: "Drive the loginflow form from a terminal",
		Long: `loginctl runs the same validation, redirect and submission rules the
gateway applies, without a browser.

Available commands:
  validate    Check an email/password pair against the form rules
  redirect    Show where a post-login redirect would land
  login       Submit credentials to the auth backend

Settings come from the environment or a .env file in the working directory:
AUTH_API_BASE_URL, AUTH_API_TIMEOUT, REDIRECT_ALLOW_LIST, REDIRECT_DEFAULT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputText && opts.output != outputJSON {
				return errs.Wrapf(ErrUnknownOutput, "%q", opts.output)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")

	root.AddCommand(
		newValidateCmd(opts),
		newRedirectCmd(opts),
		newLoginCmd(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	_ = godotenv.Load()

	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (o *rootOptions) json() bool {
	return o.output == outputJSON
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return strings.Split(v, ",")
}
