package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"loginflow/internal/domain/auth"
	"loginflow/internal/domain/redirect"
	"loginflow/internal/infra/authclient"
	"loginflow/internal/pkg/errs"
	"loginflow/internal/usecase"
	"loginflow/internal/usecase/loginform"

	"github.com/spf13/cobra"
)

type loginOptions struct {
	creds    auth.Credentials
	redirect string
	baseURL  string
	timeout  time.Duration
	verbose  bool
}

type loginOutput struct {
	Outcome     string             `json:"outcome"`
	FieldErrors []*auth.FieldError `json:"fieldErrors,omitempty"`
	AuthError   *auth.AuthError    `json:"authError,omitempty"`
	User        *auth.User         `json:"user,omitempty"`
	RedirectURL string             `json:"redirectUrl,omitempty"`
	ExpiresAt   string             `json:"expiresAt,omitempty"`
}

func newLoginCmd(root *rootOptions) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Submit credentials to the auth backend",
		Long: `Login fills one form session, validates it, and submits it to the auth
backend at AUTH_API_BASE_URL (or --auth-url). Tokens are never printed.

Examples:
  loginctl login --email demo@example.com --password password123
  loginctl login --email demo@example.com --password password123 --remember-me --redirect /settings`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.creds.Email, "email", "", "email address")
	f.StringVar(&opts.creds.Password, "password", "", "password")
	f.BoolVar(&opts.creds.RememberMe, "remember-me", false, "ask for a long-lived session")
	f.StringVar(&opts.redirect, "redirect", "", "requested post-login destination")
	f.StringVar(&opts.baseURL, "auth-url", "", "auth backend base url (env AUTH_API_BASE_URL)")
	f.DurationVar(&opts.timeout, "timeout", 0, "request timeout (env AUTH_API_TIMEOUT, default 10s)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log form transitions to stderr")
	return cmd
}

func runLogin(cmd *cobra.Command, root *rootOptions, opts *loginOptions) error {
	baseURL := opts.baseURL
	if baseURL == "" {
		baseURL = envOr("AUTH_API_BASE_URL", "")
	}
	if baseURL == "" {
		return ErrMissingBaseURL
	}

	timeout := opts.timeout
	if raw := envOr("AUTH_API_TIMEOUT", ""); timeout == 0 && raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return errs.Mark(errs.Wrapf(err, "AUTH_API_TIMEOUT %q", raw), errs.ErrInvalidConfig)
		}
		timeout = d
	}

	handler := slog.DiscardHandler
	if opts.verbose {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)

	client, err := authclient.New(authclient.Config{
		BaseURL: baseURL,
		Timeout: timeout,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	guard := redirect.NewGuard(envList("REDIRECT_ALLOW_LIST", nil))
	uc := usecase.NewLoginUseCase(client, guard, usecase.LoginSettings{
		DefaultRedirect: envOr("REDIRECT_DEFAULT", redirect.DefaultTarget),
	}, nil, logger)

	result, err := uc.Login(cmd.Context(), usecase.LoginRequest{
		Credentials: opts.creds,
		Redirect:    opts.redirect,
	})
	if err != nil {
		return err
	}

	out := loginOutput{
		Outcome:     result.Outcome.String(),
		FieldErrors: result.FieldErrors,
		AuthError:   result.AuthError,
		RedirectURL: result.RedirectURL,
	}
	if result.Session != nil {
		out.User = &result.Session.User
		if exp := result.Session.SessionExpiry(); !exp.IsZero() {
			out.ExpiresAt = exp.UTC().Format(time.RFC3339)
		}
	}

	w := cmd.OutOrStdout()
	if root.json() {
		if err := writeJSON(w, out); err != nil {
			return err
		}
	} else {
		printLogin(cmd, out)
	}

	switch result.Outcome {
	case loginform.OutcomeInvalid:
		return ErrInvalidForm
	case loginform.OutcomeFailed:
		return errs.Wrapf(ErrLoginFailed, "%s", result.AuthError.Code)
	}
	return nil
}

func printLogin(cmd *cobra.Command, out loginOutput) {
	w := cmd.OutOrStdout()
	switch {
	case out.User != nil:
		fmt.Fprintf(w, "✅ signed in as %s (%s)\n", out.User.Email, out.User.Role)
		fmt.Fprintf(w, "   Redirect: %s\n", out.RedirectURL)
		if out.ExpiresAt != "" {
			fmt.Fprintf(w, "   Expires: %s\n", out.ExpiresAt)
		}
	case out.AuthError != nil:
		fmt.Fprintf(w, "❌ %s: %s\n", out.AuthError.Code, out.AuthError.Message)
		if retry, ok := out.AuthError.Details["retryAfter"]; ok {
			fmt.Fprintf(w, "   Retry after: %vs\n", retry)
		}
	default:
		for _, fe := range out.FieldErrors {
			fmt.Fprintf(w, "❌ %s: %s (%s)\n", fe.Field, fe.Message, fe.Type)
		}
	}
}
