package cmd

import (
	"fmt"

	"loginflow/internal/domain/redirect"

	"github.com/spf13/cobra"
)

type redirectOutput struct {
	Candidate string `json:"candidate"`
	Allowed   bool   `json:"allowed"`
	Target    string `json:"target"`
}

func newRedirectCmd(root *rootOptions) *cobra.Command {
	var (
		fallback  string
		allowList []string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "redirect <url>",
		Short: "Show where a post-login redirect would land",
		Long: `Redirect checks a candidate against the allow-list and prints the
destination a user would actually reach after signing in.

Examples:
  loginctl redirect /profile/edit
  loginctl redirect https://evil.example --default /settings
  loginctl redirect /admin --allow /admin,/dashboard --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(allowList) == 0 {
				allowList = envList("REDIRECT_ALLOW_LIST", redirect.DefaultAllowList)
			}
			if fallback == "" {
				fallback = envOr("REDIRECT_DEFAULT", redirect.DefaultTarget)
			}

			guard := redirect.NewGuard(allowList)
			out := redirectOutput{
				Candidate: args[0],
				Allowed:   guard.IsValid(args[0]),
				Target:    guard.SafeURL(args[0], fallback),
			}

			w := cmd.OutOrStdout()
			switch {
			case root.json():
				if err := writeJSON(w, out); err != nil {
					return err
				}
			case out.Allowed:
				fmt.Fprintf(w, "✅ %s is allowed\n", out.Target)
			default:
				fmt.Fprintf(w, "❌ %q rejected, falling back to %s\n", out.Candidate, out.Target)
			}

			if strict && !out.Allowed {
				return ErrUnsafeRedirect
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fallback, "default", "", "fallback destination (env REDIRECT_DEFAULT)")
	cmd.Flags().StringSliceVar(&allowList, "allow", nil, "allowed roots (env REDIRECT_ALLOW_LIST)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the candidate is rejected")
	return cmd
}
