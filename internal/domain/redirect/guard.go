// Package redirect decides whether a post-login destination is safe to follow.
//
// Candidates are attacker-influenced (query strings, backend fields). Only
// root-relative paths under a fixed allow-list of roots are accepted.
package redirect

import "strings"

// DefaultTarget is where a user lands when no safe redirect was requested.
const DefaultTarget = "/dashboard"

// DefaultAllowList holds the internal roots accepted out of the box.
var DefaultAllowList = []string{"/dashboard", "/profile", "/settings", "/"}

var (
	offSitePrefixes = []string{"http://", "https://", "//"}
	scriptPrefixes  = []string{"javascript:", "data:"}
)

type Guard struct {
	allowList []string
}

// NewGuard copies allowList; an empty list falls back to DefaultAllowList.
func NewGuard(allowList []string) *Guard {
	roots := make([]string, 0, len(allowList))
	for _, root := range allowList {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		roots = append(roots, root)
	}
	if len(roots) == 0 {
		roots = append(roots, DefaultAllowList...)
	}
	return &Guard{allowList: roots}
}

func (g *Guard) AllowList() []string {
	return append([]string(nil), g.allowList...)
}

// IsValid applies the checks in order and rejects on the first match.
func (g *Guard) IsValid(url string) bool {
	if strings.TrimSpace(url) == "" {
		return false
	}

	lower := strings.ToLower(url)
	if hasAnyPrefix(lower, offSitePrefixes) {
		return false
	}
	if hasAnyPrefix(lower, scriptPrefixes) {
		return false
	}
	if !strings.HasPrefix(url, "/") {
		return false
	}

	for _, root := range g.allowList {
		// "/" only matches itself: root+"/" is "//", rejected above.
		if url == root || strings.HasPrefix(url, root+"/") {
			return true
		}
	}
	return false
}

// SafeURL returns candidate when it passes IsValid, otherwise fallback.
// The fallback is developer-controlled and is not re-validated.
func (g *Guard) SafeURL(candidate, fallback string) string {
	if g.IsValid(candidate) {
		return candidate
	}
	return fallback
}

// FirstSafe returns the first valid candidate, or fallback.
func (g *Guard) FirstSafe(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if g.IsValid(c) {
			return c
		}
	}
	return fallback
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

var defaultGuard = NewGuard(DefaultAllowList)

func IsValidRedirectURL(url string) bool {
	return defaultGuard.IsValid(url)
}

func GetSafeRedirectURL(candidate, fallback string) string {
	return defaultGuard.SafeURL(candidate, fallback)
}
