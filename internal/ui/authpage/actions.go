package authpage

import (
	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/ui/form"
)

// Action keys shared by the auth views.
const (
	ActionSubmit  = "submit"
	ActionSwitch  = "switch" // link to the other auth view
	ActionTerms   = "terms"
	ActionPrivacy = "privacy"
)

// SocialAction returns the action key for p.
func SocialAction(p auth.Provider) string {
	return "social:" + string(p)
}

// ProviderFor returns the provider behind a social action key.
func ProviderFor(action string) (auth.Provider, bool) {
	for _, p := range auth.Providers {
		if SocialAction(p) == action {
			return p, true
		}
	}
	return "", false
}

// Actions returns the action list every auth view uses: submit, one button
// per provider, the switch link, and (when legal is set) the footer links.
func Actions(submitLabel, switchLabel string, legal bool) []form.ActionConfig {
	out := []form.ActionConfig{{Key: ActionSubmit, Label: submitLabel, Kind: form.KindPrimary}}
	for _, p := range auth.Providers {
		out = append(out, form.ActionConfig{Key: SocialAction(p), Label: p.Label(), Kind: form.KindSecondary})
	}
	out = append(out, form.ActionConfig{Key: ActionSwitch, Label: switchLabel, Kind: form.KindLink})
	if legal {
		out = append(out,
			form.ActionConfig{Key: ActionTerms, Label: "Terms of Service", Kind: form.KindLink},
			form.ActionConfig{Key: ActionPrivacy, Label: "Privacy Policy", Kind: form.KindLink},
		)
	}
	return out
}

// LegalRoute maps a footer link action to its page.
func LegalRoute(action string) string {
	if action == ActionPrivacy {
		return nav.Privacy
	}
	return nav.Terms
}
