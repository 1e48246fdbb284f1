package facecheck

import "context"

// QuoteKind selects the tone of the motivational quote shown after a
// successful submission.
type QuoteKind string

const (
	QuoteOnTime   QuoteKind = "on-time"
	QuoteLate     QuoteKind = "late"
	QuoteCheckOut QuoteKind = "check-out"
)

// Verifier is the external face-verification capability. The engine treats
// its verdict as authoritative.
type Verifier interface {
	// VerifyFace reports whether the photo is an acceptable selfie.
	VerifyFace(ctx context.Context, photo []byte, mimeType string) (bool, error)

	// MotivationalQuote returns a short quote matching the submission outcome.
	MotivationalQuote(ctx context.Context, kind QuoteKind) (string, error)
}

// checkedVerifier applies the configured failure policy on top of a provider:
// fail-open accepts submissions when the provider errors, fail-closed
// rejects them.
type checkedVerifier struct {
	provider Verifier
	failOpen bool
}

// WithFailurePolicy wraps a provider so that provider outages resolve to an
// explicit accept or reject instead of a hidden default.
func WithFailurePolicy(provider Verifier, failOpen bool) Verifier {
	return &checkedVerifier{provider: provider, failOpen: failOpen}
}

func (v *checkedVerifier) VerifyFace(ctx context.Context, photo []byte, mimeType string) (bool, error) {
	ok, err := v.provider.VerifyFace(ctx, photo, mimeType)
	if err != nil {
		if v.failOpen {
			return true, nil
		}
		return false, err
	}
	return ok, nil
}

func (v *checkedVerifier) MotivationalQuote(ctx context.Context, kind QuoteKind) (string, error) {
	quote, err := v.provider.MotivationalQuote(ctx, kind)
	if err != nil || quote == "" {
		// Quotes are decoration; degrade to a canned line instead of failing.
		return fallbackQuote(kind), nil
	}
	return quote, nil
}

func fallbackQuote(kind QuoteKind) string {
	switch kind {
	case QuoteOnTime:
		return "Success belongs to those who arrive early."
	case QuoteLate:
		return "Punctuality is the soul of business."
	default:
		return "Have a great evening!"
	}
}
