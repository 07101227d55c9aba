package policy

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	platformstrings "regate/pkg/platform/strings"
)

// DisposableSource extends the static disposable-domain list at runtime.
// Implementations must return an error on lookup failure rather than
// guessing; the validator treats that as an upstream failure, never as
// "not disposable".
type DisposableSource interface {
	IsDisposable(ctx context.Context, domain string) (bool, error)
}

// EmailPolicy answers the two email questions the validator asks: is the
// address well-formed, and does its domain belong to a known disposable
// provider.
type EmailPolicy struct {
	validate *validator.Validate
	static   map[string]struct{}
	source   DisposableSource
}

// NewEmailPolicy builds the policy from a static domain list. Options attach
// runtime sources.
func NewEmailPolicy(staticDomains []string, opts ...EmailOption) *EmailPolicy {
	normalized := platformstrings.DedupeAndTrimLower(staticDomains)
	static := make(map[string]struct{}, len(normalized))
	for _, d := range normalized {
		static[d] = struct{}{}
	}
	p := &EmailPolicy{
		validate: validator.New(),
		static:   static,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// EmailOption configures an EmailPolicy.
type EmailOption func(*EmailPolicy)

// WithDisposableSource attaches a runtime disposable-domain source consulted
// after the static list misses.
func WithDisposableSource(source DisposableSource) EmailOption {
	return func(p *EmailPolicy) { p.source = source }
}

// ValidFormat reports whether the address is syntactically valid.
func (p *EmailPolicy) ValidFormat(email string) bool {
	return p.validate.Var(email, "required,email") == nil
}

// IsDisposableDomain reports whether the address's domain is a known
// disposable provider. Addresses without a parseable domain report false;
// format rejection is ValidFormat's job.
func (p *EmailPolicy) IsDisposableDomain(ctx context.Context, email string) (bool, error) {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return false, nil
	}
	domain := strings.ToLower(email[at+1:])

	if _, ok := p.static[domain]; ok {
		return true, nil
	}
	if p.source != nil {
		return p.source.IsDisposable(ctx, domain)
	}
	return false, nil
}
