// Package service implements the registration validation pass: independent
// field checks, the status/provenance presence rule, organization-scoped
// uniqueness and invitation checks, and derivation of the attributes account
// creation needs.
package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"regate/internal/organization"
	"regate/internal/platform/metrics"
	"regate/internal/policy"
	"regate/internal/registration"
	id "regate/pkg/domain"
	dErrors "regate/pkg/domain-errors"
	"regate/pkg/platform/audit"
	"regate/pkg/platform/sentinel"
	"regate/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// AccountQuery is the read-only store capability the validator depends on.
// Declared consumer-side so tests can fake it without touching the store
// package.
type AccountQuery interface {
	FindByEmail(ctx context.Context, orgID id.OrganizationID, email string) (*registration.Account, error)
	FindByNickname(ctx context.Context, orgID id.OrganizationID, nickname string) (*registration.Account, error)
	HasPendingInvitation(ctx context.Context, orgID id.OrganizationID, email string) (bool, error)
}

// PasswordPolicy scores a candidate password against the submitter's own
// identity fields. A false result is a policy rejection; an error is an
// upstream failure.
type PasswordPolicy interface {
	Check(ctx context.Context, password string, personal policy.PersonalData) (bool, error)
}

// EmailPolicy answers format and disposable-domain questions.
type EmailPolicy interface {
	ValidFormat(email string) bool
	IsDisposableDomain(ctx context.Context, email string) (bool, error)
}

// Hasher derives the password digest carried in a valid decision.
type Hasher interface {
	Digest(password string) (string, error)
}

// TokenMinter signs the email-confirmation token carried in a valid decision.
type TokenMinter interface {
	Mint(email string, orgID id.OrganizationID, now time.Time) (string, error)
}

// nicknamePattern: word characters and hyphens only.
var nicknamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Service is the registration validator. Stateless between calls; all
// external knowledge arrives through the injected capabilities.
type Service struct {
	accounts  AccountQuery
	passwords PasswordPolicy
	emails    EmailPolicy
	hasher    Hasher
	tokens    TokenMinter

	// nicknameMaxLength is the deployment default; an organization may
	// override it.
	nicknameMaxLength int

	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   *audit.Publisher
}

// Option configures optional service collaborators.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(p *audit.Publisher) Option {
	return func(s *Service) { s.audit = p }
}

func NewService(
	accounts AccountQuery,
	passwords PasswordPolicy,
	emails EmailPolicy,
	hasher Hasher,
	tokens TokenMinter,
	nicknameMaxLength int,
	opts ...Option,
) *Service {
	s := &Service{
		accounts:          accounts,
		passwords:         passwords,
		emails:            emails,
		hasher:            hasher,
		tokens:            tokens,
		nicknameMaxLength: nicknameMaxLength,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate runs one validation pass over an immutable submission.
//
// Every check runs; failures aggregate into the decision's error mapping so
// the user can fix everything in one resubmission. The returned error is
// non-nil only for upstream failures (store, policy, hashing); those are
// never folded into the validation errors.
func (s *Service) Validate(ctx context.Context, input registration.Input, org *organization.Organization) (registration.Decision, error) {
	tracer := otel.Tracer("regate/registration")
	ctx, span := tracer.Start(ctx, "registration.validate")
	defer span.End()

	started := time.Now()
	fieldErrors := registration.FieldErrors{}

	s.checkPresence(input, fieldErrors)
	s.checkNickname(input.Nickname, org, fieldErrors)
	if err := s.checkEmail(ctx, input.Email, fieldErrors); err != nil {
		return s.abort(ctx, span, err, "email policy check failed")
	}
	s.checkConfirmation(input, fieldErrors)
	if err := s.checkStrength(ctx, input, fieldErrors); err != nil {
		return s.abort(ctx, span, err, "password policy check failed")
	}
	s.checkStatus(input.Status, fieldErrors)

	if err := s.checkAgainstStore(ctx, input, org.ID, fieldErrors); err != nil {
		return s.abort(ctx, span, err, "account store check failed")
	}

	decision := registration.Decision{Valid: fieldErrors.Empty()}
	if decision.Valid {
		attrs, err := s.deriveAttributes(ctx, input, org.ID)
		if err != nil {
			return s.abort(ctx, span, err, "attribute derivation failed")
		}
		decision.Attributes = attrs
	} else {
		decision.Errors = fieldErrors
	}

	span.SetAttributes(
		attribute.Bool("registration.valid", decision.Valid),
		attribute.Int("registration.failed_fields", len(fieldErrors)),
	)
	if s.metrics != nil {
		s.metrics.ObserveDecision(decision.Valid, fieldErrors.Fields(), time.Since(started).Seconds())
	}
	s.emitAudit(ctx, input, org.ID, decision)

	return decision, nil
}

// checkPresence covers every required field. The terms-of-service flag is a
// strict boolean acceptance: absent and false are the same failure.
func (s *Service) checkPresence(input registration.Input, fieldErrors registration.FieldErrors) {
	required := []struct {
		field string
		value string
	}{
		{registration.FieldName, input.Name},
		{registration.FieldStatus, input.Status},
		{registration.FieldProvenance, input.Provenance},
		{registration.FieldNickname, input.Nickname},
		{registration.FieldEmail, input.Email},
		{registration.FieldPassword, input.Password},
		{registration.FieldPasswordConfirmation, input.PasswordConfirmation},
	}
	for _, req := range required {
		if strings.TrimSpace(req.value) == "" {
			fieldErrors.Add(req.field, registration.ErrMissing)
		}
	}
	if !input.TOSAgreement {
		fieldErrors.Add(registration.FieldTOSAgreement, registration.ErrUnacceptable)
	}
}

func (s *Service) checkNickname(nickname string, org *organization.Organization, fieldErrors registration.FieldErrors) {
	if nickname == "" {
		return
	}
	if !nicknamePattern.MatchString(nickname) {
		fieldErrors.Add(registration.FieldNickname, registration.ErrMalformed)
	}
	if len(nickname) > s.effectiveNicknameMax(org) {
		fieldErrors.Add(registration.FieldNickname, registration.ErrTooLong)
	}
}

func (s *Service) effectiveNicknameMax(org *organization.Organization) int {
	if org.NicknameMaxLength > 0 {
		return org.NicknameMaxLength
	}
	return s.nicknameMaxLength
}

// checkEmail rejects malformed addresses, then screens well-formed ones
// against the disposable-domain policy.
func (s *Service) checkEmail(ctx context.Context, email string, fieldErrors registration.FieldErrors) error {
	if email == "" {
		return nil
	}
	if !s.emails.ValidFormat(email) {
		fieldErrors.Add(registration.FieldEmail, registration.ErrMalformed)
		return nil
	}
	disposable, err := s.emails.IsDisposableDomain(ctx, email)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "disposable-domain check unavailable")
	}
	if disposable {
		fieldErrors.Add(registration.FieldEmail, registration.ErrUnacceptable)
	}
	return nil
}

func (s *Service) checkConfirmation(input registration.Input, fieldErrors registration.FieldErrors) {
	if input.Password == "" || input.PasswordConfirmation == "" {
		return
	}
	if input.Password != input.PasswordConfirmation {
		fieldErrors.Add(registration.FieldPasswordConfirmation, registration.ErrNotConfirmed)
	}
}

func (s *Service) checkStrength(ctx context.Context, input registration.Input, fieldErrors registration.FieldErrors) error {
	if input.Password == "" {
		return nil
	}
	ok, err := s.passwords.Check(ctx, input.Password, policy.PersonalData{
		Name:     input.Name,
		Email:    input.Email,
		Nickname: input.Nickname,
	})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "password policy unavailable")
	}
	if !ok {
		fieldErrors.Add(registration.FieldPassword, registration.ErrWeak)
	}
	return nil
}

// checkStatus enforces catalog membership. Provenance stays presence-only:
// the status/provenance narrowing is presentation behavior, and the source
// rules do not cross-validate it here.
func (s *Service) checkStatus(status string, fieldErrors registration.FieldErrors) {
	if status == "" {
		return
	}
	if !id.Status(status).IsValid() {
		fieldErrors.Add(registration.FieldStatus, registration.ErrUnacceptable)
	}
}

// checkAgainstStore runs the three organization-scoped read checks
// concurrently; they are independent queries. Results append in a fixed order
// so decisions stay deterministic.
func (s *Service) checkAgainstStore(ctx context.Context, input registration.Input, orgID id.OrganizationID, fieldErrors registration.FieldErrors) error {
	email := normalizeEmail(input.Email)
	nickname := strings.TrimSpace(input.Nickname)

	var emailTaken, nicknameTaken, invited bool

	g, gctx := errgroup.WithContext(ctx)
	if email != "" {
		g.Go(func() error {
			taken, err := s.accountExists(gctx, orgID, email, s.accounts.FindByEmail)
			emailTaken = taken
			return err
		})
		g.Go(func() error {
			pending, err := s.accounts.HasPendingInvitation(gctx, orgID, email)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeUnavailable, "invitation lookup unavailable")
			}
			invited = pending
			return nil
		})
	}
	if nickname != "" {
		g.Go(func() error {
			taken, err := s.accountExists(gctx, orgID, nickname, s.accounts.FindByNickname)
			nicknameTaken = taken
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if emailTaken {
		fieldErrors.Add(registration.FieldEmail, registration.ErrTaken)
	}
	if nicknameTaken {
		fieldErrors.Add(registration.FieldNickname, registration.ErrTaken)
	}
	if invited {
		fieldErrors.Add(registration.FieldBase, registration.ErrInvited)
	}
	return nil
}

func (s *Service) accountExists(
	ctx context.Context,
	orgID id.OrganizationID,
	value string,
	find func(context.Context, id.OrganizationID, string) (*registration.Account, error),
) (bool, error) {
	_, err := find(ctx, orgID, value)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	return false, dErrors.Wrap(err, dErrors.CodeUnavailable, "account lookup unavailable")
}

// deriveAttributes produces the normalized output of a valid decision. The
// newsletter marker captures decision time, not persistence time.
func (s *Service) deriveAttributes(ctx context.Context, input registration.Input, orgID id.OrganizationID) (*registration.Attributes, error) {
	now := requestcontext.Now(ctx)
	email := normalizeEmail(input.Email)

	digest, err := s.hasher.Digest(input.Password)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "password digest failed")
	}
	token, err := s.tokens.Mint(email, orgID, now)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "confirmation token mint failed")
	}

	attrs := &registration.Attributes{
		Name:              strings.TrimSpace(input.Name),
		Nickname:          strings.TrimSpace(input.Nickname),
		Email:             email,
		PasswordDigest:    digest,
		Status:            id.Status(input.Status),
		Provenance:        input.Provenance,
		Locale:            input.CurrentLocale,
		ConfirmationToken: token,
	}
	if input.Newsletter {
		newsletterAt := now
		attrs.NewsletterAt = &newsletterAt
	}
	return attrs, nil
}

func (s *Service) emitAudit(ctx context.Context, input registration.Input, orgID id.OrganizationID, decision registration.Decision) {
	if s.audit == nil {
		return
	}
	event := audit.Event{
		Timestamp:      requestcontext.Now(ctx),
		OrganizationID: orgID,
		RequestID:      requestcontext.RequestID(ctx),
		ClientIP:       requestcontext.ClientIP(ctx),
	}
	switch {
	case decision.Valid:
		event.Action = audit.ActionRegistrationValidated
	case decision.Errors.Has(registration.FieldEmail, registration.ErrTaken) ||
		decision.Errors.Has(registration.FieldNickname, registration.ErrTaken) ||
		decision.Errors.Has(registration.FieldBase, registration.ErrInvited):
		event.Action = audit.ActionRegistrationConflict
		event.Email = normalizeEmail(input.Email)
		event.Fields = decision.Errors.Fields()
	default:
		event.Action = audit.ActionRegistrationRejected
		event.Fields = decision.Errors.Fields()
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"action", string(event.Action),
			"error", err.Error(),
		)
	}
}

func (s *Service) abort(ctx context.Context, span trace.Span, err error, msg string) (registration.Decision, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	if s.metrics != nil {
		s.metrics.ObserveUpstreamFailure()
	}
	s.logger.ErrorContext(ctx, msg, "error", err.Error())
	return registration.Decision{}, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
