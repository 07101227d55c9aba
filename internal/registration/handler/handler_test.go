package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"regate/internal/confirmation"
	"regate/internal/organization"
	"regate/internal/policy"
	"regate/internal/registration"
	"regate/internal/registration/handler"
	"regate/internal/registration/service"
	"regate/internal/registration/store"
	id "regate/pkg/domain"
	dErrors "regate/pkg/domain-errors"
	"regate/pkg/testutil"
)

const orgHost = "tesla.example.org"

func signupBody() map[string]any {
	return map[string]any{
		"name":                  "Nikola Tesla",
		"nickname":              "the-greatest-genius",
		"email":                 "nikola.tesla@example.org",
		"password":              "sekritpass123",
		"password_confirmation": "sekritpass123",
		"tos_agreement":         true,
		"status":                "student",
		"provenance":            "SE-1",
	}
}

type SignupHandlerSuite struct {
	suite.Suite

	router   chi.Router
	accounts *store.InMemory
	org      *organization.Organization
}

func (s *SignupHandlerSuite) SetupTest() {
	var err error
	s.org, err = organization.New(id.OrganizationID(uuid.New()), "Tesla Institute", orgHost, testutil.FrozenTime)
	s.Require().NoError(err)

	orgs := organization.NewInMemory()
	s.Require().NoError(orgs.CreateIfHostAvailable(s.T().Context(), s.org))

	s.accounts = store.NewInMemory()
	svc := service.NewService(
		s.accounts,
		policy.NewPasswordPolicy(10),
		policy.NewEmailPolicy([]string{"mailinator.com"}),
		policy.NewArgon2Hasher(),
		confirmation.NewService("test-signing-key", 24*time.Hour),
		20,
	)

	s.router = chi.NewRouter()
	handler.New(svc, orgs, testLogger()).Register(s.router)
}

func TestSignupHandlerSuite(t *testing.T) {
	suite.Run(t, new(SignupHandlerSuite))
}

func (s *SignupHandlerSuite) post(body any) *httptest.ResponseRecorder {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/signup", body)
	req = testutil.WithHost(req, orgHost)
	req = testutil.WithRequestTime(req, testutil.FrozenTime)
	return testutil.DoRequest(s.router, req)
}

func (s *SignupHandlerSuite) TestValidSignup() {
	rr := s.post(signupBody())

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	decision := testutil.UnmarshalResponse[registration.Decision](s.T(), rr)
	s.True(decision.Valid)
	s.Require().NotNil(decision.Attributes)
	s.Equal("nikola.tesla@example.org", decision.Attributes.Email)
	s.NotEmpty(decision.Attributes.ConfirmationToken)
}

func (s *SignupHandlerSuite) TestNewsletterTimestampFromRequestTime() {
	body := signupBody()
	body["newsletter"] = true

	rr := s.post(body)

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	decision := testutil.UnmarshalResponse[registration.Decision](s.T(), rr)
	s.Require().NotNil(decision.Attributes.NewsletterAt)
	s.Equal(testutil.FrozenTime, decision.Attributes.NewsletterAt.UTC())
}

func (s *SignupHandlerSuite) TestInvalidSignupReturns422() {
	body := signupBody()
	body["tos_agreement"] = false

	rr := s.post(body)

	testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
	decision := testutil.UnmarshalResponse[registration.Decision](s.T(), rr)
	s.False(decision.Valid)
	s.Contains(decision.Errors, registration.FieldTOSAgreement)
}

func (s *SignupHandlerSuite) TestBoundaryTrimsFieldsButNotPasswords() {
	body := signupBody()
	body["name"] = "  Nikola Tesla  "
	body["email"] = " nikola.tesla@example.org "
	body["password"] = " sekritpass123"
	body["password_confirmation"] = "sekritpass123"

	rr := s.post(body)

	// The padded password must survive the boundary untouched, so the
	// confirmation comparison sees the mismatch.
	testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
	decision := testutil.UnmarshalResponse[registration.Decision](s.T(), rr)
	s.Contains(decision.Errors, registration.FieldPasswordConfirmation)
}

func (s *SignupHandlerSuite) TestMalformedJSONReturns400() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/signup", `{"name": `)
	req = testutil.WithHost(req, orgHost)

	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	testutil.AssertErrorCode(s.T(), rr, string(dErrors.CodeBadRequest))
}

func (s *SignupHandlerSuite) TestNonBooleanTOSReturns400() {
	body := signupBody()
	body["tos_agreement"] = "yes"

	rr := s.post(body)

	testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
}

func (s *SignupHandlerSuite) TestUnknownHostReturns404() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/signup", signupBody())
	req = testutil.WithHost(req, "unknown.example.org")

	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
	testutil.AssertErrorCode(s.T(), rr, string(dErrors.CodeNotFound))
}

func (s *SignupHandlerSuite) TestHostPortStripped() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/signup", signupBody())
	req = testutil.WithHost(req, orgHost+":8443")
	req = testutil.WithRequestTime(req, testutil.FrozenTime)

	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
}

func (s *SignupHandlerSuite) TestConflictStillReturns422() {
	s.accounts.SeedAccount(s.org.ID, registration.Account{
		ID:    id.AccountID(uuid.New()),
		Email: "nikola.tesla@example.org",
	})

	rr := s.post(signupBody())

	testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
	decision := testutil.UnmarshalResponse[registration.Decision](s.T(), rr)
	s.True(decision.Errors.Has(registration.FieldEmail, registration.ErrTaken))
}

func (s *SignupHandlerSuite) TestStatusCatalogHidesPartner() {
	req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/signup/statuses", nil)
	req = testutil.WithHost(req, orgHost)

	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	payload := testutil.UnmarshalResponse[map[string][]id.StatusEntry](s.T(), rr)
	values := make([]id.Status, 0)
	for _, entry := range (*payload)["statuses"] {
		values = append(values, entry.Value)
	}
	s.Equal([]id.Status{id.StatusStudent, id.StatusTeacher, id.StatusPersonal}, values)
}

func TestSignupUpstreamFailureEnvelope(t *testing.T) {
	org, err := organization.New(id.OrganizationID(uuid.New()), "Tesla Institute", orgHost, testutil.FrozenTime)
	require.NoError(t, err)
	orgs := organization.NewInMemory()
	require.NoError(t, orgs.CreateIfHostAvailable(t.Context(), org))

	svc := service.NewService(
		failingAccounts{},
		policy.NewPasswordPolicy(10),
		policy.NewEmailPolicy(nil),
		policy.NewArgon2Hasher(),
		confirmation.NewService("test-signing-key", 24*time.Hour),
		20,
	)
	router := chi.NewRouter()
	handler.New(svc, orgs, testLogger()).Register(router)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/signup", signupBody())
	req = testutil.WithHost(req, orgHost)

	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	testutil.AssertErrorCode(t, rr, string(dErrors.CodeUnavailable))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failingAccounts simulates a store outage for every query.
type failingAccounts struct{}

func (failingAccounts) FindByEmail(context.Context, id.OrganizationID, string) (*registration.Account, error) {
	return nil, errors.New("connection refused")
}

func (failingAccounts) FindByNickname(context.Context, id.OrganizationID, string) (*registration.Account, error) {
	return nil, errors.New("connection refused")
}

func (failingAccounts) HasPendingInvitation(context.Context, id.OrganizationID, string) (bool, error) {
	return false, errors.New("connection refused")
}
