package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"expense-client/internal/config"
	"expense-client/internal/devserver"
	"expense-client/internal/dto"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const password = "correct-horse"

func TestExpensectl(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

// CLISuite runs commands against an in-process development backend with a
// fresh credential store per test
type CLISuite struct {
	suite.Suite
	server *httptest.Server
	store  string
	stderr *bytes.Buffer
}

func (s *CLISuite) SetupTest() {
	s.T().Setenv("APP_PLATFORM", config.PlatformAndroid)
	s.T().Setenv("SMS_LISTENER_ENABLED", "true")
	s.T().Setenv("BUDGET_MONTHLY_LIMIT", "10000")
	s.T().Setenv("SESSION_LOGOUT_SETTLE_DELAY", "1ms")

	srv, err := devserver.New(config.DevServerConfig{
		Host:               "127.0.0.1",
		Port:               "0",
		Environment:        "test",
		BCryptCost:         bcrypt.MinCost,
		RateLimitPerSecond: 1000,
		RateLimitBurst:     1000,
		DBPath:             ":memory:",
		JWT: config.JWTConfig{
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: time.Hour,
			Issuer:               "expensectl-test",
		},
	}, nil)
	s.Require().NoError(err)

	s.server = httptest.NewServer(srv.Handler())
	s.T().Cleanup(func() {
		s.server.Close()
		_ = srv.Close()
	})
	s.store = filepath.Join(s.T().TempDir(), "credentials.db")
}

// run executes expensectl with the test backend and store prepended
func (s *CLISuite) run(stdin string, args ...string) (string, error) {
	stdout := new(bytes.Buffer)
	s.stderr = new(bytes.Buffer)
	full := append([]string{"-api", s.server.URL, "-store", s.store}, args...)
	err := run(context.Background(), full, strings.NewReader(stdin), stdout, s.stderr)
	return stdout.String(), err
}

func (s *CLISuite) mustRun(args ...string) string {
	out, err := s.run("", args...)
	s.Require().NoError(err, s.stderr.String())
	return out
}

func (s *CLISuite) decode(out string, v any) {
	s.Require().NoError(json.Unmarshal([]byte(out), v), out)
}

func (s *CLISuite) register() {
	out := s.mustRun("register", "-user", "asha", "-email", "asha@example.com",
		"-first", "Asha", "-last", "Rao", "-password", password)
	s.Contains(out, "Registered and logged in as asha")
}

func (s *CLISuite) add(args ...string) models.Expense {
	var e models.Expense
	s.decode(s.mustRun(append([]string{"-json", "add"}, args...)...), &e)
	s.Require().NotEmpty(e.ExternalID)
	return e
}

func (s *CLISuite) TestRegisterPersistsSession() {
	s.register()

	s.Contains(s.mustRun("status"), "Logged in as asha")

	var user models.User
	s.decode(s.mustRun("-json", "whoami"), &user)
	s.Equal("Asha", user.FirstName)
	s.Equal("asha@example.com", user.Email)

	s.Contains(s.mustRun("whoami"), "Asha Rao")
}

func (s *CLISuite) TestDebugLogsInvocationMetrics() {
	s.register()
	s.T().Setenv("LOG_LEVEL", "debug")

	s.mustRun("expenses")

	logs := s.stderr.String()
	s.Contains(logs, "expense_api_requests_total")
	s.Contains(logs, "expense_cache_refresh_total")
	s.Contains(logs, "expense_session_transitions_total")
}

func (s *CLISuite) TestLoginPromptsForPassword() {
	s.register()
	s.Contains(s.mustRun("logout"), "Logged out")
	s.Contains(s.mustRun("status"), "Not logged in")

	out, err := s.run(password+"\n", "login", "-user", "asha")
	s.Require().NoError(err, s.stderr.String())
	s.Contains(out, "Logged in as asha")
	s.Contains(s.stderr.String(), "Password: ")
}

func (s *CLISuite) TestLoginWrongPassword() {
	s.register()
	s.mustRun("logout")

	_, err := s.run("", "login", "-user", "asha", "-password", "not-the-password")
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
	s.Contains(s.mustRun("status"), "Not logged in")
}

func (s *CLISuite) TestLoginRequiresUser() {
	_, err := s.run("", "login")
	s.ErrorContains(err, "-user")
}

func (s *CLISuite) TestCommandsRequireSession() {
	for _, cmd := range []string{"whoami", "expenses", "analytics", "budget", "trend", "parse-sms"} {
		_, err := s.run("", cmd)
		s.ErrorIs(err, errNotLoggedIn, cmd)
	}
}

func (s *CLISuite) TestAddListAndUpdate() {
	s.register()

	created := s.add("-amount", "120.5", "-merchant", "Swiggy", "-category", "Food", "-at", "2026-05-10T10:00:00Z")
	s.Equal(120.5, created.Amount)
	s.Equal(models.TransactionDebited, created.TransactionType)
	s.Equal(models.DefaultCurrency, created.Currency)

	table := s.mustRun("expenses")
	s.Contains(table, "MERCHANT")
	s.Contains(table, "Swiggy")
	s.Contains(table, "120.50 INR")

	s.Contains(s.mustRun("update", "-id", created.ExternalID, "-amount", "99", "-category", "Dining"), "Updated "+created.ExternalID)

	var list []models.Expense
	s.decode(s.mustRun("-json", "expenses"), &list)
	s.Require().Len(list, 1)
	s.Equal(99.0, list[0].Amount)
	s.Equal("Dining", list[0].Category)
	s.Equal("Swiggy", list[0].Merchant)
}

func (s *CLISuite) TestExpenseFilters() {
	s.register()
	s.add("-amount", "50", "-merchant", "Swiggy", "-at", "2026-05-02T10:00:00Z")
	s.add("-amount", "900", "-merchant", "Acme Payroll", "-type", "credited", "-at", "2026-05-01T09:00:00Z")
	s.add("-amount", "75", "-merchant", "Swiggy", "-at", "2026-06-15T10:00:00Z")

	var list []models.Expense

	s.decode(s.mustRun("-json", "expenses", "-type", "credited"), &list)
	s.Require().Len(list, 1)
	s.Equal("Acme Payroll", list[0].Merchant)

	s.decode(s.mustRun("-json", "expenses", "-merchant", "swiggy"), &list)
	s.Len(list, 2)

	s.decode(s.mustRun("-json", "expenses", "-merchant", "swiggy",
		"-from", "2026-05-01T00:00:00Z", "-to", "2026-05-31T23:59:59Z"), &list)
	s.Require().Len(list, 1)
	s.Equal(50.0, list[0].Amount)

	s.decode(s.mustRun("-json", "expenses", "-from", "2026-06-01T00:00:00Z"), &list)
	s.Require().Len(list, 1)
	s.Equal(75.0, list[0].Amount)

	_, err := s.run("", "expenses", "-type", "debited", "-merchant", "Swiggy")
	s.Error(err)

	_, err = s.run("", "expenses", "-from", "last tuesday")
	s.ErrorContains(err, "invalid -from")
}

func (s *CLISuite) TestEmptyList() {
	s.register()
	s.Contains(s.mustRun("expenses"), "No expenses")
	s.Equal("[]\n", s.mustRun("-json", "expenses"))
}

func (s *CLISuite) TestUpdateErrors() {
	s.register()

	_, err := s.run("", "update", "-amount", "1")
	s.ErrorIs(err, apperrors.ErrExpenseIDRequired)

	_, err = s.run("", "update", "-id", "f47ac10b-58cc-4372-a567-0e02b2c3d479", "-amount", "1")
	s.ErrorContains(err, "not found")
}

func (s *CLISuite) TestAnalyticsBudgetAndTrend() {
	s.register()
	s.add("-amount", "300", "-merchant", "Swiggy", "-category", "Food", "-at", "2026-05-10T10:00:00Z")
	s.add("-amount", "100", "-merchant", "Uber", "-category", "Transport", "-at", "2026-05-20T10:00:00Z")
	s.add("-amount", "1000", "-merchant", "Acme Payroll", "-type", "credited", "-at", "2026-05-01T10:00:00Z")
	s.add("-amount", "500", "-merchant", "Swiggy", "-category", "Food", "-at", "2026-04-10T10:00:00Z")

	var summary models.AnalyticsSummary
	s.decode(s.mustRun("-json", "analytics", "-month", "2026-05"), &summary)
	s.True(summary.TotalExpense.Equal(decimal.NewFromInt(400)), summary.TotalExpense.String())
	s.True(summary.TotalIncome.Equal(decimal.NewFromInt(1000)))
	s.True(summary.NetBalance.Equal(decimal.NewFromInt(600)))
	s.Require().Len(summary.Categories, 2)
	s.Equal("Food", summary.Categories[0].Name)
	s.Equal(75, summary.Categories[0].Percentage)

	s.decode(s.mustRun("-json", "analytics", "-all"), &summary)
	s.True(summary.TotalExpense.Equal(decimal.NewFromInt(900)))

	text := s.mustRun("analytics", "-month", "2026-05")
	s.Contains(text, "CATEGORY")
	s.Contains(text, "75%")

	var budget models.BudgetSummary
	s.decode(s.mustRun("-json", "budget", "-month", "2026-05"), &budget)
	s.True(budget.Spent.Equal(decimal.NewFromInt(400)))
	s.True(budget.Limit.Equal(decimal.NewFromInt(10000)))
	s.Equal(4, budget.PercentageUsed)
	s.Equal(models.BudgetGood, budget.Status)
	s.Equal("Food", budget.MostSpendCategory)

	var series models.TrendSeries
	s.decode(s.mustRun("-json", "trend", "-month", "2026-05", "-by", "weekly"), &series)
	s.Equal(models.TrendWeekly, series.Granularity)
	s.Require().Len(series.Expense, 5)
	s.True(series.Expense[1].Equal(decimal.NewFromInt(300)))
	s.True(series.Income[0].Equal(decimal.NewFromInt(1000)))

	s.decode(s.mustRun("-json", "trend", "-month", "2026-05", "-by", "monthly"), &series)
	s.Equal([]string{"Dec", "Jan", "Feb", "Mar", "Apr", "May"}, series.Labels)
	s.True(series.Expense[4].Equal(decimal.NewFromInt(500)))

	_, err := s.run("", "trend", "-by", "yearly")
	s.ErrorContains(err, "unknown trend granularity")

	_, err = s.run("", "budget", "-month", "May")
	s.ErrorContains(err, "YYYY-MM")
}

func (s *CLISuite) TestParseSMSFromArgs() {
	s.register()

	out := s.mustRun("parse-sms", "-sender", "AX-HDFC",
		"Rs.250.00 debited from A/c XX1234 at Swiggy on 12-05-2026.",
		"see you at 5",
	)
	s.Contains(out, "parsed: Rs.250.00 debited")
	s.Contains(out, "1 of 2 messages parsed")

	var list []models.Expense
	s.decode(s.mustRun("-json", "expenses"), &list)
	s.Require().Len(list, 1)
	s.Equal("Swiggy", list[0].Merchant)
}

func (s *CLISuite) TestParseSMSFromStdin() {
	s.register()

	raw, err := json.Marshal(dto.SMSEnvelope{
		MessageBody:       "INR 52,000 credited by Acme Payroll on 01-05-2026",
		SenderPhoneNumber: "AX-HDFC",
	})
	s.Require().NoError(err)
	stdin := string(raw) + "\n\n{not json\n"

	out, err := s.run(stdin, "-json", "parse-sms")
	s.Require().NoError(err, s.stderr.String())

	var summary parseSummary
	s.decode(out, &summary)
	s.Equal(2, summary.Received)
	s.Equal(1, summary.Parsed)
}

func (s *CLISuite) TestParseSMSUnavailableOffAndroid() {
	s.register()

	_, err := s.run("", "-platform", config.PlatformWeb, "parse-sms", "Rs.10 debited at Swiggy")
	s.ErrorContains(err, "unavailable")
}

func (s *CLISuite) TestParseSMSDisabled() {
	s.T().Setenv("SMS_LISTENER_ENABLED", "false")
	s.register()

	_, err := s.run("", "parse-sms", "Rs.10 debited at Swiggy")
	s.ErrorContains(err, "disabled")
}

func (s *CLISuite) TestUsage() {
	_, err := s.run("", "-h")
	s.ErrorIs(err, flag.ErrHelp)
	s.Contains(s.stderr.String(), "parse-sms")

	_, err = s.run("")
	s.EqualError(err, "missing command")

	_, err = s.run("", "frobnicate")
	s.ErrorContains(err, `unknown command "frobnicate"`)
}

func TestEnvelope(t *testing.T) {
	raw := `{"messageBody":"x","senderPhoneNumber":"y"}`
	require.Equal(t, raw, envelope(raw, "ignored"))

	var env dto.SMSEnvelope
	require.NoError(t, json.Unmarshal([]byte(envelope("Rs.5 debited", "AX-SBI")), &env))
	require.Equal(t, "Rs.5 debited", env.MessageBody)
	require.Equal(t, "AX-SBI", env.SenderPhoneNumber)
}

func TestParseMonth(t *testing.T) {
	year, month, err := parseMonth("2026-02")
	require.NoError(t, err)
	require.Equal(t, 2026, year)
	require.Equal(t, time.February, month)

	now := time.Now()
	year, month, err = parseMonth("")
	require.NoError(t, err)
	require.Equal(t, now.Year(), year)
	require.Equal(t, now.Month(), month)

	_, _, err = parseMonth("2026/02")
	require.Error(t, err)
}

func TestReadPasswordFromPipe(t *testing.T) {
	prompt := new(bytes.Buffer)
	got, err := readPassword(strings.NewReader("s3cret\nrest"), prompt, "Password: ")
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.Equal(t, "Password: \n", prompt.String())

	_, err = readPassword(strings.NewReader(""), new(bytes.Buffer), "Password: ")
	require.Error(t, err)
}
