package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"expense-client/internal/dto"
	apperrors "expense-client/internal/errors"
	"expense-client/internal/models"
	"expense-client/internal/services"
)

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"login":     {"Log in and store the session", runLogin},
	"logout":    {"Revoke the refresh token and clear the session", runLogout},
	"register":  {"Create an account and log in", runRegister},
	"status":    {"Show the stored session, refreshing it if needed", runStatus},
	"whoami":    {"Show the current user's profile", runWhoami},
	"expenses":  {"List expenses, optionally filtered", runExpenses},
	"add":       {"Record an expense", runAdd},
	"update":    {"Change fields of an existing expense", runUpdate},
	"analytics": {"Income, spending and category breakdown", runAnalytics},
	"budget":    {"Monthly budget utilisation", runBudget},
	"trend":     {"Income and spending series for charting", runTrend},
	"parse-sms": {"Send bank SMS texts to the parser", runParseSMS},
}

func newFlagSet(a *app, name string) *flag.FlagSet {
	fs := flag.NewFlagSet("expensectl "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "login")
	username := fs.String("user", "", "Username")
	password := fs.String("password", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		fs.Usage()
		return errors.New("missing required flag: -user")
	}

	if *password == "" {
		p, err := readPassword(a.stdin, a.stderr, "Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		*password = p
	}

	if err := a.session.Login(ctx, *username, *password); err != nil {
		return err
	}

	state := a.session.State()
	return a.out.emit(state, func() {
		a.out.printf("Logged in as %s\n", state.Username)
	})
}

func runLogout(ctx context.Context, a *app, args []string) error {
	if err := newFlagSet(a, "logout").Parse(args); err != nil {
		return err
	}
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	return a.out.emit(a.session.State(), func() {
		a.out.printf("Logged out\n")
	})
}

func runRegister(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "register")
	var req dto.RegisterRequest
	fs.StringVar(&req.Username, "user", "", "Username")
	fs.StringVar(&req.Email, "email", "", "Email address")
	fs.StringVar(&req.FirstName, "first", "", "First name")
	fs.StringVar(&req.LastName, "last", "", "Last name")
	fs.StringVar(&req.PhoneNumber, "phone", "", "Phone number")
	fs.StringVar(&req.Password, "password", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if req.Password == "" {
		p, err := readPassword(a.stdin, a.stderr, "Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		req.Password = p
	}

	if err := a.session.Register(ctx, req); err != nil {
		return err
	}

	state := a.session.State()
	return a.out.emit(state, func() {
		a.out.printf("Registered and logged in as %s\n", state.Username)
	})
}

func runStatus(ctx context.Context, a *app, args []string) error {
	if err := newFlagSet(a, "status").Parse(args); err != nil {
		return err
	}
	state := a.session.CheckSession(ctx)
	return a.out.emit(state, func() {
		if state.IsAuthenticated() {
			a.out.printf("Logged in as %s\n", state.Username)
			return
		}
		a.out.printf("Not logged in\n")
	})
}

func runWhoami(ctx context.Context, a *app, args []string) error {
	if err := newFlagSet(a, "whoami").Parse(args); err != nil {
		return err
	}
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	user, err := a.users.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	return a.out.emit(user, func() {
		a.out.table([]string{"FIELD", "VALUE"}, [][]string{
			{"Name", user.FullName()},
			{"Username", user.Username},
			{"Email", user.Email},
			{"Phone", user.PhoneNumber},
			{"User ID", user.UserID},
		})
	})
}

func runExpenses(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "expenses")
	txType := fs.String("type", "", "Only debited or credited expenses")
	merchant := fs.String("merchant", "", "Only expenses at this merchant (case-insensitive)")
	from := fs.String("from", "", "Start of the time range (ISO-8601)")
	to := fs.String("to", "", "End of the time range (ISO-8601)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := parseTimeFlag("from", *from)
	if err != nil {
		return err
	}
	end, err := parseTimeFlag("to", *to)
	if err != nil {
		return err
	}
	if *txType != "" && *merchant != "" {
		return errors.New("-type and -merchant cannot be combined")
	}

	if err := a.requireSession(ctx); err != nil {
		return err
	}

	var list []models.Expense
	switch {
	case *txType != "":
		list, err = a.expenses.GetExpensesByType(ctx, dto.ExpenseTypeFilter{
			TransactionType: *txType, StartTime: start, EndTime: end,
		})
	case *merchant != "":
		list, err = a.expenses.GetExpensesByMerchant(ctx, dto.ExpenseMerchantFilter{
			Merchant: *merchant, StartTime: start, EndTime: end,
		})
	default:
		if err = a.cache.Refresh(ctx); err == nil {
			list = filterWindow(a.cache.List(), models.DateWindow{Start: start, End: end})
		}
	}
	if err != nil {
		return err
	}
	return a.out.expenses(list)
}

func runAdd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "add")
	var e models.Expense
	fs.Float64Var(&e.Amount, "amount", 0, "Amount, never negative")
	fs.StringVar(&e.Merchant, "merchant", "", "Merchant name")
	fs.StringVar(&e.Currency, "currency", models.DefaultCurrency, "Currency code")
	fs.StringVar(&e.TransactionType, "type", models.TransactionDebited, "debited or credited")
	fs.StringVar(&e.Category, "category", "", "Category (grouped under the merchant when empty)")
	at := fs.String("at", "", "Transaction time (ISO-8601, defaults to now)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *at != "" {
		t, err := parseTimeFlag("at", *at)
		if err != nil {
			return err
		}
		e.CreatedAt = models.FormatTimestamp(*t)
	}

	if err := a.requireSession(ctx); err != nil {
		return err
	}
	created, err := a.cache.Add(ctx, e)
	if err != nil {
		return err
	}
	return a.out.emit(created, func() {
		a.out.printf("Added %s\n", created.ExternalID)
	})
}

func runUpdate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "update")
	id := fs.String("id", "", "external_id of the expense")
	amount := fs.Float64("amount", 0, "New amount")
	merchant := fs.String("merchant", "", "New merchant")
	currency := fs.String("currency", "", "New currency")
	txType := fs.String("type", "", "New direction")
	category := fs.String("category", "", "New category")
	at := fs.String("at", "", "New transaction time (ISO-8601)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return apperrors.ErrExpenseIDRequired
	}

	if err := a.loadExpenses(ctx); err != nil {
		return err
	}
	expense, ok := findExpense(a.cache.List(), *id)
	if !ok {
		return fmt.Errorf("expense %s not found", *id)
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "amount":
			expense.Amount = *amount
		case "merchant":
			expense.Merchant = *merchant
		case "currency":
			expense.Currency = *currency
		case "type":
			expense.TransactionType = *txType
		case "category":
			expense.Category = *category
		case "at":
			t, err := parseTimeFlag("at", *at)
			if err != nil {
				flagErr = err
				return
			}
			expense.CreatedAt = models.FormatTimestamp(*t)
		}
	})
	if flagErr != nil {
		return flagErr
	}

	updated, err := a.cache.Update(ctx, expense)
	if err != nil {
		return err
	}
	return a.out.emit(updated, func() {
		a.out.printf("Updated %s\n", updated.ExternalID)
	})
}

func runAnalytics(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "analytics")
	month := fs.String("month", "", "Month as YYYY-MM (defaults to the current month)")
	all := fs.Bool("all", false, "Aggregate every expense, ignoring -month")
	if err := fs.Parse(args); err != nil {
		return err
	}

	window := models.DateWindow{}
	if !*all {
		year, m, err := parseMonth(*month)
		if err != nil {
			return err
		}
		window = services.MonthWindow(year, m, time.Local)
	}

	if err := a.loadExpenses(ctx); err != nil {
		return err
	}
	summary := a.cache.Analytics(window)

	return a.out.emit(summary, func() {
		a.out.table([]string{"", "AMOUNT"}, [][]string{
			{"Income", money(summary.TotalIncome)},
			{"Expense", money(summary.TotalExpense)},
			{"Net", money(summary.NetBalance)},
		})
		if len(summary.Categories) == 0 {
			return
		}
		a.out.printf("\n")
		rows := make([][]string, 0, len(summary.Categories))
		for _, c := range summary.Categories {
			rows = append(rows, []string{c.Name, money(c.Amount), strconv.Itoa(c.Percentage) + "%"})
		}
		a.out.table([]string{"CATEGORY", "AMOUNT", "SHARE"}, rows)
	})
}

func runBudget(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "budget")
	month := fs.String("month", "", "Month as YYYY-MM (defaults to the current month)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	year, m, err := parseMonth(*month)
	if err != nil {
		return err
	}

	if err := a.loadExpenses(ctx); err != nil {
		return err
	}
	summary := services.NewBudgetPolicy(a.cfg.Budget).
		Summarize(a.cache.List(), services.MonthWindow(year, m, time.Local))

	return a.out.emit(summary, func() {
		a.out.table([]string{"", "VALUE"}, [][]string{
			{"Spent", money(summary.Spent)},
			{"Limit", money(summary.Limit)},
			{"Used", strconv.Itoa(summary.PercentageUsed) + "%"},
			{"Status", string(summary.Status)},
			{"Top category", summary.MostSpendCategory},
		})
	})
}

func runTrend(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "trend")
	month := fs.String("month", "", "Month as YYYY-MM (defaults to the current month)")
	by := fs.String("by", string(models.TrendDaily), "Bucketing: daily, weekly or monthly")
	if err := fs.Parse(args); err != nil {
		return err
	}
	year, m, err := parseMonth(*month)
	if err != nil {
		return err
	}

	if err := a.loadExpenses(ctx); err != nil {
		return err
	}
	series, err := services.Trend(a.cache.List(), year, m, time.Local, models.TrendGranularity(*by))
	if err != nil {
		return err
	}

	return a.out.emit(series, func() {
		rows := make([][]string, 0, len(series.Labels))
		for i, label := range series.Labels {
			rows = append(rows, []string{label, money(series.Income[i]), money(series.Expense[i])})
		}
		a.out.table([]string{"PERIOD", "INCOME", "EXPENSE"}, rows)
	})
}

type parseSummary struct {
	Received int      `json:"received"`
	Parsed   int      `json:"parsed"`
	Messages []string `json:"messages"`
}

// runParseSMS feeds each argument, or each stdin line when there are none,
// through the SMS listener. Lines starting with "{" are taken as raw event
// payloads; anything else is wrapped in an envelope from -sender.
func runParseSMS(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "parse-sms")
	sender := fs.String("sender", "", "Sender phone number for plain-text messages")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !a.cfg.SMS.Enabled {
		return errors.New("sms listener is disabled (SMS_LISTENER_ENABLED=false)")
	}
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		summary = parseSummary{Messages: []string{}}
	)
	listener := services.NewSMSListener(a.parser, a.logger, a.recorder, a.cfg.API.RequestTimeout)
	source := services.NewChannelSource()

	sub, result := listener.StartIfPermitted(ctx, services.PlatformPermissions{Platform: a.cfg.SMS.Platform}, source, func(body string) {
		mu.Lock()
		defer mu.Unlock()
		summary.Parsed++
		summary.Messages = append(summary.Messages, body)
	})
	if result != models.PermissionGranted {
		return fmt.Errorf("sms permission %s on %s", result, a.cfg.SMS.Platform)
	}

	var received atomic.Int64
	payloads := make(chan string)
	go func() {
		defer close(payloads)
		send := func(line string) bool {
			line = strings.TrimSpace(line)
			if line == "" {
				return true
			}
			select {
			case payloads <- envelope(line, *sender):
				received.Add(1)
				return true
			case <-ctx.Done():
				return false
			}
		}
		if fs.NArg() > 0 {
			for _, arg := range fs.Args() {
				if !send(arg) {
					return
				}
			}
			return
		}
		scanner := bufio.NewScanner(a.stdin)
		for scanner.Scan() {
			if !send(scanner.Text()) {
				return
			}
		}
	}()
	source.Pump(ctx, payloads)

	sub.Unsubscribe()
	sub.Wait()

	mu.Lock()
	defer mu.Unlock()
	summary.Received = int(received.Load())
	return a.out.emit(summary, func() {
		for _, m := range summary.Messages {
			a.out.printf("parsed: %s\n", m)
		}
		a.out.printf("%d of %d messages parsed\n", summary.Parsed, summary.Received)
	})
}

func envelope(line, sender string) string {
	if strings.HasPrefix(line, "{") {
		return line
	}
	b, _ := json.Marshal(dto.SMSEnvelope{MessageBody: line, SenderPhoneNumber: sender})
	return string(b)
}

func parseTimeFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, ok := models.ParseTimestamp(value)
	if !ok {
		return nil, fmt.Errorf("invalid -%s %q: expected an ISO-8601 timestamp", name, value)
	}
	return &t, nil
}

func parseMonth(value string) (int, time.Month, error) {
	if value == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.ParseInLocation("2006-01", value, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid -month %q: expected YYYY-MM", value)
	}
	return t.Year(), t.Month(), nil
}

func findExpense(list []models.Expense, id string) (models.Expense, bool) {
	for _, e := range list {
		if e.ExternalID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}

func filterWindow(list []models.Expense, window models.DateWindow) []models.Expense {
	if window.Start == nil && window.End == nil {
		return list
	}
	out := make([]models.Expense, 0, len(list))
	for _, e := range list {
		if t, ok := e.Timestamp(); ok && window.Contains(t) {
			out = append(out, e)
		}
	}
	return out
}
