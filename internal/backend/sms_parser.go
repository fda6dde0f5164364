package backend

import (
	"regexp"
	"strings"

	"expense-client/internal/models"

	"github.com/shopspring/decimal"
)

var (
	amountRegex   = regexp.MustCompile(`(?i)(?:\brs\.?|\binr|₹)\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`)
	creditRegex   = regexp.MustCompile(`(?i)\b(?:credited|received|deposited|refund(?:ed)?)\b`)
	debitRegex    = regexp.MustCompile(`(?i)\b(?:debited|spent|paid|withdrawn|purchase)\b`)
	merchantRegex = regexp.MustCompile(`(?i)\b(?:at|to|from|towards|by)\s+([A-Za-z0-9][A-Za-z0-9&'.\- ]*?)(?:\s+(?:on|via|ref|using|for|with|avl|a/c|upi)\b|[,;]|\.\s|\.$|$)`)
)

// MessageParser extracts an expense from a bank transaction SMS
type MessageParser struct {
	categorizer CategorizerInterface
}

func NewMessageParser(categorizer CategorizerInterface) MessageParserInterface {
	if categorizer == nil {
		categorizer = NewCategorizer()
	}
	return &MessageParser{categorizer: categorizer}
}

// Parse requires an amount. Direction defaults to debited when neither
// keyword set matches; a message matching both is read as credited only if
// the credit keyword comes first.
func (p *MessageParser) Parse(message string) (models.Expense, error) {
	m := amountRegex.FindStringSubmatch(message)
	if m == nil {
		return models.Expense{}, ErrUnparseableMessage
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return models.Expense{}, ErrUnparseableMessage
	}

	expense := models.Expense{
		Amount:          amount.InexactFloat64(),
		Currency:        models.DefaultCurrency,
		TransactionType: direction(message),
	}

	if mm := merchantRegex.FindStringSubmatch(message); mm != nil {
		expense.Merchant = strings.TrimSpace(mm[1])
	}
	expense.ApplyParseDefaults()

	if expense.IsDebit() {
		expense.Category, _ = p.categorizer.Categorize(expense.Merchant)
	}
	return expense, nil
}

func direction(message string) string {
	credit := creditRegex.FindStringIndex(message)
	debit := debitRegex.FindStringIndex(message)
	switch {
	case credit != nil && (debit == nil || credit[0] < debit[0]):
		return models.TransactionCredited
	default:
		return models.TransactionDebited
	}
}
