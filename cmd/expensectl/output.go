package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"expense-client/internal/models"

	"github.com/shopspring/decimal"
)

type output struct {
	w    io.Writer
	json bool
}

func (o *output) printf(format string, args ...any) {
	fmt.Fprintf(o.w, format, args...)
}

func (o *output) printJSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// emit prints v as JSON in -json mode and calls text otherwise
func (o *output) emit(v any, text func()) error {
	if o.json {
		return o.printJSON(v)
	}
	text()
	return nil
}

func (o *output) table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func (o *output) expenses(list []models.Expense) error {
	if list == nil {
		list = []models.Expense{}
	}
	return o.emit(list, func() {
		if len(list) == 0 {
			o.printf("No expenses\n")
			return
		}
		rows := make([][]string, 0, len(list))
		for _, e := range list {
			rows = append(rows, []string{
				e.ExternalID,
				displayDate(e),
				e.TransactionType,
				e.Merchant,
				e.Category,
				money(decimal.NewFromFloat(e.Amount)) + " " + e.Currency,
			})
		}
		o.table([]string{"ID", "DATE", "TYPE", "MERCHANT", "CATEGORY", "AMOUNT"}, rows)
	})
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func displayDate(e models.Expense) string {
	t, ok := e.Timestamp()
	if !ok {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
