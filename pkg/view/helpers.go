package view

import (
	"fmt"
	"time"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
)

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// Money renders an amount for display. E.g., 12450 INR -> "₹12450.00"
func Money(amount float64, currency string) string {
	return fmt.Sprintf("%s%.2f", currencySymbol(currency), amount)
}

func currencySymbol(code string) string {
	switch code {
	case "INR":
		return "₹"
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}

func str(r records.Record, field string) string {
	v := r.Field(field)
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func num(r records.Record, field string) float64 {
	if f, ok := r.Field(field).(float64); ok {
		return f
	}
	return 0
}

func boolMap(r records.Record, field string) map[string]bool {
	out := map[string]bool{}
	if m, ok := r.Field(field).(map[string]any); ok {
		for k, v := range m {
			b, _ := v.(bool)
			out[k] = b
		}
	}
	return out
}
