package merchant

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PaymentSummary is the merchant's transaction summary for a date range.
type PaymentSummary struct {
	SalesCount    int
	TotalSales    float64
	PayOutPending float64
	PayOut        float64
	RedeemsPoints float64
	ServiceFees   float64
}

// Metric is one summary card.
type Metric struct {
	Key   string
	Title string
	Value string
	Raw   float64
}

var printer = message.NewPrinter(language.English)

// Metrics returns the six summary cards in display order.
func (s PaymentSummary) Metrics() []Metric {
	return []Metric{
		{Key: "salesCount", Title: "Total Count", Value: FormatCount(s.SalesCount), Raw: float64(s.SalesCount)},
		{Key: "totalSales", Title: "Total Sales", Value: FormatAmount(s.TotalSales), Raw: s.TotalSales},
		{Key: "payOutPending", Title: "Pending Payout", Value: FormatAmount(s.PayOutPending), Raw: s.PayOutPending},
		{Key: "payOut", Title: "Settled Payout", Value: FormatAmount(s.PayOut), Raw: s.PayOut},
		{Key: "redeemsPoints", Title: "Points Redeemed", Value: FormatAmount(s.RedeemsPoints), Raw: s.RedeemsPoints},
		{Key: "serviceFees", Title: "Commission/Service Fees", Value: FormatAmount(s.ServiceFees), Raw: s.ServiceFees},
	}
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatAmount renders v with thousands separators, dropping the fraction
// for whole numbers and otherwise keeping two decimals.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%.0f", v)
	}
	return printer.Sprintf("%.2f", v)
}
