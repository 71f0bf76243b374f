// Package export renders list pages as tables: an XLSX workbook for
// download and plain string cells for terminal output.
package export

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
)

// TimestampLayout is how row timestamps are written.
const TimestampLayout = "02-01-2006 15:04"

// Table is one list page as header and typed cells. Numeric cells stay
// numeric so spreadsheets can sum them.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]any
}

// DistributionTable lays out points distributed rows.
func DistributionTable(rows []points.Distribution) Table {
	t := Table{
		Title: points.KindDistributed.Title(),
		Headers: []string{
			"Transaction Reference", "POS ID", "Customer", "Branch", "POS Location",
			"Category", "Type", "Amount Paid", "Settled", "Fees",
			"Numoni Points", "Brand Points", "Issued Points", "Date",
		},
		Rows: make([][]any, len(rows)),
	}
	for i, d := range rows {
		t.Rows[i] = []any{
			d.TransactionReference, d.POSID, d.CustomerName, d.BranchName, d.POSLocation,
			d.Category, string(d.Type), d.TotalAmountPaid, d.Settled, d.Fees,
			d.PaidInNumoniPoints, d.PaidInBrandPoints, d.IssuedPoints, timestamp(d.Timestamp),
		}
	}
	return t
}

// RedemptionTable lays out points redeemed rows.
func RedemptionTable(rows []points.Redemption) Table {
	t := Table{
		Title: points.KindRedeemed.Title(),
		Headers: []string{
			"Transaction Reference", "POS ID", "Customer", "Branch", "POS Location",
			"Type", "Amount", "Points Redeemed", "Status", "Date",
		},
		Rows: make([][]any, len(rows)),
	}
	for i, r := range rows {
		t.Rows[i] = []any{
			r.TransactionReference, r.POSID, r.CustomerName, r.BranchName, r.POSLocation,
			string(r.Type), r.Amount, r.PointsRedeemed, r.Status, timestamp(r.Timestamp),
		}
	}
	return t
}

// TableFor lays out rows of either list kind; rows is the []T held by a
// list view.
func TableFor(rows any) (Table, error) {
	switch r := rows.(type) {
	case []points.Distribution:
		return DistributionTable(r), nil
	case []points.Redemption:
		return RedemptionTable(r), nil
	default:
		return Table{}, fmt.Errorf("export: unsupported rows %T", rows)
	}
}

// Strings renders every cell as text, amounts with thousands separators.
func (t Table) Strings() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			switch v := c.(type) {
			case float64:
				cells[j] = merchant.FormatAmount(v)
			case string:
				cells[j] = v
			default:
				cells[j] = fmt.Sprint(v)
			}
		}
		out[i] = cells
	}
	return out
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}
