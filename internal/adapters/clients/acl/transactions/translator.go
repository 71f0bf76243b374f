package transactions

import (
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
)

// timestampLayouts are tried in order. The API sends zone-less local
// timestamps on some endpoints.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses an API timestamp. Unparseable values give the zero
// time.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func value(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// ToDomainPagination converts the pagination block. A missing block
// describes exactly the rows received.
func ToDomainPagination(dto *PaginationDTO, rows int) points.Pagination {
	if dto == nil {
		p := points.Pagination{TotalElements: rows, CurrentPageElements: rows, PageSize: rows}
		if rows > 0 {
			p.TotalPages = 1
		}
		return p
	}
	return points.Pagination{
		TotalPages:          dto.TotalPages,
		TotalElements:       dto.TotalElements,
		CurrentPageElements: dto.CurrentPageElements,
		PageSize:            dto.PageSize,
	}
}

// ToDomainDistribution converts one distributed row. Missing amounts are 0.
func ToDomainDistribution(dto *DistributionDTO) points.Distribution {
	return points.Distribution{
		TransactionReference: dto.TransactionReference,
		POSID:                dto.POSID,
		CustomerName:         dto.CustomerName,
		BranchName:           dto.BranchName,
		POSLocation:          dto.POSLocation,
		Category:             dto.TransactionCategory,
		Type:                 points.TransactionType(dto.Type),
		TotalAmountPaid:      value(dto.TotalAmountPaid),
		Settled:              value(dto.Settled),
		Fees:                 value(dto.Fees),
		PaidInNumoniPoints:   value(dto.PaidInNumoniPoints),
		PaidInBrandPoints:    value(dto.PaidInBrandPoints),
		IssuedPoints:         value(dto.IssuedPoints),
		Timestamp:            ParseTimestamp(dto.Timestamp),
	}
}

// ToDomainRedemption converts one redeemed row.
func ToDomainRedemption(dto *RedemptionDTO) points.Redemption {
	return points.Redemption{
		TransactionReference: dto.TransactionReference,
		POSID:                dto.POSID,
		CustomerName:         dto.CustomerName,
		BranchName:           dto.BranchName,
		POSLocation:          dto.POSLocation,
		Type:                 points.TransactionType(dto.Type),
		Amount:               value(dto.Amount),
		PointsRedeemed:       value(dto.PointsRedeemed),
		Status:               dto.Status,
		Timestamp:            ParseTimestamp(dto.Timestamp),
	}
}

// ToDomainDistributionPage converts a distributed page.
func ToDomainDistributionPage(dto PageDTO[DistributionDTO]) points.Page[points.Distribution] {
	rows := make([]points.Distribution, len(dto.Data))
	for i := range dto.Data {
		rows[i] = ToDomainDistribution(&dto.Data[i])
	}
	return points.Page[points.Distribution]{Data: rows, Pagination: ToDomainPagination(dto.Pagination, len(rows))}
}

// ToDomainRedemptionPage converts a redeemed page.
func ToDomainRedemptionPage(dto PageDTO[RedemptionDTO]) points.Page[points.Redemption] {
	rows := make([]points.Redemption, len(dto.Data))
	for i := range dto.Data {
		rows[i] = ToDomainRedemption(&dto.Data[i])
	}
	return points.Page[points.Redemption]{Data: rows, Pagination: ToDomainPagination(dto.Pagination, len(rows))}
}
