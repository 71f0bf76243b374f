package merchant

import "sort"

// CustomerRank is one row of the top customers table.
type CustomerRank struct {
	Rank              int
	CustomerID        string
	CustomerName      string
	TotalTransactions int
	TotalSpent        float64
	MostShoppedBranch string
}

// RankCustomers orders customers by total spent, then by transaction count,
// and assigns 1-based ranks. Ranks already present are overwritten.
func RankCustomers(in []CustomerRank) []CustomerRank {
	out := make([]CustomerRank, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalSpent != out[j].TotalSpent {
			return out[i].TotalSpent > out[j].TotalSpent
		}
		return out[i].TotalTransactions > out[j].TotalTransactions
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
