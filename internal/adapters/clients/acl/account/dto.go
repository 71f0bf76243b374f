// Package account translates the merchant-level resources of the merchant
// API: profile and bank accounts, payment summary, reward configuration and
// customer analytics.
package account

// Envelope wraps every single-resource response: {"data": ...}.
type Envelope[T any] struct {
	Data *T `json:"data"`
}

// ListEnvelope wraps unpaginated list responses.
type ListEnvelope[T any] struct {
	Data []T `json:"data"`
}

// BankInformationDTO is one entry of the profile's bankInformation list.
type BankInformationDTO struct {
	BankName          string `json:"bankName"`
	AccountNo         string `json:"accountNo"`
	AccountHolderName string `json:"accountHolderName"`
	Primary           bool   `json:"primary"`
	Active            *bool  `json:"active,omitempty"`
}

// MerchantInfoDTO is GET /merchant/info.
type MerchantInfoDTO struct {
	MerchantID      string               `json:"merchantId"`
	BusinessName    string               `json:"businessName"`
	Email           string               `json:"email"`
	BankInformation []BankInformationDTO `json:"bankInformation"`
}

// PaymentSummaryDTO is GET /merchant/payment-history.
type PaymentSummaryDTO struct {
	SalesCount    int     `json:"salesCount"`
	TotalSales    float64 `json:"totalSales"`
	PayOutPending float64 `json:"payOutPending"`
	PayOut        float64 `json:"payOut"`
	RedeemsPoints float64 `json:"redeemsPoints"`
	ServiceFees   float64 `json:"serviceFees"`
}

// RewardDTO is the body of GET and PUT /merchant/reward.
type RewardDTO struct {
	ReceiveMethod   string `json:"receiveMethod"`
	RewardCap       int64  `json:"rewardCap"`
	PointExpiration string `json:"pointExpiration"`
}

// CustomerDTO is one row of GET /merchant/customer-analytics.
type CustomerDTO struct {
	CustomerID        string  `json:"customerId"`
	CustomerName      string  `json:"customerName"`
	TotalTransactions int     `json:"totalTransactions"`
	TotalSpent        float64 `json:"totalSpent"`
	MostShoppedBranch string  `json:"mostShoppedBranch"`
}
