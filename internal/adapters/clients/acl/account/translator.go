package account

import (
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
)

// ToDomainProfile converts the merchant profile.
func ToDomainProfile(dto *MerchantInfoDTO) merchant.Profile {
	banks := make([]merchant.BankAccount, len(dto.BankInformation))
	for i, b := range dto.BankInformation {
		banks[i] = merchant.BankAccount{
			BankName:          b.BankName,
			AccountNumber:     b.AccountNo,
			AccountHolderName: b.AccountHolderName,
			Primary:           b.Primary,
			Active:            b.Active,
		}
	}
	return merchant.Profile{
		ID:           dto.MerchantID,
		BusinessName: dto.BusinessName,
		Email:        dto.Email,
		Banks:        banks,
	}
}

// ToDomainPaymentSummary converts the payment summary.
func ToDomainPaymentSummary(dto *PaymentSummaryDTO) merchant.PaymentSummary {
	return merchant.PaymentSummary{
		SalesCount:    dto.SalesCount,
		TotalSales:    dto.TotalSales,
		PayOutPending: dto.PayOutPending,
		PayOut:        dto.PayOut,
		RedeemsPoints: dto.RedeemsPoints,
		ServiceFees:   dto.ServiceFees,
	}
}

// ToDomainRewardConfig converts the reward configuration. An empty
// expiration means points never expire, as in the dashboard selector.
func ToDomainRewardConfig(dto *RewardDTO) merchant.RewardConfig {
	exp := merchant.Expiration(dto.PointExpiration)
	if exp == "" {
		exp = merchant.ExpireNever
	}
	return merchant.RewardConfig{
		ReceiveMethod: merchant.ReceiveMethod(dto.ReceiveMethod),
		RewardCap:     dto.RewardCap,
		Expiration:    exp,
	}
}

// ToRewardRequest converts a domain reward configuration to the PUT body.
func ToRewardRequest(cfg merchant.RewardConfig) RewardDTO {
	return RewardDTO{
		ReceiveMethod:   string(cfg.ReceiveMethod),
		RewardCap:       cfg.RewardCap,
		PointExpiration: string(cfg.Expiration),
	}
}

// ToDomainCustomers converts the customer analytics rows, unranked.
func ToDomainCustomers(dtos []CustomerDTO) []merchant.CustomerRank {
	out := make([]merchant.CustomerRank, len(dtos))
	for i, c := range dtos {
		out[i] = merchant.CustomerRank{
			CustomerID:        c.CustomerID,
			CustomerName:      c.CustomerName,
			TotalTransactions: c.TotalTransactions,
			TotalSpent:        c.TotalSpent,
			MostShoppedBranch: c.MostShoppedBranch,
		}
	}
	return out
}
