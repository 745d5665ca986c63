package dto

import "time"

type BalanceResponseDTO struct {
	Current int64 `json:"current" example:"150"`
}

type DepositRequestDTO struct {
	Amount      int64  `json:"amount" example:"100"`
	ExternalRef string `json:"external_ref" example:"pg_cb_8f14e45f"`
}

type WithdrawRequestDTO struct {
	Amount int64 `json:"amount" example:"50"`
}

type TransactionResponseDTO struct {
	ID        int64     `json:"id" example:"17"`
	Amount    int64     `json:"amount" example:"100"`
	Kind      string    `json:"kind" example:"deposit"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type TransactionIDResponseDTO struct {
	TransactionID int64 `json:"transaction_id" example:"17"`
}

type ReferralStatusResponseDTO struct {
	Count              int  `json:"count" example:"2"`
	WithdrawalEligible bool `json:"withdrawal_eligible" example:"false"`
}
