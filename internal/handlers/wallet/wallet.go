package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/quizcash/quizcash/internal/domain"
	"github.com/quizcash/quizcash/internal/dto"
	"github.com/quizcash/quizcash/internal/service/walletservice"
	"github.com/quizcash/quizcash/pkg/auth"
	"github.com/quizcash/quizcash/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	Deposit(ctx context.Context, userID int, amount int64, externalRef string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int, amount int64) (int64, error)
	GetHistory(ctx context.Context, userID int, limit int) ([]domain.Transaction, error)
	ReferralStatus(ctx context.Context, userID int) (int, bool, error)
	AddReferral(ctx context.Context, referrerID, referredID int) error
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Description	Current balance in minor currency units, derived from the completed transaction ledger.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: balance,
	})
}

// Deposit godoc
//
//	@Summary		Credit the wallet from a payment gateway callback
//	@Description	Idempotent on the gateway reference: retried callbacks return the original transaction.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.TransactionIDResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Reference already failed"
//	@Failure		422		{object}	utils.Response	"Invalid amount or reference"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.walletService.Deposit(r.Context(), userID, req.Amount, req.ExternalRef)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount),
			errors.Is(err, walletservice.ErrMissingExternalRef):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrDepositFailed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionIDResponseDTO{TransactionID: tx.ID})
}

// Withdraw godoc
//
//	@Summary		Request funds withdrawal
//	@Description	Withdraw funds from the wallet. Requires the referral gate to be open and sufficient balance.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.TransactionIDResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Withdrawal not eligible"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txID, err := h.walletService.Withdraw(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrWithdrawalNotEligible):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionIDResponseDTO{TransactionID: txID})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Completed transactions for the authenticated user, most recent first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of transactions"
//	@Success		200		{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204		{object}	utils.Response				"No transactions"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	transactions, err := h.walletService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:        t.ID,
			Amount:    t.Amount,
			Kind:      string(t.Kind),
			CreatedAt: t.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetReferrals godoc
//
//	@Summary		Get referral status
//	@Description	Confirmed referral count and whether withdrawals are unlocked.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralStatusResponseDTO	"Referral status"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *WalletHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	count, eligible, err := h.walletService.ReferralStatus(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralStatusResponseDTO{
		Count:              count,
		WithdrawalEligible: eligible,
	})
}
