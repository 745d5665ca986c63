package game

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quizcash/quizcash/internal/domain"
	"github.com/quizcash/quizcash/internal/dto"
	"github.com/quizcash/quizcash/internal/service/gameservice"
	"github.com/quizcash/quizcash/pkg/auth"
	"github.com/quizcash/quizcash/pkg/utils"
	"github.com/quizcash/quizcash/pkg/validate"
)

type Service interface {
	StartRound(ctx context.Context, userID int) (*domain.GameAttempt, *domain.Question, error)
	SubmitAnswer(ctx context.Context, roundID int64, answer string) (*gameservice.AnswerResult, error)
}

type BalanceService interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
}

type GameHandler struct {
	gameService    Service
	balanceService BalanceService
}

func New(gameService Service, balanceService BalanceService) *GameHandler {
	return &GameHandler{
		gameService:    gameService,
		balanceService: balanceService,
	}
}

// StartRound godoc
//
//	@Summary		Start a quiz round
//	@Description	Debits the fixed stake and returns a fresh question. The correct answer tag is never included.
//	@Tags			Game
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StartRoundResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		404	{object}	utils.Response	"No questions available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/game/rounds [post]
func (h *GameHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	attempt, question, err := h.gameService.StartRound(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, gameservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, gameservice.ErrNoQuestions):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.StartRoundResponseDTO{
		RoundID:     attempt.ID,
		WagerAmount: attempt.WagerAmount,
		Question: dto.QuestionDTO{
			ID:      question.ID,
			Content: question.Content,
			OptionA: question.OptionA,
			OptionB: question.OptionB,
			OptionC: question.OptionC,
			OptionD: question.OptionD,
		},
	})
}

// SubmitAnswer godoc
//
//	@Summary		Submit the answer for a round
//	@Description	Evaluates the answer exactly once and settles the round; a winning answer credits the fixed payout.
//	@Tags			Game
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Round id"
//	@Param			request	body		dto.AnswerRequestDTO	true	"Answer payload"
//	@Success		200		{object}	dto.AnswerResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Round not found"
//	@Failure		409		{object}	utils.Response	"Round already answered"
//	@Failure		422		{object}	utils.Response	"Invalid answer"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/game/rounds/{id}/answer [post]
func (h *GameHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	roundID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "round not found")
		return
	}

	var req dto.AnswerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsAnswer(req.Answer) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "answer must be one of A, B, C, D")
		return
	}

	result, err := h.gameService.SubmitAnswer(r.Context(), roundID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, gameservice.ErrRoundNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, gameservice.ErrAlreadyAnswered):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AnswerResponseDTO{
		IsCorrect:    result.IsCorrect,
		PayoutAmount: result.PayoutAmount,
		Balance:      balance,
	})
}
