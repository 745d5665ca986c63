package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/quizcash/quizcash/docs"
	authhandlers "github.com/quizcash/quizcash/internal/handlers/auth"
	gamehandlers "github.com/quizcash/quizcash/internal/handlers/game"
	wallethandlers "github.com/quizcash/quizcash/internal/handlers/wallet"
	"github.com/quizcash/quizcash/internal/service"
	"github.com/quizcash/quizcash/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	StartRound(w http.ResponseWriter, r *http.Request)
	SubmitAnswer(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	WalletHandler WalletHandler
	GameHandler   GameHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		WalletHandler: wallethandlers.New(s.WalletService),
		GameHandler:   gamehandlers.New(s.GameService, s.WalletService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
			})
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Get("/referrals", h.WalletHandler.GetReferrals)
		})
	})
	r.Route("/api/game", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/rounds", h.GameHandler.StartRound)
		r.Post("/rounds/{id}/answer", h.GameHandler.SubmitAnswer)
	})

	return r
}
