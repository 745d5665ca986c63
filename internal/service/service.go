package service

import (
	"github.com/quizcash/quizcash/internal/handlers/auth"
	"github.com/quizcash/quizcash/internal/handlers/wallet"

	pkgauth "github.com/quizcash/quizcash/pkg/auth"

	"github.com/quizcash/quizcash/internal/repo"
	"github.com/quizcash/quizcash/internal/service/authservice"
	"github.com/quizcash/quizcash/internal/service/gameservice"
	"github.com/quizcash/quizcash/internal/service/walletservice"
)

type Services struct {
	AuthService   auth.Service
	WalletService wallet.Service
	// GameService stays concrete: the settlement sweeper needs Settle,
	// which is not part of the handler-facing interface.
	GameService *gameservice.Service
}

func New(repo *repo.Repositories, alerter gameservice.Alerter) *Services {
	walletService := walletservice.New(repo.LedgerRepo, repo.ReferralRepo)
	gameService := gameservice.New(repo.LedgerRepo, repo.AttemptRepo, repo.QuestionRepo, alerter)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		WalletService: walletService,
		GameService:   gameService,
	}
}
