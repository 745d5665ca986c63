package repo

import (
	"github.com/quizcash/quizcash/internal/pg"
	attemptrepo "github.com/quizcash/quizcash/internal/repo/attempt-repo"
	ledgerrepo "github.com/quizcash/quizcash/internal/repo/ledger-repo"
	questionrepo "github.com/quizcash/quizcash/internal/repo/question-repo"
	referralrepo "github.com/quizcash/quizcash/internal/repo/referral-repo"
	userrepo "github.com/quizcash/quizcash/internal/repo/user-repo"
	"github.com/quizcash/quizcash/internal/service/authservice"
	"github.com/quizcash/quizcash/internal/service/gameservice"
	"github.com/quizcash/quizcash/internal/service/walletservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	LedgerRepo   walletservice.LedgerRepo
	ReferralRepo walletservice.ReferralRepo
	AttemptRepo  gameservice.AttemptRepo
	QuestionRepo gameservice.QuestionRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn, txManager)
	referralRepo := referralrepo.New(conn)
	attemptRepo := attemptrepo.New(conn)
	questionRepo := questionrepo.New(conn)

	return &Repositories{
		UserRepo:     userRepo,
		LedgerRepo:   ledgerRepo,
		ReferralRepo: referralRepo,
		AttemptRepo:  attemptRepo,
		QuestionRepo: questionRepo,
	}
}
