package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/quizcash/quizcash/internal/domain"
	"github.com/quizcash/quizcash/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type ReferralService interface {
	AddReferral(ctx context.Context, referrerID, referredID int) error
}

type Service struct {
	userRepo        Repo
	referralService ReferralService
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
}

func New(repo Repo, referralService ReferralService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:        repo,
		referralService: referralService,
		hashService:     hashService,
		jwtService:      jwtService,
	}
}

// Register creates a user and, when the signup carried a referrer's login,
// records the referral. A broken referral code does not fail the signup:
// the account is created and the referral is simply not counted.
func (s *Service) Register(ctx context.Context, login, password, referrerLogin string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, errors.New("username already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if referrerLogin != "" {
		s.recordReferral(ctx, referrerLogin, newUser.ID)
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return user, nil
}

func (s *Service) recordReferral(ctx context.Context, referrerLogin string, referredID int) {
	referrer, err := s.userRepo.FindByLogin(ctx, referrerLogin)
	if err != nil || referrer == nil {
		zap.L().Warn("referral code does not match any user", zap.String("referrer", referrerLogin))
		return
	}
	if referrer.ID == referredID {
		zap.L().Warn("self-referral ignored", zap.String("referrer", referrerLogin))
		return
	}
	if err := s.referralService.AddReferral(ctx, referrer.ID, referredID); err != nil {
		zap.L().Warn("can't record referral", zap.Error(err))
	}
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
