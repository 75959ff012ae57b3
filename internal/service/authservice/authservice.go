package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/pkg/auth"
)

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}

type ReferralRepo interface {
	Create(ctx context.Context, code *domain.ReferralCode) (*domain.ReferralCode, error)
	FindByCode(ctx context.Context, code string) (*domain.ReferralCode, error)
}

type Ledger interface {
	CreateSale(ctx context.Context, userID int) (*domain.Sale, error)
}

var (
	ErrLoginTaken          = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnknownReferralCode = errors.New("unknown referral code")
)

type Service struct {
	userRepo     UserRepo
	referralRepo ReferralRepo
	ledger       Ledger
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
}

func New(userRepo UserRepo, referralRepo ReferralRepo, ledger Ledger, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		ledger:       ledger,
		hashService:  hashService,
		jwtService:   jwtService,
	}
}

// Register creates a seller account. A referral code ties the seller to the
// issuing admin, which scopes that admin's task-settings overrides to them.
// The ledger is seeded immediately so the trial bonus starts ticking today.
func (s *Service) Register(ctx context.Context, login, password, referralCode string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}

	var adminID *int
	if referralCode != "" {
		ref, err := s.referralRepo.FindByCode(ctx, referralCode)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			return nil, ErrUnknownReferralCode
		}
		adminID = &ref.AdminID
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         domain.RoleSeller,
		AdminID:      adminID,
	}
	newUser, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if _, err = s.ledger.CreateSale(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create sale ledger: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// CreateReferralCode mints a new uuid code owned by the given admin.
func (s *Service) CreateReferralCode(ctx context.Context, adminID int) (*domain.ReferralCode, error) {
	code, err := s.referralRepo.Create(ctx, &domain.ReferralCode{
		Code:    uuid.NewString(),
		AdminID: adminID,
	})
	if err != nil {
		zap.L().Error("can't create referral code: ", zap.Error(err))
		return nil, err
	}
	return code, nil
}
