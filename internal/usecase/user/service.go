package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/birdfeed/birdfeed/domain"
)

type Service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

func NewService(userRepo domain.UserRepository, jwtSecret []byte, jwtTTL time.Duration) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

func (s *Service) Register(ctx context.Context, name, username, password string) error {
	if name == "" || username == "" || password == "" {
		return domain.ErrBadParamInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Username: username,
		Password: string(hashed),
	}
	return s.userRepo.Insert(ctx, &u)
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrBadParamInput
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID,
		"iat": now.Unix(),
		"exp": now.Add(s.jwtTTL).Unix(),
	})

	return token.SignedString(s.jwtSecret)
}

func (s *Service) Me(ctx context.Context, viewer domain.Viewer) (domain.User, error) {
	viewerID, ok := viewer.ID()
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	return s.userRepo.GetByID(ctx, viewerID)
}
