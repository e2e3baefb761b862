package authService

import (
	"AssistantGolang/internal/api/auth"
	"AssistantGolang/internal/entity"
	contextPkg "AssistantGolang/pkg/context"
	jwtPkg "AssistantGolang/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const accessTokenLifetime = 7 * 24 * time.Hour

func (s *authService) RegisterUser(ctx context.Context, req auth.CreateUserRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	exists, err := repo.Users.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Registration attempted with existing email")
		return auth.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	assistantName := req.AssistantName
	if assistantName == "" {
		assistantName = "Assistant"
	}

	now := time.Now().UTC()
	user := entity.User{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Password:      hashedPassword,
		AssistantName: assistantName,
		Preferences:   entity.DefaultPreferences(),
		LastActive:    now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    id,
	}).Info("User registered")

	return nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempted with unknown email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	userData := map[string]interface{}{
		"id":       user.ID,
		"username": user.Name,
		"email":    user.Email,
	}

	token, expired, err := jwtPkg.Sign(userData, accessTokenLifetime)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Token created")

	return auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}, nil
}

// Logout denylists the presented token until its own expiry so it cannot be
// replayed.
func (s *authService) Logout(ctx context.Context, token string) error {
	requestID := contextPkg.GetRequestID(ctx)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_ACCESS_TOKEN_SECRET")), nil
	})
	if err != nil || !parsed.Valid {
		return auth.ErrInvalidToken
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return auth.ErrInvalidToken
	}

	if err := s.redisServer.RevokeToken(ctx, token, time.Until(expiresAt.Time)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to revoke token")
		return err
	}

	return nil
}

func (s *authService) CheckSession(ctx context.Context, userData entity.UserLoginData) (entity.User, error) {
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	user, err := repo.Users.GetUserByEmail(ctx, userData.Email)
	if err != nil {
		return entity.User{}, err
	}

	user.Password = ""
	return user, nil
}
