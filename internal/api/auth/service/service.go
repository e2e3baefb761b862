package authService

import (
	"AssistantGolang/internal/api/auth"
	authRepository "AssistantGolang/internal/api/auth/repository"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/bcrypt"
	"AssistantGolang/pkg/redis"
	"AssistantGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	RegisterUser(ctx context.Context, req auth.CreateUserRequest) error
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	Logout(ctx context.Context, token string) error
	CheckSession(ctx context.Context, userData entity.UserLoginData) (entity.User, error)
}

type authService struct {
	log         *logrus.Logger
	authRepo    authRepository.Repository
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utilsPkg utils.IUtils,
) IAuthService {
	return &authService{
		log:         log,
		authRepo:    authRepo,
		redisServer: redisServer,
		bcryptUtils: bcryptUtils,
		utils:       utilsPkg,
	}
}
