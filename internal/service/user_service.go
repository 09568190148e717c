package service

import (
	"context"

	"merchant-reporting-bff/internal/core/domain"
	"merchant-reporting-bff/internal/core/ports"
	"merchant-reporting-bff/pkg/logger"

	"github.com/rs/zerolog"
)

type userService struct {
	upstream ports.UpstreamClient
	loginURL string
	infoURL  string
	log      zerolog.Logger
}

// NewUserService creates the merchant user service.
func NewUserService(upstream ports.UpstreamClient, loginURL, infoURL string, log zerolog.Logger) ports.UserService {
	return &userService{
		upstream: upstream,
		loginURL: loginURL,
		infoURL:  infoURL,
		log:      logger.Component(log, "user_service"),
	}
}

// Login exchanges credentials for an upstream token. The login call carries
// no Authorization header.
func (s *userService) Login(ctx context.Context, credentials domain.Credentials) (*domain.AuthToken, error) {
	return forward[domain.AuthToken](ctx, s.upstream, s.log, s.loginURL, credentials, "")
}

func (s *userService) GetMerchantUserInformation(
	ctx context.Context,
	req domain.MerchantUserRequest,
	authToken string,
) (*domain.MerchantUserInfoResponse, error) {
	return forward[domain.MerchantUserInfoResponse](ctx, s.upstream, s.log, s.infoURL, req, authToken)
}
