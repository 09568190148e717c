package service

import (
	"context"

	"merchant-reporting-bff/internal/core/domain"
	"merchant-reporting-bff/internal/core/ports"
	"merchant-reporting-bff/pkg/logger"

	"github.com/rs/zerolog"
)

type clientService struct {
	upstream  ports.UpstreamClient
	clientURL string
	log       zerolog.Logger
}

// NewClientService creates the customer lookup service.
func NewClientService(upstream ports.UpstreamClient, clientURL string, log zerolog.Logger) ports.ClientService {
	return &clientService{
		upstream:  upstream,
		clientURL: clientURL,
		log:       logger.Component(log, "client_service"),
	}
}

func (s *clientService) GetClientInfo(
	ctx context.Context,
	req domain.ClientInfoRequest,
	authToken string,
) (*domain.ClientInfoResponse, error) {
	return forward[domain.ClientInfoResponse](ctx, s.upstream, s.log, s.clientURL, req, authToken)
}
