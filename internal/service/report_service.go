package service

import (
	"context"

	"merchant-reporting-bff/internal/core/domain"
	"merchant-reporting-bff/internal/core/ports"
	"merchant-reporting-bff/pkg/logger"

	"github.com/rs/zerolog"
)

type reportService struct {
	upstream  ports.UpstreamClient
	reportURL string
	log       zerolog.Logger
}

// NewReportService creates the refunds report service.
func NewReportService(upstream ports.UpstreamClient, reportURL string, log zerolog.Logger) ports.ReportService {
	return &reportService{
		upstream:  upstream,
		reportURL: reportURL,
		log:       logger.Component(log, "report_service"),
	}
}

// GetRefundsReport forwards the filter as-is. Dates are not checked here;
// the upstream rejects ones it cannot parse.
func (s *reportService) GetRefundsReport(
	ctx context.Context,
	req domain.RefundsReportRequest,
	authToken string,
) (*domain.RefundReportResponse, error) {
	resp, err := forward[domain.RefundReportResponse](ctx, s.upstream, s.log, s.reportURL, req, authToken)
	if err != nil || resp == nil {
		return resp, err
	}
	evt := s.log.Debug()
	if !resp.Approved() {
		evt = s.log.Warn()
	}
	evt.Str("status", resp.Status).
		Int("currencies", len(resp.Response)).
		Msg("refunds report received")
	return resp, nil
}
