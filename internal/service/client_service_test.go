package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"merchant-reporting-bff/internal/core/domain"
	"merchant-reporting-bff/internal/core/ports/mocks"
	"merchant-reporting-bff/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientService_GetClientInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := mocks.NewMockUpstreamClient(ctrl)
	req := domain.ClientInfoRequest{TransactionID: "1-1444392550-1"}

	upstream.EXPECT().
		PostJSON(gomock.Any(), testClientURL, req, testToken, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, _ string, out any) (bool, error) {
			out.(*domain.ClientInfoResponse).CustomerInfo = &domain.CustomerInfo{
				ID:               1,
				Email:            "michael@gmail.com",
				BillingFirstName: "Michael",
			}
			return true, nil
		})

	svc := NewClientService(upstream, testClientURL, newTestLogger())
	resp, err := svc.GetClientInfo(context.Background(), req, testToken)

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.CustomerInfo)
	assert.Equal(t, "michael@gmail.com", resp.CustomerInfo.Email)
}

func TestClientService_GetClientInfo_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := mocks.NewMockUpstreamClient(ctrl)
	upstream.EXPECT().
		PostJSON(gomock.Any(), testClientURL, gomock.Any(), testToken, gomock.Any()).
		Return(false, apperror.NewUpstreamError(http.StatusNotFound, "404 Not Found", nil))

	svc := NewClientService(upstream, testClientURL, newTestLogger())
	resp, err := svc.GetClientInfo(context.Background(), domain.ClientInfoRequest{TransactionID: "missing"}, testToken)

	assert.Nil(t, resp)
	var upErr *apperror.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "404 Not Found", upErr.Error())
}
