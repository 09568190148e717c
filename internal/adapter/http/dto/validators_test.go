package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

// --- safe_id tests ---

func TestSafeID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"1-1444392550-1", true},
		{"529-1438673740-2", true},
		{"txn_01.a", true},
		{"1 OR 1=1", false},
		{"../etc/passwd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(ClientInfoRequest{TransactionID: tt.id})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRefundsReportRequest_ToDomainKeepsDates(t *testing.T) {
	req := RefundsReportRequest{FromDate: " 2014-05-05 ", ToDate: "2017-12-01<x>"}
	got := req.ToDomain()
	assert.Equal(t, " 2014-05-05 ", got.FromDate)
	assert.Equal(t, "2017-12-01<x>", got.ToDate)
	assert.NoError(t, binding.Validator.ValidateStruct(req))
}

func TestLoginRequest_Required(t *testing.T) {
	assert.Error(t, binding.Validator.ValidateStruct(LoginRequest{Email: "a@b.c"}))
	assert.Error(t, binding.Validator.ValidateStruct(LoginRequest{Password: "x"}))
	assert.NoError(t, binding.Validator.ValidateStruct(LoginRequest{Email: "a@b.c", Password: "x"}))
}

func TestMerchantUserInfoRequest_ToDomain(t *testing.T) {
	assert.Equal(t, 53, MerchantUserInfoRequest{ID: 53}.ToDomain().ID)
	assert.NoError(t, binding.Validator.ValidateStruct(MerchantUserInfoRequest{}))
}
