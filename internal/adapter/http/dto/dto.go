package dto

import "merchant-reporting-bff/internal/core/domain"

// LoginRequest is the request body for merchant user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToDomain converts the request to upstream credentials.
func (r LoginRequest) ToDomain() domain.Credentials {
	return domain.Credentials{Email: r.Email, Password: r.Password}
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// MerchantUserInfoRequest is the request body for a merchant user lookup.
// A missing id is sent as 0; the upstream decides whether it exists.
type MerchantUserInfoRequest struct {
	ID int `json:"id"`
}

func (r MerchantUserInfoRequest) ToDomain() domain.MerchantUserRequest {
	return domain.MerchantUserRequest{ID: r.ID}
}

// RefundsReportRequest is the request body for the refunds report.
// Dates are forwarded untouched; the upstream API validates them.
type RefundsReportRequest struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Merchant *int   `json:"merchant,omitempty"`
	Acquirer *int   `json:"acquirer,omitempty"`
}

func (r RefundsReportRequest) ToDomain() domain.RefundsReportRequest {
	return domain.RefundsReportRequest{
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
		Merchant: r.Merchant,
		Acquirer: r.Acquirer,
	}
}

// ClientInfoRequest is the request body for a customer lookup.
type ClientInfoRequest struct {
	TransactionID string `json:"transactionId" binding:"required,safe_id"`
}

func (r ClientInfoRequest) ToDomain() domain.ClientInfoRequest {
	return domain.ClientInfoRequest{TransactionID: r.TransactionID}
}
