package domain

import (
	"bytes"
	"fmt"
	"time"
)

// DateTimeLayout is the upstream timestamp format (yyyy-MM-dd HH:mm:ss).
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a timestamp encoded in DateTimeLayout. JSON null and "" decode
// to the zero value; the zero value encodes as null.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		d.Time = time.Time{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("datetime: expected string, got %s", data)
	}
	t, err := time.Parse(DateTimeLayout, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	d.Time = t
	return nil
}

// ClientInfoRequest looks up the customer behind an upstream transaction.
type ClientInfoRequest struct {
	TransactionID string `json:"transactionId"`
}

// ClientInfoResponse wraps the customer record returned upstream.
type ClientInfoResponse struct {
	CustomerInfo *CustomerInfo `json:"customerInfo,omitempty"`
}

// CustomerInfo is the billing/shipping/card metadata the upstream holds for
// a customer. Passed through untouched.
type CustomerInfo struct {
	ID        int       `json:"id"`
	CreatedAt *DateTime `json:"created_at,omitempty"`
	UpdatedAt *DateTime `json:"updated_at,omitempty"`
	DeletedAt *DateTime `json:"deleted_at,omitempty"`

	Number      string `json:"number,omitempty"`
	ExpiryMonth string `json:"expiryMonth,omitempty"`
	ExpiryYear  string `json:"expiryYear,omitempty"`
	StartMonth  string `json:"startMonth,omitempty"`
	StartYear   string `json:"startYear,omitempty"`
	IssueNumber string `json:"issueNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	Birthday    string `json:"birthday,omitempty"`
	Gender      string `json:"gender,omitempty"`

	BillingTitle     string `json:"billingTitle,omitempty"`
	BillingFirstName string `json:"billingFirstName,omitempty"`
	BillingLastName  string `json:"billingLastName,omitempty"`
	BillingCompany   string `json:"billingCompany,omitempty"`
	BillingAddress1  string `json:"billingAddress1,omitempty"`
	BillingAddress2  string `json:"billingAddress2,omitempty"`
	BillingCity      string `json:"billingCity,omitempty"`
	BillingPostcode  string `json:"billingPostcode,omitempty"`
	BillingState     string `json:"billingState,omitempty"`
	BillingCountry   string `json:"billingCountry,omitempty"`
	BillingPhone     string `json:"billingPhone,omitempty"`
	BillingFax       string `json:"billingFax,omitempty"`

	ShippingTitle     string `json:"shippingTitle,omitempty"`
	ShippingFirstName string `json:"shippingFirstName,omitempty"`
	ShippingLastName  string `json:"shippingLastName,omitempty"`
	ShippingCompany   string `json:"shippingCompany,omitempty"`
	ShippingAddress1  string `json:"shippingAddress1,omitempty"`
	ShippingAddress2  string `json:"shippingAddress2,omitempty"`
	ShippingCity      string `json:"shippingCity,omitempty"`
	ShippingPostcode  string `json:"shippingPostcode,omitempty"`
	ShippingState     string `json:"shippingState,omitempty"`
	ShippingCountry   string `json:"shippingCountry,omitempty"`
	ShippingPhone     string `json:"shippingPhone,omitempty"`
	ShippingFax       string `json:"shippingFax,omitempty"`
}
