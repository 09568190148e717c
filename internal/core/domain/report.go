package domain

// ReportStatusApproved is the status the upstream API sets on a report
// request it accepted.
const ReportStatusApproved = "APPROVED"

// RefundsReportRequest filters the upstream refunds report.
//
// FromDate and ToDate are sent exactly as given (yyyy-MM-dd); the upstream
// API validates them and answers 500 for dates it cannot parse.
type RefundsReportRequest struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Merchant *int   `json:"merchant,omitempty"`
	Acquirer *int   `json:"acquirer,omitempty"`
}

// RefundReportResponse is the upstream refunds report.
type RefundReportResponse struct {
	Status   string         `json:"status"`
	Response []RefundReport `json:"response,omitempty"`
}

// Approved reports whether the upstream accepted the report request.
func (r *RefundReportResponse) Approved() bool {
	return r.Status == ReportStatusApproved
}

// RefundReport is one per-currency aggregate line of a refunds report.
type RefundReport struct {
	Count    int    `json:"count"`
	Total    int64  `json:"total"`
	Currency string `json:"currency,omitempty"`
}
