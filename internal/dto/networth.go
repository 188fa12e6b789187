package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
)

// CreateSnapshotRequest asks for a net-worth snapshot in a base currency.
// Totals are computed server-side from the caller's current entries.
type CreateSnapshotRequest struct {
	BaseCurrency string `json:"baseCurrency" binding:"required,uppercase,len=3"`
}

// ListSnapshotsParams defines query parameters for the trend series.
type ListSnapshotsParams struct {
	Since string `form:"since"` // optional, YYYY-MM-DD
}

// NetWorthRecordResponse defines the data returned for one snapshot.
type NetWorthRecordResponse struct {
	RecordID     string          `json:"recordID"`
	Date         time.Time       `json:"date"`
	TotalAssets  decimal.Decimal `json:"totalAssets"`
	TotalDebts   decimal.Decimal `json:"totalDebts"`
	NetWorth     decimal.Decimal `json:"netWorth"`
	BaseCurrency string          `json:"baseCurrency"`
}

// ListNetWorthHistoryResponse wraps the trend series, date-ascending.
type ListNetWorthHistoryResponse struct {
	Records []NetWorthRecordResponse `json:"records"`
}

// ToNetWorthRecordResponse converts a domain.NetWorthRecord to its DTO
func ToNetWorthRecordResponse(r *domain.NetWorthRecord) NetWorthRecordResponse {
	return NetWorthRecordResponse{
		RecordID:     r.RecordID,
		Date:         r.Date,
		TotalAssets:  r.TotalAssets,
		TotalDebts:   r.TotalDebts,
		NetWorth:     r.NetWorth,
		BaseCurrency: r.BaseCurrency,
	}
}

// ToListNetWorthHistoryResponse converts a slice of records to the list DTO
func ToListNetWorthHistoryResponse(records []domain.NetWorthRecord) ListNetWorthHistoryResponse {
	res := make([]NetWorthRecordResponse, len(records))
	for i := range records {
		res[i] = ToNetWorthRecordResponse(&records[i])
	}
	return ListNetWorthHistoryResponse{Records: res}
}
