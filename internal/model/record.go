// Package model defines the product record domain types shared by the
// store, gateway, and controller.
package model

// Decision is a pricing recommendation assigned by the remote decision
// authority. It is never computed locally.
type Decision string

const (
	// DecisionMatchPrice recommends cutting the listed price to the
	// observed competitor price.
	DecisionMatchPrice Decision = "MATCH_PRICE"

	// DecisionBundleOffer recommends competing with a value bundle when
	// matching would drop below the floor price.
	DecisionBundleOffer Decision = "BUNDLE_OFFER"

	// DecisionHold recommends keeping the current price.
	DecisionHold Decision = "HOLD"
)

// Status tracks where a record sits in the approval lifecycle.
//
// The only forward transition is PENDING -> APPROVED. A rollback after a
// failed remote approval is the sole path that restores PENDING.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Defaults applied to provisional records created locally before the
// remote authority has produced any analysis.
const (
	ProvisionalCompetitorName = "Pending Search..."
	ProvisionalReasoning      = "AI analysis initiated..."
)

// ProductRecord is one monitored product together with its current
// pricing decision and approval status.
//
// ID is unique across the collection at all times. It is assigned by the
// remote authority, or generated locally for records awaiting their first
// refresh.
type ProductRecord struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MyPrice         float64  `json:"my_price"`
	FloorPrice      float64  `json:"floor_price"`
	CompetitorPrice float64  `json:"competitor_price"`
	CompetitorName  string   `json:"competitor_name"`
	Decision        Decision `json:"decision"`
	Reasoning       string   `json:"reasoning"`
	Status          Status   `json:"status"`
}

// NewProvisional builds the record inserted optimistically after a
// successful enroll call. The competitor price is zero (unknown) until the
// next refresh brings the authority's view.
func NewProvisional(id, name string, myPrice, floorPrice float64) ProductRecord {
	return ProductRecord{
		ID:              id,
		Name:            name,
		MyPrice:         myPrice,
		FloorPrice:      floorPrice,
		CompetitorPrice: 0,
		CompetitorName:  ProvisionalCompetitorName,
		Decision:        DecisionHold,
		Reasoning:       ProvisionalReasoning,
		Status:          StatusPending,
	}
}

// Actionable reports whether the operator can approve this record.
// HOLD decisions need no action, and approved records stay approved.
func (r ProductRecord) Actionable() bool {
	if r.Status != StatusPending {
		return false
	}
	return r.Decision == DecisionMatchPrice || r.Decision == DecisionBundleOffer
}

// ApprovalPrice is the price sent to the remote authority when the
// operator approves this record: the competitor price for MATCH_PRICE,
// otherwise the current listed price (approving HOLD or BUNDLE_OFFER does
// not change the price).
func (r ProductRecord) ApprovalPrice() float64 {
	if r.Decision == DecisionMatchPrice {
		return r.CompetitorPrice
	}
	return r.MyPrice
}
