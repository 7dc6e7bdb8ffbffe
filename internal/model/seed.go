package model

// SeedRecords returns the demo catalog used as the default collection when
// the durable slot is empty or unreadable. A fresh slice is returned on
// every call so callers can mutate their copy freely.
func SeedRecords() []ProductRecord {
	return []ProductRecord{
		{
			ID:              "1",
			Name:            "Samsung Galaxy S24 Ultra (Titanium Gray)",
			MyPrice:         115000,
			FloorPrice:      110000,
			CompetitorPrice: 98000,
			CompetitorName:  "Amazon",
			Decision:        DecisionBundleOffer,
			Reasoning:       "Competitor price (₹98,000) is below our floor (₹110,000). Cannot match price without loss. Recommend value bundle to compete.",
			Status:          StatusPending,
		},
		{
			ID:              "2",
			Name:            "iPhone 15 Pro",
			MyPrice:         134900,
			FloorPrice:      125000,
			CompetitorPrice: 129000,
			CompetitorName:  "Flipkart",
			Decision:        DecisionMatchPrice,
			Reasoning:       "Competitor is selling at ₹129,000. Above our floor (₹125,000). Recommended price cut to match and win the Buy Box.",
			Status:          StatusPending,
		},
		{
			ID:              "3",
			Name:            "MacBook Pro 14 M3",
			MyPrice:         169900,
			FloorPrice:      160000,
			CompetitorPrice: 175000,
			CompetitorName:  "Croma",
			Decision:        DecisionHold,
			Reasoning:       "We are currently the cheapest option (₹169k vs ₹175k). Hold price to maximize margin.",
			Status:          StatusApproved,
		},
	}
}
