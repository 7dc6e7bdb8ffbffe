package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Named defaults for fields the remote feed may omit.
const (
	DefaultCompetitorName = "Online Market"
	DefaultReasoning      = "Waiting for analysis..."
)

// FetchItem is one row of the remote feed. The feed is third-party and
// may emit incomplete rows, so every field except id and product_name is
// optional.
type FetchItem struct {
	ID              string      `json:"id"`
	ProductName     string      `json:"product_name"`
	MyPrice         float64     `json:"my_price"`
	MinPrice        float64     `json:"min_price"`
	CompetitorPrice *float64    `json:"competitor_price"`
	AIStrategy      string      `json:"ai_strategy"`
	LatestIntel     string      `json:"latest_intel"`
	Status          statusField `json:"status"`
}

// statusField tolerates the feed's two observed encodings of status:
// a JSON array of strings (first entry wins) or a bare string. Anything
// else is treated as absent rather than failing the row.
type statusField []string

func (s *statusField) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = arr
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*s = nil
		} else {
			*s = statusField{one}
		}
		return nil
	}
	*s = nil
	return nil
}

func (s statusField) first() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// MalformedItemError reports a feed row that cannot be mapped to a
// ProductRecord. Such rows are dropped individually; one bad row never
// aborts a whole fetch.
type MalformedItemError struct {
	Missing string // name of the required field that was absent
}

func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("malformed fetch item: missing %s", e.Missing)
}

// Record maps a feed row to a ProductRecord, applying the named defaults
// for every omitted optional field.
func (it FetchItem) Record() (ProductRecord, error) {
	if it.ID == "" {
		return ProductRecord{}, &MalformedItemError{Missing: "id"}
	}
	if it.ProductName == "" {
		return ProductRecord{}, &MalformedItemError{Missing: "product_name"}
	}

	rec := ProductRecord{
		ID:             it.ID,
		Name:           it.ProductName,
		MyPrice:        it.MyPrice,
		FloorPrice:     it.MinPrice,
		CompetitorName: DefaultCompetitorName,
		Decision:       DecisionHold,
		Reasoning:      DefaultReasoning,
		Status:         StatusPending,
	}
	if it.CompetitorPrice != nil {
		rec.CompetitorPrice = *it.CompetitorPrice
	}
	if it.AIStrategy != "" {
		rec.Decision = Decision(it.AIStrategy)
	}
	if it.LatestIntel != "" {
		rec.Reasoning = it.LatestIntel
	}
	if st := it.Status.first(); st != "" {
		rec.Status = Status(strings.ToUpper(st))
	}
	return rec, nil
}
