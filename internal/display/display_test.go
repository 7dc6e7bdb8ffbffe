package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/repricer/internal/model"
)

func TestFormatPrice(t *testing.T) {
	got := FormatPrice(129000)

	assert.True(t, strings.HasPrefix(got, "₹"))
	digits := strings.NewReplacer(",", "", "₹", "").Replace(got)
	assert.Equal(t, "129000", digits, "whole rupees, no fraction")
}

func TestMarginImpact(t *testing.T) {
	impact, ok := MarginImpact(134900, 129000)
	require.True(t, ok)
	assert.InDelta(t, -4.37, impact, 0.01)

	impact, ok = MarginImpact(100, 110)
	require.True(t, ok)
	assert.InDelta(t, 10.0, impact, 0.001)
}

func TestMarginImpact_UnknownPrices(t *testing.T) {
	_, ok := MarginImpact(0, 100)
	assert.False(t, ok)

	_, ok = MarginImpact(100, 0)
	assert.False(t, ok, "zero competitor price means unknown")
}

func TestFormatMargin(t *testing.T) {
	assert.Equal(t, "+10.0%", FormatMargin(10))
	assert.Equal(t, "-4.4%", FormatMargin(-4.37))
}

func TestBadgeLabel(t *testing.T) {
	assert.Equal(t, "Match Price", BadgeLabel(model.DecisionMatchPrice))
	assert.Equal(t, "Bundle Offer", BadgeLabel(model.DecisionBundleOffer))
	assert.Equal(t, "Hold", BadgeLabel(model.DecisionHold))
	assert.Equal(t, "SOMETHING_NEW", BadgeLabel(model.Decision("SOMETHING_NEW")))
}
