package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Prices(t *testing.T) {
	c := DefaultCatalog()

	cases := map[string]int64{
		"Starter": 199900,
		"Growth":  349900,
		"Pro":     599900,
	}
	for name, paise := range cases {
		p, ok := c.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, paise, p.AmountPaise(), name)
		assert.Equal(t, p.PriceINR*100, p.AmountPaise(), name)
	}
}

func TestCatalog_LookupRejectsUnknown(t *testing.T) {
	c := DefaultCatalog()

	for _, name := range []string{"", "Unknown", "starter", "STARTER", " Starter", "Starter ", "pro", "constructor", "__proto__"} {
		_, ok := c.Lookup(name)
		assert.False(t, ok, "%q should not resolve", name)
	}
}

func TestCatalog_ListOrderAndIsolation(t *testing.T) {
	c := DefaultCatalog()

	plans := c.List()
	require.Len(t, plans, 3)
	assert.Equal(t, PlanStarter, plans[0].Name)
	assert.Equal(t, PlanGrowth, plans[1].Name)
	assert.Equal(t, PlanPro, plans[2].Name)
	assert.True(t, plans[1].Highlighted)

	plans[0].PriceINR = 1
	plans[0].Features[0] = "tampered"

	p, ok := c.Lookup("Starter")
	require.True(t, ok)
	assert.Equal(t, int64(1999), p.PriceINR)
	assert.Equal(t, "1-page responsive website", p.Features[0])
}

func TestCatalog_ZeroPricedPlanIsNotSellable(t *testing.T) {
	c := NewCatalog(Plan{Name: "Free", PriceINR: 0})

	_, ok := c.Lookup("Free")
	assert.False(t, ok)
}
