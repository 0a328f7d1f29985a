package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"eta/internal/core/domain/model/estimate"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/model/sla"
	"eta/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewFormatter_BaseLabels(t *testing.T) {
	sp := scenarioPolicy(t)
	est, err := services.NewEstimateComposer().Base(sp, at(monday, 10), "")
	require.NoError(t, err)

	pv, err := services.NewPreviewFormatter().Preview(sp, est, at(monday, 10))

	require.NoError(t, err)
	assert.Equal(t, "Ships Tue, Oct 13", pv.ProductPageLabel())
	assert.Equal(t, "Ships Tue, Oct 13", pv.CartLabel())
	assert.Equal(t, "Estimated: Tue, Oct 13", pv.CheckoutLabel())
	assert.Equal(t, "Your order will ship Tue, Oct 13.", pv.CustomerMessage())
	assert.Equal(t, est.ShipMaxDate(), pv.ShippingDate())
	_, ok := pv.Countdown()
	assert.False(t, ok)
}

func TestPreviewFormatter_HandmadeAdvancedLabels(t *testing.T) {
	sp := scenarioPolicy(t, func(p *policy.Params) {
		p.ProductionKind = policy.Handmade
		p.RegionOverrides = []policy.RegionOverride{euOverride(t)}
	})
	est, err := services.NewEstimateComposer().Advanced(sp, at(monday, 10), sla.Destination{Region: "EU"}, "", nil)
	require.NoError(t, err)

	pv, err := services.NewPreviewFormatter().PreviewWithCountdown(sp, est, at(monday, 10))

	require.NoError(t, err)
	assert.Equal(t, "Handmade · Arrives "+est.FormattedRange()+" via DHL", pv.ProductPageLabel())
	assert.Equal(t, "Estimated: "+est.FormattedRange()+" via DHL (made to order)", pv.CheckoutLabel())
	assert.Contains(t, pv.CustomerMessage(), "Shipped with DHL.")
	assert.Contains(t, pv.CustomerMessage(), "Customs may add a day.")
	assert.Equal(t, est.MaxDate(), pv.DeliveryDate())

	cd, ok := pv.Countdown()
	require.True(t, ok)
	assert.Equal(t, "06:00:00", cd.Formatted())
}

func TestPreviewFormatter_Countdown(t *testing.T) {
	f := services.NewPreviewFormatter()
	adjuster := services.NewDateAdjuster()

	before := at(monday, 15).Add(30*time.Minute + 15*time.Second)
	cd := f.Countdown(before, 16)
	assert.Equal(t, "00:29:45", cd.Formatted())
	assert.Equal(t, at(monday, 16), cd.Deadline)
	assert.False(t, adjuster.IsPastCutoff(before, 16))

	after := at(monday, 16)
	cd = f.Countdown(after, 16)
	assert.Equal(t, "24:00:00", cd.Formatted())
	assert.Equal(t, at(monday.AddDate(0, 0, 1), 16), cd.Deadline)
	assert.True(t, adjuster.IsPastCutoff(after, 16))
}

func TestPreviewFormatter_StructuredData(t *testing.T) {
	sp := scenarioPolicy(t)
	composer := services.NewEstimateComposer()
	f := services.NewPreviewFormatter()

	t.Run("base", func(t *testing.T) {
		est, err := composer.Base(sp, at(monday, 10), "")
		require.NoError(t, err)

		sd := f.StructuredData(est, "Mug")

		assert.Equal(t, 1, sd.DeliveryLeadTime.MinValue)
		assert.Equal(t, "DAY", sd.ShippingDetails.DeliveryTime.UnitCode)
		assert.Nil(t, sd.ShippingDetails.DeliveryTime.HandlingTime)
		assert.Nil(t, sd.ShippingDetails.DeliveryTime.TransitTime)
	})

	t.Run("advanced", func(t *testing.T) {
		est, err := composer.Advanced(sp, at(monday, 10), sla.Destination{Region: "US"}, "", nil)
		require.NoError(t, err)

		raw, err := json.Marshal(f.StructuredData(est, "Mug"))
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"@context": "https://schema.org",
			"@type": "Product",
			"name": "Mug",
			"deliveryLeadTime": {"@type": "QuantitativeValue", "minValue": 1, "maxValue": 1, "unitCode": "DAY"},
			"shippingDetails": {
				"@type": "OfferShippingDetails",
				"carrier": "FedEx",
				"deliveryTime": {
					"@type": "ShippingDeliveryTime",
					"minValue": 8, "maxValue": 15, "unitCode": "DAY",
					"handlingTime": {"@type": "QuantitativeValue", "minValue": 1, "maxValue": 1, "unitCode": "DAY"},
					"transitTime": {"@type": "QuantitativeValue", "minValue": 7, "maxValue": 14, "unitCode": "DAY"}
				}
			}
		}`, string(raw))
	})
}

func TestPreviewFormatter_RejectsZeroEstimate(t *testing.T) {
	_, err := services.NewPreviewFormatter().Preview(scenarioPolicy(t), estimate.Estimate{}, monday)
	require.ErrorIs(t, err, estimate.ErrEstimateIsNotConstructed)
}
