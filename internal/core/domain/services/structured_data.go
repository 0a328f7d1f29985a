package services

import (
	"eta/internal/core/domain/model/estimate"
)

// StructuredData builds the schema.org JSON-LD of e for productName.
// deliveryLeadTime is the handling window; shippingDetails.deliveryTime covers
// handling plus transit, and for advanced estimates also carries both parts.
func (PreviewFormatter) StructuredData(e estimate.Estimate, productName string) estimate.StructuredData {
	handling := estimate.NewDayRange(e.MinDays(), e.MaxDays())

	delivery := estimate.DeliveryTime{
		Type:     "ShippingDeliveryTime",
		MinValue: e.MinDays(),
		MaxValue: e.MaxDays(),
		UnitCode: estimate.UnitCodeDay,
	}
	if lo, ok := e.TransitMin(); ok {
		hi, _ := e.TransitMax()
		transit := estimate.NewDayRange(lo, hi)
		delivery.MinValue += lo
		delivery.MaxValue += hi
		delivery.HandlingTime = &handling
		delivery.TransitTime = &transit
	}

	return estimate.StructuredData{
		Context:          estimate.SchemaOrgContext,
		Type:             "Product",
		Name:             productName,
		DeliveryLeadTime: handling,
		ShippingDetails: estimate.ShippingDetails{
			Type:         "OfferShippingDetails",
			DeliveryTime: delivery,
			Carrier:      e.Carrier(),
		},
	}
}
