package estimate

const (
	SchemaOrgContext = "https://schema.org"
	// UnitCodeDay is the UN/CEFACT code for a day.
	UnitCodeDay = "DAY"
)

// QuantitativeValue is a schema.org day range.
type QuantitativeValue struct {
	Type     string `json:"@type"`
	MinValue int    `json:"minValue"`
	MaxValue int    `json:"maxValue"`
	UnitCode string `json:"unitCode"`
}

// NewDayRange builds a QuantitativeValue counted in days.
func NewDayRange(lo, hi int) QuantitativeValue {
	return QuantitativeValue{Type: "QuantitativeValue", MinValue: lo, MaxValue: hi, UnitCode: UnitCodeDay}
}

// DeliveryTime is a schema.org ShippingDeliveryTime. HandlingTime and
// TransitTime are only present for advanced estimates.
type DeliveryTime struct {
	Type         string             `json:"@type"`
	MinValue     int                `json:"minValue"`
	MaxValue     int                `json:"maxValue"`
	UnitCode     string             `json:"unitCode"`
	HandlingTime *QuantitativeValue `json:"handlingTime,omitempty"`
	TransitTime  *QuantitativeValue `json:"transitTime,omitempty"`
}

// ShippingDetails is a schema.org OfferShippingDetails.
type ShippingDetails struct {
	Type         string       `json:"@type"`
	DeliveryTime DeliveryTime `json:"deliveryTime"`
	Carrier      string       `json:"carrier,omitempty"`
}

// StructuredData is the JSON-LD object embedded in a product page.
type StructuredData struct {
	Context          string            `json:"@context"`
	Type             string            `json:"@type"`
	Name             string            `json:"name"`
	DeliveryLeadTime QuantitativeValue `json:"deliveryLeadTime"`
	ShippingDetails  ShippingDetails   `json:"shippingDetails"`
}
