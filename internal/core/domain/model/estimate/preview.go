package estimate

import (
	"fmt"
	"time"
)

// Surface is a storefront place where an estimate label is shown.
type Surface int

const (
	SurfaceUnknown Surface = iota
	ProductPage
	Cart
	Checkout
)

func getSurfaceStrings() map[Surface]string {
	return map[Surface]string{
		SurfaceUnknown: "unknown",
		ProductPage:    "productPage",
		Cart:           "cart",
		Checkout:       "checkout",
	}
}

func (s Surface) String() string {
	if str, ok := getSurfaceStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Countdown is the time left before the next order cutoff.
type Countdown struct {
	Remaining time.Duration
	Deadline  time.Time
}

// Formatted renders Remaining as HH:MM:SS; hours are not wrapped at 24.
func (c Countdown) Formatted() string {
	total := int(c.Remaining.Truncate(time.Second) / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

// Preview is the customer-facing rendering of an Estimate.
type Preview struct {
	customerMessage string
	shippingDate    time.Time
	deliveryDate    time.Time
	labels          map[Surface]string
	countdown       *Countdown
}

// PreviewParams carries the inputs of NewPreview.
type PreviewParams struct {
	CustomerMessage  string
	ShippingDate     time.Time
	DeliveryDate     time.Time
	ProductPageLabel string
	CartLabel        string
	CheckoutLabel    string
	Countdown        *Countdown
}

func NewPreview(p PreviewParams) Preview {
	pv := Preview{
		customerMessage: p.CustomerMessage,
		shippingDate:    p.ShippingDate,
		deliveryDate:    p.DeliveryDate,
		labels: map[Surface]string{
			ProductPage: p.ProductPageLabel,
			Cart:        p.CartLabel,
			Checkout:    p.CheckoutLabel,
		},
	}
	if p.Countdown != nil {
		c := *p.Countdown
		pv.countdown = &c
	}
	return pv
}

func (p Preview) CustomerMessage() string { return p.customerMessage }

func (p Preview) ShippingDate() time.Time { return p.shippingDate }

func (p Preview) DeliveryDate() time.Time { return p.deliveryDate }

// Label returns the text for surface, "" for SurfaceUnknown.
func (p Preview) Label(surface Surface) string { return p.labels[surface] }

func (p Preview) ProductPageLabel() string { return p.labels[ProductPage] }

func (p Preview) CartLabel() string { return p.labels[Cart] }

func (p Preview) CheckoutLabel() string { return p.labels[Checkout] }

// Countdown returns the cutoff countdown when one was requested.
func (p Preview) Countdown() (Countdown, bool) {
	if p.countdown == nil {
		return Countdown{}, false
	}
	return *p.countdown, true
}
