package services

import (
	"time"

	"eta/internal/core/domain/model/estimate"
	"eta/internal/core/domain/model/policy"
)

const (
	handmadePrefix   = "Handmade · "
	handmadeCheckout = " (made to order)"
)

// PreviewFormatter renders estimates for the storefront. It never changes the estimate.
type PreviewFormatter struct{}

func NewPreviewFormatter() PreviewFormatter {
	return PreviewFormatter{}
}

// Preview renders e for the product page, cart and checkout.
//
// Base estimates read "Ships …", advanced ones "Arrives …". Handmade policies
// get a qualifier and a known carrier is appended as " via <carrier>".
func (f PreviewFormatter) Preview(p *policy.ShippingPolicy, e estimate.Estimate, _ time.Time) (estimate.Preview, error) {
	if err := validatePreviewInputs(p, e); err != nil {
		return estimate.Preview{}, err
	}
	return estimate.NewPreview(f.params(p, e)), nil
}

// PreviewWithCountdown is Preview plus the countdown to the next cutoff of p.
func (f PreviewFormatter) PreviewWithCountdown(
	p *policy.ShippingPolicy,
	e estimate.Estimate,
	now time.Time,
) (estimate.Preview, error) {
	if err := validatePreviewInputs(p, e); err != nil {
		return estimate.Preview{}, err
	}
	params := f.params(p, e)
	countdown := f.Countdown(now, p.CutoffHour())
	params.Countdown = &countdown
	return estimate.NewPreview(params), nil
}

// Countdown is the time from now until cutoffHour today, or tomorrow once
// today's cutoff has passed. It agrees with DateAdjuster.IsPastCutoff.
func (PreviewFormatter) Countdown(now time.Time, cutoffHour int) estimate.Countdown {
	y, m, d := now.Date()
	deadline := time.Date(y, m, d, cutoffHour, 0, 0, 0, now.Location())
	if !now.Before(deadline) {
		deadline = time.Date(y, m, d+1, cutoffHour, 0, 0, 0, now.Location())
	}
	return estimate.Countdown{Remaining: deadline.Sub(now), Deadline: deadline}
}

func (PreviewFormatter) params(p *policy.ShippingPolicy, e estimate.Estimate) estimate.PreviewParams {
	verb, message := "Ships", "Your order will ship "
	if e.IsAdvanced() {
		verb, message = "Arrives", "Your order will arrive "
	}

	label := verb + " " + e.FormattedRange()
	via := ""
	if e.Carrier() != "" {
		via = " via " + e.Carrier()
	}

	product, cart, checkout := label+via, label+via, "Estimated: "+e.FormattedRange()+via
	if p.IsHandmade() {
		product = handmadePrefix + product
		cart = handmadePrefix + cart
		checkout += handmadeCheckout
	}

	message += e.FormattedRange() + "."
	if e.Carrier() != "" {
		message += " Shipped with " + e.Carrier() + "."
	}
	if e.Note() != "" {
		message += " " + e.Note()
	}

	return estimate.PreviewParams{
		CustomerMessage:  message,
		ShippingDate:     e.ShipMaxDate(),
		DeliveryDate:     e.MaxDate(),
		ProductPageLabel: product,
		CartLabel:        cart,
		CheckoutLabel:    checkout,
	}
}

func validatePreviewInputs(p *policy.ShippingPolicy, e estimate.Estimate) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return e.Validate()
}
