package queries

import (
	"strings"
	"time"

	"eta/internal/core/domain/model/estimate"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/model/sla"
	"eta/internal/core/domain/services"
	"eta/internal/pkg/errs"
)

// EstimateOptions describes where and when an estimate is computed.
// Now is the customer's current instant; its location decides the cutoff
// and every calendar date of the result.
type EstimateOptions struct {
	Now           time.Time
	Destination   sla.Destination
	Carrier       string
	Advanced      bool
	WithCountdown bool
	ProductName   string
}

func (o EstimateOptions) validate() error {
	if o.Now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	return nil
}

func (o EstimateOptions) normalized() EstimateOptions {
	o.Carrier = strings.TrimSpace(o.Carrier)
	o.ProductName = strings.TrimSpace(o.ProductName)
	return o
}

// EstimateResponse is the read model shared by the estimate queries.
type EstimateResponse struct {
	Estimate       estimate.Estimate
	Preview        estimate.Preview
	StructuredData estimate.StructuredData
}

type estimateBuilder struct {
	composer  services.EstimateComposer
	formatter services.PreviewFormatter
}

func newEstimateBuilder() estimateBuilder {
	return estimateBuilder{
		composer:  services.NewEstimateComposer(),
		formatter: services.NewPreviewFormatter(),
	}
}

func (b estimateBuilder) build(p *policy.ShippingPolicy, opts EstimateOptions, rules *sla.RuleSet) (EstimateResponse, error) {
	var (
		e   estimate.Estimate
		err error
	)
	if opts.Advanced {
		e, err = b.composer.Advanced(p, opts.Now, opts.Destination, opts.Carrier, rules)
	} else {
		e, err = b.composer.Base(p, opts.Now, opts.Destination.Region)
	}
	if err != nil {
		return EstimateResponse{}, err
	}

	var preview estimate.Preview
	if opts.WithCountdown {
		preview, err = b.formatter.PreviewWithCountdown(p, e, opts.Now)
	} else {
		preview, err = b.formatter.Preview(p, e, opts.Now)
	}
	if err != nil {
		return EstimateResponse{}, err
	}

	return EstimateResponse{
		Estimate:       e,
		Preview:        preview,
		StructuredData: b.formatter.StructuredData(e, opts.ProductName),
	}, nil
}
