// Package policy models a seller's delivery-estimation rules: how long an order
// takes to produce and hand to a carrier, which regions deviate from that, and
// which calendar days are excluded from counting.
//
// A ShippingPolicy built through NewShippingPolicy always satisfies the
// mode/kind consistency rules:
//   - EstimateMode Fixed requires fixedDays
//   - EstimateMode Range requires minDays ≤ maxDays, both set
//   - Handmade production with RuleBased estimation requires dailyCapacity and backlogUnits
//
// Stocked production may use RuleBased estimation without capacity inputs; the
// estimator then falls back to a one day window.
package policy
