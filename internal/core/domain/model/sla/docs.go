// Package sla models carrier transit-time agreements.
//
// A Rule declares how many calendar days a carrier needs to deliver into a
// scope (postal pattern, district, province or region). Scopes are ranked by
// the Tiers list, most specific first; a rule is only as good as the most
// specific tier it matches for a Destination. When no rule matches, the
// DefaultTable gives a per-region fallback so a lookup never comes back empty.
package sla
