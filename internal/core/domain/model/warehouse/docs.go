// Package warehouse models fulfillment origins and the order lines shipped from them.
package warehouse
