package warehouse

import (
	"errors"
	"strings"

	"eta/internal/pkg/errs"
	"eta/internal/pkg/guard"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one order line: a product, an optional variant and a positive quantity.
type LineItem struct { //nolint:recvcheck //using for validation
	productID string
	variantID string
	quantity  int
	guard     guard.ConstructorGuard
}

func NewLineItem(productID, variantID string, quantity int) (LineItem, error) {
	item := LineItem{
		variantID: strings.TrimSpace(variantID),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setProductID(productID), item.setQuantity(quantity)); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) ProductID() string { return i.productID }

// VariantID returns "" when the line is not a specific variant.
func (i LineItem) VariantID() string { return i.variantID }

func (i LineItem) Quantity() int { return i.quantity }

func (i *LineItem) setProductID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = id
	return nil
}

func (i *LineItem) setQuantity(qty int) error {
	if qty < 1 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	i.quantity = qty
	return nil
}
