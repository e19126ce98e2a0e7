package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order: a product, the quantity bought, the unit
// price, the unit weight, and the optional hub and vendor the product ships
// from. Items without a hub fall into the splitter's default group.
type Item struct {
	productID kernel.UUID
	hubID     *kernel.UUID
	vendorID  *kernel.UUID
	quantity  int
	unitPrice kernel.Money
	weightKg  float64

	isConstructed bool
}

// NewItem creates a validated line item. Quantity and unit weight must both
// be positive.
func NewItem(productID kernel.UUID, hubID, vendorID *kernel.UUID, quantity int, unitPrice kernel.Money, weightKg float64) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setHubID(hubID),
		item.setVendorID(vendorID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setWeightKg(weightKg),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the product the line refers to.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// HubID returns the hub the product ships from, nil for the default group.
func (i Item) HubID() *kernel.UUID {
	return i.hubID
}

// VendorID returns the vendor that owns the product, nil when not vendor-scoped.
func (i Item) VendorID() *kernel.UUID {
	return i.vendorID
}

// Quantity returns the number of units bought.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// WeightKg returns the weight per unit in kilograms.
func (i Item) WeightKg() float64 {
	return i.weightKg
}

// Subtotal returns unitPrice × quantity.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MulFloat(float64(i.quantity))
}

// TotalWeightKg returns weight × quantity.
func (i Item) TotalWeightKg() float64 {
	return i.weightKg * float64(i.quantity)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setHubID(hubID *kernel.UUID) error {
	if hubID != nil {
		if err := hubID.Validate(); err != nil {
			return err
		}
	}
	i.hubID = hubID
	return nil
}

func (i *Item) setVendorID(vendorID *kernel.UUID) error {
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return err
		}
	}
	i.vendorID = vendorID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%f is not greater than 0", weightKg))
	}
	i.weightKg = weightKg
	return nil
}
