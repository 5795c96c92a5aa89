package service

import (
	"fmt"
	"slices"

	"sobanhang/internal/model"

	"github.com/shopspring/decimal"
)

// Cart is the transient list of lines an operator assembles before checkout.
// It is never persisted. Lines keep entry order; adding a product already in
// the cart increases that line's quantity.
type Cart struct {
	items []model.SaleItem
}

func NewCart() *Cart { return &Cart{} }

// Add puts qty units of p in the cart, snapshotting its name and sale price.
// Rejects when the cart would hold more units than p has in stock. A product
// already in the cart keeps the price it was first added at.
func (c *Cart) Add(p model.Product, qty int) error {
	return c.add(p, qty, p.SalePrice, false)
}

// AddAt is Add with an explicit unit price snapshot. Adding to an existing
// line at a different price fails with ErrPriceConflict.
func (c *Cart) AddAt(p model.Product, qty int, price decimal.Decimal) error {
	return c.add(p, qty, price, true)
}

func (c *Cart) add(p model.Product, qty int, price decimal.Decimal, explicit bool) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", qty)
	}
	idx := c.indexOf(p.ID)
	inCart := 0
	if idx >= 0 {
		if explicit && !c.items[idx].Price.Equal(price) {
			return fmt.Errorf("%w: %s is in the cart at %s, not %s", ErrPriceConflict, p.Name, c.items[idx].Price, price)
		}
		inCart = c.items[idx].Quantity
	}
	if p.Stock < inCart+qty {
		return fmt.Errorf("%w: %s has %d, cart needs %d", ErrInsufficientStock, p.Name, p.Stock, inCart+qty)
	}
	if idx >= 0 {
		c.items[idx].Quantity += qty
		return nil
	}
	c.items = append(c.items, model.SaleItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		Price:       price,
	})
	return nil
}

// AddSnapshot appends a line whose product is no longer in the catalog.
// No stock check is possible; the commit will skip its stock effect.
func (c *Cart) AddSnapshot(item model.SaleItem) {
	if idx := c.indexOf(item.ProductID); idx >= 0 {
		c.items[idx].Quantity += item.Quantity
		return
	}
	c.items = append(c.items, item)
}

// SetQuantity changes a line's quantity; qty <= 0 removes the line.
func (c *Cart) SetQuantity(productID string, qty, stock int) error {
	idx := c.indexOf(productID)
	if idx < 0 {
		return nil
	}
	if qty <= 0 {
		c.items = slices.Delete(c.items, idx, idx+1)
		return nil
	}
	if stock < qty {
		return fmt.Errorf("%w: %s has %d", ErrInsufficientStock, c.items[idx].ProductName, stock)
	}
	c.items[idx].Quantity = qty
	return nil
}

func (c *Cart) Remove(productID string) {
	if idx := c.indexOf(productID); idx >= 0 {
		c.items = slices.Delete(c.items, idx, idx+1)
	}
}

func (c *Cart) Items() []model.SaleItem { return slices.Clone(c.items) }

func (c *Cart) Len() int { return len(c.items) }

// Subtotal returns Σ price×quantity in entry order.
func (c *Cart) Subtotal() decimal.Decimal { return Subtotal(c.items) }

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.items, func(i model.SaleItem) bool { return i.ProductID == productID })
}
