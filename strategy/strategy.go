// Package strategy lets a ShoppingCart pay through whichever PaymentStrategy
// is currently selected.
package strategy

import (
	"fmt"
	"io"
)

// PaymentStrategy pays an amount in whole dollars.
type PaymentStrategy interface {
	Pay(w io.Writer, amount int)
}

// CreditCard pays with a card.
type CreditCard struct {
	Number string
	Holder string
}

func (c CreditCard) Pay(w io.Writer, amount int) {
	_, _ = fmt.Fprintf(w, "Paid $%d using Credit Card (Card Holder: %s, Card Number: %s).\n", amount, c.Holder, c.Number)
}

// PayPal pays through a PayPal account.
type PayPal struct {
	Email string
}

func (p PayPal) Pay(w io.Writer, amount int) {
	_, _ = fmt.Fprintf(w, "Paid $%d using PayPal (Email: %s).\n", amount, p.Email)
}

// ShoppingCart checks out with the selected strategy.
type ShoppingCart struct {
	out      io.Writer
	strategy PaymentStrategy
}

// NewShoppingCart returns a cart with no payment method selected.
func NewShoppingCart(out io.Writer) *ShoppingCart { return &ShoppingCart{out: out} }

// SetStrategy replaces the payment method.
func (c *ShoppingCart) SetStrategy(s PaymentStrategy) { c.strategy = s }

// Checkout pays amount with the current strategy.
func (c *ShoppingCart) Checkout(amount int) {
	if c.strategy == nil {
		_, _ = fmt.Fprintln(c.out, "No payment method selected!")
		return
	}
	c.strategy.Pay(c.out, amount)
}

var (
	_ PaymentStrategy = CreditCard{}
	_ PaymentStrategy = PayPal{}
)
