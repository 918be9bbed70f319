package services

import (
	"dropsmob/internal/domain"
	"dropsmob/internal/message"
)

type CheckoutResult struct {
	Order   domain.Order    `json:"order"`
	Message message.Payload `json:"message"`
}

// Checkout turns the current cart into an order and the chat hand-off.
type Checkout struct {
	Cart    *CartEngine
	Ledger  *OrderLedger
	Encoder *message.Encoder
}

func NewCheckout(cart *CartEngine, ledger *OrderLedger, enc *message.Encoder) *Checkout {
	return &Checkout{Cart: cart, Ledger: ledger, Encoder: enc}
}

// Place runs validate, create, encode, clear and persist in that order. A
// validation failure returns before anything changes; past that point every
// step runs.
func (s *Checkout) Place(form domain.CustomerForm) (CheckoutResult, error) {
	order, err := s.Ledger.create(s.Cart.Lines(), form)
	if err != nil {
		return CheckoutResult{}, err
	}
	payload := s.Encoder.Encode(order, form)

	s.Cart.reset()
	s.Cart.flush()
	s.Ledger.flush()

	return CheckoutResult{Order: order, Message: payload}, nil
}
