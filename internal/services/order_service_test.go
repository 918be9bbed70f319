package services_test

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropsmob/internal/domain"
	"dropsmob/internal/services"
)

func fixedLedger(store services.OrderStore, ids ...string) *services.OrderLedger {
	l := services.NewOrderLedger(store, nil)
	l.NewID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	l.Now = func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) }
	return l
}

func TestOrderLedger_CreateFromCart(t *testing.T) {
	store := &memStore{}
	ledger := fixedLedger(store, "ABC123")
	cart := services.NewCartEngine(nil, nil)
	cart.Add(product("p1", "Camiseta", 500))
	cart.Add(product("p1", "Camiseta", 500))
	cart.Add(product("p2", "Chaleira", 1200))

	o, err := ledger.CreateFromCart(cart.Lines(), validForm())
	require.NoError(t, err)

	assert.Equal(t, "ABC123", o.ID)
	assert.Equal(t, "2200", o.Total.String())
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, "Ana", o.CustomerName)
	assert.Equal(t, "841234567", o.EmolaNumber)
	assert.Equal(t, "REF99", o.Reference)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC), o.Date)
	assert.Len(t, o.Items, 2)

	assert.Equal(t, []string{"orders"}, store.events)
	require.Len(t, store.lastOrders(), 1)
	assert.Equal(t, "ABC123", store.lastOrders()[0].ID)
}

func TestOrderLedger_NewestFirst(t *testing.T) {
	ledger := fixedLedger(&memStore{}, "AAAAAA", "BBBBBB")
	lines := []domain.CartLine{{Product: product("p1", "Camiseta", 500), Quantity: 1}}

	_, err := ledger.CreateFromCart(lines, validForm())
	require.NoError(t, err)
	_, err = ledger.CreateFromCart(lines, validForm())
	require.NoError(t, err)

	orders := ledger.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "BBBBBB", orders[0].ID)
	assert.Equal(t, "AAAAAA", orders[1].ID)
}

func TestOrderLedger_SnapshotIsolation(t *testing.T) {
	ledger := fixedLedger(&memStore{}, "SNAP01")
	cart := services.NewCartEngine(nil, nil)
	cart.Add(product("p1", "Camiseta", 500))
	cart.Add(product("p2", "Chaleira", 1200))

	_, err := ledger.CreateFromCart(cart.Lines(), validForm())
	require.NoError(t, err)

	cart.SetQuantityDelta("p1", 5)
	cart.Add(product("p3", "Ventoinha", 3000))
	cart.Remove("p2")

	got, err := ledger.Get("SNAP01")
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "p1", got.Items[0].ID)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.Equal(t, "p2", got.Items[1].ID)
	assert.Equal(t, "1700", got.Total.String())

	// Copies handed out must not reach back into the ledger either.
	got.Items[0].Quantity = 42
	again, _ := ledger.Get("SNAP01")
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestOrderLedger_ValidationGate(t *testing.T) {
	lines := []domain.CartLine{{Product: product("p1", "Camiseta", 500), Quantity: 1}}
	cases := []struct {
		name  string
		lines []domain.CartLine
		form  domain.CustomerForm
		field string
	}{
		{"empty phone", lines, domain.CustomerForm{Name: "Ana", Reference: "REF99"}, "phone"},
		{"blank name", lines, domain.CustomerForm{Name: "   ", Phone: "841234567", Reference: "REF99"}, "name"},
		{"missing reference", lines, domain.CustomerForm{Name: "Ana", Phone: "841234567"}, "reference"},
		{"empty cart", nil, validForm(), "items"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &memStore{}
			ledger := fixedLedger(store, "XXXXXX")

			_, err := ledger.CreateFromCart(tc.lines, tc.form)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, 0, ledger.Len())
			assert.Empty(t, store.events)
		})
	}
}

func TestOrderLedger_UpdateStatusUnknownIsNoop(t *testing.T) {
	store := &memStore{}
	ledger := fixedLedger(store, "KNOWN1")
	lines := []domain.CartLine{{Product: product("p1", "Camiseta", 500), Quantity: 1}}
	_, err := ledger.CreateFromCart(lines, validForm())
	require.NoError(t, err)

	before, err := json.Marshal(ledger.Orders())
	require.NoError(t, err)
	writes := len(store.events)

	updated, err := ledger.UpdateStatus("unknown-id", domain.StatusPaid)
	require.NoError(t, err)
	assert.False(t, updated)

	after, err := json.Marshal(ledger.Orders())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Len(t, store.events, writes)
}

func TestOrderLedger_UpdateStatusAnyTransition(t *testing.T) {
	store := &memStore{}
	ledger := fixedLedger(store, "FLOW01")
	lines := []domain.CartLine{{Product: product("p1", "Camiseta", 500), Quantity: 1}}
	_, err := ledger.CreateFromCart(lines, validForm())
	require.NoError(t, err)

	for _, st := range []domain.OrderStatus{
		domain.StatusCompleted, domain.StatusPending, domain.StatusShipping, domain.StatusPaid, domain.StatusPaid,
	} {
		updated, err := ledger.UpdateStatus("FLOW01", st)
		require.NoError(t, err)
		assert.True(t, updated)
		o, _ := ledger.Get("FLOW01")
		assert.Equal(t, st, o.Status)
		assert.Equal(t, st, store.lastOrders()[0].Status)
	}
}

func TestOrderLedger_UpdateStatusRejectsUnknownValue(t *testing.T) {
	ledger := fixedLedger(&memStore{}, "FLOW02")
	lines := []domain.CartLine{{Product: product("p1", "Camiseta", 500), Quantity: 1}}
	_, err := ledger.CreateFromCart(lines, validForm())
	require.NoError(t, err)

	updated, err := ledger.UpdateStatus("FLOW02", domain.OrderStatus("Cancelado"))
	assert.False(t, updated)
	assert.True(t, domain.IsValidation(err))
	o, _ := ledger.Get("FLOW02")
	assert.Equal(t, domain.StatusPending, o.Status)
}

func TestOrderLedger_GetUnknown(t *testing.T) {
	ledger := services.NewOrderLedger(nil, nil)
	_, err := ledger.Get("NOPE00")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewOrderID_Shape(t *testing.T) {
	re := regexp.MustCompile(`^[0-9A-Z]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := services.NewOrderID()
		require.Regexp(t, re, id)
		seen[id] = true
	}
	// 36^6 possibilities; a repeat in 200 draws would point at a broken generator.
	assert.Len(t, seen, 200)
}

func TestValidateForm_FieldPrecedence(t *testing.T) {
	cases := []struct {
		form  domain.CustomerForm
		field string
	}{
		{domain.CustomerForm{}, "name"},
		{domain.CustomerForm{Name: "Ana"}, "phone"},
		{domain.CustomerForm{Name: "Ana", Phone: "841234567"}, "reference"},
		{validForm(), "items"},
	}
	for _, tc := range cases {
		var ve *domain.ValidationError
		require.ErrorAs(t, services.ValidateForm(nil, tc.form), &ve)
		assert.Equal(t, tc.field, ve.Field)
	}
}
