package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropsmob/internal/domain"
	"dropsmob/internal/repos"
	"dropsmob/internal/services"
)

func openState(t *testing.T) *repos.StateRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewStateRepo(db)
}

func TestLoadSession_EmptyStore(t *testing.T) {
	s := services.LoadSession(openState(t), testEncoder())

	assert.Equal(t, domain.ViewHome, s.View())
	assert.Equal(t, domain.CategoryAll, s.Filter().Category)
	assert.Equal(t, 0, s.Cart.Count())
	assert.Equal(t, 0, s.Ledger.Len())
}

func TestLoadSession_RestoresPersistedState(t *testing.T) {
	state := openState(t)

	first := services.LoadSession(state, testEncoder())
	first.Dispatch(func(s *services.Session) {
		s.Cart.Add(product("p1", "Camiseta", 500))
		s.Cart.Add(product("p2", "Chaleira", 1200))
	})
	var placed domain.Order
	first.Dispatch(func(s *services.Session) {
		res, err := s.PlaceOrder(validForm())
		require.NoError(t, err)
		placed = res.Order
		s.Cart.Add(product("p3", "Ventoinha", 3000))
	})

	second := services.LoadSession(state, testEncoder())

	require.Equal(t, 1, second.Ledger.Len())
	got, err := second.Ledger.Get(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, "1700", got.Total.String())
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.True(t, placed.Date.Equal(got.Date))
	assert.Equal(t, 1, second.Cart.Count())
	assert.Equal(t, 1, second.Cart.Quantity("p3"))
	assert.Equal(t, "3000", second.Cart.Total().String())
}

func TestSession_GoHomeResetsFilter(t *testing.T) {
	s := services.LoadSession(&memStore{}, testEncoder())
	s.SetFilter(domain.CategoryShirts, "  preta ")
	require.NoError(t, s.Navigate(domain.ViewAdmin))

	assert.Equal(t, "preta", s.Filter().Search)

	s.GoHome()
	assert.Equal(t, domain.ViewHome, s.View())
	assert.Equal(t, services.CatalogFilter{Category: domain.CategoryAll}, s.Filter())
}

func TestSession_NavigateRejectsUnknownView(t *testing.T) {
	s := services.LoadSession(&memStore{}, testEncoder())
	err := s.Navigate(domain.AppView("settings"))
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, domain.ViewHome, s.View())
}

func TestSession_BuyNowOpensCart(t *testing.T) {
	s := services.LoadSession(&memStore{}, testEncoder())
	s.BuyNow(product("p1", "Camiseta", 500))
	assert.Equal(t, domain.ViewCart, s.View())
	assert.Equal(t, 1, s.Cart.Quantity("p1"))
}

func TestSession_PlaceOrderOutcomeDrivesView(t *testing.T) {
	s := services.LoadSession(&memStore{}, testEncoder())
	s.Cart.Add(product("p1", "Camiseta", 500))
	require.NoError(t, s.Navigate(domain.ViewCheckout))

	form := validForm()
	form.Reference = " "
	_, err := s.PlaceOrder(form)
	require.Error(t, err)
	assert.Equal(t, domain.ViewCheckout, s.View())
	assert.Equal(t, 1, s.Cart.Count())

	_, err = s.PlaceOrder(validForm())
	require.NoError(t, err)
	assert.Equal(t, domain.ViewHome, s.View())
	assert.Equal(t, 0, s.Cart.Count())
}
