package repos

import (
	"database/sql"
	"time"

	"dropsmob/internal/domain"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// State slot keys.
const (
	SlotCart   = "cart"
	SlotOrders = "orders"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StateRepo mirrors the session's cart and orders into two named slots.
// Each save overwrites the whole slot.
type StateRepo struct{ db *sqlx.DB }

func NewStateRepo(db *sqlx.DB) *StateRepo { return &StateRepo{db: db} }

func (r *StateRepo) load(key string, dst any) error {
	var raw string
	err := r.db.Get(&raw, `SELECT value FROM app_state WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "load slot %s", key)
	}
	return errors.Wrapf(json.UnmarshalFromString(raw, dst), "decode slot %s", key)
}

func (r *StateRepo) save(key string, v any) error {
	raw, err := json.MarshalToString(v)
	if err != nil {
		return errors.Wrapf(err, "encode slot %s", key)
	}
	_, err = r.db.Exec(`
		INSERT INTO app_state(key, value, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, raw, time.Now().UTC().Format(time.RFC3339))
	return errors.Wrapf(err, "save slot %s", key)
}

// LoadCart returns the stored cart lines; a missing slot is an empty cart.
func (r *StateRepo) LoadCart() ([]domain.CartLine, error) {
	lines := []domain.CartLine{}
	if err := r.load(SlotCart, &lines); err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines, nil
}

func (r *StateRepo) SaveCart(lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return r.save(SlotCart, lines)
}

// LoadOrders returns the stored orders newest first; a missing slot is an empty ledger.
func (r *StateRepo) LoadOrders() ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := r.load(SlotOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (r *StateRepo) SaveOrders(orders []domain.Order) error {
	if orders == nil {
		orders = []domain.Order{}
	}
	return r.save(SlotOrders, orders)
}

// Raw returns the serialized slot as stored, or "" when absent.
func (r *StateRepo) Raw(key string) (string, error) {
	var raw string
	err := r.db.Get(&raw, `SELECT value FROM app_state WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return raw, errors.Wrapf(err, "read slot %s", key)
}
