package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// One connection: a single session owns the file, and ":memory:" databases
	// are per-connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping sqlite")
	}

	if err := ensureSchema(db); err != nil {
		return nil, errors.Wrap(err, "ensure schema")
	}
	// Seed the catalog if empty (categories/products)
	if err := seedIfEmpty(db); err != nil {
		return nil, errors.Wrap(err, "seed catalog")
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  name TEXT PRIMARY KEY,
  position INTEGER NOT NULL DEFAULT 0
);

-- Products (read-only catalog)
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category TEXT NOT NULL REFERENCES categories(name) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL,
  image TEXT NOT NULL DEFAULT '',
  featured INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

-- Session state slots (cart, orders)
CREATE TABLE IF NOT EXISTS app_state(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/products")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`INSERT INTO categories(name,position) VALUES
	  ('Camisetas',1),
	  ('Eletrodomésticos',2)
	  ON CONFLICT(name) DO NOTHING`); err != nil {
		return err
	}

	if _, err := tx.Exec(`INSERT INTO products(id,category,name,description,price,image,featured) VALUES
	  ('cam-001','Camisetas','Camiseta Moçambique Oversized','Algodão grosso, estampa da bandeira.','850','https://images.unsplash.com/photo-1521572163474-6864f9cf17ab',1),
	  ('cam-002','Camisetas','Camiseta Básica Preta','Corte regular, 100% algodão.','500','https://images.unsplash.com/photo-1583743814966-8936f5b7be1a',0),
	  ('cam-003','Camisetas','Camiseta Marrabenta','Homenagem ao ritmo de Maputo.','650','https://images.unsplash.com/photo-1576566588028-4147f3842f27',0),
	  ('ele-001','Eletrodomésticos','Liquidificador 1.5L','Cinco velocidades, copo de vidro.','2500','https://images.unsplash.com/photo-1570222094114-d054a817e56b',1),
	  ('ele-002','Eletrodomésticos','Chaleira Eléctrica','Desliga automaticamente, 1.7L.','1200','https://images.unsplash.com/photo-1594213114663-d94db9b17125',0),
	  ('ele-003','Eletrodomésticos','Ventoinha de Pé','Três velocidades, ideal para o calor.','3450.50','https://images.unsplash.com/photo-1618941716939-553df3c6c278',0)`); err != nil {
		return err
	}

	return tx.Commit()
}
