package handlers

import (
	"dropsmob/internal/config"
	"dropsmob/internal/message"
	"dropsmob/internal/repos"
	"dropsmob/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Session *services.Session
	State   *repos.StateRepo

	CatalogHandler *CatalogHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	SessionHandler *SessionHandler
	AdminHandler   *AdminHandler
}

// NewDeps loads the session from db and wires every handler to it.
func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	stateRepo := repos.NewStateRepo(db)

	enc := message.NewEncoder(cfg.StoreName, cfg.StorePhone, cfg.ChatBaseURL)
	session := services.LoadSession(stateRepo, enc)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo)

	return &Deps{
		Session: session,
		State:   stateRepo,

		CatalogHandler: &CatalogHandler{Catalog: catalogSvc, Session: session},
		CartHandler:    &CartHandler{Catalog: catalogSvc, Session: session},
		OrderHandler:   &OrderHandler{Session: session, EmolaNumber: cfg.EmolaNumber, EmolaName: cfg.EmolaName},
		SessionHandler: &SessionHandler{Session: session, Encoder: enc},
		AdminHandler:   &AdminHandler{Session: session, StoreName: cfg.StoreName},
	}
}
