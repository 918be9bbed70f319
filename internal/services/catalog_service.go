package services

import (
	"strings"

	"dropsmob/internal/domain"
	"dropsmob/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Filter lists products in category ("Todos" or empty for all) whose name
// contains search.
func (s *CatalogService) Filter(category domain.Category, search string) ([]domain.Product, error) {
	if category == domain.CategoryAll {
		category = ""
	}
	return s.Prods.Search(strings.TrimSpace(search), category)
}
