package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyName     = errors.New("name must not be empty")
	ErrNegativePrice = errors.New("price must be non-negative")
)

// ProductInput carries the mutable fields of a product. Absent numeric
// fields arrive as zero values and are stored as-is, only names and prices
// are validated.
type ProductInput struct {
	Name        string
	Price       int64
	Description string
	PhotoURL    string
	CategoryID  *int64
	IsActive    bool
	Sort        int
}

type Service interface {
	Categories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string, sort int) (*Category, error)
	UpdateCategory(ctx context.Context, id int64, name string, sort int) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// PublicCatalog returns active products only, with category names
	// resolved. Uncategorized products group last.
	PublicCatalog(ctx context.Context) ([]Product, error)
	// AdminCatalog returns every product, inactive ones included.
	AdminCatalog(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list categories")
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}

	return categories, nil
}

func (s *service) CreateCategory(ctx context.Context, name string, sort int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	c := &Category{Name: name, Sort: sort}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		log.Error().Err(err).Msg("service: failed to create category")
		return nil, fmt.Errorf("service: failed to create category: %w", err)
	}

	log.Info().Int64("category_id", c.ID).Str("name", c.Name).Msg("service: category created")
	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, id int64, name string, sort int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	c := &Category{ID: id, Name: name, Sort: sort}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		log.Error().Err(err).Int64("category_id", id).Msg("service: failed to update category")
		return nil, fmt.Errorf("service: failed to update category: %w", err)
	}

	return c, nil
}

func (s *service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		log.Error().Err(err).Int64("category_id", id).Msg("service: failed to delete category")
		return fmt.Errorf("service: failed to delete category: %w", err)
	}

	log.Info().Int64("category_id", id).Msg("service: category deleted, products detached")
	return nil
}

func (s *service) PublicCatalog(ctx context.Context) ([]Product, error) {
	products, err := s.repo.ListProducts(ctx, true)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list public catalog")
		return nil, fmt.Errorf("service: failed to list public catalog: %w", err)
	}

	return products, nil
}

func (s *service) AdminCatalog(ctx context.Context) ([]Product, error) {
	products, err := s.repo.ListProducts(ctx, false)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list admin catalog")
		return nil, fmt.Errorf("service: failed to list admin catalog: %w", err)
	}

	return products, nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	p, err := productFromInput(0, input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		log.Error().Err(err).Msg("service: failed to create product")
		return nil, fmt.Errorf("service: failed to create product: %w", err)
	}

	log.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("service: product created")
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error) {
	p, err := productFromInput(id, input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		if errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrCategoryNotFound) {
			return nil, err
		}
		log.Error().Err(err).Int64("product_id", id).Msg("service: failed to update product")
		return nil, fmt.Errorf("service: failed to update product: %w", err)
	}

	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return ErrProductNotFound
		}
		log.Error().Err(err).Int64("product_id", id).Msg("service: failed to delete product")
		return fmt.Errorf("service: failed to delete product: %w", err)
	}

	return nil
}

func productFromInput(id int64, input ProductInput) (*Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if input.Price < 0 {
		return nil, ErrNegativePrice
	}

	return &Product{
		ID:          id,
		Name:        name,
		Price:       input.Price,
		Description: input.Description,
		PhotoURL:    input.PhotoURL,
		CategoryID:  input.CategoryID,
		IsActive:    input.IsActive,
		Sort:        input.Sort,
	}, nil
}
