package service

import (
	"context"

	"sobanhang/internal/dto"
	"sobanhang/internal/model"
	"sobanhang/internal/repository"

	"github.com/rs/zerolog/log"
)

type ProductService interface {
	Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	// ScanBarcode resolves a scanned code to the first product carrying it.
	ScanBarcode(ctx context.Context, code string) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) *dto.ProductListResponse
	Update(ctx context.Context, id string, req dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	catalog     repository.CatalogStore
	searchLimit int
}

func NewProductService(catalog repository.CatalogStore, searchLimit int) ProductService {
	return &productService{catalog: catalog, searchLimit: searchLimit}
}

func (s *productService) Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := s.catalog.Add(ctx, productFromRequest(req))
	if err != nil {
		return nil, err
	}
	log.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("product created")
	return productToResponse(p), nil
}

func (s *productService) GetByID(_ context.Context, id string) (*dto.ProductResponse, error) {
	p, ok := s.catalog.FindByID(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return productToResponse(p), nil
}

func (s *productService) ScanBarcode(_ context.Context, code string) (*dto.ProductResponse, error) {
	p, ok := s.catalog.FindByBarcode(code)
	if !ok {
		return nil, ErrProductNotFound
	}
	return productToResponse(p), nil
}

// List returns the whole catalog, or the search results when Q is set.
func (s *productService) List(_ context.Context, filter dto.ProductFilter) *dto.ProductListResponse {
	var products []model.Product
	if filter.Q == "" {
		products = s.catalog.List()
	} else {
		limit := filter.Limit
		if limit <= 0 {
			limit = s.searchLimit
		}
		products = s.catalog.Search(filter.Q, limit)
	}

	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = *productToResponse(p)
	}
	return &dto.ProductListResponse{Data: out, Total: len(out)}
}

func (s *productService) Update(ctx context.Context, id string, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p := productFromRequest(req)
	p.ID = id
	ok, err := s.catalog.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProductNotFound
	}
	return productToResponse(p), nil
}

// Delete is idempotent. Past sales keep their snapshot of the product.
func (s *productService) Delete(ctx context.Context, id string) error {
	return s.catalog.Delete(ctx, id)
}

func productFromRequest(req dto.ProductRequest) model.Product {
	return model.Product{
		Name:      req.Name,
		SKU:       req.SKU,
		Barcode:   req.Barcode,
		CostPrice: req.CostPrice,
		SalePrice: req.SalePrice,
		Unit:      req.Unit,
		Stock:     req.Stock,
		ImageURL:  req.ImageURL,
	}
}

func productToResponse(p model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Barcode:   p.Barcode,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		Unit:      p.Unit,
		Stock:     p.Stock,
		ImageURL:  p.ImageURL,
	}
}
