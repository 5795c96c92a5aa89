package service

import (
	"context"

	"sobanhang/internal/dto"
	"sobanhang/internal/model"
	"sobanhang/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error)
	List(ctx context.Context) *dto.CustomerListResponse
	Update(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id string) error
	AdjustDebt(ctx context.Context, id string, amount decimal.Decimal) (*dto.CustomerResponse, error)
}

type customerService struct {
	customers repository.CustomerStore
}

func NewCustomerService(customers repository.CustomerStore) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.customers.Add(ctx, model.Customer{Name: req.Name, Phone: req.Phone, Address: req.Address})
	if err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) GetByID(_ context.Context, id string) (*dto.CustomerResponse, error) {
	c, ok := s.customers.FindByID(id)
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return customerToResponse(c), nil
}

func (s *customerService) List(_ context.Context) *dto.CustomerListResponse {
	customers := s.customers.List()
	out := make([]dto.CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = *customerToResponse(c)
	}
	return &dto.CustomerListResponse{Data: out, Total: len(out)}
}

func (s *customerService) Update(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, ok, err := s.customers.Update(ctx, id, func(c *model.Customer) {
		c.Name, c.Phone, c.Address = req.Name, req.Phone, req.Address
		if req.Debt != nil {
			c.Debt = *req.Debt
		}
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return customerToResponse(c), nil
}

// Delete is idempotent. Sales referencing the customer keep their name snapshot.
func (s *customerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

func (s *customerService) AdjustDebt(ctx context.Context, id string, amount decimal.Decimal) (*dto.CustomerResponse, error) {
	c, ok, err := s.customers.AdjustDebt(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCustomerNotFound
	}
	log.Info().Str("customer_id", id).Str("amount", amount.String()).Str("debt", c.Debt.String()).Msg("debt adjusted")
	return customerToResponse(c), nil
}

func customerToResponse(c model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Address: c.Address, Debt: c.Debt}
}
