package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freelanceflow/internal/cache"
	apperrors "freelanceflow/internal/errors"
	"freelanceflow/internal/model"
	"freelanceflow/internal/repository"
)

const clientCacheTTL = 5 * time.Minute

const (
	minPageSize = 1
	maxPageSize = 100
)

// CreateClientInput is the payload for creating a client.
type CreateClientInput struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company string `json:"company,omitempty" validate:"omitempty,max=255"`
	Address string `json:"address,omitempty" validate:"omitempty,max=255"`
	City    string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country string `json:"country,omitempty" validate:"omitempty,max=100"`
	TaxID   string `json:"taxId,omitempty" validate:"omitempty,max=50"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateClientInput is the payload for partially updating a client.
// Nil fields are left untouched.
type UpdateClientInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company  *string `json:"company,omitempty" validate:"omitempty,max=255"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=255"`
	City     *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country  *string `json:"country,omitempty" validate:"omitempty,max=100"`
	TaxID    *string `json:"taxId,omitempty" validate:"omitempty,max=50"`
	Notes    *string `json:"notes,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// updates builds the column map for the fields present in the input.
func (in UpdateClientInput) updates() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Name != nil {
		m["name"] = *in.Name
	}
	if in.Email != nil {
		m["email"] = *in.Email
	}
	if in.Phone != nil {
		m["phone"] = *in.Phone
	}
	if in.Company != nil {
		m["company"] = *in.Company
	}
	if in.Address != nil {
		m["address"] = *in.Address
	}
	if in.City != nil {
		m["city"] = *in.City
	}
	if in.Country != nil {
		m["country"] = *in.Country
	}
	if in.TaxID != nil {
		m["tax_id"] = *in.TaxID
	}
	if in.Notes != nil {
		m["notes"] = *in.Notes
	}
	if in.IsActive != nil {
		m["is_active"] = *in.IsActive
	}
	return m
}

// ListOptions narrows and paginates a client listing.
type ListOptions struct {
	Page     int
	PageSize int
	Search   string
	IsActive *bool
}

// Pagination is the metadata returned alongside a client listing.
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

// ClientService handles client business operations.
type ClientService interface {
	CreateClient(ctx context.Context, userID uuid.UUID, input CreateClientInput) (*model.Client, error)
	GetClients(ctx context.Context, userID uuid.UUID, opts ListOptions) ([]model.Client, *Pagination, error)
	GetClientByID(ctx context.Context, userID, clientID uuid.UUID) (*model.Client, error)
	UpdateClient(ctx context.Context, userID, clientID uuid.UUID, input UpdateClientInput) (*model.Client, error)
	DeleteClient(ctx context.Context, userID, clientID uuid.UUID) error
	PermanentlyDeleteClient(ctx context.Context, userID, clientID uuid.UUID) error
}

type clientService struct {
	repo  repository.ClientRepository
	cache *cache.Client
}

// NewClientService creates a new client service.
func NewClientService(repo repository.ClientRepository, cache *cache.Client) ClientService {
	return &clientService{
		repo:  repo,
		cache: cache,
	}
}

func (s *clientService) cacheKey(userID, clientID uuid.UUID) string {
	return fmt.Sprintf("client:%s:%s", userID, clientID)
}

// CreateClient validates the email shape and persists a new active client
// owned by userID.
func (s *clientService) CreateClient(ctx context.Context, userID uuid.UUID, input CreateClientInput) (*model.Client, error) {
	if !strings.Contains(input.Email, "@") {
		return nil, apperrors.ErrInvalidEmail
	}

	client := &model.Client{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Company:  input.Company,
		Address:  input.Address,
		City:     input.City,
		Country:  input.Country,
		TaxID:    input.TaxID,
		Notes:    input.Notes,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, userID, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

// GetClients validates pagination bounds before touching the store and
// returns one page of clients plus pagination metadata. A page beyond the
// last one yields an empty list, not an error.
func (s *clientService) GetClients(ctx context.Context, userID uuid.UUID, opts ListOptions) ([]model.Client, *Pagination, error) {
	if opts.Page < 1 {
		return nil, nil, apperrors.ErrInvalidPage
	}
	if opts.PageSize < minPageSize || opts.PageSize > maxPageSize {
		return nil, nil, apperrors.ErrInvalidPageSize
	}

	clients, total, err := s.repo.FindAll(ctx, userID, repository.ListFilter{
		Page:     opts.Page,
		PageSize: opts.PageSize,
		Search:   opts.Search,
		IsActive: opts.IsActive,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("list clients: %w", err)
	}

	totalPages := int((total + int64(opts.PageSize) - 1) / int64(opts.PageSize))
	return clients, &Pagination{
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// GetClientByID retrieves a client by ID with caching.
func (s *clientService) GetClientByID(ctx context.Context, userID, clientID uuid.UUID) (*model.Client, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID, clientID)); data != nil {
		var cached model.Client
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	client, err := s.repo.FindByID(ctx, userID, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	if payload, err := json.Marshal(client); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID, clientID), payload, clientCacheTTL)
	}
	return client, nil
}

// UpdateClient applies a partial update. The ownership predicate is part of
// the update statement itself, so zero rows affected is the single source of
// truth for not-found.
func (s *clientService) UpdateClient(ctx context.Context, userID, clientID uuid.UUID, input UpdateClientInput) (*model.Client, error) {
	if input.Email != nil && !strings.Contains(*input.Email, "@") {
		return nil, apperrors.ErrInvalidEmail
	}

	client, err := s.repo.Update(ctx, userID, clientID, input.updates())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("update client: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID, clientID))
	return client, nil
}

// DeleteClient soft-deletes a client by marking it inactive.
func (s *clientService) DeleteClient(ctx context.Context, userID, clientID uuid.UUID) error {
	ok, err := s.repo.SoftDelete(ctx, userID, clientID)
	if err != nil {
		return fmt.Errorf("soft delete client: %w", err)
	}
	if !ok {
		return apperrors.ErrClientNotFound
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID, clientID))
	return nil
}

// PermanentlyDeleteClient removes a client row for good.
func (s *clientService) PermanentlyDeleteClient(ctx context.Context, userID, clientID uuid.UUID) error {
	ok, err := s.repo.HardDelete(ctx, userID, clientID)
	if err != nil {
		return fmt.Errorf("hard delete client: %w", err)
	}
	if !ok {
		return apperrors.ErrClientNotFound
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID, clientID))
	return nil
}
