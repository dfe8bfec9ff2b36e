package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freelanceflow/internal/model"
)

// ListFilter narrows and paginates a client listing. IsActive is a
// tri-state filter: nil means "do not filter on active state".
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
	IsActive *bool
}

// ClientRepository defines client persistence operations. Every method takes
// the owning user's ID and folds it into the query predicate, so a record
// owned by another user is indistinguishable from a missing one.
type ClientRepository interface {
	Create(ctx context.Context, userID uuid.UUID, client *model.Client) error
	FindAll(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]model.Client, int64, error)
	FindByID(ctx context.Context, userID, clientID uuid.UUID) (*model.Client, error)
	Update(ctx context.Context, userID, clientID uuid.UUID, updates map[string]interface{}) (*model.Client, error)
	SoftDelete(ctx context.Context, userID, clientID uuid.UUID) (bool, error)
	HardDelete(ctx context.Context, userID, clientID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, clientID uuid.UUID) (bool, error)
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository.
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create inserts a new client owned by userID. Any owner already set on the
// record is overwritten.
func (r *clientRepository) Create(ctx context.Context, userID uuid.UUID, client *model.Client) error {
	client.UserID = userID
	return r.db.WithContext(ctx).Create(client).Error
}

// scoped builds a query filtered by owner plus the optional list filters.
// Substring search uses ILIKE, so matching is case-insensitive.
func (r *clientRepository) scoped(ctx context.Context, userID uuid.UUID, filter ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Client{}).Where("user_id = ?", userID)
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR company ILIKE ?", pattern, pattern, pattern)
	}
	return q
}

// FindAll returns one page of the user's clients, newest first, plus the
// total count matching the same predicate.
func (r *clientRepository) FindAll(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]model.Client, int64, error) {
	var total int64
	if err := r.scoped(ctx, userID, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	var clients []model.Client
	err := r.scoped(ctx, userID, filter).
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

// FindByID finds a client by ID under the ownership predicate.
func (r *clientRepository) FindByID(ctx context.Context, userID, clientID uuid.UUID) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// protectedColumns are never updatable after creation.
var protectedColumns = []string{"id", "user_id", "created_at"}

// Update applies the given column updates under the ownership predicate in a
// single statement. Zero rows affected means not found (or not owned), and
// gorm.ErrRecordNotFound is returned. updated_at is refreshed by GORM.
func (r *clientRepository) Update(ctx context.Context, userID, clientID uuid.UUID, updates map[string]interface{}) (*model.Client, error) {
	for _, col := range protectedColumns {
		delete(updates, col)
	}
	if len(updates) == 0 {
		return r.FindByID(ctx, userID, clientID)
	}

	res := r.db.WithContext(ctx).Model(&model.Client{}).
		Where("id = ? AND user_id = ?", clientID, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, userID, clientID)
}

// SoftDelete marks a client inactive under the ownership predicate.
func (r *clientRepository) SoftDelete(ctx context.Context, userID, clientID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Client{}).
		Where("id = ? AND user_id = ?", clientID, userID).
		Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HardDelete permanently removes a client under the ownership predicate.
func (r *clientRepository) HardDelete(ctx context.Context, userID, clientID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		Delete(&model.Client{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Exists reports whether a client exists under the ownership predicate.
func (r *clientRepository) Exists(ctx context.Context, userID, clientID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Client{}).
		Where("id = ? AND user_id = ?", clientID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
