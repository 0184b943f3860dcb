package store

import (
	"context"

	"stylus/internal/domain/entity"
	domainerrors "stylus/internal/domain/errors"
	"stylus/internal/domain/repository"
	"stylus/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// permissionRepository implements the domain.PermissionRepository interface using GORM.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository is the constructor for permissionRepository.
func NewPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &permissionRepository{db: db}
}

// FindByName retrieves a permission by exact name match.
func (repo *permissionRepository) FindByName(ctx context.Context, name string) (*entity.Permission, error) {
	var permM model.PermissionModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&permM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPermissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find permission by name")
	}

	return toPermissionDomain(&permM), nil
}

// Create persists a new permission.
func (repo *permissionRepository) Create(ctx context.Context, permission *entity.Permission) error {
	permM := fromPermissionDomain(permission)

	if err := repo.db.WithContext(ctx).Create(permM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create permission")
	}

	permission.ID = permM.ID
	permission.CreatedAt = permM.CreatedAt

	return nil
}

// CountByName returns the number of permissions with the given name.
func (repo *permissionRepository) CountByName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PermissionModel{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count permissions by name")
	}

	return count, nil
}

// toPermissionDomain converts a GORM PermissionModel to a domain Permission entity.
func toPermissionDomain(data *model.PermissionModel) *entity.Permission {
	if data == nil {
		return nil
	}

	return &entity.Permission{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}

// fromPermissionDomain converts a domain Permission entity to a GORM PermissionModel.
func fromPermissionDomain(data *entity.Permission) *model.PermissionModel {
	if data == nil {
		return nil
	}

	return &model.PermissionModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
