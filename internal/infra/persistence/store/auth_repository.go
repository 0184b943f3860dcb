package store

import (
	"context"
	"time"

	"stylus/internal/domain/entity"
	domainerrors "stylus/internal/domain/errors"
	"stylus/internal/domain/repository"
	"stylus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the domain.AuthRepository interface using GORM.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthInfo persists a new authentication record.
func (repo *authRepository) CreateAuthInfo(ctx context.Context, info *entity.AuthInfo) error {
	infoM := fromAuthInfoDomain(info)

	if err := repo.db.WithContext(ctx).Create(infoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("auth info already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create auth info")
	}

	info.ID = infoM.ID
	info.CreatedAt = infoM.CreatedAt
	info.UpdatedAt = infoM.UpdatedAt

	return nil
}

// FindAuthInfoByID retrieves an authentication record by its ID, identities included.
func (repo *authRepository) FindAuthInfoByID(ctx context.Context, id uuid.UUID) (*entity.AuthInfo, error) {
	var infoM model.AuthInfoModel
	err := repo.db.WithContext(ctx).
		Preload("Identities").
		Where("id = ?", id).
		First(&infoM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthInfoNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth info by id")
	}

	return toAuthInfoDomain(&infoM), nil
}

// UpdateAuthInfo updates an existing authentication record, including the user link.
func (repo *authRepository) UpdateAuthInfo(ctx context.Context, info *entity.AuthInfo) error {
	infoM := fromAuthInfoDomain(info)

	if err := repo.db.WithContext(ctx).Save(infoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update auth info")
	}

	info.UpdatedAt = infoM.UpdatedAt

	return nil
}

// CreateIdentity persists a new (provider, identity) pair under an AuthInfo.
func (repo *authRepository) CreateIdentity(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("identity already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt

	return nil
}

// FindIdentity retrieves an identity by its (provider, identity-string) pair.
func (repo *authRepository) FindIdentity(ctx context.Context, provider entity.ProviderType, identity string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND identity = ?", provider.String(), identity).
		First(&identityM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	return toIdentityDomain(&identityM), nil
}

// CountIdentities returns the number of identities matching the pair.
func (repo *authRepository) CountIdentities(ctx context.Context, provider entity.ProviderType, identity string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("provider = ? AND identity = ?", provider.String(), identity).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count identities")
	}

	return count, nil
}

// CreateToken persists a new credential token.
func (repo *authRepository) CreateToken(ctx context.Context, token *entity.CredentialToken) error {
	tokenM := fromCredentialTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindTokenByHash retrieves a credential token record by its stored hash.
func (repo *authRepository) FindTokenByHash(ctx context.Context, hash string) (*entity.CredentialToken, error) {
	var tokenM model.CredentialTokenModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		First(&tokenM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential token")
	}

	return toCredentialTokenDomain(&tokenM), nil
}

// DeleteTokenByHash deletes a credential token by its hash.
func (repo *authRepository) DeleteTokenByHash(ctx context.Context, hash string) error {
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		Delete(&model.CredentialTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete credential token")
	}

	return nil
}

// DeleteExpiredTokens removes all credential tokens past their expiry.
func (repo *authRepository) DeleteExpiredTokens(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.CredentialTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete expired credential tokens")
	}

	return nil
}

// toAuthInfoDomain converts a GORM AuthInfoModel to a domain AuthInfo entity.
func toAuthInfoDomain(data *model.AuthInfoModel) *entity.AuthInfo {
	if data == nil {
		return nil
	}

	identities := make([]*entity.Identity, 0, len(data.Identities))
	for _, identityM := range data.Identities {
		identities = append(identities, toIdentityDomain(identityM))
	}

	return &entity.AuthInfo{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Identities:   identities,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAuthInfoDomain converts a domain AuthInfo entity to a GORM AuthInfoModel.
// Identities are persisted through CreateIdentity, not Save.
func fromAuthInfoDomain(data *entity.AuthInfo) *model.AuthInfoModel {
	if data == nil {
		return nil
	}

	return &model.AuthInfoModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

// toIdentityDomain converts a GORM IdentityModel to a domain Identity entity.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:         data.ID,
		AuthInfoID: data.AuthInfoID,
		Provider:   entity.ProviderType(data.Provider),
		Identity:   data.Identity,
		CreatedAt:  data.CreatedAt,
	}
}

// fromIdentityDomain converts a domain Identity entity to a GORM IdentityModel.
func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	return &model.IdentityModel{
		ID:         data.ID,
		AuthInfoID: data.AuthInfoID,
		Provider:   data.Provider.String(),
		Identity:   data.Identity,
	}
}

// toCredentialTokenDomain converts a GORM CredentialTokenModel to a domain entity.
func toCredentialTokenDomain(data *model.CredentialTokenModel) *entity.CredentialToken {
	if data == nil {
		return nil
	}

	return &entity.CredentialToken{
		ID:         data.ID,
		AuthInfoID: data.AuthInfoID,
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromCredentialTokenDomain converts a domain CredentialToken entity to its GORM model.
func fromCredentialTokenDomain(data *entity.CredentialToken) *model.CredentialTokenModel {
	if data == nil {
		return nil
	}

	return &model.CredentialTokenModel{
		ID:         data.ID,
		AuthInfoID: data.AuthInfoID,
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
	}
}
