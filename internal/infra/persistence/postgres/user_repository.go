// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by id. The password hash is never selected.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Omit("password_hash").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email including the password hash.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the editable profile columns and the status.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"full_name":   user.FullName,
			"phone":       user.Phone,
			"rera_number": user.ReraNumber,
			"state":       user.State,
			"city":        user.City,
			"status":      string(user.Status),
			"latitude":    user.Location.Latitude,
			"longitude":   user.Location.Longitude,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetSubscription stores the back-reference to the user's subscription.
func (repo *userRepository) SetSubscription(ctx context.Context, userID, subscriptionID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("subscription_id", subscriptionID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to link subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListBrokers returns all non-admin users with their subscription preloaded.
func (repo *userRepository) ListBrokers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Omit("password_hash").
		Preload("Subscription").
		Where("role <> ?", string(entity.RoleAdmin)).
		Order("created_at DESC").
		Find(&userModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list brokers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// CountBrokers counts non-admin users.
func (repo *userRepository) CountBrokers(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role <> ?", string(entity.RoleAdmin)).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count brokers")
	}

	return count, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:             data.ID,
		FullName:       data.FullName,
		Email:          data.Email,
		Phone:          data.Phone,
		ReraNumber:     data.ReraNumber,
		State:          data.State,
		City:           data.City,
		PasswordHash:   data.PasswordHash,
		Role:           entity.Role(data.Role),
		Status:         entity.AccountStatus(data.Status),
		Location:       entity.Coordinates{Latitude: data.Latitude, Longitude: data.Longitude},
		SubscriptionID: data.SubscriptionID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.Subscription != nil {
		user.Subscription = toSubscriptionDomain(data.Subscription)
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:             data.ID,
		FullName:       data.FullName,
		Email:          data.Email,
		Phone:          data.Phone,
		ReraNumber:     data.ReraNumber,
		State:          data.State,
		City:           data.City,
		PasswordHash:   data.PasswordHash,
		Role:           string(data.Role),
		Status:         string(data.Status),
		Latitude:       data.Location.Latitude,
		Longitude:      data.Location.Longitude,
		SubscriptionID: data.SubscriptionID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toUserSummary(data *model.UserModel) *entity.UserSummary {
	if data == nil {
		return nil
	}

	return &entity.UserSummary{
		ID:       data.ID,
		FullName: data.FullName,
		Email:    data.Email,
		Phone:    data.Phone,
	}
}
