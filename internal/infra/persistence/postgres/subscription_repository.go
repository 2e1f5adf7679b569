package postgres

import (
	"context"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the domain.SubscriptionRepository interface using GORM.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (repo *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *subscriptionRepository) FindByBroker(ctx context.Context, brokerID uuid.UUID) (*entity.Subscription, error) {
	return repo.findOne(ctx, "broker_id = ?", brokerID)
}

func (repo *subscriptionRepository) findOne(ctx context.Context, condition string, arg any) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel
	err := repo.db.WithContext(ctx).
		Preload("Broker", selectOwnerSummary).
		Where(condition, arg).
		First(&subscriptionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// Save upserts on the unique broker_id. The model hook recomputes total_price.
func (repo *subscriptionRepository) Save(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	err := repo.db.WithContext(ctx).
		Omit("Broker").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "broker_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"locations", "total_price", "status", "payment_status",
				"start_date", "end_date", "payment_history", "updated_at",
			}),
		}, clause.Returning{}).
		Create(subscriptionM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBrokerNotFound.WrapMessage("broker does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.TotalPrice = subscriptionM.TotalPrice
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

func (repo *subscriptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) (*entity.Subscription, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscription status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrSubscriptionNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *subscriptionRepository) List(ctx context.Context) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel
	err := repo.db.WithContext(ctx).
		Preload("Broker", selectOwnerSummary).
		Order("created_at DESC").
		Find(&subscriptionModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

func (repo *subscriptionRepository) CountByStatus(ctx context.Context, status entity.SubscriptionStatus) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count subscriptions")
	}

	return count, nil
}

func (repo *subscriptionRepository) Analytics(ctx context.Context) ([]entity.SubscriptionAnalytics, error) {
	var rows []struct {
		Status       string
		Count        int64
		TotalRevenue float64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS total_revenue").
		Group("status").
		Order("status").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate subscriptions")
	}

	analytics := make([]entity.SubscriptionAnalytics, 0, len(rows))
	for _, row := range rows {
		analytics = append(analytics, entity.SubscriptionAnalytics{
			Status:       entity.SubscriptionStatus(row.Status),
			Count:        row.Count,
			TotalRevenue: row.TotalRevenue,
		})
	}

	return analytics, nil
}

// --- Mapper Functions ---

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	locations := make([]entity.CoverageLocation, 0, len(data.Locations))
	for _, l := range data.Locations {
		locations = append(locations, entity.CoverageLocation{
			Name:   l.Name,
			Center: entity.Coordinates{Latitude: l.Latitude, Longitude: l.Longitude},
			Radius: l.Radius,
			Price:  l.Price,
		})
	}

	history := make([]entity.PaymentRecord, 0, len(data.PaymentHistory))
	for _, p := range data.PaymentHistory {
		history = append(history, entity.PaymentRecord{
			Amount:        p.Amount,
			Date:          p.Date,
			Status:        entity.PaymentStatus(p.Status),
			TransactionID: p.TransactionID,
		})
	}

	return &entity.Subscription{
		ID:             data.ID,
		BrokerID:       data.BrokerID,
		Broker:         toUserSummary(data.Broker),
		Locations:      locations,
		TotalPrice:     data.TotalPrice,
		Status:         entity.SubscriptionStatus(data.Status),
		PaymentStatus:  entity.PaymentStatus(data.PaymentStatus),
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		PaymentHistory: history,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	locations := make(datatypes.JSONSlice[model.CoverageLocationJSON], 0, len(data.Locations))
	for _, l := range data.Locations {
		locations = append(locations, model.CoverageLocationJSON{
			Name:      l.Name,
			Latitude:  l.Center.Latitude,
			Longitude: l.Center.Longitude,
			Radius:    l.Radius,
			Price:     l.Price,
		})
	}

	history := make(datatypes.JSONSlice[model.PaymentRecordJSON], 0, len(data.PaymentHistory))
	for _, p := range data.PaymentHistory {
		history = append(history, model.PaymentRecordJSON{
			Amount:        p.Amount,
			Date:          p.Date,
			Status:        string(p.Status),
			TransactionID: p.TransactionID,
		})
	}

	return &model.SubscriptionModel{
		ID:             data.ID,
		BrokerID:       data.BrokerID,
		Locations:      locations,
		TotalPrice:     data.TotalPrice,
		Status:         string(data.Status),
		PaymentStatus:  string(data.PaymentStatus),
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		PaymentHistory: history,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
