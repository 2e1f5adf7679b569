package postgres

import (
	"context"
	"strings"
	"time"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// geographyPoint is the listing position as a PostGIS geography.
const geographyPoint = "ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography"

// propertyRepository implements the domain.PropertyRepository interface using GORM and PostGIS.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Omit("Owner").Create(propertyM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("property violates a storage constraint")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel
	err := repo.db.WithContext(ctx).
		Preload("Owner", selectOwnerSummary).
		Where("id = ?", id).
		First(&propertyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find property by id")
	}

	return toPropertyDomain(&propertyM), nil
}

func (repo *propertyRepository) Find(ctx context.Context, filter entity.PropertyFilter) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel
	err := applyPropertyFilter(repo.db.WithContext(ctx), filter).
		Preload("Owner", selectOwnerSummary).
		Order("created_at DESC").
		Find(&propertyModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list properties")
	}

	return toPropertyDomains(propertyModels), nil
}

// FindNearby uses ST_DWithin on geography so the radius is in meters.
func (repo *propertyRepository) FindNearby(ctx context.Context, query repository.NearbyQuery) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel
	err := nearbyScope(repo.db.WithContext(ctx), query).
		Preload("Owner", selectOwnerSummary).
		Find(&propertyModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find nearby properties")
	}

	return toPropertyDomains(propertyModels), nil
}

// Update writes every mutable column, including cleared type-specific ones.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	property.UpdatedAt = time.Now()
	propertyM := fromPropertyDomain(property)

	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{ID: property.ID}).
		Select("*").
		Omit("id", "owner_id", "created_at", "Owner").
		Updates(propertyM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("property violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

func (repo *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PropertyModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

func (repo *propertyRepository) Count(ctx context.Context, status entity.ModerationStatus) (int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.PropertyModel{})
	if status != "" {
		tx = tx.Where("status = ?", string(status))
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count properties")
	}

	return count, nil
}

func (repo *propertyRepository) Analytics(ctx context.Context) ([]entity.PropertyAnalytics, error) {
	var rows []struct {
		Category string
		Type     string
		Status   string
		Count    int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Select("category, type, status, COUNT(*) AS count").
		Group("category, type, status").
		Order("category, type, status").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate properties")
	}

	analytics := make([]entity.PropertyAnalytics, 0, len(rows))
	for _, row := range rows {
		analytics = append(analytics, entity.PropertyAnalytics{
			Category: entity.Category(row.Category),
			Type:     entity.TransactionType(row.Type),
			Status:   entity.ModerationStatus(row.Status),
			Count:    row.Count,
		})
	}

	return analytics, nil
}

func (repo *propertyRepository) Stations(ctx context.Context) ([]string, error) {
	stations := []string{}
	err := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Distinct().
		Order("station").
		Pluck("station", &stations).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list stations")
	}

	return stations, nil
}

func (repo *propertyRepository) SubLocations(ctx context.Context, station string) ([]string, error) {
	subLocations := []string{}
	err := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("station = ? AND sub_location <> ''", station).
		Distinct().
		Order("sub_location").
		Pluck("sub_location", &subLocations).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sub-locations")
	}

	return subLocations, nil
}

func (repo *propertyRepository) SearchLocations(ctx context.Context, query string) (*entity.LocationSearchResult, error) {
	pattern := "%" + escapeLike(query) + "%"
	result := &entity.LocationSearchResult{Stations: []string{}, SubLocations: []string{}}

	err := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("station ILIKE ?", pattern).
		Distinct().
		Order("station").
		Pluck("station", &result.Stations).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search stations")
	}

	err = repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("sub_location ILIKE ?", pattern).
		Distinct().
		Order("sub_location").
		Pluck("sub_location", &result.SubLocations).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search sub-locations")
	}

	return result, nil
}

// applyPropertyFilter adds one predicate per set criterion.
func applyPropertyFilter(tx *gorm.DB, filter entity.PropertyFilter) *gorm.DB {
	tx = tx.Model(&model.PropertyModel{})

	if filter.Category != "" {
		tx = tx.Where("category = ?", string(filter.Category))
	}
	if filter.Type != "" {
		tx = tx.Where("type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.PropertyType != "" {
		tx = tx.Where("property_type = ?", filter.PropertyType)
	}
	if filter.Station != "" {
		tx = tx.Where("station = ?", filter.Station)
	}
	if filter.SubLocation != "" {
		tx = tx.Where("sub_location = ?", filter.SubLocation)
	}
	if filter.IsCosmo != nil {
		tx = tx.Where("is_cosmo = ?", *filter.IsCosmo)
	}
	if filter.OwnerID != nil {
		tx = tx.Where("owner_id = ?", *filter.OwnerID)
	}

	column := budgetColumn(filter.Type)
	if filter.MinBudget != nil {
		tx = tx.Where(column+" >= ?", *filter.MinBudget)
	}
	if filter.MaxBudget != nil {
		tx = tx.Where(column+" <= ?", *filter.MaxBudget)
	}

	return tx
}

// budgetColumn picks the price column compared by budget filters.
func budgetColumn(t entity.TransactionType) string {
	switch t {
	case entity.TransactionRental:
		return "rent"
	case entity.TransactionResale:
		return "expected_price"
	default:
		return "total_package"
	}
}

func nearbyScope(tx *gorm.DB, query repository.NearbyQuery) *gorm.DB {
	lng, lat := query.Center.Longitude, query.Center.Latitude

	tx = tx.Model(&model.PropertyModel{})
	if query.Status != "" {
		tx = tx.Where("status = ?", string(query.Status))
	}

	return tx.
		Where("ST_DWithin("+geographyPoint+", ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)", lng, lat, query.Radius).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "ST_Distance(" + geographyPoint + ", ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography)",
			Vars:               []any{lng, lat},
			WithoutParentheses: true,
		}})
}

func selectOwnerSummary(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "full_name", "email", "phone")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toPropertyDomains(models []*model.PropertyModel) []*entity.Property {
	properties := make([]*entity.Property, 0, len(models))
	for _, propertyM := range models {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties
}

func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	attrs := entity.PropertyAttributes{
		PossessionDate: data.PossessionDate,
		TotalPackage:   deref(data.TotalPackage),
		BrochureURL:    deref(data.BrochureURL),
		VideoURL:       deref(data.VideoURL),
		ExpectedPrice:  deref(data.ExpectedPrice),
		FloorNo:        deref(data.FloorNo),
		FlatNo:         deref(data.FlatNo),
		ContactName:    deref(data.ContactName),
		ContactNumber:  deref(data.ContactNumber),
		IsDirect:       deref(data.IsDirect),
		Rent:           deref(data.Rent),
		Deposit:        deref(data.Deposit),
		Furnishing:     entity.Furnishing(deref(data.Furnishing)),
		BuildingNo:     deref(data.BuildingNo),
		TotalFloors:    deref(data.TotalFloors),
		Wing:           deref(data.Wing),
		PropertyAge:    deref(data.PropertyAge),
		Parking:        entity.Parking(deref(data.Parking)),
		AvailableFrom:  data.AvailableFrom,
		Ownership:      deref(data.Ownership),
		MasterBedrooms: deref(data.MasterBedrooms),
	}

	property := &entity.Property{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Owner:             toUserSummary(data.Owner),
		Category:          entity.Category(data.Category),
		Status:            entity.ModerationStatus(data.Status),
		BuildingOrSociety: data.BuildingOrSociety,
		RoadOrLocation:    data.RoadOrLocation,
		Station:           data.Station,
		SubLocation:       data.SubLocation,
		PropertyType:      data.PropertyType,
		IsCosmo:           data.IsCosmo,
		Images:            []string(data.Images),
		Amenities:         []string(data.Amenities),
		Location:          entity.Coordinates{Latitude: data.Latitude, Longitude: data.Longitude},
		Details:           entity.DetailsFromAttributes(entity.TransactionType(data.Type), attrs),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.ReviewedBy != nil && data.ReviewedAt != nil {
		property.Review = &entity.Review{
			ReviewedBy: *data.ReviewedBy,
			ReviewedAt: *data.ReviewedAt,
			Remarks:    deref(data.AdminRemarks),
		}
	}

	return property
}

func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	propertyM := &model.PropertyModel{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Category:          string(data.Category),
		Type:              string(data.Type()),
		Status:            string(data.Status),
		BuildingOrSociety: data.BuildingOrSociety,
		RoadOrLocation:    data.RoadOrLocation,
		Station:           data.Station,
		SubLocation:       data.SubLocation,
		PropertyType:      data.PropertyType,
		IsCosmo:           data.IsCosmo,
		Images:            append([]string{}, data.Images...),
		Amenities:         append([]string{}, data.Amenities...),
		Latitude:          data.Location.Latitude,
		Longitude:         data.Location.Longitude,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	switch details := data.Details.(type) {
	case entity.NewLaunchDetails:
		possession := details.PossessionDate
		propertyM.PossessionDate = &possession
		propertyM.TotalPackage = optional(details.TotalPackage)
		propertyM.BrochureURL = optional(details.BrochureURL)
		propertyM.VideoURL = optional(details.VideoURL)
	case entity.ResaleDetails:
		propertyM.ExpectedPrice = optional(details.ExpectedPrice)
		propertyM.FloorNo = optional(details.FloorNo)
		propertyM.FlatNo = optional(details.FlatNo)
		propertyM.ContactName = optional(details.ContactName)
		propertyM.ContactNumber = optional(details.ContactNumber)
		isDirect := details.IsDirect
		propertyM.IsDirect = &isDirect
	case entity.RentalDetails:
		propertyM.Rent = optional(details.Rent)
		propertyM.Deposit = optional(details.Deposit)
		propertyM.Furnishing = optional(string(details.Furnishing))
		propertyM.BuildingNo = optional(details.BuildingNo)
		propertyM.TotalFloors = optional(details.TotalFloors)
		propertyM.Wing = optional(details.Wing)
		propertyM.PropertyAge = optional(details.PropertyAge)
		propertyM.Parking = optional(string(details.Parking))
		propertyM.AvailableFrom = details.AvailableFrom
		propertyM.Ownership = optional(details.Ownership)
		propertyM.MasterBedrooms = optional(details.MasterBedrooms)
	}

	if data.Review != nil {
		reviewer, at := data.Review.ReviewedBy, data.Review.ReviewedAt
		propertyM.ReviewedBy = &reviewer
		propertyM.ReviewedAt = &at
		propertyM.AdminRemarks = optional(data.Review.Remarks)
	}

	return propertyM
}

// optional maps a zero value to NULL.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}

	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
