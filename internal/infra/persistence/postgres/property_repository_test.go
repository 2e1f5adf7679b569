package postgres

import (
	"testing"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/repository"
	"estatex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=estatex dbname=estatex sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func TestApplyPropertyFilter(t *testing.T) {
	db := newDryRunDB(t)
	cosmo := true
	minBudget, maxBudget := 20000.0, 50000.0

	stmt := applyPropertyFilter(db, entity.PropertyFilter{
		Category:  entity.CategoryResidential,
		Type:      entity.TransactionRental,
		Status:    entity.ModerationApproved,
		Station:   "Andheri",
		IsCosmo:   &cosmo,
		MinBudget: &minBudget,
		MaxBudget: &maxBudget,
	}).Find(&[]*model.PropertyModel{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "category = $1")
	assert.Contains(t, sql, "type = $2")
	assert.Contains(t, sql, "status = $3")
	assert.Contains(t, sql, "station = $4")
	assert.Contains(t, sql, "is_cosmo = $5")
	assert.Contains(t, sql, "rent >= $6")
	assert.Contains(t, sql, "rent <= $7")
	assert.NotContains(t, sql, "sub_location")
	assert.Equal(t, []any{"residential", "rental", "approved", "Andheri", true, 20000.0, 50000.0}, stmt.Vars)
}

func TestApplyPropertyFilter_OwnerOnly(t *testing.T) {
	db := newDryRunDB(t)
	owner := uuid.New()

	stmt := applyPropertyFilter(db, entity.PropertyFilter{OwnerID: &owner}).
		Find(&[]*model.PropertyModel{}).Statement

	assert.Contains(t, stmt.SQL.String(), "owner_id = $1")
	assert.Equal(t, []any{owner}, stmt.Vars)
}

func TestBudgetColumn(t *testing.T) {
	assert.Equal(t, "rent", budgetColumn(entity.TransactionRental))
	assert.Equal(t, "expected_price", budgetColumn(entity.TransactionResale))
	assert.Equal(t, "total_package", budgetColumn(entity.TransactionNew))
	assert.Equal(t, "total_package", budgetColumn(""))
}

func TestNearbyScope(t *testing.T) {
	db := newDryRunDB(t)

	stmt := nearbyScope(db, repository.NearbyQuery{
		Center: entity.Coordinates{Latitude: 19.076, Longitude: 72.8777},
		Radius: 5000,
		Status: entity.ModerationApproved,
	}).Find(&[]*model.PropertyModel{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "ST_DWithin(")
	assert.Contains(t, sql, "ORDER BY ST_Distance(")
	assert.Equal(t, []any{"approved", 72.8777, 19.076, 5000.0, 72.8777, 19.076}, stmt.Vars)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_sale\\x`, escapeLike(`50% off_sale\x`))
}

func TestPropertyMapping_RoundTrip(t *testing.T) {
	deposit := 100000.0
	details, err := entity.NewPropertyDetails(entity.TransactionRental, entity.PropertyAttributes{
		Rent:       25000,
		Deposit:    deposit,
		Furnishing: entity.FurnishingSemi,
		Parking:    entity.ParkingCovered,
	})
	require.NoError(t, err)

	property := &entity.Property{
		ID:                uuid.New(),
		OwnerID:           uuid.New(),
		Category:          entity.CategoryResidential,
		Status:            entity.ModerationPending,
		BuildingOrSociety: "Sea View",
		RoadOrLocation:    "Linking Road",
		Station:           "Bandra",
		PropertyType:      "2BHK",
		Images:            []string{"a.jpg"},
		Location:          entity.Coordinates{Latitude: 19.05, Longitude: 72.83},
		Details:           details,
	}

	propertyM := fromPropertyDomain(property)
	assert.Equal(t, "rental", propertyM.Type)
	require.NotNil(t, propertyM.Rent)
	assert.Equal(t, 25000.0, *propertyM.Rent)
	assert.Nil(t, propertyM.ExpectedPrice)
	assert.Nil(t, propertyM.TotalPackage)

	back := toPropertyDomain(propertyM)
	assert.Equal(t, entity.TransactionRental, back.Type())
	assert.Equal(t, property.Details.Budget(), back.Details.Budget())
	assert.Equal(t, property.Images, back.Images)
	assert.Nil(t, back.Review)
}
