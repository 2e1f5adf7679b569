package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPropertyDetails(t *testing.T) {
	t.Parallel()

	possession := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		txType   TransactionType
		attrs    PropertyAttributes
		wantType TransactionType
		wantErr  []string
	}{
		{
			name:     "new launch with required fields",
			txType:   TransactionNew,
			attrs:    PropertyAttributes{PossessionDate: &possession, TotalPackage: 12500000},
			wantType: TransactionNew,
		},
		{
			name:    "new launch without package",
			txType:  TransactionNew,
			attrs:   PropertyAttributes{PossessionDate: &possession},
			wantErr: []string{"totalPackage is required for new properties"},
		},
		{
			name:     "resale with required fields",
			txType:   TransactionResale,
			attrs:    PropertyAttributes{ExpectedPrice: 9000000, FloorNo: "4", FlatNo: "402"},
			wantType: TransactionResale,
		},
		{
			name:   "resale missing everything",
			txType: TransactionResale,
			wantErr: []string{
				"expectedPrice is required for resale properties",
				"floorNo is required for resale properties",
				"flatNo is required for resale properties",
			},
		},
		{
			name:    "rental without deposit",
			txType:  TransactionRental,
			attrs:   PropertyAttributes{Rent: 35000, Furnishing: FurnishingSemi},
			wantErr: []string{"deposit is required for rental properties"},
		},
		{
			name:    "rental with unknown furnishing",
			txType:  TransactionRental,
			attrs:   PropertyAttributes{Rent: 35000, Deposit: 100000, Furnishing: "luxury"},
			wantErr: []string{"furnishing must be one of unfurnished, semifurnished, furnished"},
		},
		{
			name:    "unknown type",
			txType:  "lease",
			wantErr: []string{"type must be one of new, resale, rental"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			details, err := NewPropertyDetails(tt.txType, tt.attrs)
			if tt.wantErr != nil {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErr, verr.Problems)
				assert.Nil(t, details)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, details.TransactionType())
		})
	}
}

func TestPropertyDetails_Budget(t *testing.T) {
	assert.Equal(t, 12500000.0, NewLaunchDetails{TotalPackage: 12500000}.Budget())
	assert.Equal(t, 9000000.0, ResaleDetails{ExpectedPrice: 9000000}.Budget())
	assert.Equal(t, 35000.0, RentalDetails{Rent: 35000}.Budget())
}

func TestProperty_Validate(t *testing.T) {
	p := validProperty()
	assert.NoError(t, p.Validate())

	p.Station = " "
	p.Location = Coordinates{Latitude: 91, Longitude: 72.8}
	p.Category = "castle"

	var verr *ValidationError
	require.ErrorAs(t, p.Validate(), &verr)
	assert.Contains(t, verr.Problems, "station is required")
	assert.Contains(t, verr.Problems, "location coordinates are out of range")
	assert.Len(t, verr.Problems, 3)
}

func TestProperty_ApplyReview(t *testing.T) {
	p := validProperty()
	reviewer := uuid.New()
	at := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, p.ApplyReview(reviewer, ModerationApproved, "looks good", at))
	assert.Equal(t, ModerationApproved, p.Status)
	assert.Equal(t, reviewer, p.Review.ReviewedBy)
	assert.Equal(t, at, p.Review.ReviewedAt)

	err := p.ApplyReview(reviewer, ModerationPending, "", at)
	assert.Error(t, err)
	assert.Equal(t, ModerationApproved, p.Status)
}

func TestProperty_Access(t *testing.T) {
	owner := &User{ID: uuid.New(), Role: RoleBroker}
	other := &User{ID: uuid.New(), Role: RoleBroker}
	admin := &User{ID: uuid.New(), Role: RoleAdmin}

	p := validProperty()
	p.OwnerID = owner.ID

	assert.True(t, p.CanBeModifiedBy(owner))
	assert.True(t, p.CanBeModifiedBy(admin))
	assert.False(t, p.CanBeModifiedBy(other))
	assert.False(t, p.CanBeModifiedBy(nil))

	assert.False(t, p.IsVisibleTo(other))
	p.Status = ModerationApproved
	assert.True(t, p.IsVisibleTo(other))
}

func TestProperty_JSONKeepsDetailsVariant(t *testing.T) {
	p := validProperty()
	p.Details = RentalDetails{Rent: 35000, Deposit: 100000, Furnishing: FurnishingFull, Parking: ParkingCovered}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, "rental", flat["type"])
	assert.Equal(t, 100000.0, flat["deposit"])
	assert.NotContains(t, flat, "expectedPrice")

	var decoded Property
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p.Details, decoded.Details)
	assert.Equal(t, p.Station, decoded.Station)
}

func TestPropertyFilter_Params(t *testing.T) {
	cosmo := true
	minBudget := 1000.0
	f := PropertyFilter{Category: CategoryResidential, Station: "Andheri", IsCosmo: &cosmo, MinBudget: &minBudget}

	assert.Equal(t, map[string]string{
		"category":  "residential",
		"station":   "Andheri",
		"isCosmo":   "true",
		"minBudget": "1000",
	}, f.Params())
}

func validProperty() *Property {
	return &Property{
		ID:                uuid.New(),
		OwnerID:           uuid.New(),
		Category:          CategoryResidential,
		Status:            ModerationPending,
		BuildingOrSociety: "Sea Breeze",
		RoadOrLocation:    "Link Road",
		Station:           "Andheri",
		PropertyType:      "2 BHK",
		Location:          Coordinates{Latitude: 19.1197, Longitude: 72.8468},
		Details:           ResaleDetails{ExpectedPrice: 9000000, FloorNo: "4", FlatNo: "402"},
	}
}

func TestPropertyAttributes_Merge(t *testing.T) {
	base := PropertyAttributes{Rent: 20000, Deposit: 50000, Furnishing: FurnishingNone, Wing: "A"}
	rent := 25000.0
	furnishing := FurnishingFull

	merged := base.Merge(PropertyAttributesPatch{Rent: &rent, Furnishing: &furnishing})

	assert.Equal(t, 25000.0, merged.Rent)
	assert.Equal(t, 50000.0, merged.Deposit)
	assert.Equal(t, FurnishingFull, merged.Furnishing)
	assert.Equal(t, "A", merged.Wing)
	assert.Equal(t, 20000.0, base.Rent)
}

func TestPropertyAttributes_Merge_ExplicitZeroClears(t *testing.T) {
	base := PropertyAttributes{ExpectedPrice: 9000000, IsDirect: true, ContactName: "Ravi", FloorNo: "4"}
	direct := false
	empty := ""

	merged := base.Merge(PropertyAttributesPatch{IsDirect: &direct, ContactName: &empty})

	assert.False(t, merged.IsDirect)
	assert.Empty(t, merged.ContactName)
	assert.Equal(t, "4", merged.FloorNo)
	assert.Equal(t, 9000000.0, merged.ExpectedPrice)
}
