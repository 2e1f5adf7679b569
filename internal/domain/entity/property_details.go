package entity

import "time"

// TransactionType is the discriminator of the details union.
type TransactionType string

const (
	TransactionNew    TransactionType = "new"
	TransactionResale TransactionType = "resale"
	TransactionRental TransactionType = "rental"
)

// IsValid checks if the TransactionType is a valid value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionNew, TransactionResale, TransactionRental:
		return true
	default:
		return false
	}
}

// Furnishing level of a rental.
type Furnishing string

const (
	FurnishingNone Furnishing = "unfurnished"
	FurnishingSemi Furnishing = "semifurnished"
	FurnishingFull Furnishing = "furnished"
)

// IsValid checks if the Furnishing is a valid value.
func (f Furnishing) IsValid() bool {
	return f == FurnishingNone || f == FurnishingSemi || f == FurnishingFull
}

// Parking available with a rental.
type Parking string

const (
	ParkingNone    Parking = "none"
	ParkingOpen    Parking = "open"
	ParkingCovered Parking = "covered"
)

// IsValid checks if the Parking is a valid value.
func (p Parking) IsValid() bool {
	return p == ParkingNone || p == ParkingOpen || p == ParkingCovered
}

// PropertyDetails is the type-specific part of a listing.
// Implemented by NewLaunchDetails, ResaleDetails and RentalDetails.
type PropertyDetails interface {
	TransactionType() TransactionType
	// Budget is the price compared against budget filters.
	Budget() float64
	// Attributes flattens the variant for the wire and storage forms.
	Attributes() PropertyAttributes
}

// PropertyAttributes is the flat union of every type-specific field.
type PropertyAttributes struct {
	PossessionDate *time.Time `json:"possessionDate,omitempty"`
	TotalPackage   float64    `json:"totalPackage,omitempty"`
	BrochureURL    string     `json:"brochureUrl,omitempty"`
	VideoURL       string     `json:"videoUrl,omitempty"`

	ExpectedPrice float64 `json:"expectedPrice,omitempty"`
	FloorNo       string  `json:"floorNo,omitempty"`
	FlatNo        string  `json:"flatNo,omitempty"`
	ContactName   string  `json:"contactName,omitempty"`
	ContactNumber string  `json:"contactNumber,omitempty"`
	IsDirect      bool    `json:"isDirect,omitempty"`

	Rent           float64    `json:"rent,omitempty"`
	Deposit        float64    `json:"deposit,omitempty"`
	Furnishing     Furnishing `json:"furnishing,omitempty"`
	BuildingNo     string     `json:"buildingNo,omitempty"`
	TotalFloors    int        `json:"totalFloors,omitempty"`
	Wing           string     `json:"wing,omitempty"`
	PropertyAge    int        `json:"propertyAge,omitempty"`
	Parking        Parking    `json:"parking,omitempty"`
	AvailableFrom  *time.Time `json:"availableFrom,omitempty"`
	Ownership      string     `json:"ownership,omitempty"`
	MasterBedrooms int        `json:"masterBedrooms,omitempty"`
}

// NewLaunchDetails describes an under-construction or newly launched project.
type NewLaunchDetails struct {
	PossessionDate time.Time
	TotalPackage   float64
	BrochureURL    string
	VideoURL       string
}

func (d NewLaunchDetails) TransactionType() TransactionType { return TransactionNew }
func (d NewLaunchDetails) Budget() float64                  { return d.TotalPackage }

func (d NewLaunchDetails) Attributes() PropertyAttributes {
	a := PropertyAttributes{
		TotalPackage: d.TotalPackage,
		BrochureURL:  d.BrochureURL,
		VideoURL:     d.VideoURL,
	}
	if !d.PossessionDate.IsZero() {
		possession := d.PossessionDate
		a.PossessionDate = &possession
	}

	return a
}

// ResaleDetails describes a unit offered for resale.
type ResaleDetails struct {
	ExpectedPrice float64
	FloorNo       string
	FlatNo        string
	ContactName   string
	ContactNumber string
	IsDirect      bool
}

func (d ResaleDetails) TransactionType() TransactionType { return TransactionResale }
func (d ResaleDetails) Budget() float64                  { return d.ExpectedPrice }

func (d ResaleDetails) Attributes() PropertyAttributes {
	return PropertyAttributes{
		ExpectedPrice: d.ExpectedPrice,
		FloorNo:       d.FloorNo,
		FlatNo:        d.FlatNo,
		ContactName:   d.ContactName,
		ContactNumber: d.ContactNumber,
		IsDirect:      d.IsDirect,
	}
}

// RentalDetails describes a unit offered for rent.
type RentalDetails struct {
	Rent           float64
	Deposit        float64
	Furnishing     Furnishing
	BuildingNo     string
	TotalFloors    int
	Wing           string
	PropertyAge    int
	Parking        Parking
	AvailableFrom  *time.Time
	Ownership      string
	MasterBedrooms int
}

func (d RentalDetails) TransactionType() TransactionType { return TransactionRental }
func (d RentalDetails) Budget() float64                  { return d.Rent }

func (d RentalDetails) Attributes() PropertyAttributes {
	return PropertyAttributes{
		Rent:           d.Rent,
		Deposit:        d.Deposit,
		Furnishing:     d.Furnishing,
		BuildingNo:     d.BuildingNo,
		TotalFloors:    d.TotalFloors,
		Wing:           d.Wing,
		PropertyAge:    d.PropertyAge,
		Parking:        d.Parking,
		AvailableFrom:  d.AvailableFrom,
		Ownership:      d.Ownership,
		MasterBedrooms: d.MasterBedrooms,
	}
}

// NewPropertyDetails builds and validates the variant for t. Zero values count
// as missing; the returned *ValidationError names every missing field.
func NewPropertyDetails(t TransactionType, a PropertyAttributes) (PropertyDetails, error) {
	verr := &ValidationError{}
	required := func(name string, present bool) {
		if !present {
			verr.add(name + " is required for " + string(t) + " properties")
		}
	}

	switch t {
	case TransactionNew:
		required("possessionDate", a.PossessionDate != nil && !a.PossessionDate.IsZero())
		required("totalPackage", a.TotalPackage > 0)
	case TransactionResale:
		required("expectedPrice", a.ExpectedPrice > 0)
		required("floorNo", a.FloorNo != "")
		required("flatNo", a.FlatNo != "")
	case TransactionRental:
		required("rent", a.Rent > 0)
		required("deposit", a.Deposit > 0)
		required("furnishing", a.Furnishing != "")
		if a.Furnishing != "" && !a.Furnishing.IsValid() {
			verr.add("furnishing must be one of unfurnished, semifurnished, furnished")
		}
		if a.Parking != "" && !a.Parking.IsValid() {
			verr.add("parking must be one of none, open, covered")
		}
	default:
		verr.add("type must be one of new, resale, rental")
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return DetailsFromAttributes(t, a), nil
}

// DetailsFromAttributes rebuilds a variant without validation, for rehydrating
// stored records. It returns nil for an unknown type.
func DetailsFromAttributes(t TransactionType, a PropertyAttributes) PropertyDetails {
	switch t {
	case TransactionNew:
		d := NewLaunchDetails{
			TotalPackage: a.TotalPackage,
			BrochureURL:  a.BrochureURL,
			VideoURL:     a.VideoURL,
		}
		if a.PossessionDate != nil {
			d.PossessionDate = *a.PossessionDate
		}

		return d
	case TransactionResale:
		return ResaleDetails{
			ExpectedPrice: a.ExpectedPrice,
			FloorNo:       a.FloorNo,
			FlatNo:        a.FlatNo,
			ContactName:   a.ContactName,
			ContactNumber: a.ContactNumber,
			IsDirect:      a.IsDirect,
		}
	case TransactionRental:
		return RentalDetails{
			Rent:           a.Rent,
			Deposit:        a.Deposit,
			Furnishing:     a.Furnishing,
			BuildingNo:     a.BuildingNo,
			TotalFloors:    a.TotalFloors,
			Wing:           a.Wing,
			PropertyAge:    a.PropertyAge,
			Parking:        a.Parking,
			AvailableFrom:  a.AvailableFrom,
			Ownership:      a.Ownership,
			MasterBedrooms: a.MasterBedrooms,
		}
	default:
		return nil
	}
}

// PropertyAttributesPatch is a partial update of PropertyAttributes. A nil
// field keeps the stored value; a non-nil zero value clears it.
type PropertyAttributesPatch struct {
	PossessionDate *time.Time `json:"possessionDate,omitempty"`
	TotalPackage   *float64   `json:"totalPackage,omitempty"`
	BrochureURL    *string    `json:"brochureUrl,omitempty"`
	VideoURL       *string    `json:"videoUrl,omitempty"`

	ExpectedPrice *float64 `json:"expectedPrice,omitempty"`
	FloorNo       *string  `json:"floorNo,omitempty"`
	FlatNo        *string  `json:"flatNo,omitempty"`
	ContactName   *string  `json:"contactName,omitempty"`
	ContactNumber *string  `json:"contactNumber,omitempty"`
	IsDirect      *bool    `json:"isDirect,omitempty"`

	Rent           *float64    `json:"rent,omitempty"`
	Deposit        *float64    `json:"deposit,omitempty"`
	Furnishing     *Furnishing `json:"furnishing,omitempty"`
	BuildingNo     *string     `json:"buildingNo,omitempty"`
	TotalFloors    *int        `json:"totalFloors,omitempty"`
	Wing           *string     `json:"wing,omitempty"`
	PropertyAge    *int        `json:"propertyAge,omitempty"`
	Parking        *Parking    `json:"parking,omitempty"`
	AvailableFrom  *time.Time  `json:"availableFrom,omitempty"`
	Ownership      *string     `json:"ownership,omitempty"`
	MasterBedrooms *int        `json:"masterBedrooms,omitempty"`
}

// Merge applies the set fields of patch onto a.
func (a PropertyAttributes) Merge(patch PropertyAttributesPatch) PropertyAttributes {
	if patch.PossessionDate != nil {
		a.PossessionDate = patch.PossessionDate
	}
	overlay(&a.TotalPackage, patch.TotalPackage)
	overlay(&a.BrochureURL, patch.BrochureURL)
	overlay(&a.VideoURL, patch.VideoURL)

	overlay(&a.ExpectedPrice, patch.ExpectedPrice)
	overlay(&a.FloorNo, patch.FloorNo)
	overlay(&a.FlatNo, patch.FlatNo)
	overlay(&a.ContactName, patch.ContactName)
	overlay(&a.ContactNumber, patch.ContactNumber)
	overlay(&a.IsDirect, patch.IsDirect)

	overlay(&a.Rent, patch.Rent)
	overlay(&a.Deposit, patch.Deposit)
	overlay(&a.Furnishing, patch.Furnishing)
	overlay(&a.BuildingNo, patch.BuildingNo)
	overlay(&a.TotalFloors, patch.TotalFloors)
	overlay(&a.Wing, patch.Wing)
	overlay(&a.PropertyAge, patch.PropertyAge)
	overlay(&a.Parking, patch.Parking)
	if patch.AvailableFrom != nil {
		a.AvailableFrom = patch.AvailableFrom
	}
	overlay(&a.Ownership, patch.Ownership)
	overlay(&a.MasterBedrooms, patch.MasterBedrooms)

	return a
}

func overlay[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
