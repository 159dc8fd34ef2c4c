package valueobjects

type PriceUnit string

const (
	PriceUnitMillion PriceUnit = "million"
	PriceUnitBillion PriceUnit = "billion"
)

func (u PriceUnit) IsValid() bool {
	return u == PriceUnitMillion || u == PriceUnitBillion
}

// Multiplier converts a price in this unit to VND.
func (u PriceUnit) Multiplier() float64 {
	if u == PriceUnitBillion {
		return 1_000_000_000
	}
	return 1_000_000
}

type ListingType string

const (
	ListingTypeSell ListingType = "sell"
	ListingTypeRent ListingType = "rent"
)

func (t ListingType) IsValid() bool {
	return t == ListingTypeSell || t == ListingTypeRent
}

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeLand      PropertyType = "land"
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeOther     PropertyType = "other"
)

func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeLand, PropertyTypeVilla, PropertyTypeOther:
		return true
	}
	return false
}

// Metadata is the free-form attribute bag stored alongside a listing.
type Metadata struct {
	Amenities []string `json:"amenities"`
	Facing    string   `json:"facing,omitempty"`
	Legal     string   `json:"legal,omitempty"`
}
