package entity

// State is a first-level administrative region from the region directory.
type State struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	ISO2 string `json:"iso2"`
}

// City belongs to a State.
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LocationSearchResult lists stations and sub-locations matching a query.
type LocationSearchResult struct {
	Stations     []string `json:"stations"`
	SubLocations []string `json:"subLocations"`
}
