package baxus

// listingHit is a single search hit from the listings API.
type listingHit struct {
	Source listingSource `json:"_source"`
}

// listingSource is the listing document inside a search hit. Attribute keys
// ("Producer", "Year Bottled", "ABV") are free-form and may be absent.
type listingSource struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Price      float64           `json:"price"`
	ImageURL   string            `json:"imageUrl"`
	Attributes map[string]string `json:"attributes"`
}
