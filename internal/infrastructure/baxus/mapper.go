package baxus

import "github.com/dramfinder/backend/internal/domain"

// Attribute keys used by the listings API
const (
	attrProducer    = "Producer"
	attrYearBottled = "Year Bottled"
	attrABV         = "ABV"
)

// mapListing converts a raw listing document to a domain CatalogEntry.
// Every optional field defaults to its zero value; entries are never dropped
// for missing attributes.
func mapListing(src listingSource) domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:          src.ID,
		Name:        src.Name,
		Price:       src.Price,
		Producer:    src.Attributes[attrProducer],
		YearBottled: src.Attributes[attrYearBottled],
		ABV:         src.Attributes[attrABV],
		ImageURL:    src.ImageURL,
	}
}
