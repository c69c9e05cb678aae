package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dramfinder/backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// Badge colors shown by the extension icon
const (
	badgeColorMatch   = "#4caf50"
	badgeColorNoMatch = "#f44336"
)

// Comparer is the comparison usecase consumed by the handlers
type Comparer interface {
	Evaluate(ctx context.Context, product domain.ScrapedProduct) (*domain.Comparison, error)
	Alternatives(ctx context.Context, product domain.ScrapedProduct) ([]domain.Alternative, error)
	EvaluateURL(ctx context.Context, pageURL string) (*domain.Comparison, error)
}

// CatalogStatus exposes the synchronizer state for the status endpoint
type CatalogStatus interface {
	State() domain.CatalogState
	Current() *domain.Catalog
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	comparer Comparer
	catalog  CatalogStatus
}

// NewHandler creates a new HTTP handler
func NewHandler(comparer Comparer, catalog CatalogStatus) *Handler {
	return &Handler{
		comparer: comparer,
		catalog:  catalog,
	}
}

// productRequest is the scraped product supplied by the extension
type productRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// scrapeURLRequest asks the backend to scrape the page itself
type scrapeURLRequest struct {
	URL string `json:"url" binding:"required"`
}

// badge is the compact status consumed by the extension's badge layer
type badge struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dramfinder-backend",
		"version": "1.0.0",
	})
}

// Compare evaluates a scraped product against the catalog and reports the
// best match plus the potential savings.
func (h *Handler) Compare(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product := domain.ScrapedProduct{Name: req.Name, Price: req.Price}
	comparison, err := h.comparer.Evaluate(c.Request.Context(), product)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comparisonResponse(comparison))
}

// Alternatives returns every acceptable catalog listing, cheapest first
func (h *Handler) Alternatives(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product := domain.ScrapedProduct{Name: req.Name, Price: req.Price}
	alternatives, err := h.comparer.Alternatives(c.Request.Context(), product)
	if err != nil {
		h.writeError(c, err)
		return
	}

	summary := badge{Text: "0", Color: badgeColorNoMatch}
	if len(alternatives) > 0 {
		summary = badge{Text: strconv.Itoa(len(alternatives)), Color: badgeColorMatch}
	}

	c.JSON(http.StatusOK, gin.H{
		"alternatives": alternatives,
		"count":        len(alternatives),
		"badge":        summary,
	})
}

// ScrapeAndCompare scrapes the page via the remote scrape service, then
// evaluates the extracted product.
func (h *Handler) ScrapeAndCompare(c *gin.Context) {
	var req scrapeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comparison, err := h.comparer.EvaluateURL(c.Request.Context(), req.URL)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comparisonResponse(comparison))
}

// CatalogStatus reports the synchronizer state and snapshot freshness
func (h *Handler) CatalogStatus(c *gin.Context) {
	status := gin.H{
		"state":      h.catalog.State(),
		"totalCount": 0,
	}
	if catalog := h.catalog.Current(); catalog != nil {
		status["totalCount"] = catalog.Len()
		status["lastUpdated"] = catalog.LastUpdated
	}
	c.JSON(http.StatusOK, status)
}

// comparisonResponse shapes a Comparison for the extension, including the
// badge summary the icon layer consumes.
func comparisonResponse(comparison *domain.Comparison) gin.H {
	summary := badge{Text: "0", Color: badgeColorNoMatch}
	if comparison.Match != nil {
		summary = badge{Text: "1", Color: badgeColorMatch}
	}

	return gin.H{
		"product": comparison.Product,
		"match":   comparison.Match,
		"savings": comparison.Savings,
		"badge":   summary,
	}
}

// writeError maps domain errors to HTTP statuses. The caller always receives
// a definite outcome; only invalid-product and catalog-unavailable cross this
// boundary as client-visible failures.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidProduct):
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not detect a product to compare"})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not available yet, try again shortly"})
	case errors.Is(err, domain.ErrScrapeFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "scrape service failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
