package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/catalog"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/engine"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
	alertService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/alert"
	favoriteService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/favorite"
	priceHistoryService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/pricehistory"
	rankingService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/ranking"
	reviewService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/review"
	shareService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/share"
)

type APIHandler struct {
	log       *logrus.Logger
	catalog   *catalog.Catalog
	rankings  *rankingService.Service
	favorites *favoriteService.Service
	reviews   *reviewService.Service
	alerts    *alertService.Service
	share     *shareService.Service
	history   *priceHistoryService.Generator
}

func NewHandler(
	log *logrus.Logger,
	cat *catalog.Catalog,
	rankings *rankingService.Service,
	favorites *favoriteService.Service,
	reviews *reviewService.Service,
	alerts *alertService.Service,
	share *shareService.Service,
	history *priceHistoryService.Generator,
) *APIHandler {
	return &APIHandler{
		log:       log,
		catalog:   cat,
		rankings:  rankings,
		favorites: favorites,
		reviews:   reviews,
		alerts:    alerts,
		share:     share,
		history:   history,
	}
}

func SetupRoutes(r *gin.RouterGroup, h *APIHandler) {
	// Catalog routes
	cat := r.Group("/catalog")
	{
		cat.GET("/sneakers", h.GetSneakers)
		cat.GET("/sneakers/:id", h.GetSneaker)
		cat.GET("/sneakers/:id/history", h.GetPriceHistory)
		cat.GET("/options", h.GetFilterOptions)
	}

	r.POST("/compare", h.CompareSneakers)

	// Ranking routes
	rankings := r.Group("/rankings")
	{
		rankings.GET("", h.GetRankings)
		rankings.GET("/top", h.GetTopRankings)
		rankings.GET("/:id", h.GetSneakerRanking)
	}

	// Favorites routes
	favorites := r.Group("/favorites")
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("/:id/toggle", h.ToggleFavorite)
		favorites.DELETE("/:id", h.RemoveFavorite)
		favorites.DELETE("", h.ClearFavorites)
	}

	// Review routes
	r.GET("/sneakers/:id/reviews", h.GetReviews)
	r.POST("/sneakers/:id/reviews", h.CreateReview)
	r.DELETE("/reviews/:id", h.DeleteReview)
	r.POST("/reviews/:id/helpful", h.MarkReviewHelpful)

	// Alert routes
	alerts := r.Group("/alerts")
	{
		alerts.GET("", h.GetAlerts)
		alerts.POST("", h.CreateAlert)
		alerts.POST("/check", h.CheckAlerts)
		alerts.POST("/:id/reset", h.ResetAlert)
		alerts.DELETE("/:id", h.DeleteAlert)
	}

	// Share routes
	shareGroup := r.Group("/share")
	{
		shareGroup.GET("/compare", h.ShareCompare)
		shareGroup.GET("/rankings", h.ShareRankings)
	}
}

// Catalog handlers

func (h *APIHandler) GetSneakers(c *gin.Context) {
	criteria := parseCriteria(c)
	sneakers := engine.Filter(h.catalog.All(), criteria)

	if sortBy := c.Query("sort_by"); sortBy != "" {
		dir := engine.Ascending
		if c.DefaultQuery("order", "asc") == "desc" {
			dir = engine.Descending
		}
		sneakers = engine.Sort(sneakers, engine.SortKey(sortBy), dir)
	}

	if sneakers == nil {
		sneakers = []models.SneakerRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"sneakers": sneakers,
		"total":    len(sneakers),
	})
}

func (h *APIHandler) GetSneaker(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sneaker id"})
		return
	}

	sneaker, ok := h.catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sneaker not found"})
		return
	}

	h.rankings.RecordView(id)
	c.JSON(http.StatusOK, gin.H{"sneaker": sneaker})
}

func (h *APIHandler) GetPriceHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sneaker id"})
		return
	}

	sneaker, ok := h.catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sneaker not found"})
		return
	}

	series := h.history.Generate(sneaker.ID, sneaker.Price, sneaker.ResalePrice, sneaker.Premium, sneaker.Demand)
	c.JSON(http.StatusOK, gin.H{
		"history": series,
		"stats":   priceHistoryService.Stats(series),
	})
}

func (h *APIHandler) GetFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": h.catalog.Options()})
}

func (h *APIHandler) CompareSneakers(c *gin.Context) {
	var request struct {
		IDs []int `json:"ids"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(request.IDs) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select at least two sneakers to compare"})
		return
	}

	sneakers := make([]models.SneakerRecord, 0, len(request.IDs))
	for _, id := range request.IDs {
		sneaker, ok := h.catalog.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sneaker not found"})
			return
		}
		sneakers = append(sneakers, sneaker)
	}

	h.rankings.RecordCompare(request.IDs)

	link := h.share.CompareLink(request.IDs)
	c.JSON(http.StatusOK, gin.H{
		"sneakers": sneakers,
		"link":     link,
		"report":   shareService.CompareReport(sneakers, ""),
	})
}

// Ranking handlers

func (h *APIHandler) GetRankings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rankings": h.rankings.Rankings()})
}

func (h *APIHandler) GetTopRankings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	c.JSON(http.StatusOK, gin.H{"rankings": h.rankings.Top(limit)})
}

func (h *APIHandler) GetSneakerRanking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sneaker id"})
		return
	}

	ranking, ok := h.rankings.For(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No ranking for sneaker"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ranking": ranking})
}

// Favorites handlers

func (h *APIHandler) GetFavorites(c *gin.Context) {
	ids := h.favorites.All()
	sneakers := make([]models.SneakerRecord, 0, len(ids))
	for _, id := range ids {
		if sneaker, ok := h.catalog.Get(id); ok {
			sneakers = append(sneakers, sneaker)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"favorites": ids,
		"sneakers":  sneakers,
		"count":     len(ids),
	})
}

func (h *APIHandler) ToggleFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sneaker id"})
		return
	}
	if _, ok := h.catalog.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sneaker not found"})
		return
	}

	favorited := h.favorites.Toggle(id)
	h.rankings.RecordFavorite(id, favorited)
	c.JSON(http.StatusOK, gin.H{
		"favorited": favorited,
		"favorites": h.favorites.All(),
	})
}

func (h *APIHandler) RemoveFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sneaker id"})
		return
	}

	if h.favorites.IsFavorite(id) {
		h.favorites.Remove(id)
		h.rankings.RecordFavorite(id, false)
	}
	c.JSON(http.StatusOK, gin.H{"favorites": h.favorites.All()})
}

func (h *APIHandler) ClearFavorites(c *gin.Context) {
	h.favorites.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Favorites cleared"})
}

// Review handlers

func (h *APIHandler) GetReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sneaker id"})
		return
	}

	reviews := h.reviews.ForSneaker(id)
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"summary": h.reviews.Summary(id),
	})
}

func (h *APIHandler) CreateReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sneaker id"})
		return
	}
	if _, ok := h.catalog.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sneaker not found"})
		return
	}

	var sub reviewService.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.Add(id, sub)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *APIHandler) DeleteReview(c *gin.Context) {
	if err := h.reviews.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *APIHandler) MarkReviewHelpful(c *gin.Context) {
	review, err := h.reviews.MarkHelpful(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

// Alert handlers

func (h *APIHandler) GetAlerts(c *gin.Context) {
	var alerts []models.PriceAlert
	switch c.Query("state") {
	case "active":
		alerts = h.alerts.Active()
	case "triggered":
		alerts = h.alerts.Triggered()
	default:
		alerts = h.alerts.All()
	}
	if alerts == nil {
		alerts = []models.PriceAlert{}
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func (h *APIHandler) CreateAlert(c *gin.Context) {
	var request struct {
		SneakerID   int     `json:"sneaker_id"`
		TargetPrice float64 `json:"target_price"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sneaker, ok := h.catalog.Get(request.SneakerID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sneaker not found"})
		return
	}

	alert, err := h.alerts.Create(sneaker, request.TargetPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"alert": alert})
}

func (h *APIHandler) CheckAlerts(c *gin.Context) {
	var request struct {
		SneakerID    int     `json:"sneaker_id"`
		CurrentPrice float64 `json:"current_price"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	triggered := h.alerts.Check(request.SneakerID, request.CurrentPrice)
	if triggered == nil {
		triggered = []models.PriceAlert{}
	}
	c.JSON(http.StatusOK, gin.H{"triggered": triggered})
}

func (h *APIHandler) ResetAlert(c *gin.Context) {
	alert, err := h.alerts.Reset(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alert": alert})
}

func (h *APIHandler) DeleteAlert(c *gin.Context) {
	if err := h.alerts.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert deleted"})
}

// Share handlers

func (h *APIHandler) ShareCompare(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil || len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids must be a comma-separated list of sneaker ids"})
		return
	}

	sneakers := make([]models.SneakerRecord, 0, len(ids))
	for _, id := range ids {
		sneaker, ok := h.catalog.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sneaker not found"})
			return
		}
		sneakers = append(sneakers, sneaker)
	}

	link := h.share.CompareLink(ids)
	report := shareService.CompareReport(sneakers, "")
	c.JSON(http.StatusOK, gin.H{
		"link":      link,
		"report":    report,
		"platforms": h.share.PlatformLinks("Sneaker Comparison", report, link),
	})
}

func (h *APIHandler) ShareRankings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries := make([]shareService.RankingEntry, 0, limit)
	for _, r := range h.rankings.Top(limit) {
		sneaker, ok := h.catalog.Get(r.ID)
		if !ok {
			continue
		}
		entries = append(entries, shareService.RankingEntry{
			Model:       sneaker.Model,
			Brand:       sneaker.Brand,
			Score:       r.TotalScore,
			Favorites:   r.FavoriteCount,
			Comparisons: r.CompareCount,
		})
	}

	link := h.share.RankingsLink()
	report := shareService.RankingsReport(entries)
	c.JSON(http.StatusOK, gin.H{
		"link":      link,
		"report":    report,
		"platforms": h.share.PlatformLinks("Sneaker Community Rankings", report, link),
	})
}

// parseCriteria reads filter parameters from the query string, falling
// back to the inactive defaults for anything omitted.
func parseCriteria(c *gin.Context) models.FilterCriteria {
	criteria := models.DefaultCriteria()

	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil {
		criteria.PriceRange[0] = v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil {
		criteria.PriceRange[1] = v
	}
	if v, err := strconv.Atoi(c.Query("premium_min")); err == nil {
		criteria.PremiumRange[0] = v
	}
	if v, err := strconv.Atoi(c.Query("premium_max")); err == nil {
		criteria.PremiumRange[1] = v
	}

	criteria.Uses = c.QueryArray("use")
	criteria.Brands = c.QueryArray("brand")
	criteria.Styles = c.QueryArray("style")
	criteria.DemandLevels = c.QueryArray("demand")
	criteria.Genders = c.QueryArray("gender")
	criteria.Statuses = c.QueryArray("status")
	return criteria
}

func parseIDList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
