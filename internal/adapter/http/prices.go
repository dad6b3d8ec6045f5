package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/service"
)

func (s *Server) handleQueryPrices(c *gin.Context) {
	q := service.PriceQuery{
		Filter: domain.PriceFilter{
			Commodity: c.Query("commodity"),
			State:     c.Query("state"),
			District:  c.Query("district"),
		},
		SortBy: domain.PriceSortField(c.Query("sort_by")),
		Order:  domain.SortOrder(c.DefaultQuery("order", string(domain.SortAsc))),
	}

	result := s.prices.Query(c.Request.Context(), q)

	// A limit applies after sorting so the caller gets the top of the order.
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		if limit < len(result.Records) {
			result.Records = result.Records[:limit]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"records": result.Records,
		"source":  result.Source,
		"count":   len(result.Records),
	})
}

func (s *Server) handleListCommodities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commodities": s.prices.Commodities()})
}

func (s *Server) handleListStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": s.prices.States()})
}

func (s *Server) handleListDistricts(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "districts": s.prices.Districts(state)})
}
