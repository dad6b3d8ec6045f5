package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishikendra/agri-data-service/internal/domain"
)

func (s *Server) handleListSchemes(c *gin.Context) {
	govType := c.Query("government_type")
	if govType != "" && govType != domain.FilterAll && !domain.GovernmentType(govType).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "government_type must be Central, State, or All"})
		return
	}

	f := domain.SchemeFilter{
		State:          c.Query("state"),
		GovernmentType: govType,
		Keyword:        c.Query("q"),
	}
	records := s.schemes.List(f, domain.SchemeSortField(c.Query("sort_by")))
	c.JSON(http.StatusOK, gin.H{"schemes": records, "count": len(records)})
}

func (s *Server) handleGetScheme(c *gin.Context) {
	scheme, ok := s.schemes.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "scheme not found"})
		return
	}
	c.JSON(http.StatusOK, scheme)
}

func (s *Server) handleSchemeStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": s.schemes.StatesWithSchemes()})
}
