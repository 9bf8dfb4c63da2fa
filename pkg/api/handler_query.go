package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/promsight/promsight/pkg/services"
)

// limitParam parses the optional limit query parameter. Zero means the
// service default.
func limitParam(c *gin.Context) int {
	v := c.Query("limit")
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (s *Server) listIncidentsHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	incidents, err := s.queries.ListIncidents(c.Request.Context(), userID, services.IncidentFilter{
		Severity: c.Query("severity"),
		Search:   c.Query("q"),
		Limit:    limitParam(c),
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (s *Server) getIncidentHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	incident, err := s.queries.GetIncident(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

func (s *Server) listAnomaliesHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	anomalies, err := s.queries.ListAnomalies(c.Request.Context(), userID, services.AnomalyFilter{
		IncidentID: c.Query("incident_id"),
		IP:         c.Query("ip"),
		Limit:      limitParam(c),
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, anomalies)
}

func (s *Server) listBatchesHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	batches, err := s.queries.ListBatches(c.Request.Context(), userID, limitParam(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

func (s *Server) listRCAHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	records, err := s.queries.ListRCA(c.Request.Context(), userID, limitParam(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) statsHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	stats, err := s.queries.TenantStats(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
