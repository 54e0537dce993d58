package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teranos/lineage/analysis"
	"github.com/teranos/lineage/dataset"
	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/version"
)

func (s *Server) routes(r *gin.Engine) {
	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	api.GET("/graph", s.withSession(s.handleGraph))
	api.GET("/generations", s.withSession(s.handleGenerations))
	api.GET("/surnames", s.withSession(s.handleSurnames))
	api.GET("/surnames/counts", s.withSession(s.handleSurnameCounts))
	api.GET("/missing", s.withSession(s.handleMissing))
	api.GET("/ages", s.withSession(s.handleAges))
	api.GET("/places/births", s.withSession(s.handleBirthPlaces))
	api.GET("/places/deaths", s.withSession(s.handleDeathPlaces))
	api.GET("/report", s.withSession(s.handleReport))

	r.NoRoute(func(c *gin.Context) {
		writeError(c, errors.Wrapf(errors.ErrNotFound, "no route for %s", c.Request.URL.Path))
	})
}

type sessionHandler func(c *gin.Context, session *dataset.Session)

// withSession pins one session snapshot for the whole request
func (s *Server) withSession(h sessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := s.store.Current()
		if err != nil {
			writeError(c, err)
			return
		}
		h(c, session)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	resp := HealthResponse{
		Status:      "ok",
		ServerState: s.State().String(),
		Version:     version.Get().Short(),
	}
	if session, err := s.store.Current(); err == nil {
		resp.SessionID = session.ID
		resp.LoadedAt = session.LoadedAt
		resp.File = session.Path
		resp.Persons = len(session.Persons())
	} else {
		resp.Status = "no_data"
	}
	writeJSON(c, http.StatusOK, resp)
}

func (s *Server) handleGraph(c *gin.Context, session *dataset.Session) {
	writeJSON(c, http.StatusOK, session.Graph())
}

func (s *Server) handleGenerations(c *gin.Context, session *dataset.Session) {
	writeJSON(c, http.StatusOK, session.Generations())
}

func (s *Server) handleSurnames(c *gin.Context, session *dataset.Session) {
	writeJSON(c, http.StatusOK, session.Surnames())
}

func (s *Server) handleSurnameCounts(c *gin.Context, session *dataset.Session) {
	writeJSON(c, http.StatusOK, session.SurnameCounts())
}

func (s *Server) handleMissing(c *gin.Context, session *dataset.Session) {
	gen, err := optionalIntQuery(c, "generation")
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, session.Missing(analysis.MissingFilter{Generation: gen}))
}

func (s *Server) handleAges(c *gin.Context, session *dataset.Session) {
	writeJSON(c, http.StatusOK, session.Ages())
}

func (s *Server) handleBirthPlaces(c *gin.Context, session *dataset.Session) {
	persons := session.Persons()
	writeJSON(c, http.StatusOK, BirthPlacesResponse{
		Countries: analysis.BirthCountries(persons),
		Cities:    analysis.BirthCities(persons),
	})
}

func (s *Server) handleDeathPlaces(c *gin.Context, session *dataset.Session) {
	persons := session.Persons()
	resp := DeathPlacesResponse{Cities: analysis.DeathCities(persons)}
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		resp.City = city
		resp.Deaths = analysis.DeathsIn(persons, city)
	}
	writeJSON(c, http.StatusOK, resp)
}

func (s *Server) handleReport(c *gin.Context, session *dataset.Session) {
	writeJSON(c, http.StatusOK, session.Report())
}
