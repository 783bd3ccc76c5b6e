package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theoremus-urban-solutions/journey-planner/formatter"
	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

type journeyQuery struct {
	From    string `form:"from" binding:"required"`
	To      string `form:"to" binding:"required"`
	Results int    `form:"results" binding:"omitempty,min=1"`
	Format  string `form:"format" binding:"omitempty,oneof=json xml"`
}

type healthResponse struct {
	Status      string              `json:"status"`
	Stations    int                 `json:"stations"`
	Connections int                 `json:"connections"`
	LoadedAt    string              `json:"loaded_at,omitempty"`
	Cache       *planner.CacheStats `json:"cache,omitempty"`
}

type reloadResponse struct {
	Status   string `json:"status"`
	Stations int    `json:"stations"`
	LoadedAt string `json:"loaded_at"`
}

// HandleHealth reports service status and the size of the loaded network.
func HandleHealth(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := healthResponse{Status: "ok"}
		if n := d.Dataset.Network(); n != nil {
			resp.Stations = n.StationCount()
			resp.Connections = n.ConnectionCount()
			resp.LoadedAt = d.Dataset.LoadedAt().UTC().Format(time.RFC3339)
		}
		if d.Cache != nil {
			stats := d.Cache.Stats()
			resp.Cache = &stats
		}
		c.JSON(http.StatusOK, resp)
	}
}

// HandlePlanJourneys plans journeys between the from and to stations.
// A results value above d.MaxResults is rejected rather than clamped.
func HandlePlanJourneys(d Deps) gin.HandlerFunc {
	rb := formatter.NewResponseBuilder(false)
	maxResults := d.MaxResults
	if maxResults <= 0 {
		maxResults = planner.DefaultMaxResultCount
	}
	return func(c *gin.Context) {
		var q journeyQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: codeBadRequest, Message: err.Error()})
			return
		}
		if q.Results > maxResults {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
				Error:   codeBadRequest,
				Message: fmt.Sprintf("results must be at most %d", maxResults),
			})
			return
		}

		journeys, err := d.Planner.Plan(c.Request.Context(), q.From, q.To, q.Results)
		if err != nil {
			abortWithError(c, err)
			return
		}

		origin, dest, err := d.endpoints(c, q, journeys)
		if err != nil {
			abortWithError(c, err)
			return
		}

		res := formatter.WrapPlanResponse(origin, dest, journeys, time.Now())
		if q.Format == formatter.FormatXML {
			c.Data(http.StatusOK, "application/xml; charset=utf-8", rb.BuildXML(res))
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// endpoints returns the stations a plan ran between. Journeys carry the
// stations the planner resolved; an empty plan needs a fresh lookup.
func (d Deps) endpoints(c *gin.Context, q journeyQuery, journeys []planner.Journey) (network.Station, network.Station, error) {
	if len(journeys) > 0 {
		return journeys[0].Origin, journeys[0].Destination, nil
	}
	origin, err := d.station(c, q.From)
	if err != nil {
		return network.Station{}, network.Station{}, err
	}
	dest, err := d.station(c, q.To)
	if err != nil {
		return network.Station{}, network.Station{}, err
	}
	return origin, dest, nil
}

// HandleListStations returns every station of the loaded network.
func HandleListStations(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		stations := []network.Station{}
		if n := d.Dataset.Network(); n != nil {
			stations = n.Stations()
		}
		c.JSON(http.StatusOK, gin.H{"stations": stations, "count": len(stations)})
	}
}

// HandleGetStation looks up a station by code.
func HandleGetStation(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := d.station(c, c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// HandleReload reloads the dataset. Registered listeners, such as the
// journey cache, are notified by the dataset.
func HandleReload(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.Dataset.Reload(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: codeReloadFailed, Message: err.Error()})
			return
		}
		n := d.Dataset.Network()
		c.JSON(http.StatusOK, reloadResponse{
			Status:   "reloaded",
			Stations: n.StationCount(),
			LoadedAt: d.Dataset.LoadedAt().UTC().Format(time.RFC3339),
		})
	}
}

// station resolves code through the dataset, reporting a missing station as
// a StationNotFoundError.
func (d Deps) station(c *gin.Context, code string) (network.Station, error) {
	s, ok, err := d.Dataset.Station(c.Request.Context(), code)
	if err != nil {
		return network.Station{}, err
	}
	if !ok {
		return network.Station{}, &planner.StationNotFoundError{Code: network.NormalizeCode(code)}
	}
	return s, nil
}
