package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/presets"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
	"github.com/Zander1983/WindAndSolar/pkg/validation"
)

// sizeRequest is the body of /api/size and /api/validate. Inputs default to
// the named preset's when omitted; parameters absent from the body keep
// their defaults.
type sizeRequest struct {
	Assumptions string               `json:"assumptions"`
	Preset      string               `json:"preset"`
	Inputs      *spec.SectorInputs   `json:"inputs"`
	Parameters  spec.ModelParameters `json:"parameters"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.hub.ClientCount(),
		"cache":    s.cache.stats(),
	})
}

func (s *Server) handleSize(c *gin.Context) {
	snap, ok := s.bindSnapshot(c)
	if !ok {
		return
	}
	out, err := s.sizer.size(snap)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := http.StatusOK
	if out.Result == nil {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, out)
}

func (s *Server) handleValidate(c *gin.Context) {
	snap, ok := s.bindSnapshot(c)
	if !ok {
		return
	}
	report := validation.ValidateScenario(&spec.Scenario{
		Assumptions: snap.Assumptions,
		Inputs:      snap.Inputs,
		Parameters:  snap.Parameters,
	})
	c.JSON(http.StatusOK, report)
}

// bindSnapshot decodes a sizeRequest into a snapshot, writing the error
// response itself when it cannot.
func (s *Server) bindSnapshot(c *gin.Context) (snapshot, bool) {
	req := sizeRequest{
		Assumptions: s.cfg.Assumptions,
		Parameters:  spec.DefaultParameters(),
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return snapshot{}, false
	}

	snap := snapshot{Assumptions: req.Assumptions, Parameters: req.Parameters}
	switch {
	case req.Inputs != nil:
		snap.Inputs = *req.Inputs
	case req.Preset != "":
		sc, err := s.presets.Get(req.Preset)
		if err != nil {
			s.presetError(c, err)
			return snapshot{}, false
		}
		snap.Inputs = sc.Inputs
	}
	return snap, true
}

func (s *Server) handleListPresets(c *gin.Context) {
	list, err := s.presets.List()
	if err != nil {
		s.log.Error("listing presets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list presets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"presets": list})
}

func (s *Server) handleGetPreset(c *gin.Context) {
	sc, err := s.presets.Get(c.Param("name"))
	if err != nil {
		s.presetError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (s *Server) presetError(c *gin.Context, err error) {
	if errors.Is(err, presets.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.log.Error("loading preset", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preset"})
}

func (s *Server) handleListAssumptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":  s.cfg.Assumptions,
		"versions": assumptions.Versions(),
	})
}

func (s *Server) handleGetAssumptions(c *gin.Context) {
	set, err := assumptions.Lookup(c.Param("version"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, set)
}
