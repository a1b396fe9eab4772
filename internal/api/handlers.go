package api

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dealscope/server/internal/models"
	"dealscope/server/internal/pipeline"
	"dealscope/server/internal/store"
)

type Handler struct {
	store  *store.Store
	runner *pipeline.Runner
	logger *logrus.Logger
}

func NewHandler(st *store.Store, runner *pipeline.Runner, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Handler{
		store:  st,
		runner: runner,
		logger: logger,
	}
}

// GetVerdicts returns all verdict records ordered by rank.
func (h *Handler) GetVerdicts(c *gin.Context) {
	verdicts, err := h.store.ListVerdicts(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list verdicts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list verdicts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(verdicts),
		"verdicts": verdicts,
	})
}

// GetEvaluation returns the full evaluation for one deal: repair assessment,
// market signal, the five strategy results, verdict and buyer matches.
func (h *Handler) GetEvaluation(c *gin.Context) {
	dealID := c.Param("id")
	evaluation, err := h.store.GetEvaluation(c.Request.Context(), dealID)
	if err != nil {
		h.logger.WithError(err).WithField("deal_id", dealID).Warn("Evaluation not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "deal not found"})
		return
	}
	c.JSON(http.StatusOK, evaluation)
}

// GetMatches returns the stored buyer matches for one deal, best first.
func (h *Handler) GetMatches(c *gin.Context) {
	dealID := c.Param("id")
	matches, err := h.store.ListMatches(c.Request.Context(), dealID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list matches")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list matches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deal_id": dealID,
		"count":   len(matches),
		"matches": matches,
	})
}

// GetBuyers returns all active buyers.
func (h *Handler) GetBuyers(c *gin.Context) {
	buyers, err := h.store.ListActiveBuyers(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list buyers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list buyers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(buyers),
		"buyers": buyers,
	})
}

// UpsertDeals ingests a batch of normalized deal records.
func (h *Handler) UpsertDeals(c *gin.Context) {
	var deals []models.Deal
	if err := c.ShouldBindJSON(&deals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deal payload"})
		return
	}

	accepted := make([]models.Deal, 0, len(deals))
	skipped := 0
	for i := range deals {
		if err := deals[i].Normalize(); err != nil {
			h.logger.WithError(err).Warn("Skipping deal without id")
			skipped++
			continue
		}
		accepted = append(accepted, deals[i])
	}

	if err := h.store.UpsertDeals(c.Request.Context(), accepted); err != nil {
		h.logger.WithError(err).Error("Failed to upsert deals")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store deals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accepted": len(accepted), "skipped": skipped})
}

// UpsertBuyers ingests a batch of buyer records.
func (h *Handler) UpsertBuyers(c *gin.Context) {
	var buyers []models.Buyer
	if err := c.ShouldBindJSON(&buyers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid buyer payload"})
		return
	}
	if err := h.store.UpsertBuyers(c.Request.Context(), buyers); err != nil {
		h.logger.WithError(err).Error("Failed to upsert buyers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store buyers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accepted": len(buyers)})
}

// TriggerRun starts a pipeline run. A run already holding the lock yields
// 409 rather than queueing up behind it.
func (h *Handler) TriggerRun(c *gin.Context) {
	report, err := h.runner.Run(context.Background())
	if err != nil {
		if err == pipeline.ErrRunInProgress {
			c.JSON(http.StatusConflict, gin.H{"error": "a run is already in progress"})
			return
		}
		h.logger.WithError(err).Error("Pipeline run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pipeline run failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
