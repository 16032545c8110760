package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/inbound"
	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/palgaurav085-cmd/animexa-worker/domain"
	"github.com/palgaurav085-cmd/animexa-worker/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type JobsController interface {
	CreateJob(c *gin.Context)
	GetJob(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type jobsController struct {
	logger   outbound.LoggerPort
	registry outbound.JobRegistryPort
	pipeline inbound.VideoPipelinePort
	runner   inbound.JobRunnerPort
}

func NewJobsController(
	logger outbound.LoggerPort,
	registry outbound.JobRegistryPort,
	pipeline inbound.VideoPipelinePort,
	runner inbound.JobRunnerPort,
) JobsController {
	return &jobsController{
		logger:   logger,
		registry: registry,
		pipeline: pipeline,
		runner:   runner,
	}
}

// CreateJob registers a queued job and hands it to the runner before
// responding, so the caller gets the id without waiting on any
// pipeline work.
func (s *jobsController) CreateJob(c *gin.Context) {
	var createJobRequest dto.CreateJobRequest
	if err := c.ShouldBindJSON(&createJobRequest); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := s.registry.Create()
	script := createJobRequest.Script

	err := s.runner.Submit(job.ID, func() {
		s.pipeline.Run(context.Background(), job.ID, script)
	})
	if err != nil {
		if markErr := s.registry.MarkFailed(job.ID, err); markErr != nil {
			s.logger.Error(markErr, "failed to record job failure")
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to start job"})
		return
	}

	s.logger.InfoWithFields("job accepted", map[string]interface{}{
		"job_id": job.ID,
	})

	c.JSON(http.StatusOK, dto.CreateJobResponse{JobID: job.ID})
}

func (s *jobsController) GetJob(c *gin.Context) {
	job, err := s.registry.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "not-found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewJobResponse(job))
}

func (s *jobsController) RegisterRoutes(g *gin.Engine) {
	g.POST("/jobs", s.CreateJob)
	g.GET("/jobs/:id", s.GetJob)
	g.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}
