package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/palgaurav085-cmd/animexa-worker/application/ports/outbound"
	"github.com/palgaurav085-cmd/animexa-worker/application/services"
	"github.com/palgaurav085-cmd/animexa-worker/config"
	"github.com/palgaurav085-cmd/animexa-worker/infrastructure/adapters"
	"github.com/palgaurav085-cmd/animexa-worker/infrastructure/gin_interface/controllers"
	"github.com/palgaurav085-cmd/animexa-worker/middleware"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	authConfig, err := config.GetAuthConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get auth config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	clipConfig, err := config.GetClipConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get clip config")
	}

	segmenterConfig, err := config.GetSegmenterConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get segmenter config")
	}

	registryConfig, err := config.GetRegistryConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get registry config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	s3Client := s3.New(sess)

	contentStreamer := adapters.NewContentStreamer(zeroLogger)
	clipGenerator := adapters.NewPollinationsClipGenerator(contentStreamer, clipConfig, zeroLogger)
	concatenator := adapters.NewFFmpegClipConcatenate(zeroLogger)
	publisher := adapters.NewS3VideoPublisher(zeroLogger, s3Client, s3Config)

	var segmenter outbound.SceneSegmenterPort
	if os.Getenv("SCENE_SOURCE") == "openai" {
		gptConfig, err := config.GetGptConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get gpt config")
		}
		segmenter = adapters.NewSceneOracle(gptConfig, zeroLogger)
	} else {
		segmenter = services.NewSentenceSegmenter(zeroLogger, segmenterConfig.WordsPerSecond, segmenterConfig.MaxSceneSeconds)
	}

	registry := adapters.NewMemoryJobRegistry(zeroLogger, registryConfig.Retention)
	defer registry.Close()

	pipeline := services.NewVideoPipeline(zeroLogger, registry, segmenter, clipGenerator, concatenator, publisher, clipConfig.Timeout)
	jobRunner := services.NewJobRunner(zeroLogger, workerPool)

	jobsController := controllers.NewJobsController(zeroLogger, registry, pipeline, jobRunner)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	authHandler := middleware.NewAuthHandler(authConfig)
	router.Use(authHandler.AuthMiddleware())

	jobsController.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server!")
		}
	}()
	log.Info().Str("port", port).Msg("Worker listening")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down server cleanly")
	}

	if active := jobRunner.Active(); len(active) > 0 {
		zeroLogger.InfoWithFields("Waiting for in-flight jobs", map[string]interface{}{
			"jobs": active,
		})
	}
	if err := jobRunner.Wait(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown deadline passed with jobs still in flight")
	}
}
