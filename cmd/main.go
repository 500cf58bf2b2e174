package main

import (
	"fmt"
	"time"

	"github.com/SyedAhtsham/vistavoice-deployment/application/services"
	"github.com/SyedAhtsham/vistavoice-deployment/config"
	"github.com/SyedAhtsham/vistavoice-deployment/infrastructure/adapters"
	"github.com/SyedAhtsham/vistavoice-deployment/infrastructure/gin_interface/controllers"
	"github.com/SyedAhtsham/vistavoice-deployment/middleware"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	appoutbound "github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
)

func main() {
	// A missing .env is fine; real deployments set the environment.
	_ = godotenv.Load()

	synthesizerConfig, err := config.GetSynthesizerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get synthesizer config")
	}

	mediaConfig, err := config.GetMediaConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get media config")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
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

	contentFetcher := adapters.NewContentFetcher(zeroLogger, time.Duration(synthesizerConfig.TimeoutSeconds)*time.Second)
	synthesizer := adapters.NewEdgeSpeechSynthesizer(contentFetcher, synthesizerConfig, zeroLogger)
	audioDecoder := adapters.NewFFmpegAudioDecoder(zeroLogger)
	videoEncoder := adapters.NewFFmpegVideoEncoder(zeroLogger)

	artifactStore, err := adapters.NewFsArtifactStore(zeroLogger, mediaConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create artifact store")
	}

	var publisher appoutbound.ArtifactPublisherPort
	if s3Config != nil {
		sess, err := session.NewSession(&aws.Config{Region: aws.String(s3Config.Region)})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create aws session")
		}
		publisher = adapters.NewS3ArtifactPublisher(zeroLogger, s3.New(sess), s3Config)
	}

	segmentRenderer := services.NewSegmentRenderer(zeroLogger, synthesizer, audioDecoder, workerPool)
	timelineAssembler := services.NewTimelineAssembler(zeroLogger)
	clipPipeline := services.NewClipPipelineOrchestrator(zeroLogger, segmentRenderer, timelineAssembler, videoEncoder, artifactStore, publisher)

	clipController := controllers.NewClipController(zeroLogger, clipPipeline, artifactStore)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     serverConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if serverConfig.JwksUrl != "" {
		authHandler, err := middleware.NewAuthHandler(zeroLogger, serverConfig.JwksUrl)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		clipController.RegisterRoutes(router.Group("/", authHandler.AuthMiddleware()))
	} else {
		clipController.RegisterRoutes(router)
	}

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
