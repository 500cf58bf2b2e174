package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/inbound"
	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/domain"
	"github.com/SyedAhtsham/vistavoice-deployment/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var unsafeNameChars = regexp.MustCompile(`[^\w\-.]`)

type ClipController interface {
	GenerateClip(c *gin.Context)
	Download(c *gin.Context)
	Voices(c *gin.Context)
	RegisterRoutes(g gin.IRoutes)
}

type clipController struct {
	logger        outbound.LoggerPort
	pipeline      inbound.ClipPipelinePort
	artifactStore outbound.ArtifactStorePort
}

func NewClipController(logger outbound.LoggerPort, pipeline inbound.ClipPipelinePort,
	artifactStore outbound.ArtifactStorePort) ClipController {
	return &clipController{
		logger:        logger,
		pipeline:      pipeline,
		artifactStore: artifactStore,
	}
}

func (ctrl *clipController) GenerateClip(c *gin.Context) {
	image, err := c.FormFile("image")
	if err != nil {
		ctrl.abortWithError(c, domain.WrapError(domain.MalformedRequest, "image file is required", err))
		return
	}

	request, err := dto.ParseGenerateClipRequest(c)
	if err != nil {
		ctrl.abortWithError(c, err)
		return
	}

	runID := uuid.NewString()

	// The scratch directory exists only after the request parses, so a
	// rejected request leaves nothing on disk.
	workDir, err := ctrl.artifactStore.CreateScratchDir(runID)
	if err != nil {
		ctrl.logger.Error(err, "failed to create scratch directory")
		ctrl.abortWithError(c, domain.WrapError(domain.EncodingFailed, "preparing run workspace", err))
		return
	}

	baseName := sanitizeBaseName(image.Filename)
	imagePath := filepath.Join(workDir, baseName+strings.ToLower(filepath.Ext(image.Filename)))
	if err := c.SaveUploadedFile(image, imagePath); err != nil {
		ctrl.logger.Error(err, "failed to save uploaded image")
		ctrl.artifactStore.RemoveScratchDir(workDir)
		ctrl.abortWithError(c, domain.WrapError(domain.MalformedRequest, "saving uploaded image", err))
		return
	}

	res, err := ctrl.pipeline.Run(c.Request.Context(), inbound.RunClipPipelineParams{
		RunID:    runID,
		WorkDir:  workDir,
		Visual:   domain.VisualSource{Path: imagePath, BaseName: baseName},
		Segments: request.Segments,
		Silence:  request.Silence,
		FadeIn:   request.FadeIn,
		FadeOut:  request.FadeOut,
	})
	if err != nil {
		ctrl.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateClipResponse{
		VideoUrl:   "/download/" + res.Artifact.FileName,
		DurationMs: res.Artifact.DurationMs,
	})
}

func (ctrl *clipController) Download(c *gin.Context) {
	fileName := c.Param("filename")
	path, err := ctrl.artifactStore.Resolve(fileName)
	if err != nil {
		ctrl.abortWithError(c, err)
		return
	}
	c.FileAttachment(path, fileName)
}

func (ctrl *clipController) Voices(c *gin.Context) {
	c.JSON(http.StatusOK, dto.VoicesResponse{Voices: domain.Voices})
}

func (ctrl *clipController) RegisterRoutes(g gin.IRoutes) {
	g.POST("/generate_clip", ctrl.GenerateClip)
	g.GET("/download/:filename", ctrl.Download)
	g.GET("/voices", ctrl.Voices)
}

func (ctrl *clipController) abortWithError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	// Only the classified message crosses the boundary; wrapped causes
	// stay in the logs.
	message := "internal error"
	var pe *domain.PipelineError
	if errors.As(err, &pe) {
		message = pe.Message
	}

	ctrl.logger.ErrorWithFields(err, "request failed", map[string]interface{}{
		"kind":   string(kind),
		"status": status,
		"path":   c.Request.URL.Path,
	})

	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message, Kind: string(kind)})
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.MalformedRequest, domain.InvalidSegment:
		return http.StatusBadRequest
	case domain.ArtifactNotFound:
		return http.StatusNotFound
	case domain.SynthesisFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// sanitizeBaseName strips the extension and replaces anything outside
// [A-Za-z0-9_-.] so uploaded names cannot escape the scratch directory.
func sanitizeBaseName(fileName string) string {
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = unsafeNameChars.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == ".." {
		base = "image"
	}
	return base
}
