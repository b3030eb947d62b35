// Package api serves thumbnails over HTTP.
package api

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/youruser/cookthumb/internal/fonts"
	"github.com/youruser/cookthumb/internal/logging"
	"github.com/youruser/cookthumb/internal/thumbnail"
)

// Handler renders thumbnails on request.
type Handler struct {
	composer  *thumbnail.Composer
	fonts     *fonts.Set
	sizes     fonts.Sizes
	assetsDir string
	logger    *log.Logger
}

// NewHandler returns a Handler. Relative preview images are resolved
// against assetsDir.
func NewHandler(c *thumbnail.Composer, fs *fonts.Set, sizes fonts.Sizes, assetsDir string, logger *log.Logger) *Handler {
	return &Handler{composer: c, fonts: fs, sizes: sizes, assetsDir: assetsDir, logger: logger}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// thumbnail renders the posted recipe metadata and returns the PNG.
func (h *Handler) thumbnail(c *gin.Context) {
	var req thumbnail.Recipe
	if err := c.BindJSON(&req); err != nil {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if ref := req.PreviewImage; ref != "" && !thumbnail.IsRemote(ref) && !filepath.IsLocal(ref) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "previewimage must be a URL or a path inside the assets directory"})
		return
	}
	req.SourceDir = h.assetsDir

	ctx := logging.WithLogger(c.Request.Context(), loggerFrom(c, h.logger))
	img, err := h.composer.Compose(ctx, req, h.fonts.Faces(h.sizes))
	if err != nil {
		loggerFrom(c, h.logger).Error("render failed", "title", req.Title, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	if err := thumbnail.EncodePNG(buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
