package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cookthumb/internal/api"
	"github.com/youruser/cookthumb/internal/config"
	"github.com/youruser/cookthumb/internal/logging"
	"github.com/youruser/cookthumb/internal/thumbnail"
)

func main() {
	logger := logging.New(os.Stderr, logging.LevelInfo)

	cfg := config.Default()
	if path := os.Getenv("THUMBNAIL_CONFIG"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			logger.Fatal("failed to load config", "err", err)
		}
	}
	if os.Getenv("DEBUG") != "" {
		logger.SetLevel(logging.LevelDebug)
	}

	// Embedded Go fonts stand in when no font files are configured.
	set, err := cfg.LoadFonts(true)
	if err != nil {
		logger.Fatal("failed to load fonts", "err", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	h := api.NewHandler(thumbnail.NewComposer(cfg.Layout), set, cfg.Fonts.Sizes, cfg.Server.AssetsDir, logger)
	api.RegisterRoutes(r, h)

	addr := cfg.Server.Addr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", "err", err)
	}
}
