package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookora/marketplace-api/internal/config"
	dbpkg "github.com/bookora/marketplace-api/internal/db"
	"github.com/bookora/marketplace-api/internal/logging"
	"github.com/bookora/marketplace-api/internal/middleware"
	"github.com/bookora/marketplace-api/internal/routes"
)

func main() {

	logging.Init()
	defer logging.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logging.Log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logging.Log.Fatal("failed to start server", zap.Error(err))
	}
}
