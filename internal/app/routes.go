package app

import (
	"github.com/safwannuddin/Schedule-tracker/internal/cache"
	"github.com/safwannuddin/Schedule-tracker/internal/config"
	"github.com/safwannuddin/Schedule-tracker/internal/handlers"
	"github.com/safwannuddin/Schedule-tracker/internal/repo"
	"github.com/safwannuddin/Schedule-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api/v1")

	weekRepo := repo.NewPGWeekRepo(db)
	itemRepo := repo.NewPGItemRepo(db)
	checkRepo := repo.NewPGCheckRepo(db)
	gridCache := cache.NewGridCache(rdb, cfg.Redis.DefaultTTL.Duration())

	weekSvc := service.NewWeekService(weekRepo, itemRepo, checkRepo, gridCache)
	itemSvc := service.NewItemService(weekRepo, itemRepo, gridCache)
	checkSvc := service.NewCheckService(itemRepo, checkRepo, gridCache)

	RegisterRoutes(api,
		handlers.NewWeekHandler(weekSvc),
		handlers.NewItemHandler(itemSvc),
		handlers.NewCheckHandler(checkSvc),
	)
}

// RegisterRoutes wires the tracker endpoints onto a router group.
func RegisterRoutes(api *gin.RouterGroup, wh *handlers.WeekHandler, ih *handlers.ItemHandler, ch *handlers.CheckHandler) {
	api.POST("/weeks", wh.Create)
	api.GET("/weeks", wh.List)
	api.GET("/weeks/:id", wh.GetByID)
	api.GET("/weeks/:id/grid", wh.Grid)
	api.POST("/weeks/:id/items", ih.Create)
	api.PUT("/weekly-items/:id", ih.Update)
	api.DELETE("/weekly-items/:id", ih.Delete)
	api.PUT("/daily-checks", ch.Upsert)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Weekly Execution Tracker",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
