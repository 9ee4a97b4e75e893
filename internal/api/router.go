package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"roombook-backend/config"
	"roombook-backend/internal/directory"
	"roombook-backend/internal/mw"
	"roombook-backend/internal/watch"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, dir *directory.Directory, registry *watch.Registry, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(dir, registry, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	// Read endpoints tolerate staleness bounded by the cache TTL; writes
	// bypass the cache entirely.
	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 10*time.Minute)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/buildings", handler.AddBuilding)
		api.POST("/buildings/:building/floors", handler.AddFloor)
		api.POST("/buildings/:building/floors/:floor/rooms", handler.AddRoom)

		api.GET("/rooms", caching, handler.ListRooms)
		api.GET("/bookings", caching, handler.ListBookings)
		api.POST("/bookings", handler.Book)
		api.DELETE("/bookings", handler.Cancel)
		api.GET("/suggestions", handler.Suggest)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
