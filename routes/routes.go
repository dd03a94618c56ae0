package routes

import (
	"time"

	"menuapi-backend/config"
	"menuapi-backend/controllers"
	"menuapi-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups the controllers the router mounts.
type Handlers struct {
	Auth        *controllers.AuthController
	Restaurants *controllers.RestaurantController
	Sections    *controllers.SectionController
	Items       *controllers.ItemController
}

// Options configures the middleware stack.
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
}

func SetupRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", config.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", config.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(opts.AllowedOrigins) == 0 {
		// cors refuses credentials together with a wildcard origin
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	r.Use(config.TraceID())
	r.Use(config.PerformanceLogger())

	requireAuth := utils.AuthMiddleware(opts.JWTSecret)

	v1 := r.Group("/v1")
	v1.GET("", controllers.Health)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	restaurants := v1.Group("/restaurants")
	{
		restaurants.GET("", h.Restaurants.GetRestaurants)
		restaurants.GET("/:id", h.Restaurants.GetRestaurant)
		restaurants.GET("/:id/sections", h.Sections.GetRestaurantSections)

		restaurants.POST("", requireAuth, h.Restaurants.CreateRestaurant)
		restaurants.PUT("/:id", requireAuth, h.Restaurants.ReplaceRestaurant)
		restaurants.PATCH("/:id", requireAuth, h.Restaurants.UpdateRestaurant)
		restaurants.DELETE("/:id", requireAuth, h.Restaurants.DeleteRestaurant)
		restaurants.POST("/:id/sections", requireAuth, h.Sections.CreateSection)
	}

	sections := v1.Group("/sections")
	{
		sections.GET("/:id", h.Sections.GetSection)
		sections.GET("/:id/items", h.Items.GetSectionItems)

		sections.PUT("/:id", requireAuth, h.Sections.ReplaceSection)
		sections.PATCH("/:id", requireAuth, h.Sections.UpdateSection)
		sections.DELETE("/:id", requireAuth, h.Sections.DeleteSection)
		sections.POST("/:id/items", requireAuth, h.Items.CreateItem)
	}

	items := v1.Group("/items")
	{
		items.GET("/:id", h.Items.GetItem)

		items.PUT("/:id", requireAuth, h.Items.ReplaceItem)
		items.PATCH("/:id", requireAuth, h.Items.UpdateItem)
		items.DELETE("/:id", requireAuth, h.Items.DeleteItem)
	}

	return r
}
