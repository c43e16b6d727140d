package handlers

import (
	"eventify/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires all API routes onto a gin engine. corsOrigin is the
// single frontend origin allowed to call the API.
func SetupRouter(
	corsOrigin string,
	auth *AuthHandler,
	events *EventHandler,
	bookings *BookingHandler,
	chat *ChatHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.GET("/test", auth.Test)
			authGroup.POST("/signup", auth.Signup)
			authGroup.POST("/login", auth.Login)
		}

		eventGroup := api.Group("/events")
		{
			eventGroup.GET("", events.List)
			eventGroup.POST("", events.Create)
			eventGroup.GET("/:id", events.Get)
			eventGroup.PUT("/:id", events.Update)
			eventGroup.DELETE("/:id", events.Delete)
		}

		bookingGroup := api.Group("/bookings")
		{
			bookingGroup.POST("/book", bookings.Book)
			bookingGroup.POST("/verify/:ticketCodeOrId", bookings.Verify)
			bookingGroup.GET("/user/:userId", bookings.ListByUser)
			bookingGroup.GET("/event/:eventId", bookings.GuestList)
			bookingGroup.POST("/admin/broadcast/:eventId", bookings.Broadcast)
			bookingGroup.GET("/admin/stats", bookings.Stats)
		}

		api.POST("/chat", chat.Chat)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
