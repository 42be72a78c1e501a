package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/messmate/messmate/internal/app/controllers"
	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	contactController *controllers.ContactController,
	feedbackController *controllers.FeedbackController,
	menuController *controllers.MenuController,
	bookingController *controllers.BookingController,
	complaintController *controllers.ComplaintController,
	studentController *controllers.StudentController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})

	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	api.POST("/contact", contactController.Submit)
	api.POST("/feedback", feedbackController.Submit)
	api.POST("/complaints", complaintController.Submit)
	api.GET("/menu/:date", menuController.GetByDate)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Students act on their own records; the controller and the
		// SelfOrAdmin middleware enforce the identity match.
		authenticated.POST("/bookings", bookingController.Upsert)
		authenticated.GET("/bookings/:studentId",
			authMiddleware.SelfOrAdmin("studentId"), bookingController.ListByStudent)
		authenticated.GET("/complaints/student/:studentId",
			authMiddleware.SelfOrAdmin("studentId"), complaintController.ListByStudent)

		// Admin-only routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/contact", contactController.List)
			admin.GET("/feedback", feedbackController.List)

			admin.POST("/menu", menuController.Upsert)

			admin.GET("/bookings/daily/:date", bookingController.ListByDate)

			admin.GET("/complaints", complaintController.ListAll)
			admin.PUT("/complaints/:id", complaintController.UpdateStatus)

			admin.GET("/students", studentController.List)
			admin.DELETE("/students/:id", studentController.Delete)

			stats := admin.Group("/stats")
			{
				stats.GET("/overview", statsController.Overview)
				stats.GET("/meals/:date", statsController.MealDistribution)
				stats.GET("/ratings", statsController.RatingDistribution)
				stats.GET("/complaints", statsController.ComplaintDistribution)
				stats.GET("/bookings/series", statsController.BookingSeries)
			}
		}
	}
}
