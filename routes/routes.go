package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bistroboss/config"
	"bistroboss/controllers"
	"bistroboss/database"
	"bistroboss/middleware"
	"bistroboss/payments"
	"bistroboss/repository"
	"bistroboss/services"
)

// Register wires repositories, services and controllers and mounts the API.
func Register(r *gin.Engine, cfg *config.Config, cols *database.Collections, log *slog.Logger) {
	users := repository.NewUserRepository(cols.Users)
	menus := repository.NewMenuRepository(cols.Menus)
	reviews := repository.NewReviewRepository(cols.Reviews)
	carts := repository.NewCartRepository(cols.Carts)
	paymentRepo := repository.NewPaymentRepository(cols.Payments)

	userSvc := services.NewUserService(users)
	cartSvc := services.NewCartService(carts, menus)
	paymentSvc := services.NewPaymentService(paymentRepo, carts, payments.NewStripeClient(cfg.StripeSecretKey), log)
	statsSvc := services.NewStatsService(users, menus, paymentRepo)

	authCtrl := controllers.NewAuthController(userSvc, cfg)
	menuCtrl := controllers.NewMenuController(menus)
	reviewCtrl := controllers.NewReviewController(reviews)
	cartCtrl := controllers.NewCartController(cartSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	statsCtrl := controllers.NewStatsController(statsSvc)

	auth := middleware.Auth([]byte(cfg.JWTSecret), users)
	admin := middleware.AdminOnly()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Welcome to Bistro Boss Restaurant"})
	})

	api := r.Group("/api")
	{
		// menu
		api.GET("/menu", menuCtrl.List)
		api.GET("/menu/:id", menuCtrl.Get)
		api.POST("/menu", auth, admin, menuCtrl.Create)
		api.PATCH("/editmenu/:id", auth, admin, menuCtrl.Update)
		api.DELETE("/menu/:id", auth, admin, menuCtrl.Delete)

		// reviews
		api.GET("/review", reviewCtrl.List)
		api.GET("/review/:id", reviewCtrl.Get)
		api.POST("/review", reviewCtrl.Create)
		api.PATCH("/editreview/:id", reviewCtrl.Update)
		api.DELETE("/review/:id", auth, admin, reviewCtrl.Delete)

		// users
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)
		api.GET("/alluser", auth, admin, authCtrl.AllUsers)
		api.PATCH("/makeadmin/:id", auth, admin, authCtrl.MakeAdmin)
		api.DELETE("/deleteuser/:id", auth, admin, authCtrl.DeleteUser)
		api.GET("/userrole", auth, authCtrl.Role)

		// cart
		api.GET("/cart", auth, cartCtrl.Get)
		api.POST("/cart", auth, cartCtrl.Add)
		api.DELETE("/deletecart/:id", auth, cartCtrl.Remove)
		api.DELETE("/resetcart", auth, cartCtrl.Reset)

		// payments
		api.POST("/create-payment-intent", auth, paymentCtrl.CreateIntent)
		api.POST("/payments", auth, paymentCtrl.Create)
		api.GET("/paymenthistory", auth, paymentCtrl.History)

		// stats
		api.GET("/admin-stats", auth, admin, statsCtrl.AdminStats)
		api.GET("/order-stats", auth, admin, statsCtrl.OrderStats)
	}
}
