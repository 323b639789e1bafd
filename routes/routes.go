package routes

import (
	"time"

	"movie_rental_api/app"
	"movie_rental_api/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	movieCtl := controllers.NewMovieController(s)
	customerCtl := controllers.NewCustomerController(s)
	invCtl := controllers.NewInventoryController(s)
	rentalCtl := controllers.NewRentalController(s)

	// 复用的中间件
	authMW := app.AuthRequired(s.AppSess, s.Repo, a.Config)
	adminMW := app.AdminOnly()
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// ------------------------------
	// 认证（公开+受保护）
	// ------------------------------
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}
	authAuth := auth.Group("", authMW)
	{
		authAuth.POST("/logout", authCtl.Logout)
		authAuth.GET("/whoami", func(c *app.Ctx) {
			v, _ := c.Get("apiUserID")
			role, _ := c.Get("role")
			c.JSON(200, app.H{"api_user_id": v, "role": role})
		})
	}

	// ------------------------------
	// 目录（电影/门店/查表）
	// ------------------------------
	catalog := r.Group("/api", authMW, seenMW)
	{
		catalog.GET("/movies", movieCtl.ListMovies) // ?q=&page=&size=
		catalog.GET("/movies/:id", movieCtl.GetMovie)
		catalog.GET("/genres", movieCtl.ListGenres)
		catalog.GET("/formats", movieCtl.ListFormats)
		catalog.GET("/locations", movieCtl.ListLocations)
	}
	catalogAdmin := r.Group("/api", authMW, adminMW)
	{
		catalogAdmin.POST("/movies", movieCtl.CreateMovie)
		catalogAdmin.PUT("/movies/:id", movieCtl.UpdateMovie)
		catalogAdmin.DELETE("/movies/:id", movieCtl.DeleteMovie)
		catalogAdmin.POST("/locations", movieCtl.CreateLocation)
	}

	// ------------------------------
	// 顾客 / 店员
	// ------------------------------
	people := r.Group("/api", authMW, seenMW)
	{
		people.GET("/customers", customerCtl.ListCustomers) // ?q=&page=&size=
		people.GET("/customers/:id", customerCtl.GetCustomer)
		people.POST("/customers", customerCtl.CreateCustomer)
		people.PUT("/customers/:id", customerCtl.UpdateCustomer)
		people.GET("/employees", customerCtl.ListEmployees)
		people.GET("/employees/:id", customerCtl.GetEmployee)
	}
	r.DELETE("/api/customers/:id", authMW, adminMW, customerCtl.DeleteCustomer)

	// ------------------------------
	// 库存
	// ------------------------------
	inv := r.Group("/api/inventory", authMW, seenMW)
	{
		inv.GET("", invCtl.ListItems) // ?locationId=&status=
		inv.GET("/:id", invCtl.GetItem)
	}
	invAdmin := r.Group("/api/inventory", authMW, adminMW)
	{
		invAdmin.POST("", invCtl.CreateItem)
		invAdmin.DELETE("/:id", invCtl.DeleteItem)
	}

	// ------------------------------
	// 租借 / 预约（核心路径）
	// ------------------------------
	rentals := r.Group("/api", authMW, seenMW)
	{
		rentals.POST("/rentals", rentalCtl.CreateRental)
		rentals.POST("/reservations", rentalCtl.CreateReservation)
		rentals.GET("/rentals", rentalCtl.ListRentals) // ?customerId=&status=
		rentals.GET("/rentals/:id", rentalCtl.GetRental)
		rentals.GET("/rentals/:id/details", rentalCtl.GetRentalDetails)
		rentals.GET("/overdue", rentalCtl.ListOverdue)
	}
}
