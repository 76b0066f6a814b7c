package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sajidhasan/resort-booking/internal/handler"
	"github.com/sajidhasan/resort-booking/internal/middleware"
	"github.com/sajidhasan/resort-booking/internal/model"
)

// RegisterAdmin registers the dashboard endpoints under /v1/admin.
// Every route requires a valid JWT carrying the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, img *handler.ImageHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	g.GET("/stats", a.DashboardStats)

	// ---- Services ----
	g.GET("/services", a.ListServices)
	g.POST("/services", a.CreateService)
	g.GET("/services/:id", a.GetService)
	g.PUT("/services/:id", a.UpdateService)
	g.PATCH("/services/:id", a.UpdateService)
	g.DELETE("/services/:id", a.DeleteService)

	// ---- Customers ----
	g.GET("/customers", a.ListCustomers)
	g.POST("/customers", a.CreateCustomer)
	g.GET("/customers/:id", a.GetCustomer)
	g.PUT("/customers/:id", a.UpdateCustomer)
	g.DELETE("/customers/:id", a.DeleteCustomer)

	// ---- Reservations ----
	g.GET("/reservations", a.ListReservations)
	g.GET("/reservations/:id", a.GetReservation)
	g.PUT("/reservations/:id", a.UpdateReservation)
	g.PATCH("/reservations/:id", a.UpdateReservation)
	g.DELETE("/reservations/:id", a.DeleteReservation)

	// ---- Admins ----
	g.GET("/admins", a.ListAdmins)
	g.POST("/admins", a.CreateAdmin)
	g.PUT("/admins/:id", a.UpdateAdmin)
	g.DELETE("/admins/:id", a.DeleteAdmin)

	// ---- Images ----
	g.POST("/images", img.Upload)
	g.POST("/images/delete", img.Delete)
}
