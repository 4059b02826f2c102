package main

import (
	"github.com/labstack/echo/v4"
	authHandler "github.com/viebus/viebus/services/auth/handler/http"
	bookingHandler "github.com/viebus/viebus/services/booking/handler/http"
	notificationHandler "github.com/viebus/viebus/services/notification/handler/http"
	paymentHandler "github.com/viebus/viebus/services/payment/handler/http"
	tripHandler "github.com/viebus/viebus/services/trips/handler/http"
)

func registerRoutes(
	e *echo.Echo,
	auth *authHandler.AuthHandler,
	trips *tripHandler.TripHandler,
	bookings *bookingHandler.BookingHandler,
	payments *paymentHandler.PaymentHandler,
	notifications *notificationHandler.NotificationHandler,
) {
	g := e.Group("/api")

	// Session
	g.POST("/auth/login", auth.Login)
	g.POST("/auth/register", auth.Register)
	g.POST("/auth/logout", auth.Logout)
	g.GET("/session", auth.Session)

	// Trips and catalog
	g.GET("/trips", trips.Search)
	g.GET("/trips/:id", trips.GetTrip)
	g.GET("/routes", trips.ListRoutes)
	g.GET("/buses", trips.ListBuses)
	g.GET("/amenities", trips.ListAmenities)
	g.GET("/reviews", trips.ListReviews)
	g.POST("/reviews", trips.CreateReview)

	// Bookings
	g.POST("/bookings", bookings.Create)
	g.GET("/my-bookings", bookings.History)
	g.GET("/bookings/:id/payment", payments.LoadForBooking)

	// Payments
	g.GET("/payments", payments.Load)
	g.POST("/payments", payments.Create)

	// Notifications
	g.GET("/notifications", notifications.List)
	g.GET("/notifications/unread-count", notifications.UnreadCount)
	g.POST("/notifications/:id/read", notifications.MarkRead)
	g.POST("/notifications/read-all", notifications.MarkAllRead)
}
