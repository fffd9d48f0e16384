package routes

import (
	auth_handlers "panel.naal.org.tr/handlers/auth"
	"panel.naal.org.tr/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := auth_handlers.NewAuthHandler()
	authGroup := app.Group("/auth")

	guestRoutes := authGroup.Group("")
	guestRoutes.Use(middlewares.GuestMiddleware)
	guestRoutes.Get("/login", authHandler.ShowLogin)
	guestRoutes.Post("/login", authHandler.Login)
	guestRoutes.Get("/password/request", authHandler.ShowForgotPassword)
	guestRoutes.Post("/password/request", authHandler.RequestPasswordReset)
	guestRoutes.Get("/password/reset/:token", authHandler.ShowResetPassword)
	guestRoutes.Post("/password/reset", authHandler.ResetPassword)

	userRoutes := authGroup.Group("")
	userRoutes.Use(middlewares.AuthMiddleware)
	userRoutes.Get("/logout", authHandler.Logout)
	userRoutes.Post("/logout", authHandler.Logout)
	userRoutes.Get("/profile", authHandler.Profile)
	userRoutes.Post("/profile/update-password", authHandler.UpdatePassword)
}
