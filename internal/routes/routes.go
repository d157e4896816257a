package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/frosty-coder/red-society/internal/handlers"
	"github.com/frosty-coder/red-society/internal/metrics"
)

// Register wires every endpoint onto the app. sessionMw guards everything
// except auth, health and metrics; rateLimitMw covers the auth group only.
func Register(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	messageHandler *handlers.MessageHandler,
	friendHandler *handlers.FriendHandler,
	groupHandler *handlers.GroupHandler,
	sessionMw fiber.Handler,
	rateLimitMw fiber.Handler,
) {
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.Use(rateLimitMw)
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	users := api.Group("/users")
	users.Use(sessionMw)
	users.Get("/", userHandler.ListUsers)
	users.Get("/search", userHandler.SearchUsers)

	messages := api.Group("/messages")
	messages.Use(sessionMw)
	messages.Post("/send", messageHandler.SendMessage)
	messages.Get("/", messageHandler.GetMessages)

	friends := api.Group("/friends")
	friends.Use(sessionMw)
	friends.Post("/add", friendHandler.AddFriend)
	friends.Get("/", friendHandler.GetFriends)

	groups := api.Group("/groups")
	groups.Use(sessionMw)
	groups.Post("/create", groupHandler.CreateGroup)
	groups.Get("/", groupHandler.GetGroups)
}
