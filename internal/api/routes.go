package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/session", handler.AuthRequired, handler.Session)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	meals := api.Group("/meals", handler.AuthRequired)
	meals.Post("", handler.AddMeal)
	meals.Delete("/:id", handler.DeleteMeal)

	api.Put("/steps", handler.AuthRequired, handler.SetSteps)
	api.Put("/weight", handler.AuthRequired, handler.UpsertWeight)
	api.Get("/weights", handler.AuthRequired, handler.Weights)

	ranking := api.Group("/ranking", handler.AuthRequired)
	ranking.Post("/recalculate", handler.Recalculate)
	ranking.Get("", handler.RankingStatus)
	ranking.Get("/history", handler.RankingHistory)
	ranking.Get("/tiers", handler.RankTable)

	leaderboard := api.Group("/leaderboard", handler.AuthRequired)
	leaderboard.Get("", handler.Leaderboard)
	leaderboard.Get("/stream", handler.LeaderboardStream)

	api.Get("/dashboard", handler.AuthRequired, handler.Dashboard)
	api.Get("/profile", handler.AuthRequired, handler.Profile)
	api.Put("/profile", handler.AuthRequired, handler.UpdateProfile)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Put("/supplement", handler.UpdateSupplementReminder)
	settings.Post("/supplement/taken", handler.MarkSupplementsTaken)

	api.Get("/export", handler.AuthRequired, handler.Export)
	api.Post("/import", handler.AuthRequired, handler.Import)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
