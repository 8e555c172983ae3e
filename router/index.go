package router

import (
	"cinema_admin/constants"
	"cinema_admin/handler"
	"cinema_admin/middleware"
	"cinema_admin/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func upgradeOnly(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

func SetupRoutes(app *fiber.App, h *handler.Handler, tokens middleware.TokenReader) {
	api := app.Group("/api")
	v1 := api.Group("/v1", logger.New())

	staff := middleware.Protected(tokens, constants.ROLE_ADMIN, constants.ROLE_EMPLOYEE)
	admin := middleware.Protected(tokens, constants.ROLE_ADMIN)

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", staff, h.Me)
	auth.Get("/user", staff, h.GetUser)
	auth.Post("/register", admin, validate.RegisterEmployee(), h.RegisterEmployee)

	order := v1.Group("/order", staff)
	order.Post("/", h.CreateOrder)
	order.Get("/:sessionId", h.LoadOrder, h.GetOrder)
	order.Patch("/:sessionId", h.LoadOrder, validate.UpdateOrder(), h.UpdateOrder)
	order.Post("/:sessionId/reset", h.LoadOrder, h.ResetOrder)
	order.Delete("/:sessionId", h.DeleteOrder)
	order.Post("/:sessionId/checkout", h.LoadOrder, h.CheckoutOrder)

	scanner := v1.Group("/scanner", staff)
	scanner.Get("/", h.GetScanner)
	scanner.Post("/start", h.StartScanner)
	scanner.Post("/stop", h.StopScanner)
	scanner.Post("/toggle", h.ToggleScanner)
	scanner.Put("/device", validate.SelectDevice(), h.SelectDevice)
	scanner.Get("/devices", h.GetDevices)
	scanner.Get("/ws", upgradeOnly, websocket.New(h.ScannerSocket))
	scanner.Get("/feed/:deviceId", upgradeOnly, websocket.New(h.CameraFeed))

	v1.Get("/qrcode/:paymentId", staff, validate.PaymentID(), h.QRCodeImage)

	cinema := v1.Group("/cinema", staff)
	cinema.Get("/", validate.ListQuery(), h.GetCinemas)
	cinema.Get("/:cinemaId/movies", validate.GetById("cinemaId"), validate.MoviesByCinema(), h.GetMoviesByCinema)
	cinema.Post("/", admin, validate.CinemaInput(), h.CreateCinema)
	cinema.Put("/:cinemaId", admin, validate.GetById("cinemaId"), validate.CinemaInput(), h.EditCinema)
	cinema.Delete("/:cinemaId", admin, validate.GetById("cinemaId"), h.DeleteCinema)

	movie := v1.Group("/movie", staff)
	movie.Get("/", validate.ListQuery(), h.GetMovies)
	movie.Post("/", admin, validate.MovieInput(), h.CreateMovie)
	movie.Put("/:movieId", admin, validate.GetById("movieId"), validate.MovieInput(), h.EditMovie)
	movie.Delete("/:movieId", admin, validate.GetById("movieId"), h.DeleteMovie)

	showtime := v1.Group("/showtime", staff)
	showtime.Get("/", validate.ListQuery(), h.GetShowtimes)
	showtime.Post("/", admin, validate.ShowtimeInput(), h.CreateShowtime)
	showtime.Post("/auto", admin, validate.AutoGenerateShowtime(), h.AutoGenerateShowtimes)
	showtime.Put("/:showtimeId", admin, validate.GetById("showtimeId"), validate.ShowtimeInput(), h.EditShowtime)
	showtime.Delete("/:showtimeId", admin, validate.GetById("showtimeId"), h.DeleteShowtime)

	authorize := v1.Group("/authorize", admin)
	authorize.Get("/employee", validate.ListQuery(), h.GetEmployeePermissions)
	authorize.Get("/permission", h.GetPermissions)
	authorize.Post("/assign", validate.AssignPermissions(), h.AssignPermissions)

	statistic := v1.Group("/statistic", staff)
	statistic.Get("/today", h.GetStatisticToday)
	statistic.Post("/:period", validate.StatisticPeriod(), h.GetStatisticByPeriod)
}
