package api

import (
	"time"

	"railstatus-service/internal/usecase"
	"railstatus-service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIServer exposes the status reports over HTTP
type APIServer struct {
	PNRs     *usecase.PNRService
	Trains   *usecase.TrainService
	Journeys *usecase.JourneyService
	Search   *usecase.SearchService
	Gatherer prometheus.Gatherer
	Version  string
	Logger   logger.Logger
}

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(s *APIServer, readTimeout, writeTimeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "railstatus-service " + s.Version,
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		DisableStartupMessage: true,
	})

	app.Use(requestLogger(s.Logger))
	app.Use(cors.New())

	RegisterHandlers(app, s)
	return app
}

// RegisterHandlers wires the routes onto app
func RegisterHandlers(app *fiber.App, s *APIServer) {
	app.Get("/health", s.GetHealth)
	if s.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{})))
	}

	pnr := app.Group("/pnr/:pnr")
	pnr.Get("/confirmation", s.pnrReport(s.PNRs.ConfirmStatus))
	pnr.Get("/berths", s.pnrReport(s.PNRs.CoachesAndBerths))
	pnr.Get("/waitlist", s.pnrReport(s.PNRs.WaitlistPosition))
	pnr.Get("/train", s.pnrReport(s.PNRs.TrainFromPNR))
	pnr.Get("/overview", s.pnrReport(s.PNRs.JourneyOverview))
	pnr.Get("/passengers", s.pnrReport(s.PNRs.PassengerSummary))
	pnr.Get("/summary", s.pnrReport(s.PNRs.CompleteSummary))
	pnr.Get("/live", s.pnrReport(s.Journeys.TrainStatusByPNR))
	pnr.Get("/journey", s.pnrReport(s.Journeys.FullJourneyStatus))
	pnr.Get("/arrival/:station", s.GetArrivalByPNR)

	trains := app.Group("/trains/:number")
	trains.Get("/live", s.GetLiveStatus)
	trains.Get("/route", s.GetRoute)
	trains.Get("/upcoming", s.GetUpcoming)
	trains.Get("/summary", s.GetTrainSummary)
	trains.Get("/arrival/:station", s.GetArrival)
	trains.Get("/gtfsrt", s.GetFeed)

	search := app.Group("/search")
	search.Get("/stations", s.GetStations)
	search.Get("/trains", s.GetTrains)
}
