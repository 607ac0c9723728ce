package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/infrastructure/config"
	"railstatus-service/internal/infrastructure/httpclient"
	"railstatus-service/internal/infrastructure/oauth"
	"railstatus-service/pkg/logger"
	"railstatus-service/pkg/metrics"
)

// SessionPNRRepository reads PNR records from the session API that requires
// an XSRF cookie handshake before every query.
type SessionPNRRepository struct {
	client     *http.Client
	apiPath    string
	cookieName string
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewSessionPNRRepository creates a new session PNR repository
func NewSessionPNRRepository(cfg *config.Config, client *http.Client, m *metrics.Metrics, logger logger.Logger) *SessionPNRRepository {
	return &SessionPNRRepository{
		client:     client,
		apiPath:    cfg.SessionPNRAPIPath,
		cookieName: cfg.SessionPNRAPIKeyName,
		metrics:    m,
		logger:     logger.With("upstream", upstreamSessionPNR),
	}
}

// CanHandle reports whether this adapter serves the named provider
func (r *SessionPNRRepository) CanHandle(name string) bool {
	return name == config.PNRProviderSession
}

type sessionPassenger struct {
	Number             int        `json:"Number"`
	Prediction         string     `json:"Prediction"`
	ConfirmTktStatus   string     `json:"ConfirmTktStatus"`
	Coach              string     `json:"Coach"`
	Berth              int        `json:"Berth"`
	BookingStatus      string     `json:"BookingStatus"`
	CurrentStatus      string     `json:"CurrentStatus"`
	BookingBerthNo     flexString `json:"BookingBerthNo"`
	BookingCoachID     string     `json:"BookingCoachId"`
	BookingBerthCode   string     `json:"BookingBerthCode"`
	BookingStatusNew   string     `json:"BookingStatusNew"`
	BookingStatusIndex flexString `json:"BookingStatusIndex"`
	CurrentBerthNo     flexString `json:"CurrentBerthNo"`
	CurrentCoachID     string     `json:"CurrentCoachId"`
	CurrentBerthCode   string     `json:"CurrentBerthCode"`
	CurrentStatusNew   string     `json:"CurrentStatusNew"`
	CurrentStatusIndex flexString `json:"CurrentStatusIndex"`
}

type sessionPNRData struct {
	Pnr                 string             `json:"Pnr"`
	TrainNo             string             `json:"TrainNo"`
	TrainName           string             `json:"TrainName"`
	Doj                 string             `json:"Doj"`
	SourceDoj           string             `json:"SourceDoj"`
	BookingDate         string             `json:"BookingDate"`
	Quota               string             `json:"Quota"`
	From                string             `json:"From"`
	To                  string             `json:"To"`
	ReservationUpto     string             `json:"ReservationUpto"`
	BoardingPoint       string             `json:"BoardingPoint"`
	Class               string             `json:"Class"`
	ChartPrepared       bool               `json:"ChartPrepared"`
	BoardingStationName string             `json:"BoardingStationName"`
	TrainCancelledFlag  bool               `json:"TrainCancelledFlag"`
	ReservationUptoName string             `json:"ReservationUptoName"`
	PassengerCount      int                `json:"PassengerCount"`
	PassengerStatus     []sessionPassenger `json:"PassengerStatus"`
	DepartureTime       string             `json:"DepartureTime"`
	ArrivalTime         string             `json:"ArrivalTime"`
	ExpectedPlatformNo  flexString         `json:"ExpectedPlatformNo"`
	BookingFare         flexString         `json:"BookingFare"`
	TicketFare          flexString         `json:"TicketFare"`
	SourceName          string             `json:"SourceName"`
	DestinationName     string             `json:"DestinationName"`
	Duration            string             `json:"Duration"`
	HasPantry           bool               `json:"HasPantry"`
}

type sessionPNRResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    *sessionPNRData `json:"data"`
}

// FetchPNR performs the token handshake and then queries the PNR
func (r *SessionPNRRepository) FetchPNR(ctx context.Context, pnr string) (record *entity.PNRRecord, err error) {
	if err := entity.ValidatePNR(pnr); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		r.metrics.ObserveUpstream(upstreamSessionPNR, start, err)
		r.logger.Info("PNR fetched", "pnr", pnr, "latency", time.Since(start), "error", err)
	}()

	// The token is bound to the session cookie, so each query gets its own jar.
	client := oauth.NewSessionClient(r.client)
	tokenSource := oauth.NewXSRFTokenSource(ctx, client, oauth.HandshakeURL(r.apiPath), r.cookieName, r.logger).GetTokenSource()
	token, err := tokenSource.Token()
	if err != nil {
		return nil, unavailable("obtain session token", err)
	}

	body, err := json.Marshal(map[string]string{"pnr": pnr})
	if err != nil {
		return nil, unavailable("marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiPath, bytes.NewBuffer(body))
	if err != nil {
		return nil, unavailable("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(oauth.HeaderName(r.cookieName), token.AccessToken)

	resp, err := httpclient.DoJSON[sessionPNRResponse](client, req)
	if err != nil {
		return nil, unavailable("fetch PNR", err)
	}
	if !resp.Status || resp.Data == nil {
		return nil, unavailablef("PNR %s rejected upstream: %s", pnr, resp.Message)
	}

	record = toPNRRecordFromSession(resp.Data)
	if resp.Data.PassengerCount != len(record.Passengers) {
		r.logger.Warn("Passenger count mismatch", "pnr", pnr,
			"declared", resp.Data.PassengerCount, "listed", len(record.Passengers))
	}
	return record, nil
}

func toPNRRecordFromSession(d *sessionPNRData) *entity.PNRRecord {
	fare := d.TicketFare.String()
	if fare == "" {
		fare = d.BookingFare.String()
	}
	sourceDate := d.SourceDoj
	if sourceDate == "" {
		sourceDate = d.Doj
	}

	record := &entity.PNRRecord{
		PNR:                 d.Pnr,
		TrainNumber:         d.TrainNo,
		TrainName:           d.TrainName,
		SourceCode:          d.From,
		SourceName:          d.SourceName,
		DestinationCode:     d.To,
		DestinationName:     d.DestinationName,
		BoardingCode:        d.BoardingPoint,
		BoardingName:        d.BoardingStationName,
		ReservationUptoCode: d.ReservationUpto,
		ReservationUptoName: d.ReservationUptoName,
		DepartureTime:       d.DepartureTime,
		ArrivalTime:         d.ArrivalTime,
		JourneyDate:         d.Doj,
		SourceDepartureDate: sourceDate,
		BookingDate:         d.BookingDate,
		Fare:                fare,
		JourneyClass:        d.Class,
		Quota:               d.Quota,
		Duration:            d.Duration,
		ExpectedPlatform:    d.ExpectedPlatformNo.String(),
		ChartPrepared:       d.ChartPrepared,
		Cancelled:           d.TrainCancelledFlag,
		PantryAvailable:     d.HasPantry,
	}

	for i, p := range d.PassengerStatus {
		number := p.Number
		if number == 0 {
			number = i + 1
		}

		coach := p.CurrentCoachID
		if coach == "" {
			coach = p.Coach
		}

		record.Passengers = append(record.Passengers, entity.PassengerRecord{
			Number:               number,
			BookingStatus:        p.BookingStatus,
			BookingStatusDetails: statusDetails(p.BookingStatus, p.BookingStatusNew, p.BookingStatusIndex.String()),
			CurrentStatus:        p.CurrentStatus,
			CurrentStatusDetails: statusDetails(p.CurrentStatus, p.CurrentStatusNew, p.CurrentStatusIndex.String()),
			Coach:                coach,
			BerthNumber:          atoiOr(p.CurrentBerthNo.String(), p.Berth),
			BerthCode:            p.CurrentBerthCode,
			Prediction:           p.Prediction,
		})
	}

	sortPassengers(record.Passengers)
	record.PassengerCount = len(record.Passengers)
	return record
}

// statusDetails builds the combined "CODE/position" string the keyed API
// sends natively. A descriptive string that already carries a "/" wins.
func statusDetails(code, descriptive, index string) string {
	if strings.Contains(descriptive, "/") {
		return descriptive
	}
	if index != "" && index != "0" {
		return code + "/" + index
	}
	if descriptive != "" {
		return descriptive
	}
	return code
}
