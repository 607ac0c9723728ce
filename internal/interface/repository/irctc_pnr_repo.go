package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/infrastructure/config"
	"railstatus-service/internal/infrastructure/httpclient"
	"railstatus-service/pkg/logger"
	"railstatus-service/pkg/metrics"
)

// IRCTCPNRRepository reads PNR records from the keyed IRCTC JSON API.
type IRCTCPNRRepository struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
	headerKey  string
	headerHost string
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewIRCTCPNRRepository creates a new IRCTC PNR repository
func NewIRCTCPNRRepository(cfg *config.Config, client *http.Client, m *metrics.Metrics, logger logger.Logger) *IRCTCPNRRepository {
	return &IRCTCPNRRepository{
		client:     client,
		baseURL:    strings.TrimRight(cfg.IRCTCPNRAPIBase, "/"),
		apiKey:     cfg.IRCTCPNRAPIKey,
		apiHost:    cfg.IRCTCPNRAPIHost,
		headerKey:  cfg.IRCTCPNRAPIHeaderKey,
		headerHost: cfg.IRCTCPNRAPIHeaderHost,
		metrics:    m,
		logger:     logger.With("upstream", upstreamIRCTCPNR),
	}
}

// CanHandle reports whether this adapter serves the named provider
func (r *IRCTCPNRRepository) CanHandle(name string) bool {
	return name == config.PNRProviderIRCTC
}

type irctcPassenger struct {
	PassengerSerialNumber int    `json:"passengerSerialNumber"`
	BookingStatus         string `json:"bookingStatus"`
	BookingStatusDetails  string `json:"bookingStatusDetails"`
	BookingCoachID        string `json:"bookingCoachId"`
	BookingBerthNo        int    `json:"bookingBerthNo"`
	BookingBerthCode      string `json:"bookingBerthCode"`
	CurrentStatus         string `json:"currentStatus"`
	CurrentStatusDetails  string `json:"currentStatusDetails"`
	CurrentCoachID        string `json:"currentCoachId"`
	CurrentBerthNo        int    `json:"currentBerthNo"`
	CurrentBerthCode      string `json:"currentBerthCode"`
}

type irctcPNRData struct {
	PNRNumber          string           `json:"pnrNumber"`
	DateOfJourney      string           `json:"dateOfJourney"`
	TrainNumber        string           `json:"trainNumber"`
	TrainName          string           `json:"trainName"`
	SourceStation      string           `json:"sourceStation"`
	DestinationStation string           `json:"destinationStation"`
	ReservationUpto    string           `json:"reservationUpto"`
	BoardingPoint      string           `json:"boardingPoint"`
	JourneyClass       string           `json:"journeyClass"`
	NumberOfPassenger  int              `json:"numberOfpassenger"`
	ChartStatus        string           `json:"chartStatus"`
	PassengerList      []irctcPassenger `json:"passengerList"`
	BookingFare        int              `json:"bookingFare"`
	TicketFare         int              `json:"ticketFare"`
	Quota              string           `json:"quota"`
	BookingDate        string           `json:"bookingDate"`
	ArrivalDate        string           `json:"arrivalDate"`
	Distance           int              `json:"distance"`
}

type irctcPNRResponse struct {
	Success bool          `json:"success"`
	Data    *irctcPNRData `json:"data"`
}

// FetchPNR fetches and normalizes one PNR record
func (r *IRCTCPNRRepository) FetchPNR(ctx context.Context, pnr string) (record *entity.PNRRecord, err error) {
	if err := entity.ValidatePNR(pnr); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		r.metrics.ObserveUpstream(upstreamIRCTCPNR, start, err)
		r.logger.Info("PNR fetched", "pnr", pnr, "latency", time.Since(start), "error", err)
	}()

	endpoint := fmt.Sprintf("%s/%s", r.baseURL, url.PathEscape(pnr))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, unavailable("create request", err)
	}
	req.Header.Set(r.headerKey, r.apiKey)
	req.Header.Set(r.headerHost, r.apiHost)

	resp, err := httpclient.DoJSON[irctcPNRResponse](r.client, req)
	if err != nil {
		return nil, unavailable("fetch PNR", err)
	}
	if !resp.Success || resp.Data == nil {
		return nil, unavailablef("PNR %s not found upstream", pnr)
	}

	record = toPNRRecordFromIRCTC(resp.Data)
	if resp.Data.NumberOfPassenger != len(record.Passengers) {
		r.logger.Warn("Passenger count mismatch", "pnr", pnr,
			"declared", resp.Data.NumberOfPassenger, "listed", len(record.Passengers))
	}
	return record, nil
}

// toPNRRecordFromIRCTC translates the keyed API shape. That API has no
// separate source departure date, so the journey date stands in for it.
func toPNRRecordFromIRCTC(d *irctcPNRData) *entity.PNRRecord {
	fare := d.TicketFare
	if fare == 0 {
		fare = d.BookingFare
	}

	record := &entity.PNRRecord{
		PNR:                 d.PNRNumber,
		TrainNumber:         d.TrainNumber,
		TrainName:           d.TrainName,
		SourceCode:          d.SourceStation,
		DestinationCode:     d.DestinationStation,
		BoardingCode:        d.BoardingPoint,
		ReservationUptoCode: d.ReservationUpto,
		JourneyDate:         d.DateOfJourney,
		SourceDepartureDate: d.DateOfJourney,
		BookingDate:         d.BookingDate,
		Fare:                strconv.Itoa(fare),
		JourneyClass:        d.JourneyClass,
		Quota:               d.Quota,
		ChartPrepared:       isChartPrepared(d.ChartStatus),
	}

	for i, p := range d.PassengerList {
		number := p.PassengerSerialNumber
		if number == 0 {
			number = i + 1
		}

		current := p.CurrentStatus
		if current == "" {
			current = p.BookingStatus
		}

		coach, berth, berthCode := p.CurrentCoachID, p.CurrentBerthNo, p.CurrentBerthCode
		if coach == "" {
			coach, berth, berthCode = p.BookingCoachID, p.BookingBerthNo, p.BookingBerthCode
		}

		record.Passengers = append(record.Passengers, entity.PassengerRecord{
			Number:               number,
			BookingStatus:        p.BookingStatus,
			BookingStatusDetails: p.BookingStatusDetails,
			CurrentStatus:        current,
			CurrentStatusDetails: p.CurrentStatusDetails,
			Coach:                coach,
			BerthNumber:          berth,
			BerthCode:            berthCode,
		})
	}

	sortPassengers(record.Passengers)
	record.PassengerCount = len(record.Passengers)
	return record
}

func isChartPrepared(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	return s != "" && !strings.Contains(s, "not prepared")
}

func sortPassengers(ps []entity.PassengerRecord) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Number < ps[j].Number
	})
}
