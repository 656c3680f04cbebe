package readings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/greenmesh/iot-moisture-svc/pkg/types"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-moisture-svc/readings")

var ErrInvalidReading = errors.New("invalid reading")

const DefaultHistoryLimit = 100
const DefaultRetentionDays = 30

//go:generate moq -rm -out readingservice_mock.go . ReadingService
type ReadingService interface {
	Submit(ctx context.Context, incoming types.IncomingReading) (types.Reading, error)
	History(ctx context.Context, potID string, limit int) ([]types.Reading, error)
	LatestPerPot(ctx context.Context) ([]types.Reading, error)
	ListPots(ctx context.Context) ([]types.PotSummary, error)
	Cleanup(ctx context.Context, days int) (int64, error)

	RegisterTopicMessageHandler(ctx context.Context) error
}

//go:generate moq -rm -out readingstorage_mock.go . ReadingStorage
type ReadingStorage interface {
	AddReading(ctx context.Context, potID string, location *string, rawValue, moisturePercent float64) (types.Reading, error)
	QueryReadings(ctx context.Context, potID string, limit int) ([]types.Reading, error)
	LatestPerPot(ctx context.Context) ([]types.Reading, error)
	ListPots(ctx context.Context) ([]types.PotSummary, error)
	DeleteReadingsOlderThan(ctx context.Context, days int) (int64, error)
}

type service struct {
	storage   ReadingStorage
	messenger messaging.MsgContext
}

func New(storage ReadingStorage, messenger messaging.MsgContext) ReadingService {
	return service{
		storage:   storage,
		messenger: messenger,
	}
}

func (s service) RegisterTopicMessageHandler(ctx context.Context) error {
	return s.messenger.RegisterTopicMessageHandler("soil-moisture.reading", NewReadingTopicHandler(s))
}

func (s service) Submit(ctx context.Context, incoming types.IncomingReading) (types.Reading, error) {
	err := validate(incoming)
	if err != nil {
		return types.Reading{}, err
	}

	reading, err := s.storage.AddReading(ctx, *incoming.PotID, incoming.Location, *incoming.RawValue, *incoming.MoisturePercent)
	if err != nil {
		return types.Reading{}, err
	}

	err = s.messenger.PublishOnTopic(ctx, &types.ReadingCreated{
		ReadingID: reading.ID,
		PotID:     reading.PotID,
		Timestamp: reading.Timestamp,
	})
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Warn("could not publish reading.created", "err", err.Error())
	}

	return reading, nil
}

func (s service) History(ctx context.Context, potID string, limit int) ([]types.Reading, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	return s.storage.QueryReadings(ctx, potID, limit)
}

func (s service) LatestPerPot(ctx context.Context) ([]types.Reading, error) {
	return s.storage.LatestPerPot(ctx)
}

func (s service) ListPots(ctx context.Context) ([]types.PotSummary, error) {
	return s.storage.ListPots(ctx)
}

func (s service) Cleanup(ctx context.Context, days int) (int64, error) {
	deleted, err := s.storage.DeleteReadingsOlderThan(ctx, days)
	if err != nil {
		return 0, err
	}

	err = s.messenger.PublishOnTopic(ctx, &types.ReadingsDeleted{
		Count:     deleted,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Warn("could not publish reading.deleted", "err", err.Error())
	}

	return deleted, nil
}

func validate(incoming types.IncomingReading) error {
	if incoming.PotID == nil || *incoming.PotID == "" {
		return fmt.Errorf("%w: pot_id is required", ErrInvalidReading)
	}
	if incoming.RawValue == nil {
		return fmt.Errorf("%w: raw_value is required", ErrInvalidReading)
	}
	if incoming.MoisturePercent == nil {
		return fmt.Errorf("%w: moisture_percent is required", ErrInvalidReading)
	}

	return nil
}
