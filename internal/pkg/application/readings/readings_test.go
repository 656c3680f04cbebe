package readings

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/greenmesh/iot-moisture-svc/pkg/types"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (*ReadingStorageMock, *messaging.MsgContextMock, ReadingService) {
	storage := &ReadingStorageMock{
		AddReadingFunc: func(ctx context.Context, potID string, location *string, rawValue, moisturePercent float64) (types.Reading, error) {
			return types.Reading{
				ID:              1,
				PotID:           potID,
				Location:        location,
				RawValue:        rawValue,
				MoisturePercent: moisturePercent,
				Timestamp:       time.Now().UTC(),
			}, nil
		},
		QueryReadingsFunc: func(ctx context.Context, potID string, limit int) ([]types.Reading, error) {
			return []types.Reading{}, nil
		},
		DeleteReadingsOlderThanFunc: func(ctx context.Context, days int) (int64, error) {
			return 3, nil
		},
	}

	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
		RegisterTopicMessageHandlerFunc: func(routingKey string, handler messaging.TopicMessageHandler) error {
			return nil
		},
	}

	return storage, msgCtx, New(storage, msgCtx)
}

func str(s string) *string {
	return &s
}

func f64(f float64) *float64 {
	return &f
}

func TestSubmitStoresReadingAndPublishesEvent(t *testing.T) {
	is := is.New(t)
	storage, msgCtx, svc := testSetup(t)

	reading, err := svc.Submit(context.Background(), types.IncomingReading{
		PotID:           str("basil-01"),
		Location:        str("kitchen window"),
		RawValue:        f64(512),
		MoisturePercent: f64(48.5),
	})
	is.NoErr(err)

	is.Equal(len(storage.AddReadingCalls()), 1)
	is.Equal(storage.AddReadingCalls()[0].PotID, "basil-01")
	is.True(reading.ID > 0)
	is.True(!reading.Timestamp.IsZero())

	is.Equal(len(msgCtx.PublishOnTopicCalls()), 1)
	is.Equal(msgCtx.PublishOnTopicCalls()[0].Message.TopicName(), "reading.created")
}

func TestSubmitAcceptsZeroValues(t *testing.T) {
	is := is.New(t)
	storage, _, svc := testSetup(t)

	_, err := svc.Submit(context.Background(), types.IncomingReading{
		PotID:           str("basil-01"),
		RawValue:        f64(0),
		MoisturePercent: f64(0),
	})
	is.NoErr(err)
	is.Equal(len(storage.AddReadingCalls()), 1)
	is.Equal(storage.AddReadingCalls()[0].RawValue, 0.0)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	testCases := map[string]types.IncomingReading{
		"missing pot_id":           {RawValue: f64(1), MoisturePercent: f64(1)},
		"empty pot_id":             {PotID: str(""), RawValue: f64(1), MoisturePercent: f64(1)},
		"missing raw_value":        {PotID: str("basil-01"), MoisturePercent: f64(1)},
		"missing moisture_percent": {PotID: str("basil-01"), RawValue: f64(1)},
	}

	for name, incoming := range testCases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			storage, _, svc := testSetup(t)

			_, err := svc.Submit(context.Background(), incoming)
			is.True(errors.Is(err, ErrInvalidReading))
			is.Equal(len(storage.AddReadingCalls()), 0)
		})
	}
}

func TestSubmitSurfacesStorageError(t *testing.T) {
	is := is.New(t)
	storage, msgCtx, svc := testSetup(t)

	storage.AddReadingFunc = func(ctx context.Context, potID string, location *string, rawValue, moisturePercent float64) (types.Reading, error) {
		return types.Reading{}, errors.New("connection refused")
	}

	_, err := svc.Submit(context.Background(), types.IncomingReading{
		PotID:           str("basil-01"),
		RawValue:        f64(1),
		MoisturePercent: f64(1),
	})
	is.True(err != nil)
	is.Equal(len(msgCtx.PublishOnTopicCalls()), 0)
}

func TestHistoryAppliesDefaultLimit(t *testing.T) {
	is := is.New(t)
	storage, _, svc := testSetup(t)

	_, err := svc.History(context.Background(), "basil-01", 0)
	is.NoErr(err)

	is.Equal(len(storage.QueryReadingsCalls()), 1)
	is.Equal(storage.QueryReadingsCalls()[0].Limit, DefaultHistoryLimit)
}

func TestHistoryPassesLimitThrough(t *testing.T) {
	is := is.New(t)
	storage, _, svc := testSetup(t)

	_, err := svc.History(context.Background(), "basil-01", 2)
	is.NoErr(err)

	is.Equal(storage.QueryReadingsCalls()[0].PotID, "basil-01")
	is.Equal(storage.QueryReadingsCalls()[0].Limit, 2)
}

func TestCleanupPublishesDeletedCount(t *testing.T) {
	is := is.New(t)
	storage, msgCtx, svc := testSetup(t)

	deleted, err := svc.Cleanup(context.Background(), 30)
	is.NoErr(err)
	is.Equal(deleted, int64(3))

	is.Equal(len(storage.DeleteReadingsOlderThanCalls()), 1)
	is.Equal(storage.DeleteReadingsOlderThanCalls()[0].Days, 30)

	is.Equal(len(msgCtx.PublishOnTopicCalls()), 1)
	is.Equal(msgCtx.PublishOnTopicCalls()[0].Message.TopicName(), "reading.deleted")
}

type incomingTopicMessage struct {
	body []byte
}

func (m incomingTopicMessage) Body() []byte {
	return m.body
}
func (m incomingTopicMessage) ContentType() string {
	return "application/json"
}
func (m incomingTopicMessage) TopicName() string {
	return "soil-moisture.reading"
}

func TestReadingTopicHandlerStoresReading(t *testing.T) {
	is := is.New(t)
	storage, _, svc := testSetup(t)

	body, _ := json.Marshal(types.IncomingReading{
		PotID:           str("basil-01"),
		RawValue:        f64(512),
		MoisturePercent: f64(48.5),
	})

	handler := NewReadingTopicHandler(svc)
	handler(context.Background(), incomingTopicMessage{body: body}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	is.Equal(len(storage.AddReadingCalls()), 1)
	is.Equal(storage.AddReadingCalls()[0].PotID, "basil-01")
}

func TestReadingTopicHandlerDropsMalformedMessage(t *testing.T) {
	is := is.New(t)
	storage, _, svc := testSetup(t)

	handler := NewReadingTopicHandler(svc)
	handler(context.Background(), incomingTopicMessage{body: []byte("not json")}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	is.Equal(len(storage.AddReadingCalls()), 0)
}

func TestRegisterTopicMessageHandler(t *testing.T) {
	is := is.New(t)
	_, msgCtx, svc := testSetup(t)

	err := svc.RegisterTopicMessageHandler(context.Background())
	is.NoErr(err)

	is.Equal(len(msgCtx.RegisterTopicMessageHandlerCalls()), 1)
	is.Equal(msgCtx.RegisterTopicMessageHandlerCalls()[0].RoutingKey, "soil-moisture.reading")
}
