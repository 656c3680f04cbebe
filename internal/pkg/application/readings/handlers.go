package readings

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/greenmesh/iot-moisture-svc/pkg/types"
)

// NewReadingTopicHandler stores readings that gateways publish on the
// soil-moisture.reading topic. Messages that fail validation are logged
// and dropped.
func NewReadingTopicHandler(svc ReadingService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "soil-moisture-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		incoming := types.IncomingReading{}
		err = json.Unmarshal(itm.Body(), &incoming)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		if incoming.PotID != nil {
			ctx = logging.NewContextWithLogger(ctx, log, slog.String("pot_id", *incoming.PotID))
		}

		_, err = svc.Submit(ctx, incoming)
		if err != nil {
			log.Error("could not store reading", "err", err.Error())
			return
		}
	}
}
