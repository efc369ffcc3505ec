package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/isp-registry/internal/config"
	"github.com/spec-kit/isp-registry/internal/events"
)

// AuditWorker records registry changes to the log and to a capped Redis list.
type AuditWorker struct {
	client *redis.Client
	cfg    config.AuditConfig
	logger *zap.Logger
}

// NewAuditWorker constructs the worker. A nil Redis client degrades to
// log-only auditing.
func NewAuditWorker(client *redis.Client, cfg config.AuditConfig, logger *zap.Logger) *AuditWorker {
	return &AuditWorker{client: client, cfg: cfg, logger: logger}
}

// Register subscribes the worker to all record-change events.
func (w *AuditWorker) Register(dispatcher events.Dispatcher) {
	for _, eventType := range []events.EventType{
		events.EventRecordCreated,
		events.EventRecordUpdated,
		events.EventRecordDeleted,
	} {
		dispatcher.Subscribe(eventType, w.handle)
	}
}

func (w *AuditWorker) handle(ctx context.Context, event events.Event) error {
	w.logger.Info("record change",
		zap.String("type", string(event.Type)),
		zap.String("entity", event.Entity),
		zap.Int64("entity_id", event.EntityID),
	)

	if w.client == nil {
		return nil
	}

	entry, err := json.Marshal(event)
	if err != nil {
		return err
	}
	pipe := w.client.Pipeline()
	pipe.LPush(ctx, w.cfg.RedisKey, entry)
	pipe.LTrim(ctx, w.cfg.RedisKey, 0, w.cfg.MaxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		w.logger.Warn("audit trail write failed", zap.Error(err))
	}
	return nil
}
