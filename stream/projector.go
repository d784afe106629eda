// Package stream provides DynamoDB Streams handlers that project table
// items into the key/value store.
package stream

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// ErrMissingKey is returned when a stream record lacks the key attribute
// of its projection.
var ErrMissingKey = errors.New("arbor: stream record has no key attribute")

// Writer is the part of store.Store the projector writes through.
type Writer interface {
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// Projector processes DynamoDB stream events into reshaped store values.
type Projector struct {
	store    Writer
	registry *Registry
	logger   logrus.FieldLogger
}

// NewProjector creates a new stream projector.
func NewProjector(w Writer, registry *Registry, logger logrus.FieldLogger) *Projector {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if registry == nil {
		registry = NewRegistry()
	}
	return &Projector{
		store:    w,
		registry: registry,
		logger:   logger,
	}
}

// HandleProjection stores the projected new image of every inserted or
// modified item and deletes the value of every removed item. Items of
// tables without a projection are skipped.
// This function is designed to be used as an AWS Lambda handler.
func (p *Projector) HandleProjection(ctx context.Context, event events.DynamoDBEvent) error {
	for _, rec := range event.Records {
		if err := p.processRecord(ctx, rec); err != nil {
			p.logger.WithFields(logrus.Fields{
				"eventID": rec.EventID,
				"error":   err,
			}).Error("failed to process record")
			return err // Will retry, eventually DLQ
		}
	}
	return nil
}

// StoreKey returns the key a projected item is stored under.
func StoreKey(table, key string) string {
	return table + "/" + key
}

// processRecord processes a single DynamoDB stream record.
func (p *Projector) processRecord(ctx context.Context, rec events.DynamoDBEventRecord) error {
	table := TableName(rec.EventSourceArn)
	projection, ok := p.registry.For(table)
	if !ok {
		p.logger.WithField("table", table).Debug("no projection for table")
		return nil
	}

	log := p.logger.WithFields(logrus.Fields{
		"table":   table,
		"eventID": rec.EventID,
	})

	switch rec.EventName {
	case string(events.DynamoDBOperationTypeInsert), string(events.DynamoDBOperationTypeModify):
		key, err := recordKey(rec.Change.NewImage, rec.Change.Keys, projection.KeyAttribute)
		if err != nil {
			return err
		}
		item, err := ImageToRecord(rec.Change.NewImage)
		if err != nil {
			return fmt.Errorf("decode %s: %w", StoreKey(table, key), err)
		}
		projected, err := projection.Apply(item)
		if err != nil {
			return fmt.Errorf("project %s: %w", StoreKey(table, key), err)
		}
		if err := p.store.Set(ctx, StoreKey(table, key), projected); err != nil {
			return fmt.Errorf("store %s: %w", StoreKey(table, key), err)
		}
		log.WithFields(logrus.Fields{
			"key":    StoreKey(table, key),
			"fields": projected.Len(),
		}).Info("projected item")

	case string(events.DynamoDBOperationTypeRemove):
		key, err := recordKey(rec.Change.OldImage, rec.Change.Keys, projection.KeyAttribute)
		if err != nil {
			return err
		}
		if err := p.store.Delete(ctx, StoreKey(table, key)); err != nil {
			return fmt.Errorf("delete %s: %w", StoreKey(table, key), err)
		}
		log.WithField("key", StoreKey(table, key)).Info("removed projected item")
	}
	return nil
}

// recordKey reads the key attribute from the image, falling back to the
// record's key attributes.
func recordKey(image, keys map[string]events.DynamoDBAttributeValue, attr string) (string, error) {
	if v, ok := keyValue(image, attr); ok {
		return v, nil
	}
	if v, ok := keyValue(keys, attr); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrMissingKey, attr)
}
