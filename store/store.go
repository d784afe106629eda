package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jacentio/arbor/internal/shard"
	"github.com/jacentio/arbor/record"
)

// maxBatchSize is the DynamoDB limit for BatchWriteItem.
const maxBatchSize = 25

// maxConcurrentReads bounds the GetItem calls GetMany runs at once.
const maxConcurrentReads = 8

// API is the subset of the DynamoDB client the Store uses.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ API = (*dynamodb.Client)(nil)

// Store is a string-keyed value store backed by a DynamoDB table.
type Store struct {
	client API
	config Config
	logger logrus.FieldLogger
	now    func() time.Time
}

// New creates a new Store instance.
func New(client API, config Config) *Store {
	return NewWithLogger(client, config, nil)
}

// NewWithLogger creates a new Store instance that logs to logger.
// A nil logger uses the logrus standard logger.
func NewWithLogger(client API, config Config, logger logrus.FieldLogger) *Store {
	config.validate()
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{
		client: client,
		config: config,
		logger: logger.WithFields(logrus.Fields{
			"table":     config.Table,
			"namespace": config.Namespace,
		}),
		now: time.Now,
	}
}

// Config returns the validated configuration.
func (s *Store) Config() Config {
	return s.config
}

// itemKey computes the primary key of a stored key.
func (s *Store) itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: shard.PartitionKey(s.config.Namespace, key, s.config.NumShards)},
		"sk": &types.AttributeValueMemberS{Value: key},
	}
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.Table),
		Key:       s.itemKey(key),
	})
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	if result.Item == nil || IsExpired(result.Item, s.now()) {
		return "", ErrNotFound
	}

	var e entry
	if err := attributevalue.UnmarshalMap(result.Item, &e); err != nil {
		return "", fmt.Errorf("unmarshal %q: %w", key, err)
	}
	return e.Value, nil
}

// GetMany returns a Record holding the value of every key in argument order.
// Missing, expired and empty values are nil.
func (s *Store) GetMany(ctx context.Context, keys ...string) (*record.Record, error) {
	keys = lo.Uniq(keys)
	values := make([]any, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, key := range keys {
		g.Go(func() error {
			v, err := s.Get(ctx, key)
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrEmptyKey):
				return nil
			case err != nil:
				return err
			case v != "":
				values[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := record.New()
	for i, key := range keys {
		out.Set(key, values[i])
	}
	return out, nil
}

// GetRecord returns the value stored under key decoded as a JSON object.
func (s *Store) GetRecord(ctx context.Context, key string) (*record.Record, error) {
	v, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	r, err := record.ParseRecord([]byte(v))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", key, err)
	}
	return r, nil
}

// Set stores value under key. See EncodeValue for how values are rendered.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}
	item, err := s.item(key, value)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.Table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	s.logger.WithField("key", key).Debug("value stored")
	return nil
}

// SetMany stores every field of values under its own key.
func (s *Store) SetMany(ctx context.Context, values *record.Record) error {
	requests := make([]types.WriteRequest, 0, values.Len())
	var err error
	values.Range(func(key string, value any) bool {
		if key == "" {
			err = ErrEmptyKey
			return false
		}
		var item map[string]types.AttributeValue
		if item, err = s.item(key, value); err != nil {
			return false
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
		return true
	})
	if err != nil {
		return err
	}

	if err := s.writeBatch(ctx, requests); err != nil {
		return err
	}
	s.logger.WithField("count", len(requests)).Debug("values stored")
	return nil
}

// Delete removes keys. Keys that do not exist are ignored.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	keys = lo.Uniq(keys)
	if lo.Contains(keys, "") {
		return ErrEmptyKey
	}

	switch len(keys) {
	case 0:
		return nil
	case 1:
		_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.config.Table),
			Key:       s.itemKey(keys[0]),
		})
		if err != nil {
			return fmt.Errorf("delete %q: %w", keys[0], err)
		}
		return nil
	}

	requests := lo.Map(keys, func(key string, _ int) types.WriteRequest {
		return types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: s.itemKey(key)},
		}
	})
	return s.writeBatch(ctx, requests)
}

// Keys lists the unexpired keys of the namespace in sorted order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.listKeys(ctx, true)
	if err != nil {
		return nil, err
	}
	slices.Sort(keys)
	return keys, nil
}

// Clear removes every key of the namespace, expired ones included.
func (s *Store) Clear(ctx context.Context) error {
	keys, err := s.listKeys(ctx, false)
	if err != nil {
		return err
	}
	if err := s.Delete(ctx, keys...); err != nil {
		return err
	}
	s.logger.WithField("count", len(keys)).Info("namespace cleared")
	return nil
}

// item builds the table item for key.
func (s *Store) item(key string, value any) (map[string]types.AttributeValue, error) {
	encoded, err := EncodeValue(value)
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", key, err)
	}

	now := s.now()
	e := entry{
		PK:        shard.PartitionKey(s.config.Namespace, key, s.config.NumShards),
		SK:        key,
		Value:     encoded,
		UpdatedAt: now.UTC().Format(time.RFC3339),
	}
	if s.config.TTL > 0 {
		e.TTL = now.Add(s.config.TTL).Unix()
	}

	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %q: %w", key, err)
	}
	return item, nil
}

// listKeys queries every shard of the namespace in parallel.
func (s *Store) listKeys(ctx context.Context, activeOnly bool) ([]string, error) {
	now := s.now()
	partitions := shard.PartitionKeys(s.config.Namespace, s.config.NumShards)
	results := make([][]string, len(partitions))

	g, ctx := errgroup.WithContext(ctx)
	for i, pk := range partitions {
		g.Go(func() error {
			input := &dynamodb.QueryInput{
				TableName:              aws.String(s.config.Table),
				KeyConditionExpression: aws.String("pk = :pk"),
				ProjectionExpression:   aws.String("sk"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pk": &types.AttributeValueMemberS{Value: pk},
				},
			}
			if activeOnly {
				input.FilterExpression = aws.String(TTLFilterExpr())
				input.ExpressionAttributeNames = map[string]string{"#ttl": "ttl"}
				input.ExpressionAttributeValues = lo.Assign(input.ExpressionAttributeValues, ttlFilterValues(now))
			}

			paginator := dynamodb.NewQueryPaginator(s.client, input)
			for paginator.HasMorePages() {
				page, err := paginator.NextPage(ctx)
				if err != nil {
					return fmt.Errorf("shard %s: %w", pk, err)
				}
				for _, item := range page.Items {
					if sk, ok := item["sk"].(*types.AttributeValueMemberS); ok {
						results[i] = append(results[i], sk.Value)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lo.Flatten(results), nil
}

// writeBatch sends requests in chunks of 25 and resends unprocessed items
// with a linear backoff.
func (s *Store) writeBatch(ctx context.Context, requests []types.WriteRequest) error {
	for _, chunk := range lo.Chunk(requests, maxBatchSize) {
		pending := chunk
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt > s.config.MaxBatchRetries {
				return fmt.Errorf("%w: %d of %d items", ErrUnprocessed, len(pending), len(chunk))
			}
			if attempt > 0 {
				s.logger.WithFields(logrus.Fields{
					"attempt": attempt,
					"pending": len(pending),
				}).Warn("retrying unprocessed batch items")
				if err := sleep(ctx, time.Duration(attempt)*s.config.RetryDelay); err != nil {
					return err
				}
			}

			out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{s.config.Table: pending},
			})
			if err != nil {
				return fmt.Errorf("batch write: %w", err)
			}
			pending = out.UnprocessedItems[s.config.Table]
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
