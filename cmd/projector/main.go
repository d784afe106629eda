// Command projector is the Lambda entry point that projects DynamoDB stream
// records into the arbor key/value store.
//
// Environment:
//
//	ARBOR_TABLE        key/value table name (default "arbor_store")
//	ARBOR_NAMESPACE    store namespace (default "default")
//	ARBOR_SHARDS       number of store shards (default 1)
//	ARBOR_PROJECTIONS  path to the YAML projection file (required)
//	ARBOR_LOG_LEVEL    logrus level (default "info")
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/jacentio/arbor/store"
	"github.com/jacentio/arbor/stream"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	projector, err := setup(context.Background(), logger)
	if err != nil {
		logger.WithError(err).Fatal("projector setup failed")
	}
	lambda.Start(projector.HandleProjection)
}

func setup(ctx context.Context, logger *logrus.Logger) (*stream.Projector, error) {
	if lvl := os.Getenv("ARBOR_LOG_LEVEL"); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(level)
	}

	path := os.Getenv("ARBOR_PROJECTIONS")
	if path == "" {
		return nil, errors.New("ARBOR_PROJECTIONS is not set")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	registry, err := stream.LoadProjections(f)
	if err != nil {
		return nil, err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	cfg := store.DefaultConfig()
	if v := os.Getenv("ARBOR_TABLE"); v != "" {
		cfg.Table = v
	}
	if v := os.Getenv("ARBOR_NAMESPACE"); v != "" {
		cfg.Namespace = v
	}
	if v := os.Getenv("ARBOR_SHARDS"); v != "" {
		shards, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("ARBOR_SHARDS: %w", err)
		}
		cfg.NumShards = shards
	}

	s := store.NewWithLogger(dynamodb.NewFromConfig(awsCfg), cfg, logger)

	logger.WithFields(logrus.Fields{
		"table":       s.Config().Table,
		"namespace":   s.Config().Namespace,
		"projections": len(registry.All()),
	}).Info("projector ready")

	return stream.NewProjector(s, registry, logger), nil
}
