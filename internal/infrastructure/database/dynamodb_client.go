package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the marketplace DynamoDB client from the
// environment. With DYNAMODB_ENDPOINT set (e.g. http://localhost:8000) it
// talks to a local instance using placeholder credentials; otherwise the
// default AWS credential chain applies.
func ConnectDynamoDB() *dynamodb.Client {
	ctx := context.Background()

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(envOr("AWS_REGION", "us-east-1")),
	}

	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		// Local DynamoDB accepts any credentials but the SDK insists on some.
		opts = append(opts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				envOr("AWS_ACCESS_KEY_ID", "local"),
				envOr("AWS_SECRET_ACCESS_KEY", "local"),
				"",
			)),
		)

		cfg, err := config.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			log.Fatalf("failed to load aws config: %v", err)
		}
		return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
