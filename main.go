package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/aravindpolepeddi/serverless/internal/config"
	"github.com/aravindpolepeddi/serverless/internal/handler"
	"github.com/aravindpolepeddi/serverless/internal/mail"
)

func main() {
	// The Lambda runtime already prefixes every log line with a timestamp.
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Load AWS configuration
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	h := &handler.Handler{
		Sender: mail.NewSESSender(sesv2.NewFromConfig(awsCfg), cfg.SenderAddress),
		Config: cfg,
	}
	if cfg.AuditTableName != "" {
		h.Audit = handler.NewDynamoAudit(dynamodb.NewFromConfig(awsCfg), cfg.AuditTableName)
	}

	lambda.Start(h.Handle)
}
