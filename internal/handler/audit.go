package handler

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AuditRecorder stores a trace of each delivered verification email.
type AuditRecorder interface {
	RecordSend(ctx context.Context, email, token, messageID string) error
}

// PutItemAPI is the part of the DynamoDB client the audit trail uses.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoAudit writes one item per sent email.
type DynamoAudit struct {
	client    PutItemAPI
	tableName string
}

func NewDynamoAudit(client PutItemAPI, tableName string) *DynamoAudit {
	return &DynamoAudit{client: client, tableName: tableName}
}

func (a *DynamoAudit) RecordSend(ctx context.Context, email, token, messageID string) error {
	item := map[string]types.AttributeValue{
		"email":     &types.AttributeValueMemberS{Value: email}, // Partition Key
		"token":     &types.AttributeValueMemberS{Value: token},
		"messageId": &types.AttributeValueMemberS{Value: messageID},
		"sentAt":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}

	_, err := a.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(a.tableName),
		Item:      item,
	})
	return err
}
