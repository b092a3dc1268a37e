package mail

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/google/uuid"
)

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Sender delivers a message and reports the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// SendEmailAPI is the part of the SES v2 client the sender uses.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender sends email through SES from a fixed sender address.
type SESSender struct {
	client SendEmailAPI
	from   string
}

func NewSESSender(client SendEmailAPI, from string) *SESSender {
	return &SESSender{client: client, from: from}
}

// Send issues exactly one SendEmail call for the message. The ref tag ties
// SES delivery events back to this send.
func (s *SESSender) Send(ctx context.Context, msg *Message) (string, error) {
	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTMLBody)},
				},
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("ref"), Value: aws.String(uuid.New().String())},
		},
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}
