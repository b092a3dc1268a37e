package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/aravindpolepeddi/serverless/internal/config"
	"github.com/aravindpolepeddi/serverless/internal/mail"
)

// Handler sends one verification email per user-registration notification.
type Handler struct {
	Sender mail.Sender
	// Audit is optional; nil disables the send-audit trail.
	Audit  AuditRecorder
	Config *config.Config
}

// Handle processes a registration notification from SNS. A malformed event
// returns an error so the platform faults and retries; a failed send is
// reported as a 400 result and is not retried.
func (h *Handler) Handle(ctx context.Context, event events.SNSEvent) (events.APIGatewayProxyResponse, error) {
	if len(event.Records) == 0 {
		return events.APIGatewayProxyResponse{}, errors.New("event contains no records")
	}

	var reg mail.Registration
	if err := json.Unmarshal([]byte(event.Records[0].SNS.Message), &reg); err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("decoding registration payload: %w", err)
	}

	body, err := mail.RenderVerification(mail.VerificationData{
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		VerifyURL: mail.VerificationURL(h.Config.VerifyBaseURL, reg.Email, reg.Token),
	})
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	messageID, err := h.Sender.Send(ctx, &mail.Message{
		To:       reg.Email,
		Subject:  h.Config.Subject,
		HTMLBody: body,
	})
	if err != nil {
		log.Printf("Failed to send verification email to %s: %v", reg.Email, err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: "Sending failed"}, nil
	}

	// The audit trail never affects the result of the invocation.
	if h.Audit != nil {
		if err := h.Audit.RecordSend(ctx, reg.Email, reg.Token, messageID); err != nil {
			log.Printf("Failed to record send audit for %s: %v", reg.Email, err)
		}
	}

	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: "Email sent!"}, nil
}
