package notify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/klauspost/compress/zstd"
)

// DecisionMsg is the payload the notification worker consumes to send a
// decision email.
type DecisionMsg struct {
	Edition     string    `json:"edition"`
	ApplicantID string    `json:"applicant_id"`
	Email       string    `json:"email"`
	Decision    string    `json:"decision"`
	EnqueuedAt  time.Time `json:"enqueued_at"`
}

// DecisionQueue enqueues admission decisions onto SQS for the email
// worker. Message bodies are zstd-compressed and base64-encoded.
type DecisionQueue struct {
	client   *sqs.Client
	queueURL string
}

func NewDecisionQueue(ctx context.Context, region, queueURL string) (*DecisionQueue, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &DecisionQueue{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// NotifyAccepted enqueues one "accepted, awaiting response" notification.
func (q *DecisionQueue) NotifyAccepted(ctx context.Context, edition, applicantID, email string) error {
	return q.enqueue(ctx, DecisionMsg{
		Edition:     edition,
		ApplicantID: applicantID,
		Email:       email,
		Decision:    "accepted",
		EnqueuedAt:  time.Now().UTC(),
	})
}

func (q *DecisionQueue) enqueue(ctx context.Context, msg DecisionMsg) error {
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		format := "failed to marshal decision notification: %w"
		return fmt.Errorf(format, err)
	}

	zstdEncoder, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer zstdEncoder.Close()

	compressed := zstdEncoder.EncodeAll(jsonMsg, make([]byte, 0, len(jsonMsg)))
	encoded := base64.StdEncoding.EncodeToString(compressed)

	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(encoded),
	})
	if err != nil {
		format := "failed to send message to decision queue: %w"
		return fmt.Errorf(format, err)
	}

	return nil
}
