package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/pfrederiksen/vcal-notify/internal/logger"
	"github.com/pfrederiksen/vcal-notify/internal/telegram"
)

// Publisher is the subset of *sns.Client used by SNSNotifier
type Publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotifier mirrors messages to an SNS topic as plain text
type SNSNotifier struct {
	publisher Publisher
	topicARN  string
	subject   string
}

// NewSNSNotifier builds an SNS client from the default AWS configuration chain
func NewSNSNotifier(ctx context.Context, topicARN, subject string) (*SNSNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return NewSNSNotifierWithPublisher(sns.NewFromConfig(cfg), topicARN, subject), nil
}

// NewSNSNotifierWithPublisher uses an existing publisher
func NewSNSNotifierWithPublisher(publisher Publisher, topicARN, subject string) *SNSNotifier {
	return &SNSNotifier{
		publisher: publisher,
		topicARN:  topicARN,
		subject:   subject,
	}
}

// Name implements Notifier
func (n *SNSNotifier) Name() string {
	return "sns"
}

// Notify implements Notifier
func (n *SNSNotifier) Notify(ctx context.Context, text string) error {
	input := &sns.PublishInput{
		Message:  aws.String(telegram.PlainText(text)),
		TopicArn: aws.String(n.topicARN),
	}
	if n.subject != "" {
		input.Subject = aws.String(n.subject)
	}

	out, err := n.publisher.Publish(ctx, input)
	if err != nil {
		return fmt.Errorf("publishing to SNS topic %s: %w", n.topicARN, err)
	}

	fields := logger.Fields{"topic_arn": n.topicARN}
	if out != nil {
		fields["message_id"] = aws.ToString(out.MessageId)
	}
	logger.Info("Message published to SNS", fields)
	return nil
}
