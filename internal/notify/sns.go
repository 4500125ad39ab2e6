package notify

import (
	"context"
	"log"

	"gympal/workout-app/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// snsNotifier implements Notifier by publishing SMS messages through AWS SNS.
type snsNotifier struct {
	client *sns.Client
}

// NewSNSNotifier creates a Notifier backed by AWS SNS.
func NewSNSNotifier(cfg config.NotifyConfig) (Notifier, error) {
	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.TODO(),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		log.Printf("ERROR: Failed to load AWS SDK config for SNS: %v", err)
		return nil, err
	}

	log.Printf("SNS Notifier initialized for region: %s", cfg.Region)

	return &snsNotifier{
		client: sns.NewFromConfig(awsSDKConfig),
	}, nil
}

// SendSMS publishes a single SMS message directly to a phone number.
func (n *snsNotifier) SendSMS(ctx context.Context, phoneNumber, message string) error {
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(message),
	})
	return err
}
