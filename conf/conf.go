package conf

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Config carries everything the server needs from the environment.
type Config struct {
	AwsRegion        string
	ApplicantTable   string
	CriteriaTable    string
	UserTable        string
	DecisionQueueURL string
	ExportBucket     string
	JwtKey           []byte
}

// FromEnv reads the configuration from environment variables. The JWT key
// comes from JWT_KEY directly, or from the AWS Secrets Manager secret named
// by JWT_KEY_SECRET_NAME when running deployed.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AwsRegion:        envOr("AWS_REGION", "eu-central-1"),
		ApplicantTable:   envOr("APPLICANT_TABLE", "HacknightApplicants"),
		CriteriaTable:    envOr("CRITERIA_TABLE", "HacknightCriteria"),
		UserTable:        envOr("USER_TABLE", "HacknightUsers"),
		DecisionQueueURL: os.Getenv("DECISION_QUEUE_URL"),
		ExportBucket:     os.Getenv("EXPORT_BUCKET"),
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		secretName := os.Getenv("JWT_KEY_SECRET_NAME")
		if secretName == "" {
			return nil, fmt.Errorf("neither JWT_KEY nor JWT_KEY_SECRET_NAME is set")
		}
		secretValue, err := getSecretFromAWS(secretName)
		if err != nil {
			return nil, fmt.Errorf("failed to get jwt key from AWS: %w", err)
		}
		var secret struct {
			JwtKey string `json:"jwt_key"`
		}
		if err := json.Unmarshal([]byte(secretValue), &secret); err != nil {
			return nil, fmt.Errorf("failed to parse jwt key secret: %w", err)
		}
		jwtKey = secret.JwtKey
	}
	cfg.JwtKey = []byte(jwtKey)

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getSecretFromAWS(secretName string) (string, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", err
	}
	svc := secretsmanager.NewFromConfig(cfg)
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := svc.GetSecretValue(ctx, input)
	if err != nil {
		return "", err
	}
	return *result.SecretString, nil
}
