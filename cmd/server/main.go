package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/hacknight-dev/backend/admission"
	"github.com/hacknight-dev/backend/applicant"
	"github.com/hacknight-dev/backend/conf"
	"github.com/hacknight-dev/backend/export"
	"github.com/hacknight-dev/backend/http"
	"github.com/hacknight-dev/backend/notify"
	"github.com/hacknight-dev/backend/s3bucket"
	"github.com/hacknight-dev/backend/scoring"
	"github.com/hacknight-dev/backend/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	ctx := context.Background()

	cfg, err := conf.FromEnv()
	if err != nil {
		slog.Error("failed to read configuration", "error", err)
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AwsRegion))
	if err != nil {
		slog.Error("unable to load SDK config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	applTable := applicant.NewDynamoDbApplicantTable(ddbClient, cfg.ApplicantTable)
	criteriaTable := scoring.NewDynamoDbCriteriaTable(ddbClient, cfg.CriteriaTable)
	userTable := user.NewDynamoDbUsersTable(ddbClient, cfg.UserTable)

	bus := applicant.NewUpdateBus()

	applSrvc := applicant.NewApplicantSrvc(applTable, bus)
	scoreSrvc := scoring.NewScoringSrvc(applTable, criteriaTable, bus)
	userSrvc := user.NewUserSrvc(cfg.JwtKey, userTable)

	var notifier admission.DecisionNotifier
	if cfg.DecisionQueueURL != "" {
		queue, err := notify.NewDecisionQueue(ctx, cfg.AwsRegion, cfg.DecisionQueueURL)
		if err != nil {
			slog.Error("failed to create decision queue", "error", err)
			os.Exit(1)
		}
		notifier = queue
	} else {
		slog.Warn("DECISION_QUEUE_URL not set, decision notifications disabled")
	}
	admSrvc := admission.NewAdmissionSrvc(applTable, notifier, bus)

	var exporter *export.Exporter
	if cfg.ExportBucket != "" {
		bucket, err := s3bucket.NewS3Bucket(cfg.AwsRegion, cfg.ExportBucket)
		if err != nil {
			slog.Error("failed to create export bucket", "error", err)
			os.Exit(1)
		}
		exporter = export.NewExporter(bucket)
	} else {
		slog.Warn("EXPORT_BUCKET not set, S3 exports disabled")
	}

	httpServer := http.NewHttpServer(applSrvc, scoreSrvc, admSrvc, userSrvc, exporter, cfg.JwtKey)

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
