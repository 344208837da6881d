package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/hacknight-dev/backend/admission"
	"github.com/hacknight-dev/backend/applicant"
	"github.com/hacknight-dev/backend/conf"
	"github.com/hacknight-dev/backend/export"
	"github.com/hacknight-dev/backend/s3bucket"
	"github.com/hacknight-dev/backend/scoring"
)

const usage = `usage: admin <command> [flags]

commands:
  seed-criteria  -file criteria.toml
  normalize      -edition <edition>
  preview        -edition <edition> [-min-score N] [-min-zscore N]
  export         -edition <edition>
`

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	cfg, err := conf.FromEnv()
	if err != nil {
		fatal("failed to read configuration", err)
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AwsRegion))
	if err != nil {
		fatal("unable to load SDK config", err)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	applTable := applicant.NewDynamoDbApplicantTable(ddbClient, cfg.ApplicantTable)
	criteriaTable := scoring.NewDynamoDbCriteriaTable(ddbClient, cfg.CriteriaTable)

	switch os.Args[1] {
	case "seed-criteria":
		fs := flag.NewFlagSet("seed-criteria", flag.ExitOnError)
		file := fs.String("file", "criteria.toml", "criteria definition file")
		fs.Parse(os.Args[2:])
		if err := seedCriteria(ctx, criteriaTable, *file); err != nil {
			fatal("failed to seed criteria", err)
		}

	case "normalize":
		fs := flag.NewFlagSet("normalize", flag.ExitOnError)
		edition := fs.String("edition", "", "hackathon edition id")
		fs.Parse(os.Args[2:])
		requireEdition(*edition)
		scoreSrvc := scoring.NewScoringSrvc(applTable, criteriaTable, nil)
		applied, err := scoreSrvc.RunNormalization(ctx, *edition)
		if err != nil {
			fatal("normalization run failed", err)
		}
		slog.Info("normalization done", "applicants_updated", applied)

	case "preview":
		fs := flag.NewFlagSet("preview", flag.ExitOnError)
		edition := fs.String("edition", "", "hackathon edition id")
		minScore := fs.Float64("min-score", 0, "minimum total score")
		minZScore := fs.Float64("min-zscore", 0, "minimum total z-score")
		fs.Parse(os.Args[2:])
		requireEdition(*edition)

		criteria := admission.Criteria{}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "min-score":
				criteria.MinScore = minScore
			case "min-zscore":
				criteria.MinZScore = minZScore
			}
		})

		admSrvc := admission.NewAdmissionSrvc(applTable, nil, nil)
		ids, err := admSrvc.Preview(ctx, *edition, criteria)
		if err != nil {
			fatal("acceptance preview failed", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		slog.Info("acceptance preview done", "candidates", len(ids))

	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		edition := fs.String("edition", "", "hackathon edition id")
		fs.Parse(os.Args[2:])
		requireEdition(*edition)
		if cfg.ExportBucket == "" {
			fatal("EXPORT_BUCKET is not set", nil)
		}
		bucket, err := s3bucket.NewS3Bucket(cfg.AwsRegion, cfg.ExportBucket)
		if err != nil {
			fatal("failed to create export bucket", err)
		}
		applSrvc := applicant.NewApplicantSrvc(applTable, applicant.NewUpdateBus())
		rows, err := applSrvc.ListFlattened(ctx, *edition)
		if err != nil {
			fatal("failed to list applicants", err)
		}
		url, err := export.NewExporter(bucket).UploadCSV(ctx, *edition, rows)
		if err != nil {
			fatal("failed to upload export", err)
		}
		slog.Info("export uploaded", "url", url, "rows", len(rows))

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func requireEdition(edition string) {
	if edition == "" {
		fatal("-edition is required", nil)
	}
}

func fatal(msg string, err error) {
	if err != nil {
		slog.Error(msg, "error", err)
	} else {
		slog.Error(msg)
	}
	os.Exit(1)
}
