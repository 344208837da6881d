package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/hacknight-dev/backend/applicant"
	"github.com/hacknight-dev/backend/s3bucket"
)

// Exporter uploads gzip-compressed CSV snapshots of the applicant table to
// the export bucket.
type Exporter struct {
	bucket *s3bucket.S3Bucket
	now    func() time.Time
}

func NewExporter(bucket *s3bucket.S3Bucket) *Exporter {
	return &Exporter{bucket: bucket, now: time.Now}
}

// UploadCSV writes the rows as applicants/<edition>/<timestamp>.csv.gz and
// returns the object URL.
func (e *Exporter) UploadCSV(ctx context.Context, edition string, rows []applicant.FlattenedApplicant) (string, error) {
	raw, err := CSV(rows)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(raw); err != nil {
		return "", fmt.Errorf("failed to gzip csv: %w", err)
	}
	if err := gz.Close(); err != nil {
		return "", fmt.Errorf("failed to finish gzip stream: %w", err)
	}

	key := fmt.Sprintf("applicants/%s/%s.csv.gz",
		edition, e.now().UTC().Format("2006-01-02T15-04-05"))

	url, err := e.bucket.UploadEncoded(ctx, buf.Bytes(), key, "text/csv", "gzip")
	if err != nil {
		return "", fmt.Errorf("failed to upload csv export: %w", err)
	}
	return url, nil
}
