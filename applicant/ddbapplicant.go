package applicant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/guregu/dynamo/v2"
)

// DynamoDbApplicantTable stores applicant documents keyed by
// (edition, applicant id).
type DynamoDbApplicantTable struct {
	ddbClient *dynamodb.Client
	tableName string
	table     *dynamo.Table
}

func NewDynamoDbApplicantTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbApplicantTable {
	ddb := &DynamoDbApplicantTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.table = &table

	return ddb
}

func scorePath(criterionID string) string {
	return fmt.Sprintf("'score'.'scores'.'%s'", criterionID)
}

func (ddb *DynamoDbApplicantTable) Get(ctx context.Context, edition, id string) (*Applicant, error) {
	a := new(Applicant)
	err := ddb.table.Get("edition", edition).
		Range("id", dynamo.Equal, id).
		One(ctx, a)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, ErrApplicantNotFound()
		}
		return nil, err
	}
	return a, nil
}

func (ddb *DynamoDbApplicantTable) List(ctx context.Context, edition string) ([]Applicant, error) {
	var applicants []Applicant
	err := ddb.table.Get("edition", edition).
		Filter("'status'.'application_status' <> ?", StatusInProgress).
		All(ctx, &applicants)
	if err != nil {
		return nil, err
	}
	return applicants, nil
}

func (ddb *DynamoDbApplicantTable) ListByStatus(ctx context.Context, edition string, status Status) ([]Applicant, error) {
	var applicants []Applicant
	err := ddb.table.Get("edition", edition).
		Filter("'status'.'application_status' = ?", status).
		All(ctx, &applicants)
	if err != nil {
		return nil, err
	}
	return applicants, nil
}

func (ddb *DynamoDbApplicantTable) ListByEmails(ctx context.Context, edition string, emails []string) ([]Applicant, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	expr := "'basic_info'.'email_lc' IN ("
	args := make([]any, 0, len(emails))
	for i, email := range emails {
		if i > 0 {
			expr += ", "
		}
		expr += "?"
		args = append(args, email)
	}
	expr += ")"

	var applicants []Applicant
	err := ddb.table.Get("edition", edition).
		Filter(expr, args...).
		All(ctx, &applicants)
	if err != nil {
		return nil, err
	}
	return applicants, nil
}

// SetScoreEntry merges one criterion's entry at its document path. Other
// criteria's entries are untouched, so concurrent graders scoring different
// criteria of the same applicant do not clobber each other.
func (ddb *DynamoDbApplicantTable) SetScoreEntry(ctx context.Context, edition, id, criterionID string, entry ScoreEntry, totalScore float64) error {
	err := ddb.table.Update("edition", edition).
		Range("id", id).
		Set(scorePath(criterionID), entry).
		Set("'score'.'total_score'", totalScore).
		Set("'score'.'last_updated'", entry.LastUpdated).
		Set("'score'.'last_updated_by'", entry.LastUpdatedBy).
		If("attribute_exists('id')").
		Run(ctx)
	return mapCondCheckFailed(err)
}

func (ddb *DynamoDbApplicantTable) RemoveScoreEntry(ctx context.Context, edition, id, criterionID string, totalScore float64, grader string, at time.Time) error {
	err := ddb.table.Update("edition", edition).
		Range("id", id).
		Remove(scorePath(criterionID)).
		Set("'score'.'total_score'", totalScore).
		Set("'score'.'last_updated'", at.Unix()).
		Set("'score'.'last_updated_by'", grader).
		If("attribute_exists('id')").
		Run(ctx)
	return mapCondCheckFailed(err)
}

func (ddb *DynamoDbApplicantTable) SetComment(ctx context.Context, edition, id, comment string) error {
	err := ddb.table.Update("edition", edition).
		Range("id", id).
		Set("'score'.'comment'", comment).
		If("attribute_exists('id')").
		Run(ctx)
	return mapCondCheckFailed(err)
}

func (ddb *DynamoDbApplicantTable) SetStatus(ctx context.Context, edition, id string, status Status) error {
	err := ddb.table.Update("edition", edition).
		Range("id", id).
		Set("'status'.'application_status'", status).
		If("attribute_exists('id')").
		Run(ctx)
	return mapCondCheckFailed(err)
}

// ApplyNormalization writes all of one applicant's standardized scores and
// the recomputed total z-score as a single update, keeping the write count
// bounded by population size rather than population times questions.
func (ddb *DynamoDbApplicantTable) ApplyNormalization(ctx context.Context, edition, id string, normalized map[string]float64, totalZScore float64) error {
	update := ddb.table.Update("edition", edition).Range("id", id)
	for criterionID, z := range normalized {
		update = update.Set(scorePath(criterionID)+".'normalized_score'", z)
	}
	update = update.Set("'score'.'total_z_score'", totalZScore)
	err := update.If("attribute_exists('id')").Run(ctx)
	return mapCondCheckFailed(err)
}

func (ddb *DynamoDbApplicantTable) Put(ctx context.Context, a *Applicant) error {
	return ddb.table.Put(a).Run(ctx)
}

func mapCondCheckFailed(err error) error {
	if err == nil {
		return nil
	}
	var condFailed *ddbtypes.ConditionalCheckFailedException
	if errors.As(err, &condFailed) {
		return ErrApplicantNotFound().SetDebug(err)
	}
	return err
}
