package scoring

import (
	"context"
	"fmt"
	"maps"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamodb scoring criterion row
type ddbCriterionRow struct {
	Criterion
}

func (row ddbCriterionRow) GetKey() map[string]types.AttributeValue {
	if row.Field == "" {
		return nil
	}
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: "criteria#"},
		"sk": &types.AttributeValueMemberS{Value: fmt.Sprintf("criterion#%s", row.Field)},
	}
}

// marshalDdbItem marshals the row and includes its key attributes.
func marshalDdbItem(row ddbCriterionRow) map[string]types.AttributeValue {
	marshalled, err := attributevalue.MarshalMap(row)
	if err != nil {
		panic(err)
	}
	maps.Copy(marshalled, row.GetKey())
	return marshalled
}

// DynamoDbCriteriaTable stores the global scoring criteria configuration.
type DynamoDbCriteriaTable struct {
	ddbClient *dynamodb.Client
	tableName string
}

func NewDynamoDbCriteriaTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbCriteriaTable {
	return &DynamoDbCriteriaTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
}

// GetCriteria returns every configured criterion ordered by field id.
func (ct *DynamoDbCriteriaTable) GetCriteria(ctx context.Context) ([]Criterion, error) {
	queryInput := &dynamodb.QueryInput{
		TableName:                &ct.tableName,
		KeyConditionExpression:   aws.String("#pk = :pkval"),
		ExpressionAttributeNames: map[string]string{"#pk": "pk"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pkval": &types.AttributeValueMemberS{Value: "criteria#"},
		},
	}

	var criteria []Criterion
	paginator := dynamodb.NewQueryPaginator(ct.ddbClient, queryInput)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query criteria: %w", err)
		}
		for _, item := range page.Items {
			var row ddbCriterionRow
			if err := attributevalue.UnmarshalMap(item, &row); err != nil {
				return nil, fmt.Errorf("failed to unmarshal criterion row: %w", err)
			}
			criteria = append(criteria, row.Criterion)
		}
	}

	sort.Slice(criteria, func(i, j int) bool {
		return criteria[i].Field < criteria[j].Field
	})
	return criteria, nil
}

// PutCriterion validates and stores one criterion.
func (ct *DynamoDbCriteriaTable) PutCriterion(ctx context.Context, c Criterion) error {
	if err := ValidateCriterion(c); err != nil {
		return err
	}
	_, err := ct.ddbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &ct.tableName,
		Item:      marshalDdbItem(ddbCriterionRow{Criterion: c}),
	})
	if err != nil {
		return fmt.Errorf("failed to put criterion %s: %w", c.Field, err)
	}
	return nil
}

func (ct *DynamoDbCriteriaTable) DeleteCriterion(ctx context.Context, field string) error {
	_, err := ct.ddbClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &ct.tableName,
		Key:       ddbCriterionRow{Criterion: Criterion{Field: field}}.GetKey(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete criterion %s: %w", field, err)
	}
	return nil
}
