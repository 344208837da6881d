package user

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// UserRow is one admin console account.
type UserRow struct {
	Uuid      string    `dynamo:"uuid,hash"` // Primary key
	Username  string    `dynamo:"username"`
	Email     string    `dynamo:"email"`
	BcryptPwd []byte    `dynamo:"bcrypt_pwd"`
	Version   int       `dynamo:"version"` // For optimistic locking
	CreatedAt time.Time `dynamo:"created_at"`
}

// DynamoDbUserTable represents the DynamoDB table of admin accounts.
type DynamoDbUserTable struct {
	ddbClient  *dynamodb.Client
	tableName  string
	usersTable *dynamo.Table
}

func NewDynamoDbUsersTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbUserTable {
	ddb := &DynamoDbUserTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.usersTable = &table

	return ddb
}

// Get retrieves a user by id, or nil when absent.
func (ddb *DynamoDbUserTable) Get(ctx context.Context, uuid uuid.UUID) (*UserRow, error) {
	user := new(UserRow)

	err := ddb.usersTable.Get("uuid", uuid.String()).One(ctx, user)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (ddb *DynamoDbUserTable) List(ctx context.Context) ([]*UserRow, error) {
	var users []*UserRow
	err := ddb.usersTable.Scan().All(ctx, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Save stores a user with optimistic locking on the version attribute.
func (ddb *DynamoDbUserTable) Save(ctx context.Context, user *UserRow) error {
	user.Version++

	put := ddb.usersTable.Put(user).If("attribute_not_exists(version) OR version = ?", user.Version-1)
	return put.Run(ctx)
}
