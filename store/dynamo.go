package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/resumebase/visitcount/constants"
	"github.com/resumebase/visitcount/utils"
)

// DynamoStore implements Store using a DynamoDB table. This is the default
// driver; the client is built once and reused across warm invocations.
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore creates a DynamoStore for the given table. Region may be
// empty, in which case the SDK's default resolution applies.
func NewDynamoStore(ctx context.Context, table, region string) (*DynamoStore, error) {
	if table == "" {
		return nil, utils.Errorf("table name must be non-empty")
	}
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &DynamoStore{client: dynamodb.NewFromConfig(cfg), table: table}, nil
}

func (s *DynamoStore) GetCount(ctx context.Context, key string) (int64, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			constants.KeyAttribute: &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("get-item %s: %w", key, err)
	}
	if len(resp.Item) == 0 {
		return 0, ErrNotFound
	}
	return countFromAttributes(resp.Item)
}

func (s *DynamoStore) PutCount(ctx context.Context, key string, count int64) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			constants.KeyAttribute:   &types.AttributeValueMemberS{Value: key},
			constants.CountAttribute: &types.AttributeValueMemberN{Value: strconv.FormatInt(count, 10)},
		},
	})
	if err != nil {
		return fmt.Errorf("put-item %s: %w", key, err)
	}
	return nil
}

// AddCount increments the count attribute atomically with an ADD update
// expression and returns the new value. DynamoDB auto-creates the item when
// absent, so the caller's create fallback rarely fires here.
func (s *DynamoStore) AddCount(ctx context.Context, key string, delta int64) (int64, error) {
	resp, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			constants.KeyAttribute: &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String("ADD #count :delta"),
		ExpressionAttributeNames: map[string]string{
			"#count": constants.CountAttribute,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: strconv.FormatInt(delta, 10)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("atomic-add %s: %w", key, err)
	}
	return countFromAttributes(resp.Attributes)
}

func (s *DynamoStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	return err
}

func (s *DynamoStore) Close() error {
	return nil
}

// countFromAttributes coerces the count attribute to a plain int64. DynamoDB
// numbers arrive as decimal strings; the handler never sees that wrapper.
func countFromAttributes(attrs map[string]types.AttributeValue) (int64, error) {
	attr, ok := attrs[constants.CountAttribute]
	if !ok {
		return 0, fmt.Errorf("item has no %s attribute", constants.CountAttribute)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("%s attribute is not a number", constants.CountAttribute)
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s attribute %q: %w", constants.CountAttribute, n.Value, err)
	}
	return v, nil
}
