package storage

import (
	"context"
	"time"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type SessionStorage interface {
	// Get returns nil without error when no record exists for the code.
	Get(ctx context.Context, code string) (*SessionRecord, error)
	Put(ctx context.Context, record *SessionRecord) error
	MarkSubmitted(ctx context.Context, code string) error
	Delete(ctx context.Context, code string) error
}

type DynamoSessionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoSessionStorage) Get(ctx context.Context, code string) (*SessionRecord, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: GetItem failed for code %s: %v", code, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var record *SessionRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		logging.Log.Errorf("SESSION: failed to unmarshal record for code %s: %v", code, err)
		return nil, err
	}
	return record, nil
}

func (s *DynamoSessionStorage) Put(ctx context.Context, record *SessionRecord) error {
	record.UpdatedAt = time.Now().UTC()
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal record: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: put failed for code %s: %v", record.Code, err)
		return err
	}
	return nil
}

func (s *DynamoSessionStorage) MarkSubmitted(ctx context.Context, code string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: code},
		},
		UpdateExpression:          aws.String("SET Submitted = :val"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":val": &types.AttributeValueMemberBOOL{Value: true}},
	}
	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to mark submitted for code %s: %v", code, err)
	}
	return err
}

func (s *DynamoSessionStorage) Delete(ctx context.Context, code string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: delete failed for code %s: %v", code, err)
		return err
	}
	return nil
}
