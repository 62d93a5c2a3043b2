package storage

import (
	"context"
	"errors"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type PositionStorage interface {
	Get(ctx context.Context, id string) (*Position, error)
	GetAll(ctx context.Context) ([]*Position, error)
	Create(ctx context.Context, position *Position) error
	Update(ctx context.Context, position *Position) error
	Delete(ctx context.Context, id string) error
}

type DynamoPositionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoPositionStorage) GetAll(ctx context.Context) ([]*Position, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("POSITION: scan failed: %v", err)
		return nil, err
	}

	var positions []*Position
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &positions); err != nil {
		logging.Log.Errorf("POSITION: failed to unmarshal position list: %v", err)
		return nil, err
	}
	return positions, nil
}

func (s *DynamoPositionStorage) Get(ctx context.Context, id string) (*Position, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("POSITION: failed to marshal key for ID %s: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("POSITION: GetItem for ID %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		logging.Log.Warnf("POSITION: no position found with ID %s", id)
		return nil, nil
	}

	var position *Position
	if err := attributevalue.UnmarshalMap(out.Item, &position); err != nil {
		logging.Log.Errorf("POSITION: failed to unmarshal position %s: %v", id, err)
		return nil, err
	}
	return position, nil
}

func (s *DynamoPositionStorage) Create(ctx context.Context, position *Position) error {
	item, err := attributevalue.MarshalMap(position)
	if err != nil {
		logging.Log.Errorf("POSITION: failed to marshal position: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("POSITION: failed to create position: %v", err)
		return err
	}
	return nil
}

func (s *DynamoPositionStorage) Update(ctx context.Context, position *Position) error {
	item, err := attributevalue.MarshalMap(position)
	if err != nil {
		logging.Log.Errorf("POSITION: failed to marshal position: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("POSITION: failed to update position: %v", err)
		return err
	}
	return nil
}

func (s *DynamoPositionStorage) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("POSITION: failed to marshal key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("POSITION: delete failed: %v", err)
		return err
	}
	return nil
}
