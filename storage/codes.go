package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type VotingCodeStorage interface {
	Get(ctx context.Context, code string) (*VotingCode, error)
	GetAll(ctx context.Context) ([]*VotingCode, error)
	Put(ctx context.Context, votingCode *VotingCode) error
	MarkUnused(ctx context.Context, code string) error
	MarkUsed(ctx context.Context, code string) error
	Delete(ctx context.Context, code string) error
}

type DynamoVotingCodesStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoVotingCodesStorage) Get(ctx context.Context, code string) (*VotingCode, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("CODE: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CODE: GetItem failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrCodeNotFound
	}

	var vc *VotingCode
	if err := attributevalue.UnmarshalMap(out.Item, &vc); err != nil {
		logging.Log.Errorf("CODE: failed to unmarshal result: %v", err)
		return nil, err
	}
	return vc, nil
}

func (s *DynamoVotingCodesStorage) GetAll(ctx context.Context) ([]*VotingCode, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("CODE: scan failed: %v", err)
		return nil, err
	}

	var codes []*VotingCode
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &codes); err != nil {
		logging.Log.Errorf("CODE: failed to unmarshal list: %v", err)
		return nil, err
	}
	return codes, nil
}

func (s *DynamoVotingCodesStorage) Put(ctx context.Context, code *VotingCode) error {
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}
	code.Used = false
	item, err := attributevalue.MarshalMap(code)
	if err != nil {
		logging.Log.Errorf("CODE: failed to marshal code: %v", err)
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
		logging.Log.Errorf("CODE: put failed: %v", err)
		return err
	}
	return nil
}

func (s *DynamoVotingCodesStorage) MarkUnused(ctx context.Context, code string) error {
	return s.setUsed(ctx, code, false)
}

func (s *DynamoVotingCodesStorage) MarkUsed(ctx context.Context, code string) error {
	return s.setUsed(ctx, code, true)
}

func (s *DynamoVotingCodesStorage) setUsed(ctx context.Context, code string, used bool) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: code},
		},
		UpdateExpression:          aws.String("SET Used = :val"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":val": &types.AttributeValueMemberBOOL{Value: used}},
	}
	_, err := s.Client.UpdateItem(ctx, input)
	return err
}

func (s *DynamoVotingCodesStorage) Delete(ctx context.Context, code string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("CODE: failed to marshal key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CODE: delete failed: %v", err)
		return err
	}
	return nil
}
