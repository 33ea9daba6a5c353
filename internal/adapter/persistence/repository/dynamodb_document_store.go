package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"buildbid/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultTableName = "quotes"

	gsi1PKAttr = "GSI1PK"
	gsi1SKAttr = "GSI1SK"
	gsi2PKAttr = "GSI2PK"
	gsi2SKAttr = "GSI2SK"
)

// DynamoAPI is the subset of *dynamodb.Client the document store calls.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type documentItem struct {
	PK      string `dynamodbav:"PK"`
	SK      string `dynamodbav:"SK"`
	Type    string `dynamodbav:"type"`
	GSI1PK  string `dynamodbav:"GSI1PK,omitempty"`
	GSI1SK  string `dynamodbav:"GSI1SK,omitempty"`
	GSI2PK  string `dynamodbav:"GSI2PK,omitempty"`
	GSI2SK  string `dynamodbav:"GSI2SK,omitempty"`
	Version int    `dynamodbav:"version,omitempty"`
	Body    string `dynamodbav:"body"`
}

// DynamoDocumentStore keeps every document of the service in one DynamoDB table.
//
// Table requirements:
//   - PK (string), SK (string)
//   - GSI sow-index: GSI1PK / GSI1SK
//   - GSI builder-index: GSI2PK / GSI2SK
type DynamoDocumentStore struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDocumentStore = (*DynamoDocumentStore)(nil)

func NewDynamoDocumentStore(ddb DynamoAPI, tableName string) *DynamoDocumentStore {
	if tableName == "" {
		tableName = DefaultTableName
	}
	return &DynamoDocumentStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoDocumentStore) Get(ctx context.Context, key interfaces.DocumentKey) (interfaces.Document, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: key.PK},
			"SK": &types.AttributeValueMemberS{Value: key.SK},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return interfaces.Document{}, err
	}
	if len(out.Item) == 0 {
		return interfaces.Document{}, nil
	}
	return unmarshalDocument(out.Item)
}

func (s *DynamoDocumentStore) Put(ctx context.Context, doc interfaces.Document) error {
	av, err := attributevalue.MarshalMap(toDocumentItem(doc))
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoDocumentStore) PutIfAbsent(ctx context.Context, doc interfaces.Document) error {
	av, err := attributevalue.MarshalMap(toDocumentItem(doc))
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "PK",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("%w: %s/%s", interfaces.ErrConditionFailed, doc.Key.PK, doc.Key.SK)
		}
		return err
	}
	return nil
}

func (s *DynamoDocumentStore) TransactPut(ctx context.Context, items []interfaces.TransactItem) error {
	writes := make([]types.TransactWriteItem, 0, len(items))
	for _, it := range items {
		av, err := attributevalue.MarshalMap(toDocumentItem(it.Document))
		if err != nil {
			return err
		}
		put := &types.Put{
			TableName: aws.String(s.tableName),
			Item:      av,
		}
		switch {
		case it.IfAbsent:
			put.ConditionExpression = aws.String("attribute_not_exists(#pk)")
			put.ExpressionAttributeNames = map[string]string{"#pk": "PK"}
		case it.IfVersion > 0:
			put.ConditionExpression = aws.String("#ver = :ver")
			put.ExpressionAttributeNames = map[string]string{"#ver": "version"}
			put.ExpressionAttributeValues = map[string]types.AttributeValue{
				":ver": &types.AttributeValueMemberN{Value: strconv.Itoa(it.IfVersion)},
			}
		}
		writes = append(writes, types.TransactWriteItem{Put: put})
	}

	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return fmt.Errorf("%w: %s", interfaces.ErrConditionFailed, aws.ToString(tce.Message))
				}
			}
		}
		return err
	}
	return nil
}

func (s *DynamoDocumentStore) QueryByPartitionPrefix(ctx context.Context, pk, skPrefix string) ([]interfaces.Document, error) {
	return s.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "PK",
			"#sk": "SK",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: pk},
			":prefix": &types.AttributeValueMemberS{Value: skPrefix},
		},
	})
}

func (s *DynamoDocumentStore) QueryByIndex(ctx context.Context, index, key, skPrefix string) ([]interfaces.Document, error) {
	pkAttr, skAttr, err := indexAttributes(index)
	if err != nil {
		return nil, err
	}

	in := &dynamodb.QueryInput{
		TableName:                aws.String(s.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{"#pk": pkAttr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: key},
		},
	}
	if skPrefix != "" {
		in.KeyConditionExpression = aws.String("#pk = :pk AND begins_with(#sk, :prefix)")
		in.ExpressionAttributeNames["#sk"] = skAttr
		in.ExpressionAttributeValues[":prefix"] = &types.AttributeValueMemberS{Value: skPrefix}
	}
	return s.query(ctx, in)
}

func (s *DynamoDocumentStore) query(ctx context.Context, in *dynamodb.QueryInput) ([]interfaces.Document, error) {
	docs := []interfaces.Document{}
	p := dynamodb.NewQueryPaginator(s.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			doc, err := unmarshalDocument(raw)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func indexAttributes(index string) (string, string, error) {
	switch index {
	case interfaces.IndexSoW:
		return gsi1PKAttr, gsi1SKAttr, nil
	case interfaces.IndexBuilder:
		return gsi2PKAttr, gsi2SKAttr, nil
	}
	return "", "", fmt.Errorf("unknown index %q", index)
}

func unmarshalDocument(raw map[string]types.AttributeValue) (interfaces.Document, error) {
	var it documentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return interfaces.Document{}, err
	}
	return interfaces.Document{
		Key:     interfaces.DocumentKey{PK: it.PK, SK: it.SK},
		Type:    it.Type,
		GSI1PK:  it.GSI1PK,
		GSI1SK:  it.GSI1SK,
		GSI2PK:  it.GSI2PK,
		GSI2SK:  it.GSI2SK,
		Version: it.Version,
		Body:    []byte(it.Body),
	}, nil
}

func toDocumentItem(doc interfaces.Document) documentItem {
	return documentItem{
		PK:      doc.Key.PK,
		SK:      doc.Key.SK,
		Type:    doc.Type,
		GSI1PK:  doc.GSI1PK,
		GSI1SK:  doc.GSI1SK,
		GSI2PK:  doc.GSI2PK,
		GSI2SK:  doc.GSI2SK,
		Version: doc.Version,
		Body:    string(doc.Body),
	}
}
