package repository

import (
	"context"
	"errors"
	"testing"

	"buildbid/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	getOut      *dynamodb.GetItemOutput
	putErr      error
	putIn       *dynamodb.PutItemInput
	transactErr error
	transactIn  *dynamodb.TransactWriteItemsInput
	queryPages  []*dynamodb.QueryOutput
	queryIn     []*dynamodb.QueryInput
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getOut, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transactIn = in
	return &dynamodb.TransactWriteItemsOutput{}, f.transactErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = append(f.queryIn, in)
	out := f.queryPages[0]
	f.queryPages = f.queryPages[1:]
	return out, nil
}

func TestDynamoDocumentStore_Get(t *testing.T) {
	t.Run("missing item", func(t *testing.T) {
		s := NewDynamoDocumentStore(&fakeDynamo{getOut: &dynamodb.GetItemOutput{}}, "")
		doc, err := s.Get(context.Background(), quoteKey("q-1"))
		if err != nil || doc.Key.PK != "" {
			t.Fatalf("expected zero document, got %+v err=%v", doc, err)
		}
	})

	t.Run("found", func(t *testing.T) {
		s := NewDynamoDocumentStore(&fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
			"PK":   &types.AttributeValueMemberS{Value: "QUOTE#q-1"},
			"SK":   &types.AttributeValueMemberS{Value: "METADATA"},
			"type": &types.AttributeValueMemberS{Value: "quote"},
			"body": &types.AttributeValueMemberS{Value: `{"id":"q-1"}`},
		}}}, "quotes")
		doc, err := s.Get(context.Background(), quoteKey("q-1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Key != quoteKey("q-1") || doc.Type != "quote" || string(doc.Body) != `{"id":"q-1"}` {
			t.Fatalf("unexpected document: %+v", doc)
		}
	})
}

func TestDynamoDocumentStore_PutIfAbsent(t *testing.T) {
	t.Run("condition failure", func(t *testing.T) {
		f := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("exists")}}
		err := NewDynamoDocumentStore(f, "quotes").PutIfAbsent(context.Background(), interfaces.Document{Key: quoteKey("q-1")})
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
		if aws.ToString(f.putIn.ConditionExpression) != "attribute_not_exists(#pk)" {
			t.Fatalf("expected conditional put, got %q", aws.ToString(f.putIn.ConditionExpression))
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		f := &fakeDynamo{putErr: errors.New("throttled")}
		err := NewDynamoDocumentStore(f, "quotes").PutIfAbsent(context.Background(), interfaces.Document{Key: quoteKey("q-1")})
		if err == nil || errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected raw error, got %v", err)
		}
	})

	t.Run("sparse index attributes", func(t *testing.T) {
		f := &fakeDynamo{}
		err := NewDynamoDocumentStore(f, "quotes").PutIfAbsent(context.Background(), interfaces.Document{Key: quoteKey("q-1"), Type: "quote"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := f.putIn.Item["GSI1PK"]; ok {
			t.Fatalf("empty index attributes must be omitted")
		}
	})
}

func TestDynamoDocumentStore_TransactPut(t *testing.T) {
	t.Run("cancelled by condition", func(t *testing.T) {
		f := &fakeDynamo{transactErr: &types.TransactionCanceledException{
			Message: aws.String("Transaction cancelled"),
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}}
		err := NewDynamoDocumentStore(f, "quotes").TransactPut(context.Background(), []interfaces.TransactItem{
			{Document: interfaces.Document{Key: quoteKey("q-1")}, IfAbsent: true},
			{Document: interfaces.Document{Key: claimKey("sow-1", "b-1")}},
		})
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
		if len(f.transactIn.TransactItems) != 2 {
			t.Fatalf("expected 2 writes, got %d", len(f.transactIn.TransactItems))
		}
		if f.transactIn.TransactItems[0].Put.ConditionExpression == nil {
			t.Fatalf("expected the guarded write to carry a condition")
		}
		if f.transactIn.TransactItems[1].Put.ConditionExpression != nil {
			t.Fatalf("unguarded write must not carry a condition")
		}
	})

	t.Run("version guard", func(t *testing.T) {
		f := &fakeDynamo{}
		err := NewDynamoDocumentStore(f, "quotes").TransactPut(context.Background(), []interfaces.TransactItem{
			{Document: interfaces.Document{Key: claimKey("sow-1", "b-1"), Version: 3}, IfVersion: 2},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		put := f.transactIn.TransactItems[0].Put
		if aws.ToString(put.ConditionExpression) != "#ver = :ver" || put.ExpressionAttributeNames["#ver"] != "version" {
			t.Fatalf("unexpected condition: %v %v", aws.ToString(put.ConditionExpression), put.ExpressionAttributeNames)
		}
		if v, ok := put.ExpressionAttributeValues[":ver"].(*types.AttributeValueMemberN); !ok || v.Value != "2" {
			t.Fatalf("unexpected expected version: %+v", put.ExpressionAttributeValues)
		}
		if v, ok := put.Item["version"].(*types.AttributeValueMemberN); !ok || v.Value != "3" {
			t.Fatalf("expected stored version 3, got %+v", put.Item["version"])
		}
	})

	t.Run("cancelled for another reason", func(t *testing.T) {
		f := &fakeDynamo{transactErr: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
		}}
		err := NewDynamoDocumentStore(f, "quotes").TransactPut(context.Background(), []interfaces.TransactItem{
			{Document: interfaces.Document{Key: quoteKey("q-1")}, IfAbsent: true},
		})
		if err == nil || errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected raw error, got %v", err)
		}
	})
}

func TestDynamoDocumentStore_QueryByIndexFollowsPages(t *testing.T) {
	item := func(id string) map[string]types.AttributeValue {
		return map[string]types.AttributeValue{
			"PK":   &types.AttributeValueMemberS{Value: "QUOTE#" + id},
			"SK":   &types.AttributeValueMemberS{Value: "METADATA"},
			"type": &types.AttributeValueMemberS{Value: "quote"},
			"body": &types.AttributeValueMemberS{Value: "{}"},
		}
	}
	f := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{item("a")}, LastEvaluatedKey: item("a")},
		{Items: []map[string]types.AttributeValue{item("b")}},
	}}

	docs, err := NewDynamoDocumentStore(f, "quotes").QueryByIndex(context.Background(), interfaces.IndexBuilder, "BUILDER#b-1", "submitted#")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 || docs[1].Key.PK != "QUOTE#b" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
	in := f.queryIn[0]
	if aws.ToString(in.IndexName) != interfaces.IndexBuilder || in.ExpressionAttributeNames["#sk"] != "GSI2SK" {
		t.Fatalf("unexpected query input: %+v", in)
	}
}

func TestDynamoDocumentStore_QueryByIndexUnknownIndex(t *testing.T) {
	_, err := NewDynamoDocumentStore(&fakeDynamo{}, "quotes").QueryByIndex(context.Background(), "nope", "k", "")
	if err == nil {
		t.Fatalf("expected error for unknown index")
	}
}
