package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory single table keyed by the "id" attribute.
type fakeDynamo struct {
	items   map[string]map[string]types.AttributeValue
	lastPut *dynamodb.PutItemInput
	lastQry *dynamodb.QueryInput
	err     error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(m map[string]types.AttributeValue) string {
	if s, ok := m["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.err != nil {
		return nil, f.err
	}
	id := keyOf(in.Item)
	_, exists := f.items[id]
	switch *in.ConditionExpression {
	case "attribute_not_exists(#id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	case "attribute_exists(#id)":
		if !exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := keyOf(in.Key)
	old := f.items[id]
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

// Query matches the single key condition value against the attribute named by
// the "#<attr>" placeholder.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQry = in
	if f.err != nil {
		return nil, f.err
	}
	var attr, want string
	for placeholder, name := range in.ExpressionAttributeNames {
		attr = name
		want = in.ExpressionAttributeValues[":"+placeholder[1:]].(*types.AttributeValueMemberS).Value
	}
	var out []map[string]types.AttributeValue
	for _, it := range f.items {
		if s, ok := it[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}
