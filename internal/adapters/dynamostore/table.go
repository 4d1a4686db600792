package dynamostore

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Client is the subset of *dynamodb.Client the store needs.
type Client interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

const keyAttr = "id"

type table struct {
	client Client
	name   string
}

// filter is a single-attribute scan filter. expr refers to the attribute as
// #a and to the value as :v.
type filter struct {
	expr  string
	attr  string
	value string
}

func (t table) scanInput(f *filter) *dynamodb.ScanInput {
	in := &dynamodb.ScanInput{TableName: aws.String(t.name)}
	if f != nil {
		in.FilterExpression = aws.String(f.expr)
		in.ExpressionAttributeNames = map[string]string{"#a": f.attr}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: f.value},
		}
	}
	return in
}

// scan reads every page of the table into out. Items are ordered by id, and
// ids are ObjectIDs, so this is insertion order.
func scan[T interface{ key() string }](ctx context.Context, t table, f *filter) ([]T, error) {
	out := make([]T, 0)
	p := dynamodb.NewScanPaginator(t.client, t.scanInput(f))
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", t.name, err)
		}
		out = append(out, items...)
	}
	slices.SortFunc(out, func(a, b T) int { return strings.Compare(a.key(), b.key()) })
	return out, nil
}

func (t table) put(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal %s item: %w", t.name, err)
	}
	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put %s item: %w", t.name, err)
	}
	return nil
}

// set overwrites the given attributes of the item with id.
func (t table) set(ctx context.Context, id string, attrs map[string]any) error {
	names := make(map[string]string, len(attrs))
	values := make(map[string]types.AttributeValue, len(attrs))
	clauses := make([]string, 0, len(attrs))

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for i, k := range keys {
		av, err := attributevalue.Marshal(attrs[k])
		if err != nil {
			return fmt.Errorf("marshal %s: %w", k, err)
		}
		n, v := fmt.Sprintf("#f%d", i), fmt.Sprintf(":f%d", i)
		names[n] = k
		values[v] = av
		clauses = append(clauses, n+" = "+v)
	}

	_, err := t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       map[string]types.AttributeValue{keyAttr: &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:          aws.String("SET " + strings.Join(clauses, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return fmt.Errorf("update %s item: %w", t.name, err)
	}
	return nil
}

func (t table) delete(ctx context.Context, id string) (bool, error) {
	out, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(t.name),
		Key:          map[string]types.AttributeValue{keyAttr: &types.AttributeValueMemberS{Value: id}},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, fmt.Errorf("delete %s item: %w", t.name, err)
	}
	return len(out.Attributes) > 0, nil
}
