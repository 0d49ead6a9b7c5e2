package repository

import (
	"context"

	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHardwareTableName = "hardware_catalog"
	hardwareCategoryIndex    = "category-index"
)

// HardwareCatalogDynamoRepository stores catalog items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI category-index: PK category (string)
//
// Items are written as entities.HardwareItem; its dynamodbav tags are the item layout.
type HardwareCatalogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IHardwareCatalogRepository = (*HardwareCatalogDynamoRepository)(nil)

func NewHardwareCatalogDynamoRepository(ddb *dynamodb.Client) *HardwareCatalogDynamoRepository {
	return newHardwareCatalogDynamoRepository(ddb)
}

func newHardwareCatalogDynamoRepository(ddb dynamoAPI) *HardwareCatalogDynamoRepository {
	return &HardwareCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HARDWARE_TABLE", defaultHardwareTableName),
	}
}

func (r *HardwareCatalogDynamoRepository) Create(ctx context.Context, item entities.HardwareItem) (entities.HardwareItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return entities.HardwareItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.HardwareItem{}, err
	}
	return item, nil
}

func (r *HardwareCatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.HardwareItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.HardwareItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.HardwareItem{}, nil
	}

	var item entities.HardwareItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return entities.HardwareItem{}, err
	}
	return item, nil
}

// ListByCategory returns every catalog item of a trade, manufacturer bundles
// and generic items alike.
func (r *HardwareCatalogDynamoRepository) ListByCategory(ctx context.Context, category entities.Trade) ([]entities.HardwareItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(hardwareCategoryIndex),
		KeyConditionExpression: aws.String("#category = :category"),
		ExpressionAttributeNames: map[string]string{
			"#category": "category",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: string(category)},
		},
	})

	res := make([]entities.HardwareItem, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []entities.HardwareItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		res = append(res, items...)
	}
	return res, nil
}
