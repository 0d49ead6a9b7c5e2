package repository

import (
	"context"
	"errors"

	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTakeoffsTableName = "takeoffs"
	takeoffCustomerIndex     = "customer_id-index"
)

type takeoffItem struct {
	ID               string                          `dynamodbav:"id"`
	CustomerID       string                          `dynamodbav:"customer_id"`
	ProjectID        string                          `dynamodbav:"project_id,omitempty"`
	Trade            string                          `dynamodbav:"trade"`
	InstallationType string                          `dynamodbav:"installation_type"`
	Elevations       []entities.ElevationMeasurement `dynamodbav:"elevations"`
	Selection        entities.ManufacturerSelection  `dynamodbav:"selection"`
	Hardware         []entities.HardwareCalculation  `dynamodbav:"hardware"`
	Totals           entities.ProjectTotals          `dynamodbav:"totals"`
	Costs            entities.CostBreakdown          `dynamodbav:"costs"`
	Fasteners        entities.FastenerEstimate       `dynamodbav:"fasteners"`
	HardwareTotal    string                          `dynamodbav:"hardware_total"`
	GrandTotal       string                          `dynamodbav:"grand_total"`
	CreatedAt        string                          `dynamodbav:"created_at"`
	UpdatedAt        string                          `dynamodbav:"updated_at"`
}

// TakeoffDynamoRepository persists Takeoff entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_id-index: PK customer_id (string)
//
// The whole takeoff is one item; updates replace it under an existence condition.
type TakeoffDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ITakeoffRepository = (*TakeoffDynamoRepository)(nil)

func NewTakeoffDynamoRepository(ddb *dynamodb.Client) *TakeoffDynamoRepository {
	return newTakeoffDynamoRepository(ddb)
}

func newTakeoffDynamoRepository(ddb dynamoAPI) *TakeoffDynamoRepository {
	return &TakeoffDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TAKEOFFS_TABLE", defaultTakeoffsTableName),
	}
}

func (r *TakeoffDynamoRepository) Create(ctx context.Context, t entities.Takeoff) (entities.Takeoff, error) {
	return r.put(ctx, t, "attribute_not_exists(#id)")
}

// Update replaces a stored takeoff. A missing takeoff yields a zero value.
func (r *TakeoffDynamoRepository) Update(ctx context.Context, t entities.Takeoff) (entities.Takeoff, error) {
	out, err := r.put(ctx, t, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Takeoff{}, nil
		}
		return entities.Takeoff{}, err
	}
	return out, nil
}

func (r *TakeoffDynamoRepository) put(ctx context.Context, t entities.Takeoff, condition string) (entities.Takeoff, error) {
	av, err := attributevalue.MarshalMap(toTakeoffItem(t))
	if err != nil {
		return entities.Takeoff{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Takeoff{}, err
	}
	return t, nil
}

func (r *TakeoffDynamoRepository) GetByID(ctx context.Context, id string) (entities.Takeoff, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Takeoff{}, err
	}
	if len(out.Item) == 0 {
		return entities.Takeoff{}, nil
	}

	var it takeoffItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Takeoff{}, err
	}
	return fromTakeoffItem(it), nil
}

func (r *TakeoffDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Takeoff, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(takeoffCustomerIndex),
		KeyConditionExpression: aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})

	res := make([]entities.Takeoff, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []takeoffItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			res = append(res, fromTakeoffItem(it))
		}
	}
	return res, nil
}

// Delete removes a takeoff and reports whether it existed.
func (r *TakeoffDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toTakeoffItem(t entities.Takeoff) takeoffItem {
	return takeoffItem{
		ID:               t.ID,
		CustomerID:       t.CustomerID,
		ProjectID:        t.ProjectID,
		Trade:            string(t.Trade),
		InstallationType: t.InstallationType,
		Elevations:       t.Elevations,
		Selection:        t.Selection,
		Hardware:         t.Hardware,
		Totals:           t.Totals,
		Costs:            t.Costs,
		Fasteners:        t.Fasteners,
		HardwareTotal:    floatToString(t.HardwareTotal),
		GrandTotal:       floatToString(t.GrandTotal),
		CreatedAt:        formatTime(t.CreatedAt),
		UpdatedAt:        formatTime(t.UpdatedAt),
	}
}

func fromTakeoffItem(it takeoffItem) entities.Takeoff {
	return entities.Takeoff{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		ProjectID:        it.ProjectID,
		Trade:            entities.Trade(it.Trade),
		InstallationType: it.InstallationType,
		Elevations:       it.Elevations,
		Selection:        it.Selection,
		Hardware:         it.Hardware,
		Totals:           it.Totals,
		Costs:            it.Costs,
		Fasteners:        it.Fasteners,
		HardwareTotal:    stringToFloat(it.HardwareTotal),
		GrandTotal:       stringToFloat(it.GrandTotal),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
