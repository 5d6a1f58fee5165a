package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"
)

const (
	defaultVehiclesTableName = "vehicles"
	defaultNumbersTableName  = "vehicle_numbers"
	vehiclesNumberIndex      = "number-index"
)

type vehicleItem struct {
	ID              string   `dynamodbav:"id"`
	Number          string   `dynamodbav:"number"`
	Status          string   `dynamodbav:"status"`
	Brand           string   `dynamodbav:"brand"`
	Model           string   `dynamodbav:"model"`
	ManufactureYear int      `dynamodbav:"manufacture_year"`
	Price           string   `dynamodbav:"price"`
	Mileage         int      `dynamodbav:"mileage"`
	FuelType        string   `dynamodbav:"fuel_type,omitempty"`
	Transmission    string   `dynamodbav:"transmission,omitempty"`
	EngineCapacity  int      `dynamodbav:"engine_capacity,omitempty"`
	ExteriorColor   string   `dynamodbav:"exterior_color,omitempty"`
	Description     string   `dynamodbav:"description,omitempty"`
	ImageKeys       []string `dynamodbav:"image_keys,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - vehicles: PK id (string), GSI number-index (PK: number)
//   - vehicle_numbers: PK number (string), attribute owner_id
//
// The vehicle_numbers table is the write-time uniqueness guard: a number row
// exists exactly while some non-sold, non-deleted vehicle owns it.

type VehicleDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	numbersTable string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
		numbersTable: getenvDefault("VEHICLE_NUMBERS_TABLE", defaultNumbersTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (bool, error) {
	it := toVehicleItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				// Claim the number; fails when an active vehicle holds it.
				Put: &types.Put{
					TableName: aws.String(r.numbersTable),
					Item: map[string]types.AttributeValue{
						"number":   &types.AttributeValueMemberS{Value: v.Number},
						"owner_id": &types.AttributeValueMemberS{Value: v.ID},
					},
					ConditionExpression:      aws.String("attribute_not_exists(#number)"),
					ExpressionAttributeNames: map[string]string{"#number": "number"},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) ListByNumber(ctx context.Context, number string) ([]entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesNumberIndex),
		KeyConditionExpression: aws.String("#number = :number"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		return nil, err
	}

	vehicles := make([]entities.Vehicle, 0, len(out.Items))
	for _, raw := range out.Items {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, fromVehicleItem(it))
	}
	return vehicles, nil
}

func (r *VehicleDynamoRepository) List(ctx context.Context, status entities.VehicleStatus, limit int, cursor string) ([]entities.Vehicle, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(int32(limit)),
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}
	if cursor != "" {
		input.ExclusiveStartKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cursor},
		}
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, "", err
	}

	vehicles := make([]entities.Vehicle, 0, len(out.Items))
	for _, raw := range out.Items {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		vehicles = append(vehicles, fromVehicleItem(it))
	}

	next := ""
	if lek, ok := out.LastEvaluatedKey["id"]; ok {
		if s, ok := lek.(*types.AttributeValueMemberS); ok {
			next = s.Value
		}
	}
	return vehicles, next, nil
}

func (r *VehicleDynamoRepository) AddImageKey(ctx context.Context, id, key string) (entities.Vehicle, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #image_keys = list_append(if_not_exists(#image_keys, :empty), :key), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#image_keys": "image_keys",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key":        &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: key}}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id, number string, releaseNumber bool) (bool, error) {
	items := []types.TransactWriteItem{
		{
			// Re-check at write time: a sale opened after the guard read
			// flips the vehicle to PENDING and must still block the delete.
			Delete: &types.Delete{
				TableName:           aws.String(r.tableName),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :pending"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pending": &types.AttributeValueMemberS{Value: string(entities.VehicleStatusPending)},
				},
			},
		},
	}

	if releaseNumber {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:                aws.String(r.numbersTable),
				Key:                      map[string]types.AttributeValue{"number": &types.AttributeValueMemberS{Value: number}},
				ConditionExpression:      aws.String("#owner_id = :owner"),
				ExpressionAttributeNames: map[string]string{"#owner_id": "owner_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":owner": &types.AttributeValueMemberS{Value: id},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:              v.ID,
		Number:          v.Number,
		Status:          string(v.Status),
		Brand:           v.Brand,
		Model:           v.Model,
		ManufactureYear: v.ManufactureYear,
		Price:           floatToString(v.Price),
		Mileage:         v.Mileage,
		FuelType:        v.FuelType,
		Transmission:    v.Transmission,
		EngineCapacity:  v.EngineCapacity,
		ExteriorColor:   v.ExteriorColor,
		Description:     v.Description,
		ImageKeys:       v.ImageKeys,
		CreatedAt:       v.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Vehicle{
		ID:              it.ID,
		Number:          it.Number,
		Status:          entities.VehicleStatus(it.Status),
		Brand:           it.Brand,
		Model:           it.Model,
		ManufactureYear: it.ManufactureYear,
		Price:           price,
		Mileage:         it.Mileage,
		FuelType:        it.FuelType,
		Transmission:    it.Transmission,
		EngineCapacity:  it.EngineCapacity,
		ExteriorColor:   it.ExteriorColor,
		Description:     it.Description,
		ImageKeys:       it.ImageKeys,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
