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
	defaultSalesTableName = "sales"
	salesVehicleIDIndex   = "vehicle_id-index"
)

type saleSnapshotItem struct {
	Number          string `dynamodbav:"number"`
	Brand           string `dynamodbav:"brand"`
	Model           string `dynamodbav:"model"`
	ManufactureYear int    `dynamodbav:"manufacture_year"`
	ListedPrice     string `dynamodbav:"listed_price"`
}

type saleItem struct {
	ID        string           `dynamodbav:"id"`
	VehicleID string           `dynamodbav:"vehicle_id"`
	Status    string           `dynamodbav:"status"`
	Snapshot  saleSnapshotItem `dynamodbav:"snapshot"`

	SellingPrice  string `dynamodbav:"selling_price"`
	AdvanceAmount string `dynamodbav:"advance_amount,omitempty"`

	CustomerName    string `dynamodbav:"customer_name"`
	CustomerNIC     string `dynamodbav:"customer_nic,omitempty"`
	CustomerPhone   string `dynamodbav:"customer_phone,omitempty"`
	CustomerAddress string `dynamodbav:"customer_address,omitempty"`

	Reason string `dynamodbav:"reason,omitempty"`

	PaymentProviderID     string `dynamodbav:"payment_provider_id,omitempty"`
	PaymentProviderStatus string `dynamodbav:"payment_provider_status,omitempty"`
	PaymentPayloadRaw     string `dynamodbav:"payment_payload_raw,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SaleDynamoRepository reads Sale entities from DynamoDB.
//
// Table requirements:
//   - sales: PK id (string), GSI vehicle_id-index (PK: vehicle_id)
//
// The snapshot is stored as a nested attribute on the sale row itself, never
// re-joined to the vehicles table, so reads stay meaningful after the source
// vehicle is deleted.

type SaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALES_TABLE", defaultSalesTableName),
	}
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Sale, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(salesVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
	})
	if err != nil {
		return nil, err
	}

	sales := make([]entities.Sale, 0, len(out.Items))
	for _, raw := range out.Items {
		var it saleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		sales = append(sales, fromSaleItem(it))
	}
	return sales, nil
}

func (r *SaleDynamoRepository) GetOpenByVehicleID(ctx context.Context, vehicleID string) (entities.Sale, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(salesVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		FilterExpression:       aws.String("#status IN (:pending, :advance)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid":     &types.AttributeValueMemberS{Value: vehicleID},
			":pending": &types.AttributeValueMemberS{Value: string(entities.SaleStatusPending)},
			":advance": &types.AttributeValueMemberS{Value: string(entities.SaleStatusAdvancePaid)},
		},
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Items) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) List(ctx context.Context, status entities.SaleStatus, limit int, cursor string) ([]entities.Sale, string, error) {
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

	sales := make([]entities.Sale, 0, len(out.Items))
	for _, raw := range out.Items {
		var it saleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		sales = append(sales, fromSaleItem(it))
	}

	next := ""
	if lek, ok := out.LastEvaluatedKey["id"]; ok {
		if s, ok := lek.(*types.AttributeValueMemberS); ok {
			next = s.Value
		}
	}
	return sales, next, nil
}

func toSaleItem(s entities.Sale) saleItem {
	it := saleItem{
		ID:        s.ID,
		VehicleID: s.VehicleID,
		Status:    string(s.Status),
		Snapshot: saleSnapshotItem{
			Number:          s.Snapshot.Number,
			Brand:           s.Snapshot.Brand,
			Model:           s.Snapshot.Model,
			ManufactureYear: s.Snapshot.ManufactureYear,
			ListedPrice:     floatToString(s.Snapshot.ListedPrice),
		},
		SellingPrice:          floatToString(s.SellingPrice),
		CustomerName:          s.Customer.Name,
		CustomerNIC:           s.Customer.NIC,
		CustomerPhone:         s.Customer.Phone,
		CustomerAddress:       s.Customer.Address,
		Reason:                s.Reason,
		PaymentProviderID:     s.PaymentProviderID,
		PaymentProviderStatus: s.PaymentProviderStatus,
		PaymentPayloadRaw:     string(s.PaymentPayloadRaw),
		CreatedAt:             s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.AdvanceAmount > 0 {
		it.AdvanceAmount = floatToString(s.AdvanceAmount)
	}
	return it
}

func fromSaleItem(it saleItem) entities.Sale {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	sellingPrice, _ := strconv.ParseFloat(it.SellingPrice, 64)
	advanceAmount, _ := strconv.ParseFloat(it.AdvanceAmount, 64)
	listedPrice, _ := strconv.ParseFloat(it.Snapshot.ListedPrice, 64)

	s := entities.Sale{
		ID:        it.ID,
		VehicleID: it.VehicleID,
		Status:    entities.SaleStatus(it.Status),
		Snapshot: entities.VehicleSnapshot{
			Number:          it.Snapshot.Number,
			Brand:           it.Snapshot.Brand,
			Model:           it.Snapshot.Model,
			ManufactureYear: it.Snapshot.ManufactureYear,
			ListedPrice:     listedPrice,
		},
		SellingPrice:  sellingPrice,
		AdvanceAmount: advanceAmount,
		Customer: entities.Customer{
			Name:    it.CustomerName,
			NIC:     it.CustomerNIC,
			Phone:   it.CustomerPhone,
			Address: it.CustomerAddress,
		},
		Reason:                it.Reason,
		PaymentProviderID:     it.PaymentProviderID,
		PaymentProviderStatus: it.PaymentProviderStatus,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
	if it.PaymentPayloadRaw != "" {
		s.PaymentPayloadRaw = []byte(it.PaymentPayloadRaw)
	}
	return s
}
