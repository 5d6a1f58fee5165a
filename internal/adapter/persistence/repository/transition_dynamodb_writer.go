package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"
)

// TransitionDynamoWriter applies sale lifecycle transitions as single
// TransactWriteItems calls. Every item carries a condition expression on the
// row's current status, so a transition raced by a concurrent one cancels as
// a whole. The partial states the lifecycle rules forbid (sale COMPLETED
// with vehicle still PENDING, two open sales on one vehicle) can never be
// observed.

type TransitionDynamoWriter struct {
	ddb           *dynamodb.Client
	salesTable    string
	vehiclesTable string
	numbersTable  string
}

var _ interfaces.ITransitionWriter = (*TransitionDynamoWriter)(nil)

func NewTransitionDynamoWriter(ddb *dynamodb.Client) *TransitionDynamoWriter {
	return &TransitionDynamoWriter{
		ddb:           ddb,
		salesTable:    getenvDefault("SALES_TABLE", defaultSalesTableName),
		vehiclesTable: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
		numbersTable:  getenvDefault("VEHICLE_NUMBERS_TABLE", defaultNumbersTableName),
	}
}

func (w *TransitionDynamoWriter) OpenSale(ctx context.Context, s entities.Sale) (bool, error) {
	av, err := attributevalue.MarshalMap(toSaleItem(s))
	if err != nil {
		return false, err
	}

	_, err = w.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// The compare-and-set that closes the two-concurrent-opens
				// race: only one caller finds the vehicle AVAILABLE at
				// write time.
				Update: &types.Update{
					TableName:           aws.String(w.vehiclesTable),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: s.VehicleID}},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :available"),
					UpdateExpression:    aws.String("SET #status = :pending, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":available":  &types.AttributeValueMemberS{Value: string(entities.VehicleStatusAvailable)},
						":pending":    &types.AttributeValueMemberS{Value: string(entities.VehicleStatusPending)},
						":updated_at": &types.AttributeValueMemberS{Value: s.CreatedAt.UTC().Format(time.RFC3339Nano)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(w.salesTable),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
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

func (w *TransitionDynamoWriter) RecordAdvance(ctx context.Context, s entities.Sale) (bool, error) {
	expr := "SET #status = :advance_paid, #advance_amount = :amount, #updated_at = :updated_at"
	names := map[string]string{
		"#status":         "status",
		"#advance_amount": "advance_amount",
		"#updated_at":     "updated_at",
	}
	values := map[string]types.AttributeValue{
		":advance_paid": &types.AttributeValueMemberS{Value: string(entities.SaleStatusAdvancePaid)},
		":amount":       &types.AttributeValueMemberS{Value: floatToString(s.AdvanceAmount)},
		":updated_at":   &types.AttributeValueMemberS{Value: s.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		":pending":      &types.AttributeValueMemberS{Value: string(entities.SaleStatusPending)},
	}
	if s.PaymentProviderID != "" {
		expr += ", #payment_provider_id = :provider_id, #payment_provider_status = :provider_status, #payment_payload_raw = :payload"
		names["#payment_provider_id"] = "payment_provider_id"
		names["#payment_provider_status"] = "payment_provider_status"
		names["#payment_payload_raw"] = "payment_payload_raw"
		values[":provider_id"] = &types.AttributeValueMemberS{Value: s.PaymentProviderID}
		values[":provider_status"] = &types.AttributeValueMemberS{Value: s.PaymentProviderStatus}
		values[":payload"] = &types.AttributeValueMemberS{Value: string(s.PaymentPayloadRaw)}
	}

	_, err := w.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(w.salesTable),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: s.ID}},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (w *TransitionDynamoWriter) ApplyPaired(ctx context.Context, t interfaces.PairedTransition) (bool, error) {
	now := t.Now.UTC().Format(time.RFC3339Nano)

	saleExpr := "SET #status = :to, #updated_at = :updated_at"
	saleNames := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	saleValues := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(t.SaleFrom)},
		":to":         &types.AttributeValueMemberS{Value: string(t.SaleTo)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if t.Reason != "" {
		saleExpr += ", #reason = :reason"
		saleNames["#reason"] = "reason"
		saleValues[":reason"] = &types.AttributeValueMemberS{Value: t.Reason}
	}

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName:                 aws.String(w.salesTable),
				Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: t.SaleID}},
				ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
				UpdateExpression:          aws.String(saleExpr),
				ExpressionAttributeNames:  saleNames,
				ExpressionAttributeValues: saleValues,
			},
		},
		{
			Update: &types.Update{
				TableName:           aws.String(w.vehiclesTable),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: t.VehicleID}},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
				UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":from":       &types.AttributeValueMemberS{Value: string(t.VehicleFrom)},
					":to":         &types.AttributeValueMemberS{Value: string(t.VehicleTo)},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		},
	}

	if t.ReleaseNumber != "" {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:                aws.String(w.numbersTable),
				Key:                      map[string]types.AttributeValue{"number": &types.AttributeValueMemberS{Value: t.ReleaseNumber}},
				ConditionExpression:      aws.String("#owner_id = :owner"),
				ExpressionAttributeNames: map[string]string{"#owner_id": "owner_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":owner": &types.AttributeValueMemberS{Value: t.VehicleID},
				},
			},
		})
	}

	_, err := w.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
