package repository

import (
	"context"
	"errors"
	"os"
	"sort"
	"strconv"
	"time"

	"espaco_castro/internal/domain/entities"
	"espaco_castro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInquiriesTableName = "inquiries"

type inquiryItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	State       string  `dynamodbav:"state"`
	EventType   string  `dynamodbav:"event_type"`
	CheckIn     string  `dynamodbav:"check_in"`
	CheckOut    string  `dynamodbav:"check_out"`
	Guests      string  `dynamodbav:"guests"`
	Whatsapp    string  `dynamodbav:"whatsapp"`
	Message     *string `dynamodbav:"message"`
	PackageName string  `dynamodbav:"package_name"`
	IPAddress   string  `dynamodbav:"ip_address"`
	Completed   string  `dynamodbav:"completed"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// InquiryDynamoRepository persists Inquiry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table is scanned on List; the venue receives a handful of inquiries per
// month, so a full scan stays well under a single page. Ordering (newest-first
// by created_at, id as tie-break) is applied in memory after the scan.

type InquiryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb *dynamodb.Client) *InquiryDynamoRepository {
	return &InquiryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INQUIRIES_TABLE", defaultInquiriesTableName),
	}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, inquiry entities.Inquiry) (entities.Inquiry, error) {
	it := toInquiryItem(inquiry)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Inquiry{}, err
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
		return entities.Inquiry{}, err
	}
	return inquiry, nil
}

func (r *InquiryDynamoRepository) List(ctx context.Context) ([]entities.Inquiry, error) {
	var items []inquiryItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []inquiryItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	inquiries := make([]entities.Inquiry, 0, len(items))
	for _, it := range items {
		inquiries = append(inquiries, fromInquiryItem(it))
	}

	// Newest-first by created_at; id breaks ties so the order is stable.
	sort.Slice(inquiries, func(i, j int) bool {
		if !inquiries[i].CreatedAt.Equal(inquiries[j].CreatedAt) {
			return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
		}
		return inquiries[i].ID > inquiries[j].ID
	})
	return inquiries, nil
}

func (r *InquiryDynamoRepository) Delete(ctx context.Context, id string) error {
	// No condition expression: deleting an absent id succeeds silently.
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *InquiryDynamoRepository) UpdateStatus(ctx context.Context, id string, completed bool) (entities.Inquiry, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #completed = :completed"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: strconv.FormatBool(completed)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#completed": "completed",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Inquiry{}, nil
		}
		return entities.Inquiry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Inquiry{}, nil
	}
	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func toInquiryItem(i entities.Inquiry) inquiryItem {
	return inquiryItem{
		ID:          i.ID,
		Name:        i.Name,
		State:       i.State,
		EventType:   i.EventType,
		CheckIn:     i.CheckIn,
		CheckOut:    i.CheckOut,
		Guests:      i.Guests,
		Whatsapp:    i.Whatsapp,
		Message:     i.Message,
		PackageName: i.PackageName,
		IPAddress:   i.IPAddress,
		Completed:   strconv.FormatBool(i.Completed),
		CreatedAt:   i.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInquiryItem(it inquiryItem) entities.Inquiry {
	completed, _ := strconv.ParseBool(it.Completed)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Inquiry{
		ID:          it.ID,
		Name:        it.Name,
		State:       it.State,
		EventType:   it.EventType,
		CheckIn:     it.CheckIn,
		CheckOut:    it.CheckOut,
		Guests:      it.Guests,
		Whatsapp:    it.Whatsapp,
		Message:     it.Message,
		PackageName: it.PackageName,
		IPAddress:   it.IPAddress,
		Completed:   completed,
		CreatedAt:   createdAt,
	}
}
