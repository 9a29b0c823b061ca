package repository

import (
	"context"
	"strings"
	"time"

	"placement_service/internal/domain/entities"
	"placement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultConsultationsTable = "consultations"

type consultationItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Contact       string `dynamodbav:"contact"`
	Education     string `dynamodbav:"education,omitempty"`
	Reason        string `dynamodbav:"reason,omitempty"`
	ClickSource   string `dynamodbav:"click_source,omitempty"`
	IsManualEntry bool   `dynamodbav:"is_manual_entry"`
	Status        string `dynamodbav:"status"`
	IsCompleted   bool   `dynamodbav:"is_completed"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ConsultationDynamoRepository persists Consultation entities in DynamoDB (PK: id).
type ConsultationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IConsultationRepository = (*ConsultationDynamoRepository)(nil)

func NewConsultationDynamoRepository(ddb dynamoAPI, tableName string) *ConsultationDynamoRepository {
	if tableName == "" {
		tableName = DefaultConsultationsTable
	}
	return &ConsultationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ConsultationDynamoRepository) Create(ctx context.Context, c entities.Consultation) (entities.Consultation, error) {
	av, err := attributevalue.MarshalMap(toConsultationItem(c))
	if err != nil {
		return entities.Consultation{}, err
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
		return entities.Consultation{}, err
	}
	return c, nil
}

func (r *ConsultationDynamoRepository) List(ctx context.Context, filter entities.ListFilter) ([]entities.Consultation, int, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.Consultation, 0, len(raw))
	for _, av := range raw {
		var it consultationItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, 0, err
		}
		c := fromConsultationItem(it)
		if filter.Status != "" && string(c.Status) != filter.Status {
			continue
		}
		if !filter.Matches(c.Name, c.Contact) {
			continue
		}
		items = append(items, c)
	}

	page, total := pageOf(items, func(c entities.Consultation) time.Time { return c.CreatedAt }, filter)
	return page, total, nil
}

func (r *ConsultationDynamoRepository) Update(ctx context.Context, id string, patch entities.ConsultationPatch) (entities.Consultation, error) {
	sets := []string{"#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}
	names := map[string]string{"#id": "id", "#updated_at": "updated_at"}

	if patch.IsCompleted != nil {
		sets = append(sets, "#is_completed = :is_completed")
		values[":is_completed"] = &types.AttributeValueMemberBOOL{Value: *patch.IsCompleted}
		names["#is_completed"] = "is_completed"
	}
	if patch.Notes != nil {
		sets = append(sets, "#notes = :notes")
		values[":notes"] = &types.AttributeValueMemberS{Value: *patch.Notes}
		names["#notes"] = "notes"
	}
	if patch.Status != nil {
		sets = append(sets, "#status = :status")
		values[":status"] = &types.AttributeValueMemberS{Value: string(*patch.Status)}
		names["#status"] = "status"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       keyOf(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Consultation{}, nil
		}
		return entities.Consultation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Consultation{}, nil
	}
	var it consultationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Consultation{}, err
	}
	return fromConsultationItem(it), nil
}

func (r *ConsultationDynamoRepository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	return deleteAll(ctx, r.ddb, r.tableName, ids)
}

func toConsultationItem(c entities.Consultation) consultationItem {
	return consultationItem{
		ID:            c.ID,
		Name:          c.Name,
		Contact:       c.Contact,
		Education:     c.Education,
		Reason:        c.Reason,
		ClickSource:   c.ClickSource,
		IsManualEntry: c.IsManualEntry,
		Status:        string(c.Status),
		IsCompleted:   c.IsCompleted,
		Notes:         c.Notes,
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
	}
}

func fromConsultationItem(it consultationItem) entities.Consultation {
	return entities.Consultation{
		ID:            it.ID,
		Name:          it.Name,
		Contact:       it.Contact,
		Education:     it.Education,
		Reason:        it.Reason,
		ClickSource:   it.ClickSource,
		IsManualEntry: it.IsManualEntry,
		Status:        entities.ConsultationStatus(it.Status),
		IsCompleted:   it.IsCompleted,
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
