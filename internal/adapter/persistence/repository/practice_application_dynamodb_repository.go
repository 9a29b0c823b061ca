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
	"github.com/shopspring/decimal"
)

const DefaultPracticeApplicationsTable = "practice_applications"

type practiceApplicationItem struct {
	ID              string   `dynamodbav:"id"`
	Name            string   `dynamodbav:"name"`
	Gender          string   `dynamodbav:"gender"`
	Contact         string   `dynamodbav:"contact"`
	BirthDate       string   `dynamodbav:"birth_date"`
	Address         string   `dynamodbav:"address"`
	AddressDetail   string   `dynamodbav:"address_detail,omitempty"`
	Zonecode        string   `dynamodbav:"zonecode,omitempty"`
	PracticeType    string   `dynamodbav:"practice_type"`
	DesiredJobField string   `dynamodbav:"desired_job_field"`
	EmploymentTypes []string `dynamodbav:"employment_types,omitempty"`
	HasResume       bool     `dynamodbav:"has_resume"`
	Certifications  string   `dynamodbav:"certifications,omitempty"`
	PaymentAmount   string   `dynamodbav:"payment_amount"`
	PrivacyAgreed   bool     `dynamodbav:"privacy_agreed"`
	TermsAgreed     bool     `dynamodbav:"terms_agreed"`
	ClickSource     string   `dynamodbav:"click_source,omitempty"`
	Status          string   `dynamodbav:"status"`
	PaymentStatus   string   `dynamodbav:"payment_status"`
	PaymentID       string   `dynamodbav:"payment_id,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// PracticeApplicationDynamoRepository persists PracticeApplication entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Payment transitions rely on condition expressions so concurrent deliveries
// from payapp's feedback and result channels cannot regress a paid row.
type PracticeApplicationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPracticeApplicationRepository = (*PracticeApplicationDynamoRepository)(nil)

func NewPracticeApplicationDynamoRepository(ddb dynamoAPI, tableName string) *PracticeApplicationDynamoRepository {
	if tableName == "" {
		tableName = DefaultPracticeApplicationsTable
	}
	return &PracticeApplicationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PracticeApplicationDynamoRepository) Create(ctx context.Context, a entities.PracticeApplication) (entities.PracticeApplication, error) {
	av, err := attributevalue.MarshalMap(toPracticeApplicationItem(a))
	if err != nil {
		return entities.PracticeApplication{}, err
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
		return entities.PracticeApplication{}, err
	}
	return a, nil
}

func (r *PracticeApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.PracticeApplication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PracticeApplication{}, err
	}
	return decodePracticeApplication(out.Item)
}

func (r *PracticeApplicationDynamoRepository) List(ctx context.Context, filter entities.ListFilter) ([]entities.PracticeApplication, int, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, 0, err
	}

	items := make([]entities.PracticeApplication, 0, len(raw))
	for _, av := range raw {
		a, err := decodePracticeApplication(av)
		if err != nil {
			return nil, 0, err
		}
		if filter.Status != "" && string(a.Status) != filter.Status && string(a.PaymentStatus) != filter.Status {
			continue
		}
		if !filter.Matches(a.Name, a.Contact) {
			continue
		}
		items = append(items, a)
	}

	page, total := pageOf(items, func(a entities.PracticeApplication) time.Time { return a.CreatedAt }, filter)
	return page, total, nil
}

func (r *PracticeApplicationDynamoRepository) MarkRequested(ctx context.Context, id string) (entities.PracticeApplication, error) {
	return r.transition(ctx, id,
		"SET #payment_status = :requested, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":requested": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusRequested)},
		},
		map[string]string{"#payment_status": "payment_status"},
	)
}

// MarkPaid is idempotent: repeating it converges on the same row, and payment_id keeps its first value.
func (r *PracticeApplicationDynamoRepository) MarkPaid(ctx context.Context, id, paymentID string) (entities.PracticeApplication, error) {
	expr := "SET #payment_status = :paid, #status = :confirmed, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":paid":      &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
		":confirmed": &types.AttributeValueMemberS{Value: string(entities.ApplicationStatusConfirmed)},
	}
	names := map[string]string{
		"#payment_status": "payment_status",
		"#status":         "status",
	}
	if paymentID = strings.TrimSpace(paymentID); paymentID != "" {
		expr += ", #payment_id = if_not_exists(#payment_id, :payment_id)"
		values[":payment_id"] = &types.AttributeValueMemberS{Value: paymentID}
		names["#payment_id"] = "payment_id"
	}
	return r.update(ctx, id, expr, "attribute_exists(#id)", values, names)
}

func (r *PracticeApplicationDynamoRepository) MarkFailed(ctx context.Context, id string) (entities.PracticeApplication, error) {
	return r.transition(ctx, id,
		"SET #payment_status = :failed, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":failed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
		},
		map[string]string{"#payment_status": "payment_status"},
	)
}

// transition applies a payment_status change that must never touch a paid row.
func (r *PracticeApplicationDynamoRepository) transition(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) (entities.PracticeApplication, error) {
	values[":paid_guard"] = &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)}
	return r.update(ctx, id, expr, "attribute_exists(#id) AND #payment_status <> :paid_guard", values, names)
}

func (r *PracticeApplicationDynamoRepository) Update(ctx context.Context, id string, patch entities.PracticeApplicationPatch) (entities.PracticeApplication, error) {
	sets := []string{"#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	set := func(attr string, v *string) {
		if v == nil {
			return
		}
		sets = append(sets, "#"+attr+" = :"+attr)
		values[":"+attr] = &types.AttributeValueMemberS{Value: *v}
		names["#"+attr] = attr
	}
	if patch.Status != nil {
		s := string(*patch.Status)
		set("status", &s)
	}
	if patch.PaymentStatus != nil {
		s := string(*patch.PaymentStatus)
		set("payment_status", &s)
	}
	set("name", patch.Name)
	set("contact", patch.Contact)
	set("address", patch.Address)
	set("address_detail", patch.AddressDetail)
	set("practice_type", patch.PracticeType)
	set("desired_job_field", patch.DesiredJobField)
	set("certifications", patch.Certifications)

	return r.update(ctx, id, "SET "+strings.Join(sets, ", "), "attribute_exists(#id)", values, names)
}

func (r *PracticeApplicationDynamoRepository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	return deleteAll(ctx, r.ddb, r.tableName, ids)
}

// update runs a conditional UpdateItem; updateExpr must set #updated_at.
// A failed condition on a missing row yields an empty entity, on an existing
// row (only reachable through the paid guard) entities.ErrPaymentAlreadyPaid.
func (r *PracticeApplicationDynamoRepository) update(
	ctx context.Context,
	id, updateExpr, condition string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.PracticeApplication, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: nowString()}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 keyOf(id),
		ConditionExpression:                 aws.String(condition),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := conditionFailed(err); ok {
			if len(cfe.Item) > 0 {
				return entities.PracticeApplication{}, entities.ErrPaymentAlreadyPaid
			}
			return entities.PracticeApplication{}, nil
		}
		return entities.PracticeApplication{}, err
	}
	return decodePracticeApplication(out.Attributes)
}

func decodePracticeApplication(av map[string]types.AttributeValue) (entities.PracticeApplication, error) {
	if len(av) == 0 {
		return entities.PracticeApplication{}, nil
	}
	var it practiceApplicationItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.PracticeApplication{}, err
	}
	return fromPracticeApplicationItem(it), nil
}

func toPracticeApplicationItem(a entities.PracticeApplication) practiceApplicationItem {
	return practiceApplicationItem{
		ID:              a.ID,
		Name:            a.Name,
		Gender:          a.Gender,
		Contact:         a.Contact,
		BirthDate:       a.BirthDate,
		Address:         a.Address,
		AddressDetail:   a.AddressDetail,
		Zonecode:        a.Zonecode,
		PracticeType:    a.PracticeType,
		DesiredJobField: a.DesiredJobField,
		EmploymentTypes: a.EmploymentTypes,
		HasResume:       a.HasResume,
		Certifications:  a.Certifications,
		PaymentAmount:   a.PaymentAmount.String(),
		PrivacyAgreed:   a.PrivacyAgreed,
		TermsAgreed:     a.TermsAgreed,
		ClickSource:     a.ClickSource,
		Status:          string(a.Status),
		PaymentStatus:   string(a.PaymentStatus),
		PaymentID:       a.PaymentID,
		CreatedAt:       formatTime(a.CreatedAt),
		UpdatedAt:       formatTime(a.UpdatedAt),
	}
}

func fromPracticeApplicationItem(it practiceApplicationItem) entities.PracticeApplication {
	amount, _ := decimal.NewFromString(it.PaymentAmount)
	return entities.PracticeApplication{
		ID:              it.ID,
		Name:            it.Name,
		Gender:          it.Gender,
		Contact:         it.Contact,
		BirthDate:       it.BirthDate,
		Address:         it.Address,
		AddressDetail:   it.AddressDetail,
		Zonecode:        it.Zonecode,
		PracticeType:    it.PracticeType,
		DesiredJobField: it.DesiredJobField,
		EmploymentTypes: it.EmploymentTypes,
		HasResume:       it.HasResume,
		Certifications:  it.Certifications,
		PaymentAmount:   amount,
		PrivacyAgreed:   it.PrivacyAgreed,
		TermsAgreed:     it.TermsAgreed,
		ClickSource:     it.ClickSource,
		Status:          entities.ApplicationStatus(it.Status),
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		PaymentID:       it.PaymentID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
