package repository

import (
	"context"
	"errors"
	"time"

	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultResponsesTableName = "respostas"
	responsesCotacaoIDIndex   = "cotacao_id-index"
)

type responseItem struct {
	ID               string `dynamodbav:"id"`
	CotacaoID        string `dynamodbav:"cotacao_id"`
	TransportadoraID string `dynamodbav:"transportadora_id"`

	ValorBase          float64 `dynamodbav:"valor_base"`
	ValorPalete        float64 `dynamodbav:"valor_palete,omitempty"`
	ValorUrgente       float64 `dynamodbav:"valor_urgente,omitempty"`
	ValorFragil        float64 `dynamodbav:"valor_fragil,omitempty"`
	ValorCargaDedicada float64 `dynamodbav:"valor_carga_dedicada,omitempty"`
	ValorTotal         float64 `dynamodbav:"valor_total"`

	PrazoEntregaDias int    `dynamodbav:"prazo_entrega_dias,omitempty"`
	DataEntrega      string `dynamodbav:"data_entrega,omitempty"`
	Descricao        string `dynamodbav:"descricao,omitempty"`

	Aceita    bool `dynamodbav:"aceita"`
	Rejeitada bool `dynamodbav:"rejeitada"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ResponseDynamoRepository persists Response entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cotacao_id-index (PK: cotacao_id)
//
// We purposely use "<cotacao_id>#<transportadora_id>" as PK so the
// one-bid-per-carrier rule holds at the table level: a second bid from the
// same carrier fails the attribute_not_exists condition.

type ResponseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IResponseRepository = (*ResponseDynamoRepository)(nil)

func NewResponseDynamoRepository(ddb *dynamodb.Client) *ResponseDynamoRepository {
	return &ResponseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESPONSES_TABLE", defaultResponsesTableName),
	}
}

func (r *ResponseDynamoRepository) Create(ctx context.Context, resp entities.Response) (entities.Response, error) {
	av, err := attributevalue.MarshalMap(toResponseItem(resp))
	if err != nil {
		return entities.Response{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Response{}, interfaces.ErrAlreadyExists
		}
		return entities.Response{}, err
	}
	return resp, nil
}

func (r *ResponseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Response, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Response{}, err
	}
	if len(out.Item) == 0 {
		return entities.Response{}, nil
	}

	var it responseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Response{}, err
	}
	return fromResponseItem(it), nil
}

func (r *ResponseDynamoRepository) ListByCotacao(ctx context.Context, cotacaoID string) ([]entities.Response, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(responsesCotacaoIDIndex),
		KeyConditionExpression: aws.String("cotacao_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cotacaoID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Response, 0, len(out.Items))
	for _, raw := range out.Items {
		var it responseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromResponseItem(it))
	}
	return items, nil
}

func (r *ResponseDynamoRepository) SetRejected(ctx context.Context, id string) (entities.Response, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET rejeitada = :true, updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
			":now":  &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Response{}, nil
		}
		return entities.Response{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Response{}, nil
	}

	var it responseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Response{}, err
	}
	return fromResponseItem(it), nil
}

func toResponseItem(resp entities.Response) responseItem {
	it := responseItem{
		ID:                 resp.ID,
		CotacaoID:          resp.CotacaoID,
		TransportadoraID:   resp.TransportadoraID,
		ValorBase:          resp.ValorBase,
		ValorPalete:        resp.ValorPalete,
		ValorUrgente:       resp.ValorUrgente,
		ValorFragil:        resp.ValorFragil,
		ValorCargaDedicada: resp.ValorCargaDedicada,
		ValorTotal:         resp.ValorTotal,
		PrazoEntregaDias:   resp.PrazoEntregaDias,
		Descricao:          resp.Descricao,
		Aceita:             resp.Aceita,
		Rejeitada:          resp.Rejeitada,
		CreatedAt:          resp.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          resp.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if resp.DataEntrega != nil {
		it.DataEntrega = resp.DataEntrega.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromResponseItem(it responseItem) entities.Response {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Response{
		ID:                 it.ID,
		CotacaoID:          it.CotacaoID,
		TransportadoraID:   it.TransportadoraID,
		ValorBase:          it.ValorBase,
		ValorPalete:        it.ValorPalete,
		ValorUrgente:       it.ValorUrgente,
		ValorFragil:        it.ValorFragil,
		ValorCargaDedicada: it.ValorCargaDedicada,
		ValorTotal:         it.ValorTotal,
		PrazoEntregaDias:   it.PrazoEntregaDias,
		DataEntrega:        parseOptionalTime(it.DataEntrega),
		Descricao:          it.Descricao,
		Aceita:             it.Aceita,
		Rejeitada:          it.Rejeitada,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
