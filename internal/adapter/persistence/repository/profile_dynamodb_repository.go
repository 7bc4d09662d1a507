package repository

import (
	"context"
	"strconv"
	"time"

	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClientProfilesTableName  = "perfis_clientes"
	defaultCarrierProfilesTableName = "perfis_transportadoras"
)

type valueDeltaEventItem struct {
	CotacaoID      string  `dynamodbav:"cotacao_id"`
	ValorOriginal  float64 `dynamodbav:"valor_original"`
	ValorFinal     float64 `dynamodbav:"valor_final"`
	Diferenca      float64 `dynamodbav:"diferenca"`
	ValorCreditado float64 `dynamodbav:"valor_creditado,omitempty"`
	Data           string  `dynamodbav:"data"`
}

type clientProfileItem struct {
	UserID    string `dynamodbav:"user_id"`
	Nome      string `dynamodbav:"nome,omitempty"`
	CpfOuCnpj string `dynamodbav:"cpf_ou_cnpj,omitempty"`

	SaldoCashback float64 `dynamodbav:"saldo_cashback"`

	Premium                    bool   `dynamodbav:"premium"`
	LimiteCancelamentosMes     int    `dynamodbav:"limite_cancelamentos_mes,omitempty"`
	CancelamentosRealizadosMes int    `dynamodbav:"cancelamentos_realizados_mes"`
	MesReferenciaCancel        string `dynamodbav:"mes_referencia_cancel,omitempty"`

	AvaliacaoMedia   float64 `dynamodbav:"avaliacao_media"`
	NumeroAvaliacoes int     `dynamodbav:"numero_avaliacoes"`

	HistoricoValoresAMais  []valueDeltaEventItem `dynamodbav:"historico_valores_a_mais,omitempty"`
	HistoricoValoresAMenos []valueDeltaEventItem `dynamodbav:"historico_valores_a_menos,omitempty"`

	CreatedAt string `dynamodbav:"created_at,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

type carrierProfileItem struct {
	UserID      string `dynamodbav:"user_id"`
	RazaoSocial string `dynamodbav:"razao_social,omitempty"`

	SaldoDescontoPremium float64 `dynamodbav:"saldo_desconto_premium"`

	AvaliacaoMedia   float64 `dynamodbav:"avaliacao_media"`
	NumeroAvaliacoes int     `dynamodbav:"numero_avaliacoes"`

	HistoricoValoresAMais  []valueDeltaEventItem `dynamodbav:"historico_valores_a_mais,omitempty"`
	HistoricoValoresAMenos []valueDeltaEventItem `dynamodbav:"historico_valores_a_menos,omitempty"`

	CreatedAt string `dynamodbav:"created_at,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// ProfileDynamoRepository persists client and carrier profiles in DynamoDB.
//
// Table requirements (both tables):
//   - PK: user_id (string)
//
// Balance mutations use ADD plus list_append upserts so concurrent settlements
// never lose increments and a first settlement creates the profile row.

type ProfileDynamoRepository struct {
	ddb               *dynamodb.Client
	clientsTableName  string
	carriersTableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:               ddb,
		clientsTableName:  getenvDefault("CLIENT_PROFILES_TABLE", defaultClientProfilesTableName),
		carriersTableName: getenvDefault("CARRIER_PROFILES_TABLE", defaultCarrierProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) GetClient(ctx context.Context, userID string) (entities.ClientProfile, error) {
	out, err := r.getItem(ctx, r.clientsTableName, userID)
	if err != nil {
		return entities.ClientProfile{}, err
	}
	if len(out) == 0 {
		return entities.ClientProfile{}, nil
	}

	var it clientProfileItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.ClientProfile{}, err
	}
	return fromClientProfileItem(it), nil
}

func (r *ProfileDynamoRepository) GetCarrier(ctx context.Context, userID string) (entities.CarrierProfile, error) {
	out, err := r.getItem(ctx, r.carriersTableName, userID)
	if err != nil {
		return entities.CarrierProfile{}, err
	}
	if len(out) == 0 {
		return entities.CarrierProfile{}, nil
	}

	var it carrierProfileItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.CarrierProfile{}, err
	}
	return fromCarrierProfileItem(it), nil
}

func (r *ProfileDynamoRepository) CreditClientCashback(ctx context.Context, userID string, event entities.ValueDeltaEvent) error {
	return r.creditAndAppend(ctx, r.clientsTableName, userID, "saldo_cashback", "historico_valores_a_mais", event)
}

func (r *ProfileDynamoRepository) AppendClientValueAMenos(ctx context.Context, userID string, event entities.ValueDeltaEvent) error {
	return r.appendHistory(ctx, r.clientsTableName, userID, "historico_valores_a_menos", event)
}

func (r *ProfileDynamoRepository) CreditCarrierPremium(ctx context.Context, userID string, event entities.ValueDeltaEvent) error {
	return r.creditAndAppend(ctx, r.carriersTableName, userID, "saldo_desconto_premium", "historico_valores_a_mais", event)
}

func (r *ProfileDynamoRepository) AppendCarrierValueAMenos(ctx context.Context, userID string, event entities.ValueDeltaEvent) error {
	return r.appendHistory(ctx, r.carriersTableName, userID, "historico_valores_a_menos", event)
}

func (r *ProfileDynamoRepository) UpdateClientRating(ctx context.Context, userID string, media float64, total int) error {
	return r.setRating(ctx, r.clientsTableName, userID, media, total)
}

func (r *ProfileDynamoRepository) UpdateCarrierRating(ctx context.Context, userID string, media float64, total int) error {
	return r.setRating(ctx, r.carriersTableName, userID, media, total)
}

func (r *ProfileDynamoRepository) UpdateClientCancelQuota(ctx context.Context, userID, mesReferencia string, realizados int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.clientsTableName),
		Key:       profileKey(userID),
		UpdateExpression: aws.String(
			"SET mes_referencia_cancel = :mes, cancelamentos_realizados_mes = :qtd, updated_at = :now",
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mes": &types.AttributeValueMemberS{Value: mesReferencia},
			":qtd": &types.AttributeValueMemberN{Value: strconv.Itoa(realizados)},
			":now": nowAttr(),
		},
	})
	return err
}

func (r *ProfileDynamoRepository) getItem(ctx context.Context, table, userID string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            profileKey(userID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func (r *ProfileDynamoRepository) creditAndAppend(ctx context.Context, table, userID, balanceAttr, historyAttr string, event entities.ValueDeltaEvent) error {
	eventAv, err := marshalEventList(event)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key:       profileKey(userID),
		UpdateExpression: aws.String(
			"ADD #balance :credit " +
				"SET #history = list_append(if_not_exists(#history, :empty), :event), updated_at = :now",
		),
		ExpressionAttributeNames: map[string]string{
			"#balance": balanceAttr,
			"#history": historyAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":credit": &types.AttributeValueMemberN{Value: floatToString(event.ValorCreditado)},
			":event":  eventAv,
			":empty":  &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":now":    nowAttr(),
		},
	})
	return err
}

func (r *ProfileDynamoRepository) appendHistory(ctx context.Context, table, userID, historyAttr string, event entities.ValueDeltaEvent) error {
	eventAv, err := marshalEventList(event)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key:       profileKey(userID),
		UpdateExpression: aws.String(
			"SET #history = list_append(if_not_exists(#history, :empty), :event), updated_at = :now",
		),
		ExpressionAttributeNames: map[string]string{
			"#history": historyAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":event": eventAv,
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":now":   nowAttr(),
		},
	})
	return err
}

func (r *ProfileDynamoRepository) setRating(ctx context.Context, table, userID string, media float64, total int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key:       profileKey(userID),
		UpdateExpression: aws.String(
			"SET avaliacao_media = :media, numero_avaliacoes = :total, updated_at = :now",
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":media": &types.AttributeValueMemberN{Value: floatToString(media)},
			":total": &types.AttributeValueMemberN{Value: strconv.Itoa(total)},
			":now":   nowAttr(),
		},
	})
	return err
}

func profileKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
	}
}

func nowAttr() types.AttributeValue {
	return &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}
}

func marshalEventList(event entities.ValueDeltaEvent) (types.AttributeValue, error) {
	return attributevalue.Marshal([]valueDeltaEventItem{toValueDeltaEventItem(event)})
}

func toValueDeltaEventItem(e entities.ValueDeltaEvent) valueDeltaEventItem {
	return valueDeltaEventItem{
		CotacaoID:      e.CotacaoID,
		ValorOriginal:  e.ValorOriginal,
		ValorFinal:     e.ValorFinal,
		Diferenca:      e.Diferenca,
		ValorCreditado: e.ValorCreditado,
		Data:           e.Data.UTC().Format(time.RFC3339Nano),
	}
}

func fromValueDeltaEventItems(items []valueDeltaEventItem) []entities.ValueDeltaEvent {
	if len(items) == 0 {
		return nil
	}
	events := make([]entities.ValueDeltaEvent, 0, len(items))
	for _, it := range items {
		data, _ := time.Parse(time.RFC3339Nano, it.Data)
		events = append(events, entities.ValueDeltaEvent{
			CotacaoID:      it.CotacaoID,
			ValorOriginal:  it.ValorOriginal,
			ValorFinal:     it.ValorFinal,
			Diferenca:      it.Diferenca,
			ValorCreditado: it.ValorCreditado,
			Data:           data,
		})
	}
	return events
}

func fromClientProfileItem(it clientProfileItem) entities.ClientProfile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ClientProfile{
		UserID:                     it.UserID,
		Nome:                       it.Nome,
		CpfOuCnpj:                  it.CpfOuCnpj,
		SaldoCashback:              it.SaldoCashback,
		Premium:                    it.Premium,
		LimiteCancelamentosMes:     it.LimiteCancelamentosMes,
		CancelamentosRealizadosMes: it.CancelamentosRealizadosMes,
		MesReferenciaCancel:        it.MesReferenciaCancel,
		AvaliacaoMedia:             it.AvaliacaoMedia,
		NumeroAvaliacoes:           it.NumeroAvaliacoes,
		HistoricoValoresAMais:      fromValueDeltaEventItems(it.HistoricoValoresAMais),
		HistoricoValoresAMenos:     fromValueDeltaEventItems(it.HistoricoValoresAMenos),
		CreatedAt:                  createdAt,
		UpdatedAt:                  updatedAt,
	}
}

func fromCarrierProfileItem(it carrierProfileItem) entities.CarrierProfile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CarrierProfile{
		UserID:                 it.UserID,
		RazaoSocial:            it.RazaoSocial,
		SaldoDescontoPremium:   it.SaldoDescontoPremium,
		AvaliacaoMedia:         it.AvaliacaoMedia,
		NumeroAvaliacoes:       it.NumeroAvaliacoes,
		HistoricoValoresAMais:  fromValueDeltaEventItems(it.HistoricoValoresAMais),
		HistoricoValoresAMenos: fromValueDeltaEventItems(it.HistoricoValoresAMenos),
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
}
