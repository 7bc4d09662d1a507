package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"cotafrete/internal/domain/entities"
	"cotafrete/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLedgerTableName      = "financeiro"
	ledgerTransportadoraIDIndex = "transportadora_id-index"
)

type ledgerEntryItem struct {
	CotacaoID       string  `dynamodbav:"cotacao_id"`
	ValorCotacao    float64 `dynamodbav:"valor_cotacao"`
	ValorComissao   float64 `dynamodbav:"valor_comissao"`
	DataFinalizacao string  `dynamodbav:"data_finalizacao"`
}

type monthlyLedgerItem struct {
	ID               string `dynamodbav:"id"`
	TransportadoraID string `dynamodbav:"transportadora_id"`
	MesReferencia    string `dynamodbav:"mes_referencia"`

	Cotacoes   []ledgerEntryItem `dynamodbav:"cotacoes,omitempty"`
	CotacaoIDs []string          `dynamodbav:"cotacao_ids,omitempty,stringset"`

	ValorTotalCotacoes float64 `dynamodbav:"valor_total_cotacoes"`
	ValorTotalComissao float64 `dynamodbav:"valor_total_comissao"`

	CreatedAt string `dynamodbav:"created_at,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// LedgerDynamoRepository persists carrier monthly settlement buckets.
//
// Table requirements:
//   - PK: id (string) = "<transportadora_id>#<YYYY-MM>"
//   - GSI: transportadora_id-index (PK: transportadora_id)
//
// The upsert is a single UpdateItem: ADD creates the bucket and the running
// totals on the first settlement of the month; the NOT contains condition on
// the cotacao_ids string set makes retries a no-op.

type LedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEDGER_TABLE", defaultLedgerTableName),
	}
}

func (r *LedgerDynamoRepository) UpsertSettlement(ctx context.Context, transportadoraID string, entry entities.LedgerEntry) error {
	entryAv, err := attributevalue.Marshal([]ledgerEntryItem{{
		CotacaoID:       entry.CotacaoID,
		ValorCotacao:    entry.ValorCotacao,
		ValorComissao:   entry.ValorComissao,
		DataFinalizacao: entry.DataFinalizacao.UTC().Format(time.RFC3339Nano),
	}})
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.LedgerBucketID(transportadoraID, entry.DataFinalizacao)},
		},
		ConditionExpression: aws.String("attribute_not_exists(cotacao_ids) OR NOT contains(cotacao_ids, :cid)"),
		UpdateExpression: aws.String(
			"ADD cotacao_ids :cidset, valor_total_cotacoes :valor, valor_total_comissao :comissao " +
				"SET cotacoes = list_append(if_not_exists(cotacoes, :empty), :entry), " +
				"transportadora_id = if_not_exists(transportadora_id, :tid), " +
				"mes_referencia = if_not_exists(mes_referencia, :mes), " +
				"created_at = if_not_exists(created_at, :now), " +
				"updated_at = :now",
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":      &types.AttributeValueMemberS{Value: entry.CotacaoID},
			":cidset":   &types.AttributeValueMemberSS{Value: []string{entry.CotacaoID}},
			":valor":    &types.AttributeValueMemberN{Value: floatToString(entry.ValorCotacao)},
			":comissao": &types.AttributeValueMemberN{Value: floatToString(entry.ValorComissao)},
			":entry":    entryAv,
			":empty":    &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":tid":      &types.AttributeValueMemberS{Value: transportadoraID},
			":mes":      &types.AttributeValueMemberS{Value: entities.MonthReference(entry.DataFinalizacao)},
			":now":      &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Quotation already settled in this bucket.
			return nil
		}
		return err
	}
	return nil
}

func (r *LedgerDynamoRepository) ListByCarrier(ctx context.Context, transportadoraID, mesReferencia string) ([]entities.MonthlyLedger, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ledgerTransportadoraIDIndex),
		KeyConditionExpression: aws.String("transportadora_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: transportadoraID},
		},
	}
	if mesReferencia != "" {
		in.FilterExpression = aws.String("mes_referencia = :mes")
		in.ExpressionAttributeValues[":mes"] = &types.AttributeValueMemberS{Value: mesReferencia}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	buckets := make([]entities.MonthlyLedger, 0, len(out.Items))
	for _, raw := range out.Items {
		var it monthlyLedgerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		buckets = append(buckets, fromMonthlyLedgerItem(it))
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].MesReferencia > buckets[j].MesReferencia
	})
	return buckets, nil
}

func fromMonthlyLedgerItem(it monthlyLedgerItem) entities.MonthlyLedger {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	entries := make([]entities.LedgerEntry, 0, len(it.Cotacoes))
	for _, e := range it.Cotacoes {
		dataFinalizacao, _ := time.Parse(time.RFC3339Nano, e.DataFinalizacao)
		entries = append(entries, entities.LedgerEntry{
			CotacaoID:       e.CotacaoID,
			ValorCotacao:    e.ValorCotacao,
			ValorComissao:   e.ValorComissao,
			DataFinalizacao: dataFinalizacao,
		})
	}
	return entities.MonthlyLedger{
		ID:                 it.ID,
		TransportadoraID:   it.TransportadoraID,
		MesReferencia:      it.MesReferencia,
		Cotacoes:           entries,
		CotacaoIDs:         it.CotacaoIDs,
		ValorTotalCotacoes: it.ValorTotalCotacoes,
		ValorTotalComissao: it.ValorTotalComissao,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
