package repository

import (
	"context"
	"errors"
	"sort"
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
	defaultQuotationsTableName = "cotacoes"
	quotationsClienteIDIndex   = "cliente_id-index"
)

type routeEndpointItem struct {
	Cidade string `dynamodbav:"cidade"`
	Estado string `dynamodbav:"estado,omitempty"`
	CEP    string `dynamodbav:"cep,omitempty"`
}

type serviceFlagsItem struct {
	Palete        bool `dynamodbav:"palete"`
	Urgente       bool `dynamodbav:"urgente"`
	Fragil        bool `dynamodbav:"fragil"`
	CargaDedicada bool `dynamodbav:"carga_dedicada"`
}

type contestationItem struct {
	Motivo   string `dynamodbav:"motivo"`
	DataHora string `dynamodbav:"data_hora"`
}

type quotationItem struct {
	ID        string `dynamodbav:"id"`
	ClienteID string `dynamodbav:"cliente_id"`

	Titulo    string            `dynamodbav:"titulo"`
	Descricao string            `dynamodbav:"descricao,omitempty"`
	Origem    routeEndpointItem `dynamodbav:"origem"`
	Destino   routeEndpointItem `dynamodbav:"destino"`

	ProdutoNome     string  `dynamodbav:"produto_nome"`
	ProdutoNCM      string  `dynamodbav:"produto_ncm,omitempty"`
	PesoKg          float64 `dynamodbav:"peso_kg"`
	ValorNotaFiscal float64 `dynamodbav:"valor_nota_fiscal"`

	Servicos serviceFlagsItem `dynamodbav:"servicos"`

	// RFC3339 without fraction so the expired filter can compare
	// lexicographically.
	DataHoraFim          string `dynamodbav:"data_hora_fim"`
	Status               string `dynamodbav:"status"`
	PrimeiraVisualizacao string `dynamodbav:"primeira_visualizacao,omitempty"`

	RespostaSelecionadaID string `dynamodbav:"resposta_selecionada_id,omitempty"`

	ValorOriginal            float64 `dynamodbav:"valor_original,omitempty"`
	ValorFinalCliente        float64 `dynamodbav:"valor_final_cliente,omitempty"`
	ValorFinalTransportadora float64 `dynamodbav:"valor_final_transportadora,omitempty"`
	ValorFinalApurado        float64 `dynamodbav:"valor_final_apurado,omitempty"`
	ValorComissao            float64 `dynamodbav:"valor_comissao,omitempty"`
	DiferencaValor           float64 `dynamodbav:"diferenca_valor,omitempty"`
	EntregaProdutosAMais     bool    `dynamodbav:"entrega_produtos_a_mais,omitempty"`
	ObservacoesCliente       string  `dynamodbav:"observacoes_cliente,omitempty"`

	AvaliacaoTransportadoraID string `dynamodbav:"avaliacao_transportadora_id,omitempty"`
	AvaliacaoClienteID        string `dynamodbav:"avaliacao_cliente_id,omitempty"`

	DocumentoCanhoto     string `dynamodbav:"documento_canhoto,omitempty"`
	DataColetaRealizada  string `dynamodbav:"data_coleta_realizada,omitempty"`
	DataEntregaRealizada string `dynamodbav:"data_entrega_realizada,omitempty"`
	DataHoraFinalizacao  string `dynamodbav:"data_hora_finalizacao,omitempty"`

	Contestacao *contestationItem `dynamodbav:"contestacao,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cliente_id-index (PK: cliente_id)
//
// Every write conditions on the stored version, which is bumped on success.
// The accept flow goes through CommitSelection so the quotation pointer and
// the response flags move in one transaction.

type QuotationDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	responsesTableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:                ddb,
		tableName:          getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		responsesTableName: getenvDefault("RESPONSES_TABLE", defaultResponsesTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	q.Version = 1
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByCliente(ctx context.Context, clienteID string, status entities.QuotationStatus) ([]entities.Quotation, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsClienteIDIndex),
		KeyConditionExpression: aws.String("cliente_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clienteID},
		},
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items, err := unmarshalQuotations(out.Items)
	if err != nil {
		return nil, err
	}
	sortQuotationsNewestFirst(items)
	return items, nil
}

// ListAvailable scans for quotations still open to bids. A scan is acceptable
// here: the open set is small and short-lived by construction (deadlines are
// capped at 24h).
func (r *QuotationDynamoRepository) ListAvailable(ctx context.Context, excludeUserID string, now time.Time) ([]entities.Quotation, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status IN (:s1, :s2, :s3) AND data_hora_fim > :now AND cliente_id <> :uid"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s1":  &types.AttributeValueMemberS{Value: string(entities.QuotationStatusAberta)},
			":s2":  &types.AttributeValueMemberS{Value: string(entities.QuotationStatusEmAndamento)},
			":s3":  &types.AttributeValueMemberS{Value: string(entities.QuotationStatusVisualizada)},
			":now": &types.AttributeValueMemberS{Value: now.UTC().Format(time.RFC3339)},
			":uid": &types.AttributeValueMemberS{Value: excludeUserID},
		},
	})
	if err != nil {
		return nil, err
	}

	items, err := unmarshalQuotations(out.Items)
	if err != nil {
		return nil, err
	}
	sortQuotationsNewestFirst(items)
	return items, nil
}

func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	expected := q.Version
	q.Version = expected + 1
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Distinguish a missing item from a lost race.
			current, getErr := r.GetByID(ctx, q.ID)
			if getErr != nil {
				return entities.Quotation{}, getErr
			}
			if current.ID == "" {
				return entities.Quotation{}, nil
			}
			return entities.Quotation{}, interfaces.ErrVersionConflict
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

// CommitSelection applies the accept unit of work in one TransactWriteItems
// call: the quotation write is conditioned on the version the caller read, the
// chosen response is promoted and every sibling demoted and flagged rejected.
// A cancelled transaction maps to ErrVersionConflict so the usecase can
// re-read and retry.
func (r *QuotationDynamoRepository) CommitSelection(ctx context.Context, commit interfaces.SelectionCommit) (entities.Quotation, error) {
	q := commit.Quotation
	q.Version = commit.ExpectedVersion + 1

	writes, err := r.selectionWrites(q, commit, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Quotation{}, interfaces.ErrVersionConflict
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

// selectionWrites builds the accept transaction. Every sibling write clears
// aceita so exactly one response ends up accepted no matter what the row held
// before.
func (r *QuotationDynamoRepository) selectionWrites(q entities.Quotation, commit interfaces.SelectionCommit, now string) ([]types.TransactWriteItem, error) {
	qav, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return nil, err
	}
	rav, err := attributevalue.MarshalMap(toResponseItem(commit.ChosenResponse))
	if err != nil {
		return nil, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                qav,
				ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
				ExpressionAttributeNames: map[string]string{
					"#id":      "id",
					"#version": "version",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(commit.ExpectedVersion, 10)},
				},
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(r.responsesTableName),
				Item:                rav,
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}
	for _, siblingID := range commit.SiblingIDs {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.responsesTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: siblingID},
				},
				UpdateExpression:    aws.String("SET aceita = :false, rejeitada = :true, updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":false": &types.AttributeValueMemberBOOL{Value: false},
					":true":  &types.AttributeValueMemberBOOL{Value: true},
					":now":   &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}
	return writes, nil
}

func unmarshalQuotations(raw []map[string]types.AttributeValue) ([]entities.Quotation, error) {
	items := make([]entities.Quotation, 0, len(raw))
	for _, m := range raw {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

func sortQuotationsNewestFirst(items []entities.Quotation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:                        q.ID,
		ClienteID:                 q.ClienteID,
		Titulo:                    q.Titulo,
		Descricao:                 q.Descricao,
		Origem:                    routeEndpointItem(q.Origem),
		Destino:                   routeEndpointItem(q.Destino),
		ProdutoNome:               q.ProdutoNome,
		ProdutoNCM:                q.ProdutoNCM,
		PesoKg:                    q.PesoKg,
		ValorNotaFiscal:           q.ValorNotaFiscal,
		Servicos:                  serviceFlagsItem(q.Servicos),
		DataHoraFim:               q.DataHoraFim.UTC().Format(time.RFC3339),
		Status:                    string(q.Status),
		RespostaSelecionadaID:     q.RespostaSelecionadaID,
		ValorOriginal:             q.ValorOriginal,
		ValorFinalCliente:         q.ValorFinalCliente,
		ValorFinalTransportadora:  q.ValorFinalTransportadora,
		ValorFinalApurado:         q.ValorFinalApurado,
		ValorComissao:             q.ValorComissao,
		DiferencaValor:            q.DiferencaValor,
		EntregaProdutosAMais:      q.EntregaProdutosAMais,
		ObservacoesCliente:        q.ObservacoesCliente,
		AvaliacaoTransportadoraID: q.AvaliacaoTransportadoraID,
		AvaliacaoClienteID:        q.AvaliacaoClienteID,
		DocumentoCanhoto:          q.DocumentoCanhoto,
		PrimeiraVisualizacao:      formatOptionalTime(q.PrimeiraVisualizacao),
		DataColetaRealizada:       formatOptionalTime(q.DataColetaRealizada),
		DataEntregaRealizada:      formatOptionalTime(q.DataEntregaRealizada),
		DataHoraFinalizacao:       formatOptionalTime(q.DataHoraFinalizacao),
		Version:                   q.Version,
		CreatedAt:                 q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:                 q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.Contestacao != nil {
		it.Contestacao = &contestationItem{
			Motivo:   q.Contestacao.Motivo,
			DataHora: q.Contestacao.DataHora.UTC().Format(time.RFC3339Nano),
		}
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	dataHoraFim, _ := time.Parse(time.RFC3339, it.DataHoraFim)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	q := entities.Quotation{
		ID:                        it.ID,
		ClienteID:                 it.ClienteID,
		Titulo:                    it.Titulo,
		Descricao:                 it.Descricao,
		Origem:                    entities.RouteEndpoint(it.Origem),
		Destino:                   entities.RouteEndpoint(it.Destino),
		ProdutoNome:               it.ProdutoNome,
		ProdutoNCM:                it.ProdutoNCM,
		PesoKg:                    it.PesoKg,
		ValorNotaFiscal:           it.ValorNotaFiscal,
		Servicos:                  entities.ServiceFlags(it.Servicos),
		DataHoraFim:               dataHoraFim,
		Status:                    entities.QuotationStatus(it.Status),
		RespostaSelecionadaID:     it.RespostaSelecionadaID,
		ValorOriginal:             it.ValorOriginal,
		ValorFinalCliente:         it.ValorFinalCliente,
		ValorFinalTransportadora:  it.ValorFinalTransportadora,
		ValorFinalApurado:         it.ValorFinalApurado,
		ValorComissao:             it.ValorComissao,
		DiferencaValor:            it.DiferencaValor,
		EntregaProdutosAMais:      it.EntregaProdutosAMais,
		ObservacoesCliente:        it.ObservacoesCliente,
		AvaliacaoTransportadoraID: it.AvaliacaoTransportadoraID,
		AvaliacaoClienteID:        it.AvaliacaoClienteID,
		DocumentoCanhoto:          it.DocumentoCanhoto,
		PrimeiraVisualizacao:      parseOptionalTime(it.PrimeiraVisualizacao),
		DataColetaRealizada:       parseOptionalTime(it.DataColetaRealizada),
		DataEntregaRealizada:      parseOptionalTime(it.DataEntregaRealizada),
		DataHoraFinalizacao:       parseOptionalTime(it.DataHoraFinalizacao),
		Version:                   it.Version,
		CreatedAt:                 createdAt,
		UpdatedAt:                 updatedAt,
	}
	if it.Contestacao != nil {
		dataHora, _ := time.Parse(time.RFC3339Nano, it.Contestacao.DataHora)
		q.Contestacao = &entities.Contestation{Motivo: it.Contestacao.Motivo, DataHora: dataHora}
	}
	return q
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
