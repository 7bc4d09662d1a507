package repository

import (
	"context"
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
	defaultRatingsTableName = "avaliacoes"
	ratingsAlvoIDIndex      = "alvo_id-index"
)

type ratingItem struct {
	ID        string `dynamodbav:"id"`
	CotacaoID string `dynamodbav:"cotacao_id"`
	AutorID   string `dynamodbav:"autor_id"`
	AlvoID    string `dynamodbav:"alvo_id"`
	Direcao   string `dynamodbav:"direcao"`

	Nota       int    `dynamodbav:"nota"`
	Comentario string `dynamodbav:"comentario,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
}

// RatingDynamoRepository persists Rating entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: alvo_id-index (PK: alvo_id)

type RatingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRatingRepository = (*RatingDynamoRepository)(nil)

func NewRatingDynamoRepository(ddb *dynamodb.Client) *RatingDynamoRepository {
	return &RatingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATINGS_TABLE", defaultRatingsTableName),
	}
}

func (r *RatingDynamoRepository) Create(ctx context.Context, rating entities.Rating) (entities.Rating, error) {
	av, err := attributevalue.MarshalMap(toRatingItem(rating))
	if err != nil {
		return entities.Rating{}, err
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
		return entities.Rating{}, err
	}
	return rating, nil
}

func (r *RatingDynamoRepository) ListByAlvo(ctx context.Context, alvoID string, direcao entities.RatingDirection) ([]entities.Rating, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ratingsAlvoIDIndex),
		KeyConditionExpression: aws.String("alvo_id = :aid"),
		FilterExpression:       aws.String("direcao = :dir"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: alvoID},
			":dir": &types.AttributeValueMemberS{Value: string(direcao)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Rating, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ratingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRatingItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func toRatingItem(rating entities.Rating) ratingItem {
	return ratingItem{
		ID:         rating.ID,
		CotacaoID:  rating.CotacaoID,
		AutorID:    rating.AutorID,
		AlvoID:     rating.AlvoID,
		Direcao:    string(rating.Direcao),
		Nota:       rating.Nota,
		Comentario: rating.Comentario,
		CreatedAt:  rating.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRatingItem(it ratingItem) entities.Rating {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Rating{
		ID:         it.ID,
		CotacaoID:  it.CotacaoID,
		AutorID:    it.AutorID,
		AlvoID:     it.AlvoID,
		Direcao:    entities.RatingDirection(it.Direcao),
		Nota:       it.Nota,
		Comentario: it.Comentario,
		CreatedAt:  createdAt,
	}
}
