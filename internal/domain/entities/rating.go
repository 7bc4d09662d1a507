package entities

import "time"

// RatingDirection tells which side authored the rating.
type RatingDirection string

const (
	RatingClienteParaTransportadora RatingDirection = "cliente_para_transportadora"
	RatingTransportadoraParaCliente RatingDirection = "transportadora_para_cliente"
)

// Rating is a per-quotation evaluation. The client must rate the carrier before
// finalizing; the carrier must rate the client before sending delivery proof.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cotacao_id-index): cotacao_id
type Rating struct {
	ID        string          `json:"id"`
	CotacaoID string          `json:"cotacao_id"`
	AutorID   string          `json:"autor_id"`
	AlvoID    string          `json:"alvo_id"`
	Direcao   RatingDirection `json:"direcao"`

	Nota       int    `json:"nota"`
	Comentario string `json:"comentario,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
