package response

import (
	"time"

	"cotafrete/internal/domain/entities"
)

type RatingResponse struct {
	ID         string    `json:"id"`
	CotacaoID  string    `json:"cotacao_id"`
	AutorID    string    `json:"autor_id"`
	AlvoID     string    `json:"alvo_id"`
	Direcao    string    `json:"direcao"`
	Nota       int       `json:"nota"`
	Comentario string    `json:"comentario,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromRating(r entities.Rating) RatingResponse {
	return RatingResponse{
		ID:         r.ID,
		CotacaoID:  r.CotacaoID,
		AutorID:    r.AutorID,
		AlvoID:     r.AlvoID,
		Direcao:    string(r.Direcao),
		Nota:       r.Nota,
		Comentario: r.Comentario,
		CreatedAt:  r.CreatedAt,
	}
}

func FromRatings(items []entities.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRating(r))
	}
	return out
}
