package request

import "cotafrete/internal/usecase"

// RateRequest is a single 1-5 evaluation.
type RateRequest struct {
	Nota       int    `json:"nota" binding:"required"`
	Comentario string `json:"comentario"`
}

func (r RateRequest) ToInput() usecase.RateInput {
	return usecase.RateInput{Nota: r.Nota, Comentario: r.Comentario}
}
