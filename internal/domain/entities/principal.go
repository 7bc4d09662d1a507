package entities

// UserType identifies which side of the marketplace an account belongs to.
type UserType string

const (
	UserTypeCliente        UserType = "cliente"
	UserTypeTransportadora UserType = "transportadora"
	UserTypeAdmin          UserType = "admin"
)

// Principal is the authenticated actor extracted from the request token.
// Token issuance lives in the external auth service; the core only consumes
// the validated claims.
type Principal struct {
	ID        string   `json:"id"`
	UserType  UserType `json:"user_type"`
	CpfOuCnpj string   `json:"cpf_ou_cnpj,omitempty"`
}

// IsIndividualTaxpayer reports whether the principal's tax id is a CPF
// (11 digits). CPF clients must prepay before the carrier is released.
func (p Principal) IsIndividualTaxpayer() bool {
	digits := 0
	for _, r := range p.CpfOuCnpj {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == 11
}
