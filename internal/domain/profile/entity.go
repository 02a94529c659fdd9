package profile

// PlanStatus define o plano contratado pela loja
type PlanStatus string

const (
	PlanFree    PlanStatus = "FREE"
	PlanPremium PlanStatus = "PREMIUM"
	PlanPro     PlanStatus = "PRO"
)

// BusinessProfile é o cadastro da loja: existe exatamente um por instalação e
// é sempre gravado por inteiro ao salvar.
type BusinessProfile struct {
	CompanyName string     `json:"companyName"` // Razão Social / Nome Fantasia
	Document    string     `json:"document"`    // CNPJ
	Phone       string     `json:"phone"`       // Telefone
	Email       string     `json:"email"`       // Email
	Address     string     `json:"address"`     // Endereço
	LogoURL     string     `json:"logoUrl,omitempty"` // URL da Logo
	PixKey      string     `json:"pixKey,omitempty"`  // Chave Pix
	PlanStatus  PlanStatus `json:"planStatus"`  // Plano contratado
	NextBilling string     `json:"nextBilling,omitempty"` // Próxima cobrança
}

// Default retorna o perfil usado quando nenhum foi salvo ainda
func Default() BusinessProfile {
	return BusinessProfile{
		CompanyName: "DOCE BOM",
		Document:    "32.785.943/0001-63",
		Phone:       "66 99967-0612",
		Email:       "contato@docebom.com",
		Address:     "Distribuição de Cocadas",
		PlanStatus:  PlanPremium,
		NextBilling: "20/12/2024",
	}
}
