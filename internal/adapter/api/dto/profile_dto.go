package dto

// ProfileRequest representa os dados para salvar o perfil da loja
type ProfileRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Document    string `json:"document"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	LogoURL     string `json:"logoUrl"`
	PixKey      string `json:"pixKey"`
	PlanStatus  string `json:"planStatus"`
	NextBilling string `json:"nextBilling"`
}
