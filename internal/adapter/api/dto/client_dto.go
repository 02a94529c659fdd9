package dto

// ClientRequest representa os dados para criar ou editar um cliente
type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Document string `json:"document"`
}
