package dto

// SaleItemRequest é um item do carrinho na finalização da venda
type SaleItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

// SaleRequest representa os dados para finalizar uma venda
type SaleRequest struct {
	ClientID      string            `json:"clientId"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"paymentMethod"`
	PaymentTerms  string            `json:"paymentTerms"`
}
