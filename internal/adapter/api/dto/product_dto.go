package dto

// ProductRequest representa os dados para criar ou editar um produto
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	CostPrice   float64 `json:"costPrice" binding:"gte=0"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Barcode     string  `json:"barcode"`
	Supplier    string  `json:"supplier"`
	Unit        string  `json:"unit"`
	ImageURL    string  `json:"imageUrl"`
}

// DescribeRequest representa os dados para gerar a descrição de um produto
// por IA
type DescribeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// DescribeResponse carrega o texto gerado pela IA
type DescribeResponse struct {
	Description string `json:"description"`
}
