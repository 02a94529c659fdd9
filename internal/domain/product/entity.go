package product

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome do produto não pode ser vazio")
	ErrNegativePrice = errors.New("preço do produto não pode ser negativo")
	ErrNegativeStock = errors.New("estoque do produto não pode ser negativo")
)

// Product representa um item do catálogo. Os nomes dos campos JSON seguem o
// formato histórico dos backups exportados e não podem mudar.
type Product struct {
	ID          string  `json:"id"`          // ID do Produto
	Name        string  `json:"name"`        // Nome
	Price       float64 `json:"price"`       // Preço de Venda
	CostPrice   float64 `json:"costPrice"`   // Preço de Custo
	Category    string  `json:"category"`    // Categoria
	Description string  `json:"description"` // Descrição
	Stock       int     `json:"stock"`       // Quantidade em Estoque
	Barcode     string  `json:"barcode,omitempty"`  // Código de Barras
	Supplier    string  `json:"supplier,omitempty"` // Fornecedor
	Unit        string  `json:"unit,omitempty"`     // Unidade (un, kg, cx...)
	ImageURL    string  `json:"imageUrl,omitempty"` // URL da Imagem
}

// NewProduct cria um novo produto com id gerado
func NewProduct(name, category string, price, costPrice float64, stock int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if price < 0 || costPrice < 0 {
		return nil, ErrNegativePrice
	}

	if stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Price:     price,
		CostPrice: costPrice,
		Stock:     stock,
	}, nil
}

// DecrementStock abate a quantidade vendida do estoque, sem nunca ficar negativo
func (p *Product) DecrementStock(quantity int) {
	p.Stock -= quantity
	if p.Stock < 0 {
		p.Stock = 0
	}
}

// Margin retorna a margem unitária de lucro do produto
func (p *Product) Margin() float64 {
	return p.Price - p.CostPrice
}
