package sale

import (
	"errors"
	"time"

	"github.com/docebom/pdv-local/internal/domain/product"
	"github.com/oklog/ulid/v2"
)

var (
	ErrEmptyCart       = errors.New("a venda precisa de ao menos um item")
	ErrInvalidQuantity = errors.New("quantidade do item deve ser maior que zero")
)

// WalkInClientName é o nome exibido quando a venda não tem cliente cadastrado
const WalkInClientName = "Venda Avulsa"

// Formatos de exibição usados no histórico (padrão brasileiro)
const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04"
)

// CartItem é um item do carrinho: o retrato do produto no momento da venda
// mais a quantidade vendida. Existe apenas durante a montagem da venda e é
// congelado dentro de Sale.Items ao finalizar.
type CartItem struct {
	product.Product
	Quantity int `json:"quantity"` // Quantidade Vendida
}

// Subtotal retorna o valor do item (preço x quantidade)
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Sale representa uma venda finalizada. Totais e lucro são calculados uma
// única vez ao finalizar e nunca recalculados a partir dos itens: mesmo que o
// preço do produto mude depois, o histórico preserva os valores da época.
type Sale struct {
	ID            string     `json:"id"`         // ID da Venda
	ClientID      string     `json:"clientId"`   // ID do Cliente (pode não existir mais)
	ClientName    string     `json:"clientName"` // Nome do cliente na época da venda
	Items         []CartItem `json:"items"`      // Itens congelados da venda
	Total         float64    `json:"total"`      // Valor total
	Profit        float64    `json:"profit"`     // Lucro (total - custo)
	Date          string     `json:"date"`       // Data da venda (dd/mm/aaaa)
	Time          string     `json:"time"`       // Hora da venda (hh:mm)
	PaymentMethod string     `json:"paymentMethod,omitempty"` // Forma de Pagamento
	PaymentTerms  string     `json:"paymentTerms,omitempty"`  // Prazo (vazio = à vista)
}

// NewSale monta uma venda a partir do carrinho, calculando total e lucro.
// O id é um ULID: ordenável por tempo e sem risco prático de colisão.
func NewSale(clientID, clientName string, items []CartItem, paymentMethod, paymentTerms string, now time.Time) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	if clientName == "" {
		clientName = WalkInClientName
	}

	total, cost := Totals(items)

	return &Sale{
		ID:            ulid.Make().String(),
		ClientID:      clientID,
		ClientName:    clientName,
		Items:         items,
		Total:         total,
		Profit:        total - cost,
		Date:          now.Format(dateLayout),
		Time:          now.Format(timeLayout),
		PaymentMethod: paymentMethod,
		PaymentTerms:  paymentTerms,
	}, nil
}

// Totals calcula o valor de venda e o custo somados de um carrinho
func Totals(items []CartItem) (total, cost float64) {
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
		cost += item.CostPrice * float64(item.Quantity)
	}
	return total, cost
}
