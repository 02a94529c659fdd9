package client

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome do cliente não pode ser vazio")

// Client representa um cliente da loja
type Client struct {
	ID       string `json:"id"`      // ID do Cliente
	Name     string `json:"name"`    // Nome
	Phone    string `json:"phone"`   // Telefone/WhatsApp
	Email    string `json:"email"`   // Email
	Address  string `json:"address"` // Endereço
	Document string `json:"document,omitempty"` // CPF/CNPJ
}

// NewClient cria um novo cliente com id gerado
func NewClient(name, phone, email, address string) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Client{
		ID:      uuid.New().String(),
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
	}, nil
}
