package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/docebom/pdv-local/internal/dataset"
	"github.com/docebom/pdv-local/internal/domain/client"
	"github.com/docebom/pdv-local/internal/domain/product"
	"github.com/docebom/pdv-local/internal/domain/profile"
	"github.com/docebom/pdv-local/internal/domain/sale"
	"github.com/docebom/pdv-local/pkg/logger"
)

// ErrInvalidDocument indica um arquivo de backup que não é JSON estruturado.
// Nesse caso a importação é rejeitada por inteiro e nada muda.
var ErrInvalidDocument = errors.New("arquivo de backup inválido")

// Campos do documento de backup. São o contrato com os arquivos já exportados
// por versões antigas e não podem mudar.
const (
	fieldProducts = "products"
	fieldClients  = "clients"
	fieldSales    = "salesHistory"
	fieldProfile  = "businessProfile"
)

// Codec serializa o conjunto completo de dados em um único documento portátil
// e faz o caminho inverso na importação
type Codec struct {
	log logger.Logger
}

// NewCodec cria uma nova instância de Codec
func NewCodec(log logger.Logger) *Codec {
	return &Codec{log: log}
}

// Export produz o documento de backup com as quatro coleções. Exportar duas
// vezes sem mutação no meio produz o mesmo conteúdo lógico.
func (c *Codec) Export(snap dataset.Snapshot) ([]byte, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar backup: %w", err)
	}
	return raw, nil
}

// FileName retorna o nome de arquivo sugerido para o backup, com a data
// corrente para o operador identificar o arquivo depois
func (c *Codec) FileName(now time.Time) string {
	return fmt.Sprintf("DOCEBOM_BACKUP_%s.json", now.Format("2006-01-02"))
}

// Import interpreta um documento de backup e devolve as substituições por
// coleção. Campo ausente ou com formato errado fica de fora (a coleção atual
// permanece); documento que não é JSON estruturado é rejeitado por inteiro
// com ErrInvalidDocument. A importação nunca mescla: cada campo presente
// substitui a coleção correspondente por completo.
func (c *Codec) Import(raw []byte) (dataset.Partial, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return dataset.Partial{}, ErrInvalidDocument
	}
	// O literal null também não é um documento: Unmarshal o aceita sem erro
	// mas deixa o mapa nil
	if fields == nil {
		return dataset.Partial{}, ErrInvalidDocument
	}

	var partial dataset.Partial

	if field, ok := fields[fieldProducts]; ok && !isNull(field) {
		var products []product.Product
		if err := json.Unmarshal(field, &products); err != nil {
			c.log.Warn("campo de produtos do backup ilegível, mantendo catálogo atual", "error", err)
		} else {
			partial.Products = &products
		}
	}

	if field, ok := fields[fieldClients]; ok && !isNull(field) {
		var clients []client.Client
		if err := json.Unmarshal(field, &clients); err != nil {
			c.log.Warn("campo de clientes do backup ilegível, mantendo lista atual", "error", err)
		} else {
			partial.Clients = &clients
		}
	}

	if field, ok := fields[fieldSales]; ok && !isNull(field) {
		var sales []sale.Sale
		if err := json.Unmarshal(field, &sales); err != nil {
			c.log.Warn("campo de vendas do backup ilegível, mantendo histórico atual", "error", err)
		} else {
			partial.SalesHistory = &sales
		}
	}

	if field, ok := fields[fieldProfile]; ok && !isNull(field) {
		var businessProfile profile.BusinessProfile
		if err := json.Unmarshal(field, &businessProfile); err != nil {
			c.log.Warn("campo de perfil do backup ilegível, mantendo perfil atual", "error", err)
		} else {
			partial.BusinessProfile = &businessProfile
		}
	}

	return partial, nil
}

// isNull identifica o literal JSON null, que na importação conta como campo
// ausente: substituir uma coleção por nada apagaria os dados do operador
func isNull(field json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(field), []byte("null"))
}
