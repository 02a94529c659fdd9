package dataset

import (
	"encoding/json"

	"github.com/docebom/pdv-local/internal/infrastructure/storage"
	"github.com/docebom/pdv-local/pkg/logger"
)

// load resolve uma coleção a partir do Store: primeiro a chave canônica,
// depois as chaves antigas na ordem da tabela de migração. Quando uma chave
// antiga vence, o valor bruto é copiado para a chave canônica (migração
// permanente), de modo que chamadas seguintes nem olham as chaves antigas.
// Toda falha de leitura ou de parse vale como dado ausente: a função nunca
// retorna erro, apenas o valor padrão.
func load[T any](store storage.Store, log logger.Logger, canonical string, defaultValue T) T {
	if raw, ok := store.Get(canonical); ok && raw != "" {
		var value T
		if err := json.Unmarshal([]byte(raw), &value); err == nil {
			return value
		}
		log.Warn("dados da chave canônica ilegíveis, tentando chaves antigas", "key", canonical)
	}

	for _, name := range legacyCandidates(canonical) {
		raw, ok := store.Get(name)
		if !ok || raw == "" {
			continue
		}

		log.Info("migrando dados de chave antiga", "from", name, "to", canonical)
		if err := store.Set(canonical, raw); err != nil {
			log.Error("erro ao migrar chave antiga", "from", name, "to", canonical, "error", err)
		}

		var value T
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			log.Warn("dados da chave antiga ilegíveis", "key", name)
			return defaultValue
		}
		return value
	}

	return defaultValue
}
