package storage

import (
	"fmt"
	"os"
)

// Store é o contrato do meio durável de persistência: um mapa chave→texto.
// O restante do sistema trata o Store como um depósito passivo: leituras que
// falham valem como chave ausente e escritas que falham são apenas logadas.
type Store interface {
	// Get retorna o valor da chave e se ela existe
	Get(key string) (string, bool)

	// Set grava o valor da chave
	Set(key, value string) error

	// Remove apaga a chave
	Remove(key string) error
}

// Nomes aceitos em POS_STORAGE_DRIVER
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// NewFromEnv cria o Store configurado pelas variáveis de ambiente
func NewFromEnv() (Store, error) {
	driver := getEnv("POS_STORAGE_DRIVER", DriverFile)

	switch driver {
	case DriverFile:
		return NewFileStore(getEnv("POS_DATA_FILE", "pdv-dados.json"))
	case DriverSQLite:
		return NewSQLiteStore(getEnv("POS_SQLITE_PATH", "pdv-dados.db"))
	case DriverPostgres:
		return NewPostgresStore(NewPostgresConfigFromEnv())
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("driver de armazenamento desconhecido: %s", driver)
	}
}

// getEnv retorna a variável de ambiente ou o valor padrão
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
