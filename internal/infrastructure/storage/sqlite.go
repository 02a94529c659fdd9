package storage

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvRecord é a linha da tabela chave→valor do banco embutido
type kvRecord struct {
	Key   string `gorm:"column:key;primaryKey;size:255"`
	Value string `gorm:"column:value"`
}

// TableName define o nome da tabela usada pelo SQLiteStore
func (kvRecord) TableName() string {
	return "kv_store"
}

// SQLiteStore persiste o mapa chave→valor em um banco SQLite embutido
// (driver em Go puro, sem cgo).
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore abre (ou cria) o banco no caminho informado
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco sqlite: %w", err)
	}

	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("erro ao preparar tabela kv_store: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get retorna o valor da chave e se ela existe
func (s *SQLiteStore) Get(key string) (string, bool) {
	var record kvRecord
	// Qualquer falha de leitura vale como chave ausente
	if err := s.db.First(&record, "key = ?", key).Error; err != nil {
		return "", false
	}
	return record.Value, true
}

// Set grava o valor da chave (insere ou substitui)
func (s *SQLiteStore) Set(key, value string) error {
	record := kvRecord{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
		return fmt.Errorf("erro ao gravar chave %s: %w", key, err)
	}
	return nil
}

// Remove apaga a chave
func (s *SQLiteStore) Remove(key string) error {
	if err := s.db.Delete(&kvRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("erro ao remover chave %s: %w", key, err)
	}
	return nil
}
