package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persiste o mapa chave→valor em um único arquivo JSON no disco.
// Cada escrita regrava o arquivo inteiro via arquivo temporário + rename, de
// modo que uma queda no meio da escrita nunca deixa o arquivo corrompido.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFileStore abre (ou cria) o arquivo de dados no caminho informado
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("erro ao abrir arquivo de dados: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("arquivo de dados inválido: %w", err)
		}
	}

	return s, nil
}

// Get retorna o valor da chave e se ela existe
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	return value, ok
}

// Set grava o valor da chave e persiste o arquivo
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

// Remove apaga a chave e persiste o arquivo
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.flush()
}

// flush regrava o arquivo por inteiro de forma atômica
func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar dados: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".pdv-dados-*")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("erro ao gravar arquivo de dados: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("erro ao fechar arquivo de dados: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("erro ao substituir arquivo de dados: %w", err)
	}

	return nil
}
