package storage

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig contém as configurações para conexão com o PostgreSQL
type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
}

// NewPostgresConfigFromEnv cria uma nova configuração a partir de variáveis de ambiente
func NewPostgresConfigFromEnv() *PostgresConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "10"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "2"))
	maxLifetime, _ := strconv.Atoi(getEnv("DB_MAX_LIFETIME", "300"))

	return &PostgresConfig{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            port,
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", "postgres"),
		Database:        getEnv("DB_NAME", "pdv_local"),
		SSLMode:         getEnv("DB_SSL_MODE", "disable"),
		MaxConnections:  int32(maxConns),
		MinConnections:  int32(minConns),
		MaxConnLifetime: time.Duration(maxLifetime) * time.Second,
	}
}

// ConnectionString retorna a string de conexão para o PostgreSQL
func (c *PostgresConfig) ConnectionString() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// PostgresStore persiste o mapa chave→valor em uma tabela no PostgreSQL.
// O banco continua sendo um depósito passivo: há um único escritor (a sessão
// local) e nenhuma coordenação entre instâncias.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore conecta no banco e garante a tabela kv_store
func NewPostgresStore(config *PostgresConfig) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(config.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar configuração do pool: %w", err)
	}

	poolConfig.MaxConns = config.MaxConnections
	poolConfig.MinConns = config.MinConnections
	poolConfig.MaxConnLifetime = config.MaxConnLifetime

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool de conexões: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("erro ao conectar no banco de dados: %w", err)
	}

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv_store (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("erro ao preparar tabela kv_store: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Get retorna o valor da chave e se ela existe
func (s *PostgresStore) Get(key string) (string, bool) {
	ctx, cancel := s.operationContext()
	defer cancel()

	var value string
	// Qualquer falha de leitura vale como chave ausente
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set grava o valor da chave (insere ou substitui)
func (s *PostgresStore) Set(key, value string) error {
	ctx, cancel := s.operationContext()
	defer cancel()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("erro ao gravar chave %s: %w", key, err)
	}
	return nil
}

// Remove apaga a chave
func (s *PostgresStore) Remove(key string) error {
	ctx, cancel := s.operationContext()
	defer cancel()

	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("erro ao remover chave %s: %w", key, err)
	}
	return nil
}

// Close libera o pool de conexões
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// operationContext limita o tempo de cada operação no banco
func (s *PostgresStore) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
