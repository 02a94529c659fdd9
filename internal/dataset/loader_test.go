package dataset

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docebom/pdv-local/internal/domain/product"
	"github.com/docebom/pdv-local/internal/infrastructure/storage"
	"github.com/docebom/pdv-local/pkg/logger"
)

// recordingStore conta as escritas por chave para verificar o comportamento
// de migração e sincronização
type recordingStore struct {
	storage.Store
	sets map[string]int
}

func newRecordingStore() *recordingStore {
	return &recordingStore{
		Store: storage.NewMemoryStore(),
		sets:  make(map[string]int),
	}
}

func (s *recordingStore) Set(key, value string) error {
	s.sets[key]++
	return s.Store.Set(key, value)
}

func (s *recordingStore) totalSets() int {
	total := 0
	for _, n := range s.sets {
		total += n
	}
	return total
}

func testLogger() logger.Logger {
	return logger.NewLoggerTo(io.Discard)
}

func TestLoadCanonicalKeyWins(t *testing.T) {
	store := newRecordingStore()
	log := testLogger()

	require.NoError(t, store.Set(KeyProducts, `[{"id":"P-1","name":"Cocada Branca","price":8,"costPrice":3,"stock":10}]`))
	require.NoError(t, store.Set("docebom_inventory_v1", `[{"id":"P-legacy","name":"Antiga","price":1,"costPrice":1,"stock":1}]`))
	store.sets = map[string]int{}

	products := load(store, log, KeyProducts, []product.Product{})

	require.Len(t, products, 1)
	assert.Equal(t, "P-1", products[0].ID)
	assert.Equal(t, 0, store.totalSets(), "chave canônica presente não deve gerar escrita")
}

func TestLoadFallbackPrecedence(t *testing.T) {
	store := newRecordingStore()
	log := testLogger()

	// Duas chaves antigas com dados: vence a primeira na ordem da tabela
	winner := `[{"id":"P-v2","name":"Cocada Queimada","price":9,"costPrice":4,"stock":5}]`
	require.NoError(t, store.Set("docebom_inventory_v2", winner))
	require.NoError(t, store.Set("DOCEBOM_STABLE_PRODUCTS_LIST", `[{"id":"P-stable","name":"Outra","price":2,"costPrice":1,"stock":2}]`))
	store.sets = map[string]int{}

	products := load(store, log, KeyProducts, []product.Product{})

	require.Len(t, products, 1)
	assert.Equal(t, "P-v2", products[0].ID)

	// Migração permanente: a chave canônica agora guarda o valor bruto vencedor
	migrated, ok := store.Get(KeyProducts)
	require.True(t, ok)
	assert.JSONEq(t, winner, migrated)
	assert.Equal(t, 1, store.sets[KeyProducts])

	// Segunda chamada é idempotente: lê da canônica, sem nova migração
	again := load(store, log, KeyProducts, []product.Product{})
	assert.Equal(t, products, again)
	assert.Equal(t, 1, store.sets[KeyProducts])
}

func TestLoadDefaultWithoutWrites(t *testing.T) {
	store := newRecordingStore()
	log := testLogger()

	fallback := []product.Product{{ID: "default"}}
	products := load(store, log, KeyProducts, fallback)

	assert.Equal(t, fallback, products)
	assert.Equal(t, 0, store.totalSets(), "sem dado algum o load não pode escrever")
}

func TestLoadIgnoresLegacyKeysOfOtherCollections(t *testing.T) {
	store := newRecordingStore()
	log := testLogger()

	require.NoError(t, store.Set("docebom_customers_v1", `[{"id":"C-1","name":"Maria"}]`))
	store.sets = map[string]int{}

	products := load(store, log, KeyProducts, []product.Product{})

	assert.Empty(t, products)
	assert.Equal(t, 0, store.totalSets())
}

func TestLoadUnparseableCanonicalFallsBackToLegacy(t *testing.T) {
	store := newRecordingStore()
	log := testLogger()

	require.NoError(t, store.Set(KeyProducts, `{corrompido`))
	require.NoError(t, store.Set("docebom_inventory_v3", `[{"id":"P-v3","name":"Resgatada","price":5,"costPrice":2,"stock":1}]`))

	products := load(store, log, KeyProducts, []product.Product{})

	require.Len(t, products, 1)
	assert.Equal(t, "P-v3", products[0].ID)
}

func TestLoadUnparseableLegacyReturnsDefault(t *testing.T) {
	store := newRecordingStore()
	log := testLogger()

	require.NoError(t, store.Set("docebom_inventory_v1", `{corrompido`))

	products := load(store, log, KeyProducts, []product.Product{})

	assert.Empty(t, products)
}
