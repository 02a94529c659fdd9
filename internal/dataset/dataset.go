package dataset

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/docebom/pdv-local/internal/domain/client"
	"github.com/docebom/pdv-local/internal/domain/product"
	"github.com/docebom/pdv-local/internal/domain/profile"
	"github.com/docebom/pdv-local/internal/domain/sale"
	"github.com/docebom/pdv-local/internal/infrastructure/storage"
	"github.com/docebom/pdv-local/pkg/imagelink"
	"github.com/docebom/pdv-local/pkg/logger"
)

// Dataset é a raiz de agregação das quatro coleções do sistema: catálogo,
// clientes, histórico de vendas e perfil da loja. Toda mutação passa por aqui
// e dispara uma passada de sincronização que regrava as quatro coleções no
// Store. É o único dono das coleções: o Store é apenas o meio durável.
type Dataset struct {
	store storage.Store
	log   logger.Logger
	now   func() time.Time

	products []product.Product
	clients  []client.Client
	sales    []sale.Sale
	profile  profile.BusinessProfile
}

// Snapshot é o retrato completo das quatro coleções. Os nomes dos campos JSON
// são o contrato do documento de backup e não podem mudar.
type Snapshot struct {
	Products        []product.Product       `json:"products"`
	Clients         []client.Client         `json:"clients"`
	SalesHistory    []sale.Sale             `json:"salesHistory"`
	BusinessProfile profile.BusinessProfile `json:"businessProfile"`
}

// Partial carrega substituições por coleção: campo nil mantém a coleção
// atual. Usado pela importação de backup, que troca coleções por inteiro e
// nunca mescla registros.
type Partial struct {
	Products        *[]product.Product
	Clients         *[]client.Client
	SalesHistory    *[]sale.Sale
	BusinessProfile *profile.BusinessProfile
}

// Open carrega as quatro coleções do Store, migrando chaves antigas quando a
// chave canônica ainda não existe
func Open(store storage.Store, log logger.Logger) *Dataset {
	return &Dataset{
		store:    store,
		log:      log,
		now:      time.Now,
		products: load(store, log, KeyProducts, []product.Product{}),
		clients:  load(store, log, KeyClients, []client.Client{}),
		sales:    load(store, log, KeySales, []sale.Sale{}),
		profile:  load(store, log, KeyProfile, profile.Default()),
	}
}

// Products retorna o catálogo (mais recentes primeiro)
func (d *Dataset) Products() []product.Product {
	return slices.Clone(d.products)
}

// Clients retorna os clientes (mais recentes primeiro)
func (d *Dataset) Clients() []client.Client {
	return slices.Clone(d.clients)
}

// Sales retorna o histórico de vendas (mais recentes primeiro)
func (d *Dataset) Sales() []sale.Sale {
	return slices.Clone(d.sales)
}

// Profile retorna o perfil da loja
func (d *Dataset) Profile() profile.BusinessProfile {
	return d.profile
}

// FindProduct busca um produto pelo id
func (d *Dataset) FindProduct(id string) (product.Product, bool) {
	for _, p := range d.products {
		if p.ID == id {
			return p, true
		}
	}
	return product.Product{}, false
}

// FindClient busca um cliente pelo id
func (d *Dataset) FindClient(id string) (client.Client, bool) {
	for _, c := range d.clients {
		if c.ID == id {
			return c, true
		}
	}
	return client.Client{}, false
}

// SaveProduct grava um produto: substitui no lugar quando o id já existe,
// senão insere no início do catálogo
func (d *Dataset) SaveProduct(p product.Product) {
	p.ImageURL = imagelink.ConvertDriveLink(p.ImageURL)

	for i := range d.products {
		if d.products[i].ID == p.ID {
			d.products[i] = p
			d.syncAll()
			return
		}
	}

	d.products = append([]product.Product{p}, d.products...)
	d.syncAll()
}

// SaveClient grava um cliente: substitui no lugar quando o id já existe,
// senão insere no início da lista
func (d *Dataset) SaveClient(c client.Client) {
	for i := range d.clients {
		if d.clients[i].ID == c.ID {
			d.clients[i] = c
			d.syncAll()
			return
		}
	}

	d.clients = append([]client.Client{c}, d.clients...)
	d.syncAll()
}

// SaveProfile substitui o perfil da loja por inteiro
func (d *Dataset) SaveProfile(p profile.BusinessProfile) {
	p.LogoURL = imagelink.ConvertDriveLink(p.LogoURL)
	d.profile = p
	d.syncAll()
}

// FinalizeSale converte o carrinho em uma venda durável: calcula total e
// lucro, congela o nome do cliente, abate o estoque dos produtos vendidos
// (sem nunca ficar negativo) e insere a venda no início do histórico.
// Produtos do carrinho que não existem mais no catálogo não ajustam estoque,
// mas a venda registra o retrato deles mesmo assim.
func (d *Dataset) FinalizeSale(clientID string, items []sale.CartItem, paymentMethod, paymentTerms string) (*sale.Sale, error) {
	clientName := ""
	if c, ok := d.FindClient(clientID); ok {
		clientName = c.Name
	}

	s, err := sale.NewSale(clientID, clientName, items, paymentMethod, paymentTerms, d.now())
	if err != nil {
		return nil, err
	}

	d.sales = append([]sale.Sale{*s}, d.sales...)

	for _, item := range items {
		for i := range d.products {
			if d.products[i].ID == item.ID {
				d.products[i].DecrementStock(item.Quantity)
				break
			}
		}
	}

	d.syncAll()
	return s, nil
}

// Snapshot retorna o retrato completo das quatro coleções
func (d *Dataset) Snapshot() Snapshot {
	return Snapshot{
		Products:        slices.Clone(d.products),
		Clients:         slices.Clone(d.clients),
		SalesHistory:    slices.Clone(d.sales),
		BusinessProfile: d.profile,
	}
}

// Replace troca por inteiro as coleções presentes em Partial e mantém as
// demais intactas. Uma única passada de sincronização grava o resultado.
func (d *Dataset) Replace(p Partial) {
	if p.Products != nil {
		d.products = *p.Products
	}
	if p.Clients != nil {
		d.clients = *p.Clients
	}
	if p.SalesHistory != nil {
		d.sales = *p.SalesHistory
	}
	if p.BusinessProfile != nil {
		d.profile = *p.BusinessProfile
	}
	d.syncAll()
}

// syncAll regrava as quatro coleções no Store em uma única passada. As
// escritas são de melhor esforço: a falha em uma chave não impede as outras e
// é apenas logada, nunca devolvida ao chamador. Como o estado em memória já é
// consistente, uma escrita parcial só pode deixar uma chave defasada para a
// próxima leitura, nunca corrompida.
func (d *Dataset) syncAll() {
	d.persist(KeyProducts, d.products)
	d.persist(KeyClients, d.clients)
	d.persist(KeySales, d.sales)
	d.persist(KeyProfile, d.profile)
}

// persist serializa e grava uma coleção, registrando qualquer falha
func (d *Dataset) persist(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		d.log.Error("erro ao serializar coleção", "key", key, "error", err)
		return
	}

	if err := d.store.Set(key, string(raw)); err != nil {
		d.log.Error("erro ao persistir coleção", "key", key, "error", err)
	}
}
