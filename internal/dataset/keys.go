package dataset

// Chaves canônicas de armazenamento. São o formato histórico dos dados já
// gravados em produção e não podem mudar.
const (
	KeyProducts = "DOCEBOM_DATA_PRODUCTS_FINAL"
	KeyClients  = "DOCEBOM_DATA_CLIENTS_FINAL"
	KeySales    = "DOCEBOM_DATA_SALES_FINAL"
	KeyProfile  = "DOCEBOM_DATA_PROFILE_FINAL"
)

// legacyKey associa uma chave antiga à chave canônica que a substitui
type legacyKey struct {
	name      string
	canonical string
}

// legacyKeys é a tabela ordenada de migração. A primeira chave da lista com
// valor gravado vence; a ordem reproduz a precedência das versões antigas do
// aplicativo e não deve ser reordenada.
var legacyKeys = []legacyKey{
	{"docebom_inventory_v1", KeyProducts},
	{"docebom_inventory_v2", KeyProducts},
	{"docebom_inventory_v3", KeyProducts},
	{"docebom_customers_v1", KeyClients},
	{"docebom_customers_v2", KeyClients},
	{"docebom_customers_v3", KeyClients},
	{"docebom_history_v1", KeySales},
	{"docebom_history_v2", KeySales},
	{"docebom_history_v3", KeySales},
	{"DOCEBOM_STABLE_PRODUCTS_LIST", KeyProducts},
	{"DOCEBOM_STABLE_CLIENTS_LIST", KeyClients},
	{"DOCEBOM_STABLE_SALES_HISTORY", KeySales},
	{"DOCEBOM_STABLE_BUSINESS_PROFILE", KeyProfile},
}

// legacyCandidates retorna, em ordem de precedência, as chaves antigas que
// alimentam a chave canônica informada
func legacyCandidates(canonical string) []string {
	var names []string
	for _, lk := range legacyKeys {
		if lk.canonical == canonical {
			names = append(names, lk.name)
		}
	}
	return names
}
