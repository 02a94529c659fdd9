package dto

import "github.com/docebom/pdv-local/internal/dataset"

// ReportResponse carrega a análise de desempenho gerada pela IA junto com os
// períodos agregados que a alimentaram
type ReportResponse struct {
	Report  string           `json:"report"`
	Periods []dataset.Period `json:"periods"`
}

// SummaryResponse carrega os totais exibidos na tela inicial
type SummaryResponse struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalProfit  float64 `json:"totalProfit"`
	Products     int     `json:"products"`
	Clients      int     `json:"clients"`
	Sales        int     `json:"sales"`
}
