package dataset

import (
	"fmt"
	"sort"
	"time"
)

// Period agrega as vendas de um mês, no formato consumido pelo relatório de
// desempenho gerado por IA
type Period struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Sales   int     `json:"sales"`
}

// Abreviações de mês em português para os rótulos dos períodos
var monthNames = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// TotalRevenue soma o valor de todas as vendas do histórico
func (d *Dataset) TotalRevenue() float64 {
	var total float64
	for _, s := range d.sales {
		total += s.Total
	}
	return total
}

// TotalProfit soma o lucro de todas as vendas do histórico
func (d *Dataset) TotalProfit() float64 {
	var total float64
	for _, s := range d.sales {
		total += s.Profit
	}
	return total
}

// MonthlyPeriods agrupa o histórico de vendas por mês, em ordem cronológica.
// Os totais vêm dos valores congelados em cada venda, nunca recalculados dos
// itens. Vendas com data ilegível caem em um período "Atual" no fim da lista.
func (d *Dataset) MonthlyPeriods() []Period {
	buckets := make(map[time.Time]*Period)
	current := &Period{Name: "Atual"}

	for _, s := range d.sales {
		date, err := time.Parse("02/01/2006", s.Date)
		if err != nil {
			current.Revenue += s.Total
			current.Profit += s.Profit
			current.Sales++
			continue
		}

		month := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
		bucket, ok := buckets[month]
		if !ok {
			bucket = &Period{Name: fmt.Sprintf("%s/%d", monthNames[month.Month()-1], month.Year())}
			buckets[month] = bucket
		}
		bucket.Revenue += s.Total
		bucket.Profit += s.Profit
		bucket.Sales++
	}

	months := make([]time.Time, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	periods := make([]Period, 0, len(months)+1)
	for _, month := range months {
		periods = append(periods, *buckets[month])
	}
	if current.Sales > 0 {
		periods = append(periods, *current)
	}
	return periods
}
