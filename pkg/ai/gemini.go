package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/docebom/pdv-local/pkg/logger"
)

const (
	geminiAPIEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	defaultModel      = "gemini-1.5-flash"
)

// Textos devolvidos quando a chamada de IA falha. O chamador nunca recebe
// erro: o pior caso é um texto genérico no lugar da análise.
const (
	fallbackDescription = "Descrição indisponível no momento."
	fallbackReport      = "Não foi possível gerar o relatório. Tente novamente mais tarde."
)

// SalesPeriod é um período agregado de vendas usado como entrada do
// relatório de desempenho
type SalesPeriod struct {
	Name    string
	Revenue float64
	Profit  float64
	Sales   int
}

// Client é o cliente HTTP para a API de geração de texto (Gemini). As duas
// operações são caixas-pretas de enriquecimento: latência arbitrária e falha
// ocasional são esperadas e nunca afetam o estado do sistema.
type Client struct {
	apiKey string
	model  string
	client *http.Client
	log    logger.Logger
}

// NewClient cria um novo cliente de IA a partir da variável GEMINI_API_KEY
func NewClient(log logger.Logger) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY não encontrada nas variáveis de ambiente")
	}

	return &Client{
		apiKey: apiKey,
		model:  defaultModel,
		client: &http.Client{},
		log:    log,
	}, nil
}

// Estruturas de requisição e resposta da API generateContent
type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateProductDescription gera um texto de divulgação para um produto.
// Em qualquer falha retorna um texto genérico, nunca um erro.
func (c *Client) GenerateProductDescription(ctx context.Context, name, category string, price float64) string {
	prompt := fmt.Sprintf(
		"Atue como um especialista em marketing digital e copywriting. "+
			"Escreva uma descrição de produto curta, persuasiva e atraente (máximo de 3 frases) para um item de e-commerce.\n\n"+
			"Detalhes do produto:\n"+
			"Nome: %s\n"+
			"Categoria: %s\n"+
			"Preço: R$ %.2f\n\n"+
			"Use emojis com moderação. O tom deve ser profissional mas entusiasmado. Foque nos benefícios.",
		name, category, price,
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Error("erro ao gerar descrição de produto", "product", name, "error", err)
		return fallbackDescription
	}
	return text
}

// GeneratePerformanceReport gera uma análise narrativa do desempenho de
// vendas por período. Em qualquer falha retorna um texto genérico, nunca um
// erro.
func (c *Client) GeneratePerformanceReport(ctx context.Context, periods []SalesPeriod) string {
	var table strings.Builder
	for _, p := range periods {
		fmt.Fprintf(&table, "| %s | R$ %.2f | R$ %.2f | %d |\n", p.Name, p.Revenue, p.Profit, p.Sales)
	}

	prompt := fmt.Sprintf(
		"Você é um Analista de Negócios Sênior, focado em vendas e lucratividade. "+
			"Analise o desempenho mensal fornecido, identifique tendências e forneça insights acionáveis de forma concisa e profissional.\n\n"+
			"Histórico de vendas (Período, Venda Total, Lucro, Nº de Vendas):\n"+
			"| Período | Venda Total (R$) | Lucro (R$) | Vendas |\n"+
			"| :--- | :--- | :--- | :--- |\n%s\n"+
			"Com base nos dados:\n"+
			"1. Identifique o período com maior e com menor lucro.\n"+
			"2. Calcule a margem de lucro bruta (lucro / venda) do melhor período e comente o resultado.\n"+
			"3. Sugira uma meta de venda total e lucro para o próximo período.\n\n"+
			"Estruture a resposta em seções claras usando Markdown simples (negrito, listas), sem tabelas.",
		table.String(),
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Error("erro ao gerar relatório de desempenho", "error", err)
		return fallbackReport
	}
	return text
}

// generate envia o prompt para a API e extrai o texto da resposta
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []requestContent{
			{Parts: []requestPart{{Text: prompt}}},
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	endpoint := fmt.Sprintf(geminiAPIEndpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição HTTP: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na chamada da API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API retornou erro %s: %s", resp.Status, string(respBody))
	}

	var apiResp generateResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("erro ao interpretar resposta: %w", err)
	}

	var text strings.Builder
	if len(apiResp.Candidates) > 0 {
		for _, p := range apiResp.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("resposta vazia da API")
	}

	return text.String(), nil
}
