package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/controller"
	"github.com/docebom/pdv-local/internal/adapter/api/route"
	"github.com/docebom/pdv-local/internal/backup"
	"github.com/docebom/pdv-local/internal/dataset"
	"github.com/docebom/pdv-local/internal/infrastructure/storage"
	"github.com/docebom/pdv-local/pkg/ai"
	"github.com/docebom/pdv-local/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router            *gin.Engine
	logger            logger.Logger
	store             storage.Store
	data              *dataset.Dataset
	productController *controller.ProductController
	clientController  *controller.ClientController
	saleController    *controller.SaleController
	profileController *controller.ProfileController
	backupController  *controller.BackupController
	reportController  *controller.ReportController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Abrir o meio de armazenamento configurado
	store, err := storage.NewFromEnv()
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir armazenamento: %w", err)
	}

	// Carregar as quatro coleções (com migração de chaves antigas)
	data := dataset.Open(store, log)

	// Codec de backup
	codec := backup.NewCodec(log)

	// Cliente de IA é opcional: sem chave o restante do sistema funciona
	aiClient, err := ai.NewClient(log)
	if err != nil {
		log.Warn("IA desabilitada", "reason", err.Error())
		aiClient = nil
	}

	// Criar controllers
	productController := controller.NewProductController(data, aiClient, log)
	clientController := controller.NewClientController(data, log)
	saleController := controller.NewSaleController(data, log)
	profileController := controller.NewProfileController(data, log)
	backupController := controller.NewBackupController(data, codec, log)
	reportController := controller.NewReportController(data, aiClient, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	return &App{
		router:            router,
		logger:            log,
		store:             store,
		data:              data,
		productController: productController,
		clientController:  clientController,
		saleController:    saleController,
		profileController: profileController,
		backupController:  backupController,
		reportController:  reportController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterProductRoutes(api, a.productController)
	route.RegisterClientRoutes(api, a.clientController)
	route.RegisterSaleRoutes(api, a.saleController)
	route.RegisterProfileRoutes(api, a.profileController)
	route.RegisterBackupRoutes(api, a.backupController)
	route.RegisterReportRoutes(api, a.reportController)
}

// Start inicia o servidor local. Por padrão só escuta em loopback: a
// aplicação atende uma única sessão de operador, não é um serviço de rede.
func (a *App) Start() error {
	host := getEnv("POS_BIND", "127.0.0.1")
	port := getEnv("PORT", "8080")

	addr := fmt.Sprintf("%s:%s", host, port)
	a.logger.Info("servidor local iniciado", "addr", addr)
	return a.router.Run(addr)
}

// getEnv retorna a variável de ambiente ou o valor padrão
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
