package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mark3labs/mcp-go/server"
	"github.com/openfmp/fmp-mcp-server/cmd/version"
	"github.com/openfmp/fmp-mcp-server/pkg/config"
	"github.com/openfmp/fmp-mcp-server/pkg/docs"
	"github.com/openfmp/fmp-mcp-server/pkg/fmp"
	"github.com/openfmp/fmp-mcp-server/pkg/metrics"
	calendarModule "github.com/openfmp/fmp-mcp-server/pkg/modules/calendar"
	companyModule "github.com/openfmp/fmp-mcp-server/pkg/modules/company"
	newsModule "github.com/openfmp/fmp-mcp-server/pkg/modules/news"
	quoteModule "github.com/openfmp/fmp-mcp-server/pkg/modules/quote"
	searchModule "github.com/openfmp/fmp-mcp-server/pkg/modules/search"
	statementsModule "github.com/openfmp/fmp-mcp-server/pkg/modules/statements"
)

var (
	cfgFile string
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fmp-mcp-server",
	Short: "FMP MCP Server - Financial Modeling Prep data as MCP tools",
	Long:  `A modular MCP server exposing Financial Modeling Prep market data: symbol search, quotes, company information, financial statements, calendars and news.`,
	Run:   runServer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(versionCmd)

	// Configuration flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("host", "localhost", "Server host (http mode)")
	rootCmd.PersistentFlags().Int("port", 3000, "Server port (http mode)")
	rootCmd.PersistentFlags().String("mode", "stdio", "Server mode: stdio or http")

	// Module flags
	rootCmd.PersistentFlags().Bool("enable-search", true, "Enable search module")
	rootCmd.PersistentFlags().Bool("enable-quote", true, "Enable quote module")
	rootCmd.PersistentFlags().Bool("enable-company", true, "Enable company module")
	rootCmd.PersistentFlags().Bool("enable-statements", true, "Enable statements module")
	rootCmd.PersistentFlags().Bool("enable-calendar", true, "Enable calendar module")
	rootCmd.PersistentFlags().Bool("enable-news", true, "Enable news module")

	// Bind flags to viper
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("server.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("server.port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("server.mode", rootCmd.PersistentFlags().Lookup("mode"))
	viper.BindPFlag("search.enabled", rootCmd.PersistentFlags().Lookup("enable-search"))
	viper.BindPFlag("quote.enabled", rootCmd.PersistentFlags().Lookup("enable-quote"))
	viper.BindPFlag("company.enabled", rootCmd.PersistentFlags().Lookup("enable-company"))
	viper.BindPFlag("statements.enabled", rootCmd.PersistentFlags().Lookup("enable-statements"))
	viper.BindPFlag("calendar.enabled", rootCmd.PersistentFlags().Lookup("enable-calendar"))
	viper.BindPFlag("news.enabled", rootCmd.PersistentFlags().Lookup("enable-news"))
}

func initConfig() {
	// A .env file is optional; real environment variables take precedence.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.BindEnv("fmp.apikey", "FMP_API_KEY")
	viper.BindEnv("server.mode", "MCP_TRANSPORT")
	viper.BindEnv("server.host", "MCP_HOST")
	viper.BindEnv("server.port", "MCP_PORT")

	defaults := config.Default()
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("server.host", defaults.Server.Host)
	viper.SetDefault("server.port", defaults.Server.Port)
	viper.SetDefault("server.mode", defaults.Server.Mode)
	viper.SetDefault("search.enabled", defaults.Search.Enabled)
	viper.SetDefault("quote.enabled", defaults.Quote.Enabled)
	viper.SetDefault("company.enabled", defaults.Company.Enabled)
	viper.SetDefault("statements.enabled", defaults.Statements.Enabled)
	viper.SetDefault("calendar.enabled", defaults.Calendar.Enabled)
	viper.SetDefault("news.enabled", defaults.News.Enabled)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Could not read config file: %v", err)
		}
	}

	// Initialize logger
	var err error
	switch viper.GetString("log.level") {
	case "debug":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	defer logger.Sync()

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Fatal("Failed to unmarshal config", zap.Error(err))
	}

	serverMode := cfg.Server.Mode
	if serverMode == "" {
		serverMode = "stdio"
	}

	// The API key gate runs before any module is constructed.
	if cfg.FMP.APIKey == "" {
		logger.Error("FMP_API_KEY environment variable is required")
		os.Exit(1)
	}

	logger.Info("Starting FMP MCP Server",
		zap.String("mode", serverMode),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("api_key", maskAPIKey(cfg.FMP.APIKey)),
	)

	m := metrics.Init(logger)

	fmpClient, err := fmp.NewClient(&fmp.Config{
		APIKey:  cfg.FMP.APIKey,
		BaseURL: cfg.FMP.BaseURL,
		Timeout: cfg.FMP.Timeout,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create FMP client", zap.Error(err))
	}

	mcpServer := server.NewMCPServer("fmp-mcp-server", version.BuildVersion)
	collector := docs.NewCollector(logger)

	var toolCount int
	register := func(module string, tools []server.ServerTool) {
		for _, serverTool := range tools {
			mcpServer.AddTool(serverTool.Tool, serverTool.Handler)
			toolCount++
		}
		collector.Register(module, tools)
		logger.Info("Module enabled", zap.String("module", module), zap.Int("tools", len(tools)))
	}

	m.SetModuleEnabled("search", cfg.Search.Enabled)
	if cfg.Search.Enabled {
		mod, err := searchModule.New(&searchModule.Config{Tools: searchModule.ToolsConfig(cfg.Search.Tools)}, fmpClient, logger)
		if err != nil {
			logger.Fatal("Failed to create search module", zap.Error(err))
		}
		register("search", mod.GetTools())
	}

	m.SetModuleEnabled("quote", cfg.Quote.Enabled)
	if cfg.Quote.Enabled {
		mod, err := quoteModule.New(&quoteModule.Config{Tools: quoteModule.ToolsConfig(cfg.Quote.Tools)}, fmpClient, logger)
		if err != nil {
			logger.Fatal("Failed to create quote module", zap.Error(err))
		}
		register("quote", mod.GetTools())
	}

	m.SetModuleEnabled("company", cfg.Company.Enabled)
	if cfg.Company.Enabled {
		mod, err := companyModule.New(&companyModule.Config{Tools: companyModule.ToolsConfig(cfg.Company.Tools)}, fmpClient, logger)
		if err != nil {
			logger.Fatal("Failed to create company module", zap.Error(err))
		}
		register("company", mod.GetTools())
	}

	m.SetModuleEnabled("statements", cfg.Statements.Enabled)
	if cfg.Statements.Enabled {
		mod, err := statementsModule.New(&statementsModule.Config{Tools: statementsModule.ToolsConfig(cfg.Statements.Tools)}, fmpClient, logger)
		if err != nil {
			logger.Fatal("Failed to create statements module", zap.Error(err))
		}
		register("statements", mod.GetTools())
	}

	m.SetModuleEnabled("calendar", cfg.Calendar.Enabled)
	if cfg.Calendar.Enabled {
		mod, err := calendarModule.New(&calendarModule.Config{Tools: calendarModule.ToolsConfig(cfg.Calendar.Tools)}, fmpClient, logger)
		if err != nil {
			logger.Fatal("Failed to create calendar module", zap.Error(err))
		}
		register("calendar", mod.GetTools())
	}

	m.SetModuleEnabled("news", cfg.News.Enabled)
	if cfg.News.Enabled {
		mod, err := newsModule.New(&newsModule.Config{Tools: newsModule.ToolsConfig(cfg.News.Tools)}, fmpClient, logger)
		if err != nil {
			logger.Fatal("Failed to create news module", zap.Error(err))
		}
		register("news", mod.GetTools())
	}

	if toolCount == 0 {
		logger.Warn("No modules enabled, server will have no tools available")
	} else {
		logger.Info("Server initialized", zap.Int("total_tools", toolCount))
	}

	switch serverMode {
	case "stdio":
		logger.Info("Starting server in stdio mode")
		if err := server.ServeStdio(mcpServer); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Stdio server failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("Server stopped")
	case "http":
		runHTTP(mcpServer, collector, cfg)
	default:
		logger.Fatal("Invalid server mode", zap.String("mode", serverMode), zap.Strings("valid_modes", []string{"stdio", "http"}))
	}
}

// runHTTP serves the streamable MCP endpoint together with the metrics and
// docs endpoints on a single listener.
func runHTTP(mcpServer *server.MCPServer, collector *docs.Collector, cfg config.Config) {
	streamableServer := server.NewStreamableHTTPServer(mcpServer)
	docsHandler := docs.NewHandler(collector, logger)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamableServer)
	mux.HandleFunc("/mcp/docs", docsHandler.HandleDocs)
	mux.Handle("/metrics", metrics.Handler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{Addr: addr, Handler: mux}

	logger.Info("Starting server in http mode", zap.String("address", addr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down on interrupt")
		if err := httpServer.Shutdown(context.Background()); err != nil {
			logger.Error("Shutdown failed", zap.Error(err))
		}
		logger.Info("Server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
			os.Exit(1)
		}
	}
}

// maskAPIKey keeps the last four characters for log output.
func maskAPIKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	masked := make([]byte, len(key)-4)
	for i := range masked {
		masked[i] = '*'
	}
	return string(masked) + key[len(key)-4:]
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
