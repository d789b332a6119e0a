// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"horizonlib/internal/api"
	"horizonlib/internal/api/handlers"
	"horizonlib/internal/config"
	"horizonlib/internal/logging"
	"horizonlib/internal/repository"
	"horizonlib/internal/services"
	"horizonlib/internal/services/auth"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile   string
	port      int
	logLevel  string
	dbPath    string
	uploadDir string
	jwtSecret string
	maxUpload string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "horizonlib",
	Short: "Library Catalog API",
	Long:  `A REST API for managing a library book catalog, search statistics, and student book requests.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: HL_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: HL_LOG_LEVEL)")

	// Server-specific flags
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: HL_PORT)")
	RootCmd.Flags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: HL_DATABASE_PATH)")
	RootCmd.Flags().StringVar(&uploadDir, "upload-dir", "", "Directory for uploaded cover images. (Env: HL_UPLOAD_DIR)")
	RootCmd.Flags().StringVar(&jwtSecret, "jwt-secret", "", "Secret key for signing session tokens. (Env: HL_JWT_SECRET)")
	RootCmd.Flags().StringVar(&maxUpload, "max-upload", "", "Max size for cover image uploads (e.g. '5MB'). (Env: HL_MAX_UPLOAD)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("HL_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	getEnv := func(key string) string {
		return os.Getenv(key)
	}

	// --- 1. Environment Variables ---
	if v := getEnv("HL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("HL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("HL_DATABASE_PATH"); v != "" {
		c.Storage.DatabasePath = v
	}
	if v := getEnv("HL_UPLOAD_DIR"); v != "" {
		c.Storage.UploadDir = v
	}
	if v := getEnv("HL_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := getEnv("HL_MAX_UPLOAD"); v != "" {
		c.Server.MaxUploadSize = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if dbPath != "" {
		c.Storage.DatabasePath = dbPath
	}
	if uploadDir != "" {
		c.Storage.UploadDir = uploadDir
	}
	if jwtSecret != "" {
		c.JWTSecret = jwtSecret
	}
	if maxUpload != "" {
		c.Server.MaxUploadSize = maxUpload
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = "horizonlib.db"
	}
	if c.Storage.UploadDir == "" {
		c.Storage.UploadDir = "uploads"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.JWT.TokenDurationMin == 0 {
		c.JWT.TokenDurationMin = 60
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	// Handle JWT Secret
	if cfg.JWTSecret == "" {
		if cfg.JWT.Secret != "" {
			logging.Log.Info("Using JWT secret loaded from config.toml.")
			cfg.JWTSecret = cfg.JWT.Secret
		} else {
			logging.Log.Info("Generating new random JWT secret...")
			newSecret, err := auth.GenerateSecret()
			if err != nil {
				return fmt.Errorf("failed to generate JWT secret: %w", err)
			}
			cfg.JWT.Secret = newSecret
			cfg.JWTSecret = newSecret
			if err := config.SaveConfig(cfgFile, cfg); err != nil {
				logging.Log.Warnf("Failed to save new JWT secret to %s: %v", cfgFile, err)
			} else {
				logging.Log.Infof("New JWT secret saved to %s.", cfgFile)
			}
		}
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// Auto-migrate on startup
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	// Drop denylist rows for tokens that have expired on their own
	if purged, err := repo.PurgeExpiredTokens(); err != nil {
		logging.Log.Warnf("Failed to purge expired revoked tokens: %v", err)
	} else if purged > 0 {
		logging.Log.Infof("Purged %d expired revoked tokens", purged)
	}

	// Service Initialization
	storageService := services.NewStorageService(cfg)
	userService := services.NewUserService(repo)
	tokenService := auth.NewTokenService(cfg, repo)
	bookService := services.NewBookService(repo, storageService, cfg)
	searchService := services.NewSearchService(repo)
	requestService := services.NewRequestService(repo)

	authMiddleware := auth.NewMiddleware(tokenService)

	h := handlers.NewHandlers(
		userService,
		tokenService,
		bookService,
		searchService,
		requestService,
		cfg,
	)

	r := api.SetupRouter(h, authMiddleware, cfg.Storage.UploadDir)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run server in a goroutine
	go func() {
		logging.Log.Infof("Server starting on %s (Max Upload: %s)", serverAddr, cfg.Server.MaxUploadSize)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until a signal is received
	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown the HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
