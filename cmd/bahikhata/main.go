package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/bahikhata/bahikhata/internal/core/domain"
	"github.com/bahikhata/bahikhata/internal/core/services"
	"github.com/bahikhata/bahikhata/internal/platform/config"
	"github.com/bahikhata/bahikhata/internal/platform/logging"
	"github.com/bahikhata/bahikhata/internal/repositories/database/pgsql"
	"github.com/bahikhata/bahikhata/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// daybook is the end-of-day snapshot printed on startup: both ledgers for
// today plus the valuation picture.
type daybook struct {
	Date      string                  `json:"date"`
	Cash      *domain.LedgerDay       `json:"cash"`
	Bank      *domain.LedgerDay       `json:"bank"`
	Valuation *domain.ValuationReport `json:"valuation"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, logger := logging.WithOperation(context.Background(), logger, "daybook")

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	svcs := services.NewServiceContainer(repos)

	today := domain.DateOnly(time.Now().UTC())

	cash, err := svcs.Ledger.ProjectLedger(ctx, domain.CashLedger, today)
	if err != nil {
		logger.Error("Failed to project cash ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	bank, err := svcs.Ledger.ProjectLedger(ctx, domain.BankLedger, today)
	if err != nil {
		logger.Error("Failed to project bank ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	valuation, err := svcs.Reporting.Valuation(ctx, today)
	if err != nil {
		logger.Error("Failed to compute valuation", slog.String("error", err.Error()))
		os.Exit(1)
	}

	book := daybook{
		Date:      today.Format("2006-01-02"),
		Cash:      cash,
		Bank:      bank,
		Valuation: valuation,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(book); err != nil {
		logger.Error("Failed to encode daybook", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending schema migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
