package cmd

import (
	"fmt"
	"log/slog"

	adapterhttp "darkstore/internal/adapters/in/http"
	"darkstore/internal/adapters/out/auth"
	"darkstore/internal/adapters/out/kv/orderrepo"
	"darkstore/internal/adapters/out/kv/productrepo"
	"darkstore/internal/adapters/out/kv/supportrepo"
	"darkstore/internal/adapters/out/kv/userrepo"
	memorykv "darkstore/internal/adapters/out/memory/kvstore"
	postgreskv "darkstore/internal/adapters/out/postgres/kvstore"
	"darkstore/internal/core/application/usecases/commands"
	"darkstore/internal/core/application/usecases/queries"
	"darkstore/internal/core/domain/services"
	"darkstore/internal/core/ports"
	"darkstore/internal/jobs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, repositories and use case handlers from the
// config. Everything downstream shares the one store the config selected.
type CompositionRoot struct {
	store    ports.KVStore
	orders   *orderrepo.Repository
	products *productrepo.Repository
	users    *userrepo.Repository
	support  *supportrepo.Repository
	gateway  ports.AuthGateway
	eta      *services.ETACalculator
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	store, err := createStore(config, logger)
	if err != nil {
		return nil, err
	}

	gateway, err := createAuthGateway(config)
	if err != nil {
		return nil, err
	}

	eta, err := services.NewDarkstoreETACalculator()
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		store:    store,
		orders:   orderrepo.NewRepository(store),
		products: productrepo.NewRepository(store),
		users:    userrepo.NewRepository(store),
		support:  supportrepo.NewRepository(store),
		gateway:  gateway,
		eta:      eta,
		logger:   logger,
	}, nil
}

// createStore selects the persistence driver. With the postgres driver an
// unreachable database degrades to the in-memory store, which satisfies the
// same contract; state then lives only as long as the process.
func createStore(config Config, logger *slog.Logger) (ports.KVStore, error) {
	switch config.StoreDriver {
	case StoreDriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			logger.Warn("Postgres unreachable, falling back to in-memory store", "error", err)
			return memorykv.NewStore(), nil
		}

		store := postgreskv.NewStore(db)
		if err := store.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to migrate store schema: %w", err)
		}
		return store, nil

	case StoreDriverMemory:
		return memorykv.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", config.StoreDriver)
	}
}

func createAuthGateway(config Config) (ports.AuthGateway, error) {
	switch config.AuthMode {
	case AuthModeHTTP:
		return auth.NewHTTPGateway(config.AuthBaseURL)

	case AuthModeStatic:
		return auth.NewStaticGateway(), nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", config.AuthMode)
	}
}

// CreateServer builds the HTTP server with the full handler set.
func (c *CompositionRoot) CreateServer() *adapterhttp.Server {
	return adapterhttp.NewServer(adapterhttp.ServerParams{
		Gateway: c.gateway,
		Users:   c.users,

		CreateOrder:   commands.NewCreateOrderCommandHandler(c.orders, c.eta),
		ClaimOrder:    commands.NewClaimOrderCommandHandler(c.orders),
		CompleteOrder: commands.NewCompleteOrderCommandHandler(c.orders),
		CancelOrder:   commands.NewCancelOrderCommandHandler(c.orders),

		CreateProduct: commands.NewCreateProductCommandHandler(c.products),
		UpdateProduct: commands.NewUpdateProductCommandHandler(c.products),
		DeleteProduct: commands.NewDeleteProductCommandHandler(c.products),

		RegisterUser:   commands.NewRegisterUserCommandHandler(c.users),
		UpdateProfile:  commands.NewUpdateProfileCommandHandler(c.users),
		SubmitFeedback: commands.NewSubmitFeedbackCommandHandler(c.support),
		ReportBug:      commands.NewReportBugCommandHandler(c.support),

		GetCustomerOrders: queries.NewGetCustomerOrdersQueryHandler(c.orders),
		GetAllOrders:      queries.NewGetAllOrdersQueryHandler(c.orders),
		GetProducts:       queries.NewGetProductsQueryHandler(c.products),
		GetProfile:        queries.NewGetProfileQueryHandler(c.users),
		GetAnalytics:      queries.NewGetAnalyticsQueryHandler(c.orders, c.users),
		GetBugReports:     queries.NewGetBugReportsQueryHandler(c.support),
	})
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetAnalyticsQueryHandler(c.orders, c.users),
		queries.NewGetAllOrdersQueryHandler(c.orders),
		c.logger,
	)
}
