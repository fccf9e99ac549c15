package cli

import (
	"fmt"
	"time"

	"supply_checker/internal/app/port"
	"supply_checker/internal/app/service"
	"supply_checker/internal/client"
	"supply_checker/internal/infrastructure/configloader"
	clientprovider "supply_checker/internal/infrastructure/network/client"
	networkdefinition "supply_checker/internal/infrastructure/network/definition"
	"supply_checker/internal/pkg/logger"

	"go.uber.org/zap"
)

// application holds the wired services shared by the serve and snapshot commands.
type application struct {
	appLogger       port.Logger
	clientProvider  *clientprovider.EVMClientProvider
	snapshotService *service.SnapshotServiceImpl
}

func newApplication(cfg *configloader.Config, zl *zap.Logger) (*application, error) {
	appLogger := logger.NewSlogAdapter()

	netDefProvider, err := networkdefinition.NewNetworkDefinitionProvider(appLogger, cfg.Networks)
	if err != nil {
		return nil, fmt.Errorf("failed to build network definitions: %w", err)
	}

	clientProvider := clientprovider.NewEVMClientProvider(cfg, appLogger.Info, appLogger.Error)
	logger.Info("SupplyReaderProvider initialized.")

	supplyService := service.NewSupplyService(netDefProvider, clientProvider, appLogger)

	priceTimeout := time.Duration(cfg.Price.RequestTimeoutMillis) * time.Millisecond
	marketClient := client.NewKuCoinClient(cfg.Price.BaseURL, cfg.Price.StatisticsPath, cfg.Price.Lang, priceTimeout, zl)
	tokenPriceService := service.NewTokenPriceService(marketClient, appLogger, cfg)

	snapshotService := service.NewSnapshotService(supplyService, tokenPriceService, appLogger)

	return &application{
		appLogger:       appLogger,
		clientProvider:  clientProvider,
		snapshotService: snapshotService,
	}, nil
}

func (a *application) close() {
	a.clientProvider.Close()
}
