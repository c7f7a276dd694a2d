package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	inhttp "baleconnect/internal/adapters/in/http"
	"baleconnect/internal/adapters/out/geo"
	"baleconnect/internal/adapters/out/remote"
	"baleconnect/internal/adapters/out/pebblestore"
	"baleconnect/internal/adapters/out/pebblestore/orderrepo"
	"baleconnect/internal/adapters/out/pebblestore/ratingrepo"
	"baleconnect/internal/adapters/out/pebblestore/userrepo"
	"baleconnect/internal/core/ports"
	"baleconnect/internal/jobs"
	"baleconnect/internal/seed"
	"baleconnect/internal/transport"
)

// CompositionRoot wires the store, repositories, transport adapter and
// outbound clients together.
type CompositionRoot struct {
	store    *pebblestore.PebbleStore
	userRepo ports.UserRepository
	adapter  *transport.Adapter
	remote   *remote.Client
	geo      *geo.Client
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	store, err := pebblestore.NewPebbleStore(config.StorePath)
	if err != nil {
		return nil, fmt.Errorf("opening store at %q: %w", config.StorePath, err)
	}

	mode, err := transport.ModeFromString(config.TransportMode)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	latency, err := localLatency(config.LocalLatencyMS)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	orderRepo := orderrepo.NewStoreOrderRepository(store)
	userRepo := userrepo.NewStoreUserRepository(store)
	ratingRepo := ratingrepo.NewStoreRatingRepository(store)

	dispatcher := transport.NewLocalDispatcher(store, orderRepo, userRepo, ratingRepo, latency, logger)

	var remoteClient *remote.Client
	var caller transport.RemoteCaller
	if mode == transport.ModeRemote {
		remoteClient, err = remote.NewClient(config.RemoteBaseURL)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		caller = remoteClient
	}

	adapter, err := transport.NewAdapter(mode, caller, dispatcher, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	var geoClient *geo.Client
	if config.GeoBaseURL != "" {
		geoClient, err = geo.NewClient(config.GeoBaseURL, config.GeoCountryCode, config.GeoLanguage)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	return &CompositionRoot{
		store:    store,
		userRepo: userRepo,
		adapter:  adapter,
		remote:   remoteClient,
		geo:      geoClient,
		logger:   logger,
	}, nil
}

func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	return inhttp.NewServer(c.adapter, c.geo)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var prober jobs.HealthProber
	if c.remote != nil {
		prober = c.remote
	}
	return jobs.NewJobManager(prober, c.adapter, c.logger)
}

func (c *CompositionRoot) CreateSeeder() *seed.Seeder {
	return seed.NewSeeder(c.store, c.userRepo, c.logger)
}

func (c *CompositionRoot) Close() error {
	return c.store.Close()
}

func localLatency(ms string) (time.Duration, error) {
	if ms == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(ms)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid LOCAL_LATENCY_MS value %q", ms)
	}
	return time.Duration(value) * time.Millisecond, nil
}
