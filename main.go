package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/app"
	"github.com/llehouerou/setlist/internal/config"
	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/geo"
	"github.com/llehouerou/setlist/internal/logging"
	"github.com/llehouerou/setlist/internal/pokedex"
	"github.com/llehouerou/setlist/internal/state"
)

const openTimeout = 10 * time.Second

// openStore opens the configured storage backend.
func openStore(ctx context.Context, cfg config.StorageConfig) (state.Store, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		return state.OpenRedis(ctx, state.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case config.BackendMemory:
		return state.NewMemory(), nil
	default:
		return state.Open(ctx, cfg.Path)
	}
}

type resources struct {
	model   app.Model
	closers []io.Closer
}

func (r resources) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i].Close()
	}
}

func initialModel() (resources, error) {
	var res resources

	cfg, err := config.Load()
	if err != nil {
		return res, err
	}

	logger, logFile, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return res, err
	}
	res.closers = append(res.closers, logFile)
	slog.SetDefault(logger)

	storage := cfg.GetStorageConfig()
	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	store, err := openStore(ctx, storage)
	if err != nil {
		logger.Error("failed to open store", "backend", storage.Backend, "err", err)
		res.Close()
		return resources{}, fmt.Errorf("open %s store: %w", storage.Backend, err)
	}
	res.closers = append(res.closers, store)
	logger.Info("starting", "backend", storage.Backend)

	pcfg := cfg.GetPokedexConfig()
	client := pokedex.NewClient(pcfg.BaseURL, pcfg.PageSize)
	loader := pokedex.NewLoader(client, pokedex.NewCache(store, pcfg.CacheTTL()), client.InitialURL(), logger)

	gcfg := cfg.GetGeoConfig()

	res.model = app.New(app.Deps{
		Store:        store,
		Logger:       logger,
		HistoryLimit: cfg.HistoryLimit(),
		Pokedex:      loader,
		Places:       geo.NewClient(gcfg.BaseURL, gcfg.Limit),
	})
	return res, nil
}

func main() {
	res, err := initialModel()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	p := tea.NewProgram(res.model, tea.WithAltScreen())
	_, err = p.Run()
	res.Close()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
