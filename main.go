package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bidding "live-auction/internal/biddingService"
	"live-auction/internal/config"
	"live-auction/internal/entitylock"
	"live-auction/internal/hub"
	"live-auction/internal/identity"
	model "live-auction/internal/models"
	"live-auction/internal/repository"
	"live-auction/internal/server"
	"live-auction/internal/session"
	"live-auction/services/live/handler"
	"live-auction/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		utils.Fatal("main: failed to open repository", map[string]any{"driver": cfg.Storage.Driver, "error": err.Error()})
	}
	defer closeRepo()

	if cfg.Storage.Seed {
		if err := prepopulate(ctx, repo, time.Now().UTC()); err != nil {
			utils.Fatal("main: failed to seed repository", map[string]any{"error": err.Error()})
		}
	}

	locker := entitylock.New()
	roomHub := hub.New()

	biddingSvc := bidding.NewBiddingService(repo, locker, bidding.WithAntiSnipe(bidding.AntiSnipePolicy{
		Enabled:   cfg.Auction.AntiSnipe.Enabled,
		Window:    cfg.Auction.AntiSnipe.Window,
		Extension: cfg.Auction.AntiSnipe.Extension,
	}))
	sessions := session.NewController(repo, locker)

	if cfg.Auth.JWTSecret == "" {
		utils.Warn("main: no jwt secret configured, every connection is a guest", nil)
	}
	liveHandler := handler.NewLiveHandler(
		roomHub,
		biddingSvc,
		sessions,
		identity.NewResolver(cfg.Auth.JWTSecret),
		cfg.WebSocket,
		handler.WithViewerBroadcast(cfg.Stream.BroadcastViewerUpdates),
	)
	sweeper := session.NewSweeper(sessions, cfg.Auction.SweepInterval, liveHandler.Broadcaster())

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: server.SetupRouter(liveHandler),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.Info("main: starting live auction server", map[string]any{"addr": srv.Addr, "storage": cfg.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return sweeper.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		utils.Info("main: shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		utils.Error("main: server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

type liveStore interface {
	repository.LiveDB
	SaveArtwork(ctx context.Context, artwork model.Artwork) error
}

// openRepository picks the storage driver named in the config
func openRepository(ctx context.Context, cfg *config.Config) (liveStore, func(), error) {
	switch cfg.Storage.Driver {
	case "redis":
		client, err := repository.NewRedisClient(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				utils.Warn("main: closing redis client", map[string]any{"error": err.Error()})
			}
		}
		return repository.NewRedisRepo(client, cfg.Redis.KeyPrefix), closeFn, nil
	default:
		return repository.NewMemoryRepo(), func() {}, nil
	}
}

// prepopulate adds a sample artwork, a running auction and a scheduled stream
func prepopulate(ctx context.Context, repo liveStore, now time.Time) error {
	artworks := []model.Artwork{
		{ArtworkID: "art1", Title: "Harbour at Dusk", Price: decimal.NewFromInt(100), IsForAuction: true},
		{ArtworkID: "art2", Title: "Study in Blue", Price: decimal.NewFromInt(250), IsForAuction: true},
	}
	for _, artwork := range artworks {
		if err := repo.SaveArtwork(ctx, artwork); err != nil {
			return err
		}
	}

	auctions := []model.Auction{
		{
			AuctionID:       "auction1",
			ArtworkID:       "art1",
			LiveStreamID:    "stream1",
			StartingPrice:   decimal.NewFromInt(100),
			CurrentPrice:    decimal.NewFromInt(100),
			MinBidIncrement: decimal.NewFromInt(10),
			StartTime:       now,
			EndTime:         now.Add(30 * time.Minute),
			Active:          true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			AuctionID:       "auction2",
			ArtworkID:       "art2",
			StartingPrice:   decimal.NewFromInt(250),
			CurrentPrice:    decimal.NewFromInt(250),
			MinBidIncrement: decimal.NewFromInt(25),
			StartTime:       now,
			EndTime:         now.Add(2 * time.Hour),
			Active:          true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
	for _, auction := range auctions {
		if err := repo.SaveAuction(ctx, auction); err != nil {
			return err
		}
	}

	return repo.SaveStream(ctx, model.Stream{
		StreamID:       "stream1",
		Title:          "Evening studio session",
		ArtistID:       "artist1",
		ArtworkID:      "art1",
		Status:         model.StreamScheduled,
		ScheduledStart: now.Add(5 * time.Minute),
		IsPublic:       true,
		AllowChat:      true,
	})
}
