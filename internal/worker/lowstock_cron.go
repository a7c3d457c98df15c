package worker

// lowstock_cron.go
// Background goroutine that periodically scans for products at or below their
// reorder threshold and enqueues one alert email per scan that finds any.
// A Redis key suppresses duplicate alerts for products already reported until
// their stock recovers.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dokan/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const lowStockAlertedKey = "lowstock:alerted"

// LowStockCronConfig holds all dependencies for the scan goroutine.
type LowStockCronConfig struct {
	ProductRepo repository.ProductRepository
	Dispatcher  *Dispatcher
	RDB         *redis.Client
	ToEmail     string
	Every       time.Duration
}

// StartLowStockCron launches a background goroutine that ticks on the
// configured interval and respects the context for graceful shutdown.
func StartLowStockCron(ctx context.Context, cfg LowStockCronConfig) {
	if cfg.ToEmail == "" {
		log.Info().Msg("lowstock_cron: no alert recipient configured — disabled")
		return
	}
	if cfg.Every <= 0 {
		cfg.Every = 30 * time.Minute
	}

	go func() {
		ticker := time.NewTicker(cfg.Every)
		defer ticker.Stop()

		log.Info().Dur("every", cfg.Every).Msg("lowstock_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("lowstock_cron: shutting down")
				return
			case <-ticker.C:
				scanLowStock(ctx, cfg)
			}
		}
	}()
}

func scanLowStock(ctx context.Context, cfg LowStockCronConfig) {
	products, err := cfg.ProductRepo.ListBelowMinStock(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lowstock_cron: scan failed")
		return
	}
	if len(products) == 0 {
		// Everything recovered — clear the suppression set.
		_ = cfg.RDB.Del(ctx, lowStockAlertedKey).Err()
		return
	}

	var lines []string
	newAlerts := 0
	for _, p := range products {
		id := p.ID.String()
		added, err := cfg.RDB.SAdd(ctx, lowStockAlertedKey, id).Result()
		if err == nil && added == 0 {
			continue // already alerted, still low
		}
		newAlerts++
		lines = append(lines, fmt.Sprintf("- %s: %d left (reorder at %d)", p.Name, p.Stock, p.MinStock))
	}
	if newAlerts == 0 {
		return
	}

	body := fmt.Sprintf(
		"The following products are at or below their reorder threshold:\n\n%s\n",
		strings.Join(lines, "\n"),
	)
	payload := EmailJobPayload{
		ToEmail: cfg.ToEmail,
		Subject: fmt.Sprintf("Low stock alert: %d product(s)", newAlerts),
		Body:    body,
	}
	if err := cfg.Dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Error().Err(err).Msg("lowstock_cron: failed to enqueue alert email")
		return
	}
	log.Info().Int("products", newAlerts).Msg("lowstock_cron: alert enqueued")
}
