package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MenuPriceGuardJob periodically sweeps displayed menus and hides any whose
// price has drifted above the sum of its line subtotals. Product price changes
// flag affected menus synchronously; this sweep is the safety net for drift
// introduced outside that path.
type MenuPriceGuardJob struct {
	handler commands.HideOverpricedMenusCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMenuPriceGuardJob creates the price guard sweep job.
func NewMenuPriceGuardJob(handler commands.HideOverpricedMenusCommandHandler, logger *slog.Logger) *MenuPriceGuardJob {
	return &MenuPriceGuardJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "menu_price_guard_job"),
	}
}

// Start begins the sweep, running once a minute.
func (j *MenuPriceGuardJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewHideOverpricedMenusCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Menu price guard sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu price guard job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *MenuPriceGuardJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Menu price guard job stopped")
}
