package drawer

//go:generate mockgen -source=drawer.go -destination=mock_drawer.go -package=drawer

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/service/contestservice"
)

const batchSize = 100

type Contest interface {
	DuePrizes(ctx context.Context, limit uint32) ([]domain.Prize, error)
	DrawWinner(ctx context.Context, prizeID string) (*contestservice.DrawResult, error)
}

// Drawer periodically draws winners for prizes whose draw time has passed.
type Drawer struct {
	contest    Contest
	workerPool WorkerPoolI
	interval   time.Duration
	processing sync.Map
}

func New(contest Contest, workerPool WorkerPoolI, interval time.Duration) *Drawer {
	return &Drawer{
		contest:    contest,
		workerPool: workerPool,
		interval:   interval,
	}
}

// Start runs the draw loop in the background. The worker pool is closed once
// ctx is done and the loop has stopped scheduling tasks.
func (d *Drawer) Start(ctx context.Context) {
	zap.L().Info("Drawer started", zap.Duration("interval", d.interval))
	go d.run(ctx)
}

func (d *Drawer) run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	defer d.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping drawer")
			return
		case <-ticker.C:
			d.drawDue(ctx)
		}
	}
}

func (d *Drawer) drawDue(ctx context.Context) {
	prizes, err := d.contest.DuePrizes(ctx, batchSize)
	if err != nil {
		zap.L().Error("Failed to fetch due prizes", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, prize := range prizes {
		prizeID := prize.ID

		if _, loaded := d.processing.LoadOrStore(prizeID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := d.workerPool.AddTask(ctx, func() error {
				defer d.processing.Delete(prizeID)
				return d.draw(ctx, prizeID)
			})
			if err != nil {
				d.processing.Delete(prizeID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling draws", zap.Error(err))
	}
}

func (d *Drawer) draw(ctx context.Context, prizeID string) error {
	result, err := d.contest.DrawWinner(ctx, prizeID)
	if err != nil {
		if errors.Is(err, domain.ErrWinnerAlreadyDrawn) {
			return nil
		}
		return err
	}
	if result.Drawn {
		zap.L().Info("Winner drawn", zap.String("prizeID", prizeID), zap.String("userID", result.Winner.UserID))
	} else {
		zap.L().Info("Prize not drawn", zap.String("prizeID", prizeID), zap.String("reason", result.Reason))
	}
	return nil
}
