package jobs

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/staffuser"
	"github.com/menuqr/menuqr/pkg/email"
	"github.com/menuqr/menuqr/pkg/recommendations"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron      *cron.Cron
	db        *ent.Client
	engine    *recommendations.Engine
	analytics *recommendations.Analytics
	email     *email.Service
	logger    *log.Logger

	// extraRecipients always receive the weekly digest, on top of each
	// business's owner accounts
	extraRecipients []string
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, engine *recommendations.Engine, analytics *recommendations.Analytics, emailSvc *email.Service, digestRecipients string, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	var extras []string
	for _, r := range strings.Split(digestRecipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			extras = append(extras, r)
		}
	}

	return &CronManager{
		cron:            cron.New(),
		db:              db,
		engine:          engine,
		analytics:       analytics,
		email:           emailSvc,
		logger:          logger,
		extraRecipients: extras,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 3 AM: recompute all confidence scores so they stay correct
	// even after out-of-band data changes (deleted items, bulk imports)
	if _, err := cm.cron.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		cm.recomputeAllConfidence(ctx)
	}); err != nil {
		return err
	}

	// Daily at 7 AM: log yesterday's recommendation performance
	if _, err := cm.cron.AddFunc("0 7 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		cm.logDailyStats(ctx)
	}); err != nil {
		return err
	}

	// Monday at 8 AM: email each business its weekly digest
	if _, err := cm.cron.AddFunc("0 8 * * 1", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()
		cm.sendWeeklyDigests(ctx)
	}); err != nil {
		return err
	}

	return nil
}

// Start begins running scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("✅ Cron jobs started")
}

// Stop halts the scheduler and waits for running jobs
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Println("Cron jobs stopped")
}

func (cm *CronManager) recomputeAllConfidence(ctx context.Context) {
	cm.logger.Println("🕐 Running nightly confidence recompute...")

	businesses, err := cm.db.Business.Query().
		Where(business.IsActiveEQ(true)).
		All(ctx)
	if err != nil {
		cm.logger.Printf("❌ Failed to list businesses: %v", err)
		return
	}

	total := 0
	for _, b := range businesses {
		updated, err := cm.engine.RecomputeConfidence(ctx, b.ID)
		if err != nil {
			cm.logger.Printf("❌ Confidence recompute failed for business %d: %v", b.ID, err)
			continue
		}
		total += updated
	}

	cm.logger.Printf("✅ Confidence recompute done, %d pairs updated across %d businesses", total, len(businesses))
}

func (cm *CronManager) logDailyStats(ctx context.Context) {
	businesses, err := cm.db.Business.Query().
		Where(business.IsActiveEQ(true)).
		All(ctx)
	if err != nil {
		cm.logger.Printf("❌ Failed to list businesses: %v", err)
		return
	}

	for _, b := range businesses {
		summary, err := cm.analytics.GetPerformanceSummary(ctx, b.ID, 1)
		if err != nil {
			cm.logger.Printf("❌ Daily stats failed for business %d: %v", b.ID, err)
			continue
		}
		if summary.Impressions == 0 && summary.Conversions == 0 {
			continue
		}
		cm.logger.Printf("📊 business=%d impressions=%d conversions=%d revenue=%.2f rate=%.1f%%",
			b.ID, summary.Impressions, summary.Conversions, summary.Revenue, summary.ConversionRate)
	}
}

func (cm *CronManager) sendWeeklyDigests(ctx context.Context) {
	cm.logger.Println("🕐 Sending weekly digests...")

	businesses, err := cm.db.Business.Query().
		Where(business.IsActiveEQ(true)).
		All(ctx)
	if err != nil {
		cm.logger.Printf("❌ Failed to list businesses: %v", err)
		return
	}

	sent := 0
	for _, b := range businesses {
		summary, err := cm.analytics.GetPerformanceSummary(ctx, b.ID, 7)
		if err != nil {
			cm.logger.Printf("❌ Digest summary failed for business %d: %v", b.ID, err)
			continue
		}
		if summary.Impressions == 0 && summary.Conversions == 0 {
			continue
		}

		topPairs, err := cm.analytics.GetTopPerformingPairs(ctx, b.ID, 5)
		if err != nil {
			cm.logger.Printf("❌ Digest pairs failed for business %d: %v", b.ID, err)
			continue
		}

		owners, err := cm.db.StaffUser.Query().
			Where(
				staffuser.BusinessIDEQ(b.ID),
				staffuser.RoleEQ(staffuser.RoleOwner),
				staffuser.IsActiveEQ(true),
			).
			All(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to list owners for business %d: %v", b.ID, err)
			continue
		}

		recipients := make(map[string]string, len(owners)+len(cm.extraRecipients))
		for _, o := range owners {
			recipients[o.Email] = o.FullName
		}
		for _, r := range cm.extraRecipients {
			recipients[r] = ""
		}

		for addr, name := range recipients {
			if err := cm.email.SendWeeklyDigest(addr, name, b.Name, b.CurrencyCode, summary, topPairs); err != nil {
				cm.logger.Printf("❌ Digest email to %s failed: %v", addr, err)
				continue
			}
			sent++
		}
	}

	cm.logger.Printf("✅ Weekly digests sent: %d", sent)
}
