package main

import (
	"context"
	"flag"
	"log"

	"github.com/menuqr/menuqr/config"
	"github.com/menuqr/menuqr/ent/staffuser"
	"github.com/menuqr/menuqr/pkg/auth"
	"github.com/menuqr/menuqr/pkg/database"
	"github.com/menuqr/menuqr/pkg/logger"
	"github.com/menuqr/menuqr/pkg/recommendations"
	"github.com/menuqr/menuqr/pkg/testdata"
)

func main() {
	var (
		name       = flag.String("name", "Demo Bistro", "business name")
		slug       = flag.String("slug", "demo-bistro", "business slug")
		orderCount = flag.Int("orders", 200, "completed orders to generate")
		seed       = flag.Int64("seed", 42, "random seed")
		ownerEmail = flag.String("owner-email", "owner@demo-bistro.test", "owner login email")
		ownerPass  = flag.String("owner-password", "demo1234", "owner login password")
	)
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// No cache client: seeding writes straight through and there is nothing
	// cached yet to invalidate
	engine := recommendations.NewEngine(db.Ent, nil, logger.New(cfg.LogLevel), recommendations.DefaultOptions())

	ctx := context.Background()

	log.Printf("🌱 Seeding %q with %d completed orders...", *name, *orderCount)

	gen := testdata.NewGenerator(db.Ent, engine, *seed)
	biz, err := gen.SeedDemoBusiness(ctx, *name, *slug, *orderCount)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	hash, err := auth.HashPassword(*ownerPass)
	if err != nil {
		log.Fatalf("❌ Failed to hash owner password: %v", err)
	}
	_, err = db.Ent.StaffUser.Create().
		SetBusinessID(biz.ID).
		SetEmail(*ownerEmail).
		SetFullName("Demo Owner").
		SetPasswordHash(hash).
		SetRole(staffuser.RoleOwner).
		Save(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to create owner account: %v", err)
	}

	log.Printf("✅ Seeded business %d (slug %s), owner login: %s", biz.ID, biz.Slug, *ownerEmail)
}
