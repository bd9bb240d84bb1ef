package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/pkg/recommendations"
)

// Demo menu per course. Orders are sampled from weighted course patterns so
// the generated pair data resembles real dining behavior.
var demoMenu = map[string][]string{
	"Mains":    {"Margherita Pizza", "Chicken Biryani", "Beef Burger", "Pad Thai", "Grilled Salmon", "Lamb Kofta"},
	"Sides":    {"Garlic Bread", "French Fries", "Greek Salad", "Hummus"},
	"Drinks":   {"Cola", "Fresh Orange Juice", "Mint Lemonade", "Sparkling Water"},
	"Desserts": {"Tiramisu", "Baklava", "Chocolate Brownie"},
}

var priceRanges = map[string][2]float64{
	"Mains":    {9, 24},
	"Sides":    {3, 8},
	"Drinks":   {2, 6},
	"Desserts": {4, 9},
}

// orderPatterns weight the course combinations a generated order draws from
var orderPatterns = []struct {
	weight  int
	courses []string
}{
	{35, []string{"Mains", "Drinks"}},
	{25, []string{"Mains", "Sides", "Drinks"}},
	{15, []string{"Mains"}},
	{15, []string{"Mains", "Desserts"}},
	{10, []string{"Mains", "Sides", "Drinks", "Desserts"}},
}

// Generator seeds demo businesses with menus and completed orders so the
// recommendation engine has data to work with
type Generator struct {
	db     *ent.Client
	engine *recommendations.Engine
	rng    *rand.Rand
}

// NewGenerator creates a new demo data generator. Pass a fixed seed for
// reproducible data.
func NewGenerator(db *ent.Client, engine *recommendations.Engine, seed int64) *Generator {
	return &Generator{
		db:     db,
		engine: engine,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// SeedDemoBusiness creates a business with the demo menu and orderCount
// completed orders, feeding each one through the recommendation engine
func (g *Generator) SeedDemoBusiness(ctx context.Context, name, slug string, orderCount int) (*ent.Business, error) {
	biz, err := g.db.Business.Create().
		SetName(name).
		SetBusinessType("restaurant").
		SetSlug(slug).
		SetEnableTableManagement(true).
		SetEnableWaiterAlerts(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	byCourse := make(map[string][]*ent.MenuItem, len(demoMenu))
	sortOrder := 0
	for course, dishes := range demoMenu {
		cat, err := g.db.Category.Create().
			SetBusinessID(biz.ID).
			SetName(course).
			SetSortOrder(sortOrder).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create category %s: %w", course, err)
		}
		sortOrder++

		prices := priceRanges[course]
		for _, dish := range dishes {
			item, err := g.db.MenuItem.Create().
				SetCategoryID(cat.ID).
				SetName(dish).
				SetDescription(gofakeit.Sentence(8)).
				SetPrice(round2(gofakeit.Price(prices[0], prices[1]))).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to create item %s: %w", dish, err)
			}
			byCourse[course] = append(byCourse[course], item)
		}
	}

	for i := 0; i < orderCount; i++ {
		if err := g.seedOrder(ctx, biz.ID, byCourse); err != nil {
			return nil, err
		}
	}

	return biz, nil
}

func (g *Generator) seedOrder(ctx context.Context, businessID int, byCourse map[string][]*ent.MenuItem) error {
	courses := g.pickPattern()

	o, err := g.db.Order.Create().
		SetBusinessID(businessID).
		SetLocation(fmt.Sprintf("table %d", g.rng.Intn(20)+1)).
		SetStatus(order.StatusCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for _, course := range courses {
		items := byCourse[course]
		item := items[g.rng.Intn(len(items))]
		_, err := g.db.OrderItem.Create().
			SetOrderID(o.ID).
			SetMenuItemID(item.ID).
			SetQuantity(g.rng.Intn(2) + 1).
			SetPriceAtOrder(item.Price).
			Save(ctx)
		if ent.IsConstraintError(err) {
			// Same item drawn twice for one order, skip the duplicate line
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create order line: %w", err)
		}
	}

	return g.engine.UpdatePairsFromOrder(ctx, o.ID)
}

func (g *Generator) pickPattern() []string {
	total := 0
	for _, p := range orderPatterns {
		total += p.weight
	}
	n := g.rng.Intn(total)
	for _, p := range orderPatterns {
		if n < p.weight {
			return p.courses
		}
		n -= p.weight
	}
	return orderPatterns[0].courses
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
