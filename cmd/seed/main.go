package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"uplinepay/internal/config"
	membersProcessor "uplinepay/internal/members/processor"
	"uplinepay/internal/money"
	"uplinepay/internal/observability"
	"uplinepay/internal/ranks"
	"uplinepay/internal/store"
)

type tier struct {
	name      string
	amount    string
	cycleSize int
}

// The standard ladder: amounts double tier over tier, cycle capacity
// grows with the stakes.
var ladder = []tier{
	{"quartz", "25.00", 4},
	{"topaz", "50.00", 8},
	{"amethyst", "100.00", 16},
	{"sapphire", "200.00", 32},
	{"ruby", "400.00", 64},
	{"emerald", "800.00", 128},
	{"diamond", "1600.00", 256},
}

func main() {
	withDemo := flag.Bool("demo", false, "also create demo members")
	flag.Parse()

	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	st, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %s", err)
	}

	rankService := ranks.New(&st, logger)
	for i, t := range ladder {
		if _, err := rankService.Get(ctx, t.name); err == nil {
			logger.Info(ctx, fmt.Sprintf("rank %s already exists, skipping", t.name))
			continue
		}

		amount, err := money.Parse(t.amount)
		if err != nil {
			log.Fatalf("bad ladder amount %q: %s", t.amount, err)
		}

		_, err = rankService.Create(ctx, ranks.CreateRankRequest{
			Name:                t.name,
			RankIndex:           i + 1,
			ActivationAmount:    amount,
			LevelIncomeEnabled:  true,
			GlobalIncomeEnabled: true,
			CycleSize:           t.cycleSize,
		})
		if err != nil {
			log.Fatalf("failed to create rank %s: %s", t.name, err)
		}
		logger.Info(ctx, fmt.Sprintf("created rank %s (%s, cycle %d)", t.name, t.amount, t.cycleSize))
	}

	if *withDemo {
		seedDemoMembers(ctx, &st, logger)
	}

	logger.Info(ctx, "seeding complete")
}

// seedDemoMembers creates a three-deep sponsor chain for local
// development.
func seedDemoMembers(ctx context.Context, st *store.Store, logger *observability.Logger) {
	members := membersProcessor.New(st, logger)

	root, err := members.Register(ctx, membersProcessor.RegisterParams{
		Email:     "root@example.com",
		FirstName: "Root",
		LastName:  "Member",
	})
	if err != nil {
		log.Fatalf("failed to create demo root member: %s", err)
	}

	parentID := root.ID
	for i := 1; i <= 2; i++ {
		m, err := members.Register(ctx, membersProcessor.RegisterParams{
			Email:     fmt.Sprintf("demo%d@example.com", i),
			FirstName: "Demo",
			LastName:  fmt.Sprintf("Member%d", i),
			SponsorID: &parentID,
		})
		if err != nil {
			log.Fatalf("failed to create demo member %d: %s", i, err)
		}
		parentID = m.ID
	}

	logger.Info(ctx, "created demo member chain")
}
