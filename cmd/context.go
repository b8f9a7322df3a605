package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/emrgen/dispatch/internal/cache"
	"github.com/emrgen/dispatch/internal/config"
	"github.com/emrgen/dispatch/internal/reconcile"
	"github.com/emrgen/dispatch/internal/service"
	"github.com/emrgen/dispatch/internal/store"
)

// services wires the store, cache and services from the environment config.
// Every command builds this once at run time.
type services struct {
	cnf        *config.Config
	store      store.Store
	classifier reconcile.Classifier
	dispatch   *service.DispatchService
	links      *service.LinkService
	match      *service.MatchService
}

func newServices() *services {
	cnf := config.LoadConfig()
	db := config.GetDb(cnf)
	s := store.NewGormStore(db)

	var invalidator cache.Invalidator = cache.NewNop()
	if cnf.RedisAddr != "" {
		invalidator = cache.NewRedis(cnf.RedisAddr)
	}

	classifier := reconcile.NewClassifier(cnf.CompanyPrefix)
	links := service.NewLinkService(s, invalidator, classifier)

	return &services{
		cnf:        cnf,
		store:      s,
		classifier: classifier,
		dispatch:   service.NewDispatchService(s, invalidator, classifier),
		links:      links,
		match:      service.NewMatchService(s, links),
	}
}

func checkMissingFlags(cmd *cobra.Command, required []string) bool {
	missing := false
	for _, name := range required {
		if !cmd.Flags().Changed(name) {
			color.Red("missing: --%s", name)
			missing = true
		}
	}
	return missing
}
