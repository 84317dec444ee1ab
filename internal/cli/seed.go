// internal/cli/seed.go
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ai-readiness-workers/internal/common/config"
	"ai-readiness-workers/internal/common/database"
	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/repository"
)

func newSeedCmd(o *options) *cobra.Command {
	var (
		configPath string
		skipSearch bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data into PostgreSQL, Redis and Elasticsearch",
		Long: `Creates the reference tables when missing and upserts the scenario's
occupations, required skills and learning pathways (the built-in fixtures by
default). Cached reference entries in Redis are dropped and, unless
--skip-search is set, occupations are indexed for search-occupations.

Connection settings come from the worker manager's configuration.`,
		Example: `  airs seed
  airs seed --config configs/config.yaml -s scenario.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := LoadScenario(o.scenarioPath)
			if err != nil {
				return err
			}

			var cfg *config.Config
			if configPath != "" {
				cfg, err = config.LoadFromFile(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			zapLog := logger.New(cfg.Logging.Level, "console")
			defer zapLog.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			pg, err := database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			defer pg.Close()

			rdb, err := database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			defer rdb.Close()

			var es *elasticsearch.Client
			if !skipSearch && len(cfg.Database.Elasticsearch.GetAddresses()) > 0 {
				esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
				if err != nil {
					return err
				}
				es = esClient.Client
			}

			s := &seeder{
				db:    pg.DB,
				redis: rdb.Client,
				es:    es,
				index: cfg.Scoring.OccupationIndex,
				log:   logger.NewZapAdapter(zapLog),
			}
			report, err := s.run(ctx, sc.SeedData())
			if err != nil {
				zapLog.Error("seed failed", zap.Error(err))
				return err
			}
			return report.print(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default configs/config.yaml)")
	cmd.Flags().BoolVar(&skipSearch, "skip-search", false, "do not index occupations in Elasticsearch")
	return cmd
}

type seeder struct {
	db    *sql.DB
	redis redis.Cmdable
	es    *elasticsearch.Client
	index string
	log   logger.Logger
}

type seedReport struct {
	Occupations    int
	RequiredSkills int
	Pathways       int
	CacheEvicted   int
	Indexed        int
	IndexSkipped   bool
}

func (s *seeder) run(ctx context.Context, data repository.SeedData) (*seedReport, error) {
	if err := repository.EnsureSchema(ctx, s.db); err != nil {
		return nil, err
	}
	if err := repository.SeedReferenceData(ctx, s.db, data); err != nil {
		return nil, err
	}

	report := &seedReport{
		Occupations: len(data.Occupations),
		Pathways:    len(data.Pathways),
	}
	for _, reqs := range data.RequiredSkills {
		report.RequiredSkills += len(reqs)
	}
	s.log.Info("reference data seeded", map[string]interface{}{
		"occupations":    report.Occupations,
		"requiredSkills": report.RequiredSkills,
		"pathways":       report.Pathways,
	})

	cache := repository.NewCachedStore(repository.NewReferenceStore(s.db), s.redis, 0, s.log)
	evicted, err := cache.Invalidate(ctx)
	if err != nil {
		// stale entries expire on their own TTL
		s.log.Warn("cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
	report.CacheEvicted = evicted

	if s.es == nil {
		report.IndexSkipped = true
		return report, nil
	}
	indexed, err := repository.IndexOccupations(ctx, s.es, s.index, data.Occupations)
	if err != nil {
		return nil, err
	}
	report.Indexed = indexed
	s.log.Info("occupations indexed", map[string]interface{}{
		"index":     s.index,
		"documents": indexed,
	})
	return report, nil
}

func (r *seedReport) print(w io.Writer) error {
	t := newTable(w)
	t.row("Occupations", r.Occupations)
	t.row("Required skills", r.RequiredSkills)
	t.row("Pathways", r.Pathways)
	t.row("Cache entries evicted", r.CacheEvicted)
	if r.IndexSkipped {
		t.row("Search index", "skipped")
	} else {
		t.row("Search documents", r.Indexed)
	}
	return t.flush()
}
