package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/usecase/discovery"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Provider records and discovery",
}

var providersSeedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Upsert provider records from a JSON array",
	Long: `Reads a JSON array of provider records and upserts each one by id.
Empty role and status default to PROVIDER and approved.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

var (
	searchCategory string
	searchLat      float64
	searchLng      float64
	searchSort     string
	searchRefresh  bool
)

var providersSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a one-shot discovery and print the ranked list",
	Args:  cobra.NoArgs,
	RunE:  runSearch,
}

func init() {
	providersSearchCmd.Flags().StringVar(&searchCategory, "category", "", "service category (required)")
	providersSearchCmd.Flags().Float64Var(&searchLat, "lat", 0, "client latitude")
	providersSearchCmd.Flags().Float64Var(&searchLng, "lng", 0, "client longitude")
	providersSearchCmd.Flags().StringVar(&searchSort, "sort", "recommended", "recommended | cheapest | nearest | highest_rated")
	providersSearchCmd.Flags().BoolVar(&searchRefresh, "refresh", false, "skip a fresh cache entry")
	_ = providersSearchCmd.MarkFlagRequired("category")

	providersCmd.AddCommand(providersSeedCmd)
	providersCmd.AddCommand(providersSearchCmd)
}

// readRecords разбирает массив записей и подставляет роль и статус по умолчанию.
func readRecords(r io.Reader) ([]domain.ProviderRecord, error) {
	var recs []domain.ProviderRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode providers: %w", err)
	}
	for i := range recs {
		if err := recs[i].Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if recs[i].Role == "" {
			recs[i].Role = domain.RoleProvider
		}
		if recs[i].Status == "" {
			recs[i].Status = domain.StatusApproved
		}
	}
	return recs, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	recs, err := readRecords(f)
	if err != nil {
		return err
	}

	e, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	for _, rec := range recs {
		if err := e.deps.Providers.UpsertProvider(cmd.Context(), rec); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d providers\n", len(recs))
	return nil
}

func runSearch(cmd *cobra.Command, _ []string) error {
	strategy, err := domain.ParseRankingStrategy(searchSort)
	if err != nil {
		return err
	}
	e, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	cache := e.cache()
	uc := discovery.New(e.deps.Providers, e.deps.Providers, cache, nil, nil, e.log, e.cfg.Discovery)
	res, err := uc.Search(cmd.Context(), domain.DiscoveryQuery{
		Category:     searchCategory,
		Reference:    domain.GeoPoint{Latitude: searchLat, Longitude: searchLng},
		Strategy:     strategy,
		ForceRefresh: searchRefresh,
	})
	if err != nil {
		return err
	}
	defer cache.Wait()

	return printResult(cmd.OutOrStdout(), res)
}

func printResult(w io.Writer, res *domain.SearchResult) error {
	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tPRICE\tRATING\tJOBS\tDISTANCE\tETA")
	for i, p := range res.Providers {
		dist := "unknown"
		if km, ok := p.Distance.Km(); ok {
			dist = decimal.NewFromFloat(km).StringFixed(1) + " km"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%d\t%s\t%s\n",
			i+1, p.ID, p.Name, decimal.NewFromFloat(p.Price).StringFixed(2),
			p.Rating, p.CompletedJobs, dist, p.EstimatedArrival)
	}
	return tw.Flush()
}
