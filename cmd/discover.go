package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wood-couture/market-scout/internal/export"
	"github.com/wood-couture/market-scout/internal/filter"
	"github.com/wood-couture/market-scout/internal/model"
	"github.com/wood-couture/market-scout/internal/pipeline"
)

var (
	discoverTerms        []string
	discoverRequirements string
	discoverCountry      string
	discoverMaxResults   int
	discoverPages        int
	discoverOut          string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover companies matching the configured search terms",
	Long:  "Runs each search term through web search, filters out marketplaces and listicles, scrapes the surviving companies' sites, and writes the results to an Excel workbook.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		progress := pipeline.WithProgress(func(stage, detail string) {
			fmt.Printf("[%s] %s\n", stage, detail)
		})
		p, err := initPipeline("discover", progress)
		if err != nil {
			return err
		}

		terms := discoverTerms
		if len(terms) == 0 {
			terms = cfg.Search.Terms
		}
		country := discoverCountry
		if country == "" {
			country = cfg.Search.Country
		}
		maxResults := discoverMaxResults
		if maxResults == 0 {
			maxResults = cfg.Search.MaxResults
		}
		pages := discoverPages
		if pages < 1 {
			pages = 1
		}

		// Each page advances the search offset and excludes every name
		// already emitted, so "load more" never repeats a company.
		var all []model.CompanyRecord
		exclude := filter.NewNameSet()
		pageSize := cfg.Serper.PageSize

		for page := 0; page < pages; page++ {
			records, err := p.Discover(ctx, pipeline.DiscoverParams{
				Terms:        terms,
				Requirements: discoverRequirements,
				Country:      country,
				MaxResults:   maxResults,
				Offset:       page * pageSize,
				Exclude:      exclude,
			})
			if err != nil {
				return eris.Wrap(err, "discover")
			}
			if len(records) == 0 {
				zap.L().Info("no further results", zap.Int("page", page+1))
				break
			}
			for _, rec := range records {
				exclude.Add(rec.Name)
			}
			all = append(all, records...)
		}

		if len(all) == 0 {
			fmt.Println("No companies found.")
			return nil
		}

		if err := export.WriteFile(discoverOut, all); err != nil {
			return err
		}
		fmt.Printf("Wrote %d companies to %s\n", len(all), discoverOut)

		return nil
	},
}

func init() {
	discoverCmd.Flags().StringSliceVar(&discoverTerms, "term", nil, "search term (repeatable, default from config)")
	discoverCmd.Flags().StringVar(&discoverRequirements, "requirements", "", "extra free-text requirements appended to each query")
	discoverCmd.Flags().StringVar(&discoverCountry, "country", "", "target country (default from config)")
	discoverCmd.Flags().IntVar(&discoverMaxResults, "max-results", 0, "result cap per page (default from config)")
	discoverCmd.Flags().IntVar(&discoverPages, "pages", 1, "number of result pages to fetch")
	discoverCmd.Flags().StringVar(&discoverOut, "out", "companies.xlsx", "output workbook path")
	rootCmd.AddCommand(discoverCmd)
}
