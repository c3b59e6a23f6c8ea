package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/wood-couture/market-scout/internal/export"
	"github.com/wood-couture/market-scout/internal/model"
	"github.com/wood-couture/market-scout/internal/pipeline"
)

var (
	companyName string
	companyOut  string
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Look up a single company by name",
	Long:  "Resolves the named company's official website and LinkedIn page, scrapes the site for contacts, and prints the summarized profile.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		progress := pipeline.WithProgress(func(stage, detail string) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", stage, detail)
		})
		p, err := initPipeline("company", progress)
		if err != nil {
			return err
		}

		rec, err := p.Lookup(ctx, companyName)
		if err != nil {
			if eris.Is(err, pipeline.ErrNotFound) {
				fmt.Printf("No information found for %q.\n", companyName)
				return nil
			}
			return eris.Wrap(err, "company lookup")
		}

		if companyOut != "" {
			if err := export.WriteFile(companyOut, []model.CompanyRecord{*rec}); err != nil {
				return err
			}
			fmt.Printf("Wrote profile to %s\n", companyOut)
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	},
}

func init() {
	companyCmd.Flags().StringVar(&companyName, "name", "", "company name to look up")
	companyCmd.MarkFlagRequired("name") //nolint:errcheck
	companyCmd.Flags().StringVar(&companyOut, "out", "", "optional output workbook path (prints JSON when unset)")
	rootCmd.AddCommand(companyCmd)
}
