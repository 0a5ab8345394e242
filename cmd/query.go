package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"searchpanel/internal/domain"
	"searchpanel/internal/ui/logic"
	"searchpanel/internal/ui/views"
)

type queryOptions struct {
	noFiles  bool
	noPeople bool
	json     bool
}

func newQueryCommand(opts *options) *cobra.Command {
	qopts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query [text]",
		Short: "Run a search once and print the results",
		Long: "Filter the result set by name like the interactive panel does and print the " +
			"tab counts and the visible results. Without text the configured seed query is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			store, _, err := loadSource(cfg)
			if err != nil {
				return err
			}

			criteria := logic.Criteria{
				Query: cfg.SeedQuery,
				Tab:   cfg.Tab(),
				Filters: domain.ContentFilters{
					Files:  !qopts.noFiles,
					People: !qopts.noPeople,
				},
			}
			if len(args) == 1 {
				criteria.Query = args[0]
			}

			out := logic.Apply(store.FetchResults(), criteria)
			if qopts.json {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return writeTable(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&qopts.noFiles, "no-files", false, "exclude files")
	cmd.Flags().BoolVar(&qopts.noPeople, "no-people", false, "exclude people")
	cmd.Flags().BoolVar(&qopts.json, "json", false, "print JSON")

	return cmd
}

type jsonCounts struct {
	All    int `json:"all"`
	Files  int `json:"files"`
	People int `json:"people"`
}

type jsonResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Details  string `json:"details"`
}

type jsonOutput struct {
	Counts  jsonCounts   `json:"counts"`
	Results []jsonResult `json:"results"`
}

func writeJSON(w io.Writer, out logic.Outcome) error {
	doc := jsonOutput{
		Counts:  jsonCounts{All: out.Counts.All, Files: out.Counts.Files, People: out.Counts.People},
		Results: make([]jsonResult, 0, len(out.Visible)),
	}
	for _, r := range out.Visible {
		doc.Results = append(doc.Results, jsonResult{
			ID:       r.ID,
			Name:     r.Name,
			Kind:     string(r.Kind()),
			Category: string(r.Category()),
			Details:  views.Details(r),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// tableRows converts the visible results into table data with a header
func tableRows(out logic.Outcome) pterm.TableData {
	rows := pterm.TableData{{"Kind", "Name", "Details"}}
	for _, r := range out.Visible {
		rows = append(rows, []string{string(r.Kind()), r.Name, views.Details(r)})
	}
	return rows
}

func writeTable(w io.Writer, out logic.Outcome) error {
	fmt.Fprintf(w, "All %d  Files %d  People %d\n\n", out.Counts.All, out.Counts.Files, out.Counts.People)

	if out.Empty() {
		fmt.Fprintln(w, "No results found")
		return nil
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableRows(out)).WithWriter(w).Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
