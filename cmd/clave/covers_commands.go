package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"americanclave/internal/assets"
	"americanclave/internal/covers"
)

func newCatnoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "catno <catalog>...",
		Short: "Derive canonical catalog numbers and front cover URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := ctx.coverBuilder()
			type result struct {
				Raw       string `json:"raw"`
				Canonical string `json:"canonical,omitempty"`
				Front     string `json:"front"`
			}
			results := make([]result, 0, len(args))
			for _, raw := range args {
				canonical, _ := covers.ExtractCanonicalCatno(raw)
				results = append(results, result{Raw: raw, Canonical: canonical, Front: b.FrontCoverURL(raw)})
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				canonical := r.Canonical
				if canonical == "" {
					canonical = "-"
				}
				rows = append(rows, []string{r.Raw, canonical, r.Front})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Catalog", "Canonical", "Front cover"}, rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft}))
			return nil
		},
	}
}

func newCoversCommand(ctx *commandContext) *cobra.Command {
	coversCmd := &cobra.Command{
		Use:   "covers",
		Short: "Cover image utilities",
	}
	coversCmd.AddCommand(newCoversURLsCommand(ctx))
	coversCmd.AddCommand(newCoversUploadCommand(ctx))
	return coversCmd
}

func newCoversURLsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "urls <catalog>",
		Short: "List every standard cover URL for a catalog number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := ctx.coverBuilder().AllCoverURLs(args[0])
			if ctx.jsonOutput() {
				return writeJSON(cmd, urls)
			}
			rows := make([][]string, 0, len(urls))
			for i, u := range urls {
				rows = append(rows, []string{covers.StandardPositions[i], u})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Position", "URL"}, rows, nil))
			return nil
		},
	}
}

func newCoversUploadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <catalog> <dir>",
		Short: "Upload {position}.jpg files from dir to the cover bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.R2.UploadReady(); err != nil {
				return err
			}
			up, err := assets.NewR2Uploader(cmd.Context(), cfg.R2)
			if err != nil {
				return err
			}
			done, err := up.UploadDir(cmd.Context(), args[0], args[1])
			out := cmd.OutOrStdout()
			for _, u := range done {
				fmt.Fprintf(out, "%-12s %s\n", u.Position, u.URL)
			}
			if err != nil {
				return err
			}
			if len(done) == 0 {
				fmt.Fprintf(out, "no cover files found in %s\n", args[1])
			}
			return nil
		},
	}
}
