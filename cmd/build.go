package main

import (
	"uniformnavi/internal/app"
	"uniformnavi/internal/content"
	"uniformnavi/internal/generator"

	"github.com/spf13/cobra"
)

var outDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the post collection into a static site",
	RunE: func(cmd *cobra.Command, args []string) error {
		if outDir != "" {
			cfg.OutputDir = outDir
		}

		posts, err := app.NewContentLoader(cfg).LoadAll(cmd.Context())
		if err != nil {
			return err
		}

		gen, err := generator.New(cfg.OutputDir, generator.Site{Name: cfg.SiteName, URL: cfg.SiteURL})
		if err != nil {
			return err
		}
		return gen.Build(cmd.Context(), content.SortByDateDesc(posts))
	},
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default OUTPUT_DIR)")
}
