package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"uniformnavi/internal/content"
	"uniformnavi/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	newTitle    string
	newCategory string
	newTags     []string
)

var newCmd = &cobra.Command{
	Use:   "new <id>",
	Short: "Create a post skeleton in the content directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if !idPattern.MatchString(id) {
			return fmt.Errorf("invalid post id %q: use lowercase letters, digits and hyphens", id)
		}

		tags := newTags
		if tags == nil {
			tags = []string{}
		}
		today := time.Now().Format("2006-01-02")
		meta := content.Metadata{
			"title":     newTitle,
			"date":      today,
			"updatedAt": today,
			"category":  newCategory,
			"excerpt":   "",
			"tags":      tags,
			"keywords":  []string{},
		}
		raw, err := content.EncodeFrontmatter(meta, []byte("\n## はじめに\n\n"))
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(cfg.ContentDir, id+content.Ext)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("%s already exists", path)
			}
			return err
		}
		defer f.Close()
		if _, err := f.Write(raw); err != nil {
			return err
		}

		logger.Log.Info("post created", zap.String("path", path))
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "", "post title")
	newCmd.Flags().StringVar(&newCategory, "category", "", "post category slug")
	newCmd.Flags().StringSliceVar(&newTags, "tag", nil, "tag (repeatable)")
	_ = newCmd.MarkFlagRequired("title")
	_ = newCmd.MarkFlagRequired("category")
}
