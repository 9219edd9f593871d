package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/frahmantamala/shopfront/internal/category"
	"github.com/frahmantamala/shopfront/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	categoryShopID   int64
	categoryTitle    string
	categoryParentID string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List and create shop categories",
}

var listCategoriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List the categories of a shop as tab-separated id, title and parent id",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, categoryService := initServices(appConfig, logger.LoggerWrapper(), newSyncPublisher)

		loaded := categoryService.LoadCategories(cmd.Context(), categoryShopID)
		if loaded.IsFailed() {
			return fmt.Errorf("failed to fetch categories: %w", loaded.Err())
		}
		printCategories(cmd.OutOrStdout(), loaded.Value())
		return nil
	},
}

var addCategoryCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a category for a shop",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, shopService, categoryService := initServices(appConfig, logger.LoggerWrapper(), newSyncPublisher)

		selected, err := shopService.FindShop(cmd.Context(), categoryShopID)
		if err != nil {
			return err
		}

		panel := categoryService.SelectShop(cmd.Context(), selected.Selected())
		if err := categoryService.AddCategory(cmd.Context(), panel, categoryTitle, categoryParentID); err != nil {
			if panel.Alert != "" {
				return fmt.Errorf("%s: %w", panel.Alert, err)
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), panel.Notice)
		printCategories(cmd.OutOrStdout(), panel.Categories.Value())
		return nil
	},
}

// printCategories writes id<TAB>title<TAB>parent lines, sub-categories
// right after their parent. Top-level categories have parent "-".
func printCategories(out io.Writer, categories []category.Category) {
	for _, c := range categories {
		parent := "-"
		if !c.IsTopLevel() {
			parent = strconv.FormatInt(*c.ParentCategoryID, 10)
		}
		fmt.Fprintf(out, "%d\t%s\t%s\n", c.ID, c.Title, parent)
		for _, sub := range c.SubCategories {
			fmt.Fprintf(out, "%d\t%s\t%d\n", sub.ID, sub.Title, c.ID)
		}
	}
}

func init() {
	for _, c := range []*cobra.Command{listCategoriesCmd, addCategoryCmd} {
		c.Flags().Int64Var(&categoryShopID, "shop-id", 0, "id of the shop")
		_ = c.MarkFlagRequired("shop-id")
	}
	addCategoryCmd.Flags().StringVar(&categoryTitle, "title", "", "category title")
	addCategoryCmd.Flags().StringVar(&categoryParentID, "parent-id", "", "optional parent category id")
	_ = addCategoryCmd.MarkFlagRequired("title")

	categoriesCmd.AddCommand(listCategoriesCmd)
	categoriesCmd.AddCommand(addCategoryCmd)
}
