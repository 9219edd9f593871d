package cmd

import (
	"fmt"
	"io"

	"github.com/frahmantamala/shopfront/internal/shop"
	"github.com/frahmantamala/shopfront/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	shopTitle       string
	shopDescription string
	shopCategoryID  string
)

var shopsCmd = &cobra.Command{
	Use:   "shops",
	Short: "List and create shops",
}

var listShopsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all shops as tab-separated id, title and description",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, shopService, _ := initServices(appConfig, logger.LoggerWrapper(), newSyncPublisher)

		loaded := shopService.LoadShops(cmd.Context())
		if loaded.IsFailed() {
			return fmt.Errorf("failed to fetch shops: %w", loaded.Err())
		}
		printShops(cmd.OutOrStdout(), loaded.Value())
		return nil
	},
}

var addShopCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a shop",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, shopService, _ := initServices(appConfig, logger.LoggerWrapper(), newSyncPublisher)

		form := &shop.AddShopForm{
			Title:       shopTitle,
			Description: shopDescription,
			CategoryID:  shopCategoryID,
		}
		created, err := form.Submit(cmd.Context(), shopService)
		if err != nil {
			return fmt.Errorf("%s: %w", shop.MessageAddShopFailed, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d)\n", form.SuccessMessage, created.ID)
		return nil
	},
}

// printShops writes one id<TAB>title<TAB>description line per shop.
func printShops(out io.Writer, shops []shop.Shop) {
	for _, s := range shops {
		fmt.Fprintf(out, "%d\t%s\t%s\n", s.ID, s.Title, s.Description)
	}
}

func init() {
	addShopCmd.Flags().StringVar(&shopTitle, "title", "", "shop title")
	addShopCmd.Flags().StringVar(&shopDescription, "description", "", "shop description")
	addShopCmd.Flags().StringVar(&shopCategoryID, "category-id", "", "category id of the shop")
	_ = addShopCmd.MarkFlagRequired("title")
	_ = addShopCmd.MarkFlagRequired("description")
	_ = addShopCmd.MarkFlagRequired("category-id")

	shopsCmd.AddCommand(listShopsCmd)
	shopsCmd.AddCommand(addShopCmd)
}
