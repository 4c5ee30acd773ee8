package cli

import (
	"encoding/json"
	"fmt"

	"marketly/catalog"
	"marketly/domain"

	"github.com/spf13/cobra"
)

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func printProducts(ps []domain.Product, output string) {
	if output == "json" {
		printJSON(ps)
		return
	}
	for _, p := range ps {
		fmt.Printf("%s | %s | %s | %.2f | %d | %.1f\n",
			p.ID, p.Name, p.Category, p.Price, p.Stock, p.Rating)
	}
}

func init() {
	// products
	var search, category, output string
	var minPrice, maxPrice, minRating float64
	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.DefaultCriteria()
			c.Search = search
			if category != "" {
				c.Category = domain.Category(category)
			}
			if cmd.Flags().Changed("min-price") {
				c.MinPrice = minPrice
			}
			if cmd.Flags().Changed("max-price") {
				c.MaxPrice = maxPrice
			}
			c.MinRating = minRating

			out := catalog.Filter(app.Catalog.Products(), c)
			printProducts(out, output)
			if output != "json" {
				fmt.Printf("%d products found\n", len(out))
			}
			return nil
		},
	}
	productsCmd.Flags().StringVar(&search, "search", "", "search name, description or category")
	productsCmd.Flags().StringVar(&category, "category", "", "category (default all)")
	productsCmd.Flags().Float64Var(&minPrice, "min-price", 0, "min price")
	productsCmd.Flags().Float64Var(&maxPrice, "max-price", 1000, "max price")
	productsCmd.Flags().Float64Var(&minRating, "min-rating", 0, "min rating")
	productsCmd.Flags().StringVar(&output, "output", "", "output format")
	rootCmd.AddCommand(productsCmd)

	// categories
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(domain.AllCategories)
			for _, c := range app.Catalog.Categories() {
				fmt.Printf("%s (%d)\n", c, len(app.Catalog.ByCategory(c)))
			}
			return nil
		},
	}
	rootCmd.AddCommand(categoriesCmd)

	// featured
	featuredCmd := &cobra.Command{
		Use:   "featured",
		Short: "Featured products and your recent views",
		RunE: func(cmd *cobra.Command, args []string) error {
			printProducts(app.Catalog.Featured(), "")
			if recent := app.Recent.Recent(3); len(recent) > 0 {
				fmt.Println("recently viewed:")
				printProducts(recent, "")
			}
			return nil
		},
	}
	rootCmd.AddCommand(featuredCmd)

	// product
	productCmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show a product and record the view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.ViewProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printJSON(p)
			return nil
		},
	}
	rootCmd.AddCommand(productCmd)

	// inventory
	var iSearch, iStock, iSort string
	inventoryCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory table (staff and managers)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(domain.RequireStaffOrManager, "/inventory"); err != nil {
				return err
			}
			all := app.Catalog.Products()
			out := catalog.FilterInventory(all, iSearch, catalog.StockStatus(iStock))
			out = catalog.SortInventory(out, catalog.SortKey(iSort))
			for _, p := range out {
				fmt.Printf("%s | %s | %s | %d | %s | %.2f\n",
					p.ID, p.Name, p.Category, p.Stock, catalog.StatusOf(p), p.Price)
			}
			fmt.Printf("Showing %d of %d products\n", len(out), len(all))
			return nil
		},
	}
	inventoryCmd.Flags().StringVar(&iSearch, "search", "", "search name or id")
	inventoryCmd.Flags().StringVar(&iStock, "stock", "all", "stock status: all|low|out|in")
	inventoryCmd.Flags().StringVar(&iSort, "sort-by", "name", "sort field: name|id|stock|price")
	rootCmd.AddCommand(inventoryCmd)
}
