package cli

import (
	"fmt"
	"log/slog"

	"marketly/catalog"
	"marketly/domain"

	"github.com/spf13/cobra"
)

type cartView struct {
	Lines   []cartViewLine  `json:"lines"`
	Count   int             `json:"count"`
	Summary catalog.Summary `json:"summary"`
}

type cartViewLine struct {
	domain.CartLine
	Name      string  `json:"name,omitempty"`
	UnitPrice float64 `json:"unitPrice,omitempty"`
}

func currentCart() cartView {
	v := cartView{Count: app.Cart.Count(), Summary: app.Totals()}
	for _, l := range app.Cart.Lines() {
		line := cartViewLine{CartLine: l}
		if p, ok := app.Catalog.ByID(l.ProductID); ok {
			line.Name = p.Name
			line.UnitPrice = p.Price
		}
		v.Lines = append(v.Lines, line)
	}
	return v
}

func init() {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	// add
	var addQty int
	addCmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.AddToCart(cmd.Context(), args[0], addQty); err != nil {
				return err
			}
			slog.Info("added to cart", "product_id", args[0], "quantity", addQty)
			fmt.Printf("cart: %d item(s)\n", app.Cart.Count())
			return nil
		},
	}
	addCmd.Flags().IntVar(&addQty, "quantity", 1, "quantity")
	cartCmd.AddCommand(addCmd)

	// update
	var updQty int
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a line's quantity (minimum 1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.UpdateQuantity(cmd.Context(), args[0], updQty); err != nil {
				return err
			}
			fmt.Printf("cart: %d item(s)\n", app.Cart.Count())
			return nil
		},
	}
	updateCmd.Flags().IntVar(&updQty, "quantity", 1, "quantity")
	cartCmd.AddCommand(updateCmd)

	// remove
	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("cart: %d item(s)\n", app.Cart.Count())
			return nil
		},
	}
	cartCmd.AddCommand(removeCmd)

	// clear
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("cart cleared")
			return nil
		},
	}
	cartCmd.AddCommand(clearCmd)

	// show
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show lines and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON(currentCart())
			return nil
		},
	}
	cartCmd.AddCommand(showCmd)

	rootCmd.AddCommand(cartCmd)
}
