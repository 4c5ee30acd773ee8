package cli

import (
	"fmt"

	"marketly/catalog"
	"marketly/domain"

	"github.com/spf13/cobra"
)

func init() {
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Order history",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return requireAccess(domain.RequireNone, "/orders")
		},
	}

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List past orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, o := range catalog.Orders() {
				fmt.Printf("%s | %s | %s | %d item(s) | %.2f\n",
					o.ID, o.Date, o.Status, len(o.Items), o.Total)
			}
			return nil
		},
	})

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "track <id>",
		Short: "Show an order's progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := catalog.OrderByID(args[0])
			if err != nil {
				return err
			}
			for _, st := range []domain.OrderStatus{domain.StatusProcessing, domain.StatusShipped, domain.StatusDelivered} {
				mark := " "
				if o.Status.Reached(st) {
					mark = "x"
				}
				fmt.Printf("[%s] %s\n", mark, st)
			}
			if o.TrackingNumber != "" {
				fmt.Printf("tracking: %s\n", o.TrackingNumber)
			}
			if o.EstimatedDelivery != "" && o.Status != domain.StatusDelivered {
				fmt.Printf("estimated delivery: %s\n", o.EstimatedDelivery)
			}
			return nil
		},
	})

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "reorder <id>",
		Short: "Add an order's items to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Reorder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%d item(s) added to cart from order %s\n", n, args[0])
			return nil
		},
	})

	rootCmd.AddCommand(ordersCmd)
}
