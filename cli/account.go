package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	// login
	var email, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			return printWhoami()
		},
	}
	loginCmd.Flags().StringVar(&email, "email", "", "email")
	loginCmd.Flags().StringVar(&password, "password", "", "password")
	rootCmd.AddCommand(loginCmd)

	// signup
	var sEmail, sPassword, sName, sTag string
	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sEmail == "" || sPassword == "" {
				return errors.New("--email and --password required")
			}
			if err := app.Auth.Signup(cmd.Context(), sEmail, sPassword, sName, sTag); err != nil {
				return err
			}
			return printWhoami()
		},
	}
	signupCmd.Flags().StringVar(&sEmail, "email", "", "email")
	signupCmd.Flags().StringVar(&sPassword, "password", "", "password")
	signupCmd.Flags().StringVar(&sName, "name", "", "full name")
	signupCmd.Flags().StringVar(&sTag, "staff-id", "", "staff id (optional)")
	rootCmd.AddCommand(signupCmd)

	// logout
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
	rootCmd.AddCommand(logoutCmd)

	// whoami
	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printWhoami()
		},
	}
	rootCmd.AddCommand(whoamiCmd)

	// wishlist
	wishlistCmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist (login required)",
	}
	wishlistCmd.AddCommand(&cobra.Command{
		Use:   "add <id>",
		Short: "Save a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.AddToWishlist(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("added to wishlist")
			return nil
		},
	})
	wishlistCmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a saved product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Wishlist.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("removed from wishlist")
			return nil
		},
	})
	wishlistCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved products",
		RunE: func(cmd *cobra.Command, args []string) error {
			printProducts(app.Wishlist.Items(), "")
			return nil
		},
	})
	rootCmd.AddCommand(wishlistCmd)

	// recent
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Recently viewed products",
	}
	recentCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recently viewed products",
		RunE: func(cmd *cobra.Command, args []string) error {
			printProducts(app.Recent.Items(), "")
			return nil
		},
	})
	recentCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear recently viewed products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Recent.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("recently viewed cleared")
			return nil
		},
	})
	rootCmd.AddCommand(recentCmd)
}

func printWhoami() error {
	s, ok := app.Auth.Current()
	if !ok {
		fmt.Println("anonymous")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", s.FullName, s.Email, s.Role())
	return nil
}
