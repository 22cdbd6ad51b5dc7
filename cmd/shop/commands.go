package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ohJeez/e-commerece-website/internal/client/ui"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := ui.NewAuthView(a.store, a.notify)
			if err := view.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			u := a.session.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", u.Name, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var name, email, password, confirm string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := ui.NewAuthView(a.store, a.notify)
			if err := view.Register(cmd.Context(), name, email, password, confirm); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created. You can log in now.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.NewAuthView(a.store, a.notify).Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.guard.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> role=%s mode=%s\n", u.Name, u.Email, u.Role, a.session.Mode())
			return nil
		},
	}
}

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse and maintain the catalog",
	}
	cmd.AddCommand(
		newProductsListCmd(a),
		newProductsAddCmd(a),
		newProductsEditCmd(a),
		newProductsRmCmd(a),
	)
	return cmd
}

func newProductsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := ui.NewShopView(a.store, a.notify, cmd.OutOrStdout(), a.session.User())
			return view.Refresh(cmd.Context())
		},
	}
}

func productFlags(cmd *cobra.Command, fields *domain.ProductFields, image *string) {
	cmd.Flags().StringVar(&fields.Name, "name", "", "product name")
	cmd.Flags().Float64Var(&fields.Price, "price", 0, "unit price")
	cmd.Flags().StringVar(&fields.Description, "description", "", "product description")
	cmd.Flags().StringVar(image, "image", "", "path to a product image")
}

func newProductsAddCmd(a *app) *cobra.Command {
	var fields domain.ProductFields
	var image string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.guard.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			view := ui.NewProductFormView(a.store, a.notify, u)
			if err := view.Create(cmd.Context(), fields, image); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product added.")
			return nil
		},
	}
	productFlags(cmd, &fields, &image)
	return cmd
}

func newProductsEditCmd(a *app) *cobra.Command {
	var fields domain.ProductFields
	var image string
	cmd := &cobra.Command{
		Use:   "edit <product-id>",
		Short: "Edit a product (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.guard.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			view := ui.NewProductFormView(a.store, a.notify, u)
			if err := view.Edit(cmd.Context(), args[0], fields, image); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product updated.")
			return nil
		},
	}
	productFlags(cmd, &fields, &image)
	return cmd
}

func newProductsRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Remove a product (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.guard.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			view := ui.NewShopView(a.store, a.notify, cmd.OutOrStdout(), u)
			if err := view.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product removed.")
			return nil
		},
	}
}

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your cart",
	}
	cmd.AddCommand(
		newCartShowCmd(a),
		newCartAddCmd(a),
		newCartSetCmd(a),
		newCartRmCmd(a),
	)
	return cmd
}

func newCartShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.guard.Resolve(cmd.Context()); err != nil {
				return err
			}
			view := ui.NewCartView(a.store, a.notify, cmd.OutOrStdout())
			return view.Refresh(cmd.Context())
		},
	}
}

func newCartAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.guard.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			view := ui.NewShopView(a.store, a.notify, cmd.OutOrStdout(), u)
			return view.AddToCart(cmd.Context(), args[0])
		},
	}
}

func newCartSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <qty>",
		Short: "Set a cart line quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.guard.Resolve(cmd.Context()); err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be a number: %q", args[1])
			}
			view := ui.NewCartView(a.store, a.notify, cmd.OutOrStdout())
			return view.SetQuantity(cmd.Context(), args[0], qty)
		},
	}
}

func newCartRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.guard.Resolve(cmd.Context()); err != nil {
				return err
			}
			view := ui.NewCartView(a.store, a.notify, cmd.OutOrStdout())
			return view.Remove(cmd.Context(), args[0])
		},
	}
}
