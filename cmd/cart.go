package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"coffeebar.GO/app"
	"coffeebar.GO/core/session"
	"coffeebar.GO/service/cart"
	"coffeebar.GO/service/coffee"
	"coffeebar.GO/service/shop"
)

// sessionKey scopes the cart key to --session when it is set.
func sessionKey(base string) string {
	if cartSession == "" {
		return base
	}
	return session.Key(base, cartSession)
}

// controller loads the catalog and the stored cart for the CLI session.
func controller(cmd *cobra.Command, d *app.Deps) (*shop.Controller, error) {
	ctl := d.Shop(cmd.Context(), sessionKey(d.Config.CartKey), shop.DefaultState())
	if err := ctl.Load(cmd.Context()); err != nil {
		return nil, fmt.Errorf("%s: %w", shop.MsgFetchFailed, err)
	}
	return ctl, nil
}

var cartShowCmd = &cobra.Command{
	Use:   "cart:show",
	Short: "Show the stored cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		c := cart.Load(cmd.Context(), d.Store, sessionKey(d.Config.CartKey), d.Log.Named("cart"))
		renderCart(cmd.OutOrStdout(), c.Entries(), c.Total())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "cart:add <id>",
	Short: "Add one drink to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		ctl, err := controller(cmd, d)
		if err != nil {
			return err
		}
		entry, err := ctl.AddToCart(cmd.Context(), args[0])
		switch {
		case errors.Is(err, shop.ErrSoldOut):
			return fmt.Errorf("%s is sold out", args[0])
		case err != nil:
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Added %s (qty %d)", entry.Item.Title, entry.Qty)))
		return nil
	},
}

var cartQtyCmd = &cobra.Command{
	Use:   "cart:qty <id> <delta>",
	Short: "Change the quantity of a cart line; zero or less removes it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be an integer: %w", err)
		}
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		c := cart.Load(cmd.Context(), d.Store, sessionKey(d.Config.CartKey), d.Log.Named("cart"))
		c.AdjustQty(cmd.Context(), args[0], delta)
		renderCart(cmd.OutOrStdout(), c.Entries(), c.Total())
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "cart:remove <id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		c := cart.Load(cmd.Context(), d.Store, sessionKey(d.Config.CartKey), d.Log.Named("cart"))
		c.Remove(cmd.Context(), args[0])
		renderCart(cmd.OutOrStdout(), c.Entries(), c.Total())
		return nil
	},
}

var cartCheckoutCmd = &cobra.Command{
	Use:   "cart:checkout",
	Short: "Place the order and empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		c := cart.Load(cmd.Context(), d.Store, sessionKey(d.Config.CartKey), d.Log.Named("cart"))
		renderMessage(cmd.OutOrStdout(), c.Checkout(cmd.Context()))
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "cart:clear",
	Short: "Drop the stored cart without placing an order",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		c := cart.Load(cmd.Context(), d.Store, sessionKey(d.Config.CartKey), d.Log.Named("cart"))
		if c.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(cart.EmptyCart.Text))
			return nil
		}
		n := c.Clear(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Removed %d line(s)", n)))
		return nil
	},
}

var cartSessionsCmd = &cobra.Command{
	Use:   "cart:sessions",
	Short: "List the stored cart keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		lister, ok := d.Store.(cart.KeyLister)
		if !ok {
			return errors.New("cart storage cannot list keys")
		}
		keys, err := lister.Keys(cmd.Context(), d.Config.CartKey)
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{cartShowCmd, cartAddCmd, cartQtyCmd, cartRemoveCmd, cartCheckoutCmd, cartClearCmd, coffeeListCmd} {
		c.Flags().StringVar(&cartSession, "session", "", "Cart session id (defaults to the shared cart)")
	}
	rootCmd.AddCommand(cartShowCmd, cartAddCmd, cartQtyCmd, cartRemoveCmd, cartCheckoutCmd, cartClearCmd, cartSessionsCmd)
}

// renderCart prints the cart lines and the total.
func renderCart(w io.Writer, entries []cart.Entry, total int) {
	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render(cart.EmptyCart.Text))
		return
	}
	fmt.Fprintln(w, headerStyle.Render("Cart"))
	for _, e := range entries {
		fmt.Fprintf(w, "%-28s x%-3d %s\n", e.Item.Title, e.Qty, priceStyle.Render(coffee.FormatPrice(e.Sum())))
	}
	fmt.Fprintln(w, titleStyle.Render("Total: "+coffee.FormatPrice(total)))
}

func renderMessage(w io.Writer, m cart.Message) {
	style := mutedStyle
	if m.Kind == cart.Success {
		style = successStyle
	}
	fmt.Fprintln(w, style.Render(m.Text))
}
