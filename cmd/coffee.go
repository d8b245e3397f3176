package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"coffeebar.GO/service/coffee"
	"coffeebar.GO/service/shop"
)

var (
	coffeeKind  string
	coffeeQuery string
	coffeeSort  string
	cartSession string
)

var coffeeListCmd = &cobra.Command{
	Use:   "coffee:list",
	Short: "Show the drinks of one kind, filtered and sorted",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		ctl := d.Shop(cmd.Context(), sessionKey(d.Config.CartKey), shop.ParseState(coffeeKind, coffeeQuery, coffeeSort))
		_ = ctl.Load(cmd.Context())
		renderScreen(cmd.OutOrStdout(), ctl.Screen())
		return nil
	},
}

func init() {
	coffeeListCmd.Flags().StringVarP(&coffeeKind, "kind", "k", string(coffee.KindHot), "hot or cold")
	coffeeListCmd.Flags().StringVarP(&coffeeQuery, "query", "q", "", "Filter on title, description and ingredients")
	coffeeListCmd.Flags().StringVarP(&coffeeSort, "sort", "s", "", "title-asc, title-desc, price-asc or price-desc")
	rootCmd.AddCommand(coffeeListCmd)
}

// renderScreen prints the coffee cards followed by the cart summary.
func renderScreen(w io.Writer, s shop.Screen) {
	fmt.Fprintln(w, headerStyle.Render(s.State.Kind.Label()+" coffee"))
	if s.Status != "" {
		fmt.Fprintln(w, mutedStyle.Render(s.Status))
	}
	for _, card := range s.Cards {
		renderCard(w, card)
	}
	if s.Count > 0 {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Cart: %d item(s), %s", s.Count, coffee.FormatPrice(s.Total))))
	}
}

func renderCard(w io.Writer, d coffee.Display) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	if d.Badge != "" {
		b.WriteString(" " + badgeStyle.Render("["+d.Badge+"]"))
	}
	b.WriteString("\n")
	if d.Description != "" {
		b.WriteString(d.Description + "\n")
	}
	b.WriteString(mutedStyle.Render("Ingredients: "+d.Ingredients) + "\n")
	b.WriteString(priceStyle.Render(d.Price))
	if !d.SoldOut {
		b.WriteString(mutedStyle.Render("  id=" + d.ID))
	}
	fmt.Fprintln(w, boxStyle.Render(b.String()))
}
