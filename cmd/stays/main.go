// stays is a small terminal client for the property API, built on the
// same client core the listing UI uses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"alx_stays/internal/client"
	"alx_stays/internal/domain"
	"alx_stays/internal/shared"
)

func main() {
	cfg := shared.Load()
	api := client.NewAPI(cfg.APIBaseURL, 10)

	root := &cobra.Command{
		Use:           "stays",
		Short:         "Browse the property catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		search   string
		minPrice float64
		maxPrice float64
		ptype    string
		bedrooms int
		rating   float64
	)
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := domain.Criteria{Search: search, PropertyType: ptype}
			if cmd.Flags().Changed("min-price") {
				c.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				c.MaxPrice = &maxPrice
			}
			if cmd.Flags().Changed("bedrooms") {
				c.MinBedrooms = &bedrooms
			}
			if cmd.Flags().Changed("min-rating") {
				c.MinRating = &rating
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			ps, err := api.SearchProperties(ctx, c)
			if err != nil {
				return err
			}
			if len(ps) == 0 {
				fmt.Println("no properties match")
				return nil
			}
			for _, p := range ps {
				fmt.Printf("%-4s %-40s $%-7.0f %-10s %d bd  %.1f★  %s, %s\n",
					p.ID, p.Title, p.Price, p.Type, p.Bedrooms, p.Rating,
					p.Location.City, p.Location.Country)
			}
			return nil
		},
	}
	searchCmd.Flags().StringVar(&search, "search", "", "free-text search")
	searchCmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum nightly price")
	searchCmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum nightly price")
	searchCmd.Flags().StringVar(&ptype, "type", "", "property type (apartment, house, villa, cabin, ...)")
	searchCmd.Flags().IntVar(&bedrooms, "bedrooms", 0, "minimum bedrooms")
	searchCmd.Flags().Float64Var(&rating, "min-rating", 0, "minimum rating")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one property as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			p, err := api.GetProperty(ctx, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}

	reviewsCmd := &cobra.Command{
		Use:   "reviews <id>",
		Short: "List the reviews for a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := client.NewReviewLoader(api.GetReviews)
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			loader.Load(ctx, args[0])
			if loader.State() == client.ReviewFailed {
				return fmt.Errorf("%s", loader.Err())
			}
			rs := loader.Reviews()
			if len(rs) == 0 {
				fmt.Println("no reviews yet")
				return nil
			}
			for _, rv := range rs {
				fmt.Printf("%.0f★  %s — %s (%s)\n", rv.Rating, rv.UserName,
					rv.Comment, rv.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}

	root.AddCommand(searchCmd, showCmd, reviewsCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
