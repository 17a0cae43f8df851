package command

import (
	"fmt"
	"strconv"
	"strings"

	"moviereview/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Rating commands",
	Long:  `Rate movies from 0 to 5 and list their ratings`,
}

var addRatingCmd = &cobra.Command{
	Use:   "add [movie-id] [value]",
	Short: "Rate a movie (0-5)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid rating: %w", err)
		}
		if value < 0 || value > 5 {
			return fmt.Errorf("rating must be between 0 and 5")
		}

		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		result, err := httpClient.CreateRating(movieID, value)
		if err != nil {
			return fmt.Errorf("failed to rate movie: %w", err)
		}

		success("Rating submitted successfully!")
		fmt.Printf("Movie ID: %d\n", movieID)
		fmt.Printf("Your Rating: %.1f/5\n", result.Value)
		return nil
	},
}

var listRatingsCmd = &cobra.Command{
	Use:   "list [movie-id]",
	Short: "List all ratings for a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}

		ratings, err := client.NewHTTPClient(apiURL).ListRatings(movieID)
		if err != nil {
			return fmt.Errorf("failed to list ratings: %w", err)
		}

		if len(ratings) == 0 {
			fmt.Println("No ratings found for this movie.")
			return nil
		}

		var sum float64
		for _, r := range ratings {
			sum += r.Value
			fmt.Printf("User %d: %.1f/5 (%s)\n", r.UserID, r.Value, r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("Average: %.2f/5 over %d ratings\n", sum/float64(len(ratings)), len(ratings))
		return nil
	},
}

func init() {
	ratingCmd.AddCommand(addRatingCmd, listRatingsCmd)
}
