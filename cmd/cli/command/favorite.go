package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Favorite movie commands",
	Long:  `Manage your favorite movies: list, add, remove and check.`,
}

var listFavoriteCmd = &cobra.Command{
	Use:   "list",
	Short: "List your favorite movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, creds, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		result, err := httpClient.ListFavorites(creds.UserID, page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list favorites: %w", err)
		}

		if len(result.Data) == 0 {
			fmt.Println("No favorites yet.")
			return nil
		}

		fmt.Printf("Favorites of %s (Page %d/%d, Total: %d):\n\n", creds.Username, result.Page, result.TotalPages, result.Total)
		for _, f := range result.Data {
			if f.Movie != nil {
				printMovie(f.Movie)
			} else {
				fmt.Printf("Movie ID: %d\n", f.MovieID)
			}
		}
		return nil
	},
}

var addFavoriteCmd = &cobra.Command{
	Use:   "add [movie-id]",
	Short: "Add a movie to your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		if _, err := httpClient.AddFavorite(movieID); err != nil {
			return fmt.Errorf("failed to add favorite: %w", err)
		}
		success("Movie %d added to favorites", movieID)
		return nil
	},
}

var removeFavoriteCmd = &cobra.Command{
	Use:   "remove [movie-id]",
	Short: "Remove a movie from your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.RemoveFavorite(movieID); err != nil {
			return fmt.Errorf("failed to remove favorite: %w", err)
		}
		success("Movie %d removed from favorites", movieID)
		return nil
	},
}

var checkFavoriteCmd = &cobra.Command{
	Use:   "check [movie-id]",
	Short: "Check whether a movie is in your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		httpClient, creds, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		ok, err := httpClient.IsFavorite(movieID, creds.UserID)
		if err != nil {
			return fmt.Errorf("failed to check favorite: %w", err)
		}
		if ok {
			success("Movie %d is in your favorites", movieID)
		} else {
			fmt.Printf("Movie %d is not in your favorites\n", movieID)
		}
		return nil
	},
}

func init() {
	favoriteCmd.AddCommand(listFavoriteCmd, addFavoriteCmd, removeFavoriteCmd, checkFavoriteCmd)

	listFavoriteCmd.Flags().Int("page", 1, "Page number")
	listFavoriteCmd.Flags().Int("page-size", 20, "Number of favorites per page")
}
