package command

import (
	"fmt"
	"strings"

	"moviereview/cmd/cli/command/client"
	"moviereview/cmd/cli/dto"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Movie commands",
	Long:  `Browse movies; admins can also add and delete them.`,
}

var listMovieCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		genre, _ := cmd.Flags().GetString("genre")
		sort, _ := cmd.Flags().GetString("sort")

		movies, err := client.NewHTTPClient(apiURL).ListMovies(genre, sort)
		if err != nil {
			return fmt.Errorf("failed to get movie list: %w", err)
		}

		if len(movies) == 0 {
			fmt.Println("No movies found.")
			return nil
		}

		fmt.Printf("Found %d movies:\n\n", len(movies))
		for _, m := range movies {
			printMovie(&m)
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var getMovieCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get movie by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}

		movie, err := client.NewHTTPClient(apiURL).GetMovie(id)
		if err != nil {
			return fmt.Errorf("failed to get movie: %w", err)
		}

		printMovie(movie)
		if movie.Description != nil {
			fmt.Printf("Description: %s\n", *movie.Description)
		}
		if movie.PosterURL != nil {
			fmt.Printf("Poster: %s\n", *movie.PosterURL)
		}
		return nil
	},
}

var statsMovieCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalogue totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.NewHTTPClient(apiURL).MovieStats()
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Printf("Movies:  %d\n", stats.MoviesCount)
		fmt.Printf("Reviews: %d\n", stats.ReviewsCount)
		return nil
	},
}

var addMovieCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a movie (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		var req dto.CreateMovieRequest
		req.Title, _ = cmd.Flags().GetString("title")
		req.Genre, _ = cmd.Flags().GetString("genre")
		req.Year, _ = cmd.Flags().GetInt("year")
		if cmd.Flags().Changed("description") {
			desc, _ := cmd.Flags().GetString("description")
			req.Description = &desc
		}
		if cmd.Flags().Changed("poster") {
			poster, _ := cmd.Flags().GetString("poster")
			req.PosterURL = &poster
		}

		movie, err := httpClient.CreateMovie(&req)
		if err != nil {
			return fmt.Errorf("failed to create movie: %w", err)
		}

		success("Movie created with ID %d", movie.ID)
		return nil
	},
}

var deleteMovieCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a movie with its reviews, ratings and favorites (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.DeleteMovie(id); err != nil {
			return fmt.Errorf("failed to delete movie: %w", err)
		}

		success("Movie %d deleted", id)
		return nil
	},
}

func printMovie(m *dto.MovieResponse) {
	color.Cyan("%s (%d)", m.Title, m.Year)
	fmt.Printf("ID: %d\n", m.ID)
	fmt.Printf("Genre: %s\n", m.Genre)
}

func init() {
	movieCmd.AddCommand(listMovieCmd, getMovieCmd, statsMovieCmd, addMovieCmd, deleteMovieCmd)

	listMovieCmd.Flags().String("genre", "", "Only movies of this genre")
	listMovieCmd.Flags().String("sort", "popular", "Sort order: popular, title or year")

	addMovieCmd.Flags().String("title", "", "Movie title")
	addMovieCmd.Flags().String("genre", "", "Movie genre")
	addMovieCmd.Flags().Int("year", 0, "Release year")
	addMovieCmd.Flags().String("description", "", "Short description")
	addMovieCmd.Flags().String("poster", "", "Poster image URL")
	addMovieCmd.MarkFlagRequired("title")
	addMovieCmd.MarkFlagRequired("genre")
	addMovieCmd.MarkFlagRequired("year")
}
