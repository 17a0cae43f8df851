package command

import (
	"fmt"
	"strings"

	"moviereview/cmd/cli/command/client"
	"moviereview/cmd/cli/dto"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review commands",
	Long:  `List and post movie reviews. New reviews stay hidden until a moderator approves them.`,
}

var listReviewCmd = &cobra.Command{
	Use:   "list [movie-id]",
	Short: "List reviews for a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")

		reviews, err := client.NewHTTPClient(apiURL).ListReviews(movieID, !all)
		if err != nil {
			return fmt.Errorf("failed to list reviews: %w", err)
		}

		if len(reviews) == 0 {
			fmt.Println("No reviews yet.")
			return nil
		}
		for _, r := range reviews {
			printReview(&r)
		}
		return nil
	},
}

var addReviewCmd = &cobra.Command{
	Use:   "add [movie-id] [text]",
	Short: "Review a movie",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := parseID(args[0], "movie")
		if err != nil {
			return err
		}
		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		req := dto.CreateReviewRequest{Text: strings.Join(args[1:], " ")}
		if cmd.Flags().Changed("rating") {
			rating, _ := cmd.Flags().GetInt("rating")
			if rating < 1 || rating > 5 {
				return fmt.Errorf("rating must be between 1 and 5")
			}
			req.Rating = &rating
		}

		review, err := httpClient.CreateReview(movieID, &req)
		if err != nil {
			return fmt.Errorf("failed to post review: %w", err)
		}

		success("Review %d submitted, awaiting moderation", review.ID)
		return nil
	},
}

var pendingReviewCmd = &cobra.Command{
	Use:   "pending",
	Short: "List reviews awaiting approval (moderators only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		result, err := httpClient.PendingReviews(page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list pending reviews: %w", err)
		}

		if len(result.Data) == 0 {
			fmt.Println("Nothing to moderate.")
			return nil
		}
		fmt.Printf("Pending reviews (Page %d/%d, Total: %d):\n\n", result.Page, result.TotalPages, result.Total)
		for _, r := range result.Data {
			printReview(&r)
		}
		return nil
	},
}

var approveReviewCmd = &cobra.Command{
	Use:   "approve [review-id]",
	Short: "Approve a review (moderators only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "review")
		if err != nil {
			return err
		}
		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.ApproveReview(id); err != nil {
			return fmt.Errorf("failed to approve review: %w", err)
		}
		success("Review %d approved", id)
		return nil
	},
}

var deleteReviewCmd = &cobra.Command{
	Use:   "delete [review-id]",
	Short: "Delete your review (moderators can delete any)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "review")
		if err != nil {
			return err
		}
		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.DeleteReview(id); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		success("Review %d deleted", id)
		return nil
	},
}

func printReview(r *dto.ReviewResponse) {
	header := fmt.Sprintf("#%d by user %d", r.ID, r.UserID)
	if r.Username != "" {
		header = fmt.Sprintf("#%d by %s", r.ID, r.Username)
	}
	if r.MovieTitle != "" {
		header += " on " + r.MovieTitle
	}
	if r.Approved {
		color.Cyan("%s", header)
	} else {
		color.Yellow("%s [pending]", header)
	}
	if r.Rating != nil {
		fmt.Printf("Rating: %d/5\n", *r.Rating)
	}
	fmt.Println(r.Text)
	fmt.Println(strings.Repeat("-", 50))
}

func init() {
	reviewCmd.AddCommand(listReviewCmd, addReviewCmd, pendingReviewCmd, approveReviewCmd, deleteReviewCmd)

	listReviewCmd.Flags().Bool("all", false, "Include reviews awaiting approval")
	addReviewCmd.Flags().Int("rating", 0, "Optional score from 1 to 5")
	pendingReviewCmd.Flags().Int("page", 1, "Page number")
	pendingReviewCmd.Flags().Int("page-size", 20, "Number of reviews per page")
}
