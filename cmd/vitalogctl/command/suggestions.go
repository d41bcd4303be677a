package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalog-org/vitalog/medications"
)

var suggestionsUserId string

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Inspect medication suggestions",
}

var suggestionsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List pending medication suggestions for a user",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listPendingSuggestions) },
}

func listPendingSuggestions(manager medications.Manager) error {
	if suggestionsUserId == "" {
		return fmt.Errorf("--user is required")
	}

	list, err := manager.ListPending(context.TODO(), suggestionsUserId)
	if err != nil {
		return err
	}

	for _, suggestion := range list {
		fmt.Printf("%s %s %s %s (proposed by %s at %s)\n",
			suggestion.Id.Hex(),
			suggestion.Medication,
			suggestion.Dosage,
			suggestion.Frequency,
			suggestion.DoctorId,
			suggestion.CreatedTime.Format("2006-01-02 15:04:05"),
		)
	}
	fmt.Printf("Found %v pending suggestions\n", len(list))

	return nil
}

func init() {
	suggestionsPendingCmd.Flags().StringVar(&suggestionsUserId, "user", "", "User Id")
	suggestionsCmd.AddCommand(suggestionsPendingCmd)
	rootCmd.AddCommand(suggestionsCmd)
}
