package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage stored item records",
	Long:  `List, show and delete converted records kept in the item store.`,
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored items",
	Args:  cobra.NoArgs,
	RunE:  runItemsList,
}

var itemsGetCmd = &cobra.Command{
	Use:   "get [item-id]",
	Short: "Print a stored item as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsGet,
}

var itemsDeleteCmd = &cobra.Command{
	Use:   "delete [item-id]",
	Short: "Delete a stored item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsDelete,
}

func init() {
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsGetCmd)
	itemsCmd.AddCommand(itemsDeleteCmd)
	rootCmd.AddCommand(itemsCmd)
}

func runItemsList(cmd *cobra.Command, _ []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	items, err := itemService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	if len(items) == 0 {
		cmd.Println("No stored items.")
		return nil
	}

	cmd.Println(headingStyle.Render("Stored items"))
	for i := range items {
		title := items[i].Title
		if title == "" {
			title = "(untitled)"
		}
		cmd.Printf("  %s  %s\n", items[i].ID, title)
		cmd.Println(mutedStyle.Render(fmt.Sprintf("      %s  %s",
			items[i].SourceURI, items[i].CreatedAt.Format(time.RFC3339))))
	}
	return nil
}

func runItemsGet(cmd *cobra.Command, args []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	item, err := itemService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	data, err := json.MarshalIndent(item.Record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runItemsDelete(cmd *cobra.Command, args []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	if err := itemService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	cmd.Printf("Deleted item %s\n", args[0])
	return nil
}
