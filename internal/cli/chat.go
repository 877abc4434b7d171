package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/wire"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Stored chat histories (mentor, onboarding)",
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Print a chat history",
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, err := chatChannel(cmd)
		if err != nil {
			return err
		}

		messages := wire.ChatService().History(NewContext(), channel)
		if len(messages) == 0 {
			fmt.Println("No messages")
			return nil
		}
		for _, m := range messages {
			fmt.Printf("[%s] %s: %s\n", m.Timestamp, m.Role, m.Content)
		}
		return nil
	},
}

var chatAppendCmd = &cobra.Command{
	Use:   "append [content]",
	Short: "Append a message to a chat history",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, err := chatChannel(cmd)
		if err != nil {
			return err
		}
		role, _ := cmd.Flags().GetString("role")

		msg, err := wire.ChatService().Append(NewContext(), channel, role, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to append message: %w", err)
		}

		fmt.Printf("✓ Appended %s message %s\n", msg.Role, msg.ID)
		return nil
	},
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete a chat history",
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, err := chatChannel(cmd)
		if err != nil {
			return err
		}

		if err := wire.ChatService().Clear(NewContext(), channel); err != nil {
			return fmt.Errorf("failed to clear chat: %w", err)
		}

		fmt.Printf("✓ Cleared %s chat\n", channel)
		return nil
	},
}

func chatChannel(cmd *cobra.Command) (primary.ChatChannel, error) {
	name, _ := cmd.Flags().GetString("channel")
	switch ch := primary.ChatChannel(name); ch {
	case primary.ChatMentor, primary.ChatOnboarding:
		return ch, nil
	default:
		return "", fmt.Errorf("invalid channel: %s\nValid channels: mentor, onboarding", name)
	}
}

func init() {
	chatCmd.PersistentFlags().StringP("channel", "c", string(primary.ChatMentor), "Chat channel (mentor or onboarding)")
	chatAppendCmd.Flags().StringP("role", "r", models.RoleUser, "Message role (user or assistant)")

	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatAppendCmd)
	chatCmd.AddCommand(chatClearCmd)
}

// ChatCmd returns the chat command
func ChatCmd() *cobra.Command {
	return chatCmd
}
