package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// SHA256CommandHandler encapsulates logic for handling SHA-256 hashing via CLI.
type SHA256CommandHandler struct {
	commandHandler
}

// NewSHA256CommandHandler returns a handler whose dependencies are set up when a command runs
func NewSHA256CommandHandler() *SHA256CommandHandler {
	return &SHA256CommandHandler{}
}

// PromptCmd hashes a single line read from the console
func (h *SHA256CommandHandler) PromptCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	prompter := NewPrompter(cmd.InOrStdin(), out)

	text, err := prompter.AskRaw("Enter text to hash (SHA-256): ")
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
		return errors.New("no text to hash: input ended")
	}
	if err != nil {
		return err
	}

	digest, m := h.deps.HashService.HashText(cmd.Context(), text)
	fmt.Fprintf(out, "SHA-256 Hash: %s\n", digest)
	printTiming(out, m)
	return nil
}

// HashTextCmd hashes the --text flag
func (h *SHA256CommandHandler) HashTextCmd(cmd *cobra.Command, _ []string) error {
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return fmt.Errorf("invalid text flag: %w", err)
	}

	digest, m := h.deps.HashService.HashText(cmd.Context(), text)
	fmt.Fprintf(cmd.OutOrStdout(), "SHA-256 Hash: %s\n", digest)
	printTiming(cmd.OutOrStdout(), m)
	return nil
}

// HashFileCmd hashes the contents of --input-file
func (h *SHA256CommandHandler) HashFileCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := requiredFlag(cmd, "input-file")
	if err != nil {
		return err
	}

	digest, m, err := h.deps.HashService.HashFile(cmd.Context(), inputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "SHA-256 Hash: %s\n", digest)
	printTiming(cmd.OutOrStdout(), m)
	return nil
}

// InitSHA256Commands registers SHA-256 commands
func InitSHA256Commands(rootCmd *cobra.Command) error {
	handler := NewSHA256CommandHandler()

	var sha256Cmd = &cobra.Command{
		Use:                "sha256",
		Short:              "SHA-256 hashing (prompts for text without a subcommand)",
		PersistentPreRunE: handler.prepare,
		RunE:              handler.run(handler.PromptCmd),
	}
	rootCmd.AddCommand(sha256Cmd)

	var hashTextCmd = &cobra.Command{
		Use:   "hash-text",
		Short: "Hash a text given on the command line",
		RunE:  handler.run(handler.HashTextCmd),
	}
	hashTextCmd.Flags().StringP("text", "", "", "Text to hash")
	sha256Cmd.AddCommand(hashTextCmd)

	var hashFileCmd = &cobra.Command{
		Use:   "hash-file",
		Short: "Hash the contents of a file",
		RunE:  handler.run(handler.HashFileCmd),
	}
	hashFileCmd.Flags().StringP("input-file", "", "", "Path to file that needs to be hashed")
	sha256Cmd.AddCommand(hashFileCmd)

	return nil
}
