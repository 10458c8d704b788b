package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	commandHandler
}

// NewAESCommandHandler returns a handler whose dependencies are set up when a command runs
func NewAESCommandHandler() *AESCommandHandler {
	return &AESCommandHandler{}
}

func (h *AESCommandHandler) loadKey(ctx context.Context, out io.Writer) ([]byte, error) {
	service := h.deps.AESService
	if _, err := os.Stat(filepath.Clean(service.KeyPath())); os.IsNotExist(err) {
		fmt.Fprintln(out, "[-] AES key not found. Generating new key...")
	}

	key, generated, err := service.LoadKey(ctx)
	if err != nil {
		return nil, err
	}
	if generated {
		fmt.Fprintf(out, "[+] AES key generated and saved to %s\n", service.KeyPath())
	}
	return key, nil
}

func (h *AESCommandHandler) encrypt(ctx context.Context, out io.Writer, key []byte, inputFile, outputFile string) error {
	m, err := h.deps.AESService.EncryptFile(ctx, key, inputFile, outputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "[+] Encrypted and saved to %s\n", outputFile)
	printTiming(out, m)
	return nil
}

func (h *AESCommandHandler) decrypt(ctx context.Context, out io.Writer, key []byte, inputFile, outputFile string) error {
	plainText, m, err := h.deps.AESService.DecryptFile(ctx, key, inputFile)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(filepath.Clean(outputFile), plainText, 0600); err != nil {
			return fmt.Errorf("failed to write decrypted file: %w", err)
		}
		fmt.Fprintf(out, "[+] Decrypted and saved to %s\n", outputFile)
	} else {
		fmt.Fprintf(out, "[+] Decrypted content:\n%s\n", printableText(plainText))
	}
	printTiming(out, m)
	return nil
}

// MenuCmd runs the interactive AES menu
func (h *AESCommandHandler) MenuCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	prompter := NewPrompter(cmd.InOrStdin(), out)

	key, err := h.loadKey(ctx, out)
	if err != nil {
		return err
	}

	menu := NewMenu("AES Command-Line Tool", "Choose an option: ", prompter, out).
		Option("Encrypt a file", func() error {
			inputFile, err := prompter.Ask("Enter input file name: ")
			if err != nil {
				return err
			}
			outputFile, err := prompter.Ask("Enter output (encrypted) file name: ")
			if err != nil {
				return err
			}
			return h.encrypt(ctx, out, key, inputFile, outputFile)
		}).
		Option("Decrypt a file", func() error {
			inputFile, err := prompter.Ask("Enter encrypted file name: ")
			if err != nil {
				return err
			}
			return h.decrypt(ctx, out, key, inputFile, "")
		}).
		Exit("Exit")

	return menu.Run()
}

// GenerateKeyCmd replaces the AES key file with a fresh key
func (h *AESCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	if _, err := h.deps.AESService.GenerateKey(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[+] AES key generated and saved to %s\n", h.deps.AESService.KeyPath())
	return nil
}

// EncryptCmd encrypts a file with the persisted AES key
func (h *AESCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := requiredFlag(cmd, "input-file")
	if err != nil {
		return err
	}
	outputFile, err := requiredFlag(cmd, "output-file")
	if err != nil {
		return err
	}

	key, err := h.loadKey(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return h.encrypt(cmd.Context(), cmd.OutOrStdout(), key, inputFile, outputFile)
}

// DecryptCmd decrypts a file with the persisted AES key and prints or saves the plaintext
func (h *AESCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := requiredFlag(cmd, "input-file")
	if err != nil {
		return err
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	key, err := h.loadKey(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return h.decrypt(cmd.Context(), cmd.OutOrStdout(), key, inputFile, outputFile)
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler := NewAESCommandHandler()

	var aesCmd = &cobra.Command{
		Use:                "aes",
		Short:              "AES-256-CBC file encryption (interactive menu without a subcommand)",
		PersistentPreRunE: handler.prepare,
		RunE:              handler.run(handler.MenuCmd),
	}
	rootCmd.AddCommand(aesCmd)

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a new AES key, overwriting the existing key file",
		RunE:  handler.run(handler.GenerateKeyCmd),
	}
	aesCmd.AddCommand(generateKeyCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file using AES",
		RunE:  handler.run(handler.EncryptCmd),
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	aesCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file using AES",
		RunE:  handler.run(handler.DecryptCmd),
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file (prints the content when empty)")
	aesCmd.AddCommand(decryptCmd)

	return nil
}
