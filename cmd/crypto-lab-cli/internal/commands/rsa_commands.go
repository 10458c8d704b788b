package commands

import (
	"context"
	"crypto/rsa"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	commandHandler
}

// NewRSACommandHandler returns a handler whose dependencies are set up when a command runs
func NewRSACommandHandler() *RSACommandHandler {
	return &RSACommandHandler{}
}

// ensureKeys generates the key pair when it is missing and loads it
func (h *RSACommandHandler) ensureKeys(ctx context.Context, out io.Writer) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	service := h.deps.RSAService

	privExists := fileIsPresent(service.Settings().PrivateKeyPath)
	pubExists := fileIsPresent(service.Settings().PublicKeyPath)
	if privExists && pubExists {
		fmt.Fprintln(out, "[+] Keys already exist.")
	} else {
		fmt.Fprintln(out, "[*] Generating RSA key pair...")
	}

	generated, m, err := service.GenerateKeys(ctx)
	if err != nil {
		return nil, nil, err
	}
	if generated {
		fmt.Fprintf(out, "[+] RSA keys generated (%d bits).\n", service.Settings().KeySize)
		printTiming(out, m)
	}

	return service.LoadKeys()
}

func fileIsPresent(path string) bool {
	_, err := os.Stat(filepath.Clean(path))
	return err == nil
}

func (h *RSACommandHandler) encrypt(ctx context.Context, out io.Writer, publicKey *rsa.PublicKey, inputFile, outputFile string) error {
	m, err := h.deps.RSAService.EncryptFile(ctx, publicKey, inputFile, outputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "[+] Encrypted data saved to %s\n", outputFile)
	printTiming(out, m)
	return nil
}

func (h *RSACommandHandler) decrypt(ctx context.Context, out io.Writer, privateKey *rsa.PrivateKey, inputFile, outputFile string) error {
	plainText, m, err := h.deps.RSAService.DecryptFile(ctx, privateKey, inputFile)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(filepath.Clean(outputFile), plainText, 0600); err != nil {
			return fmt.Errorf("failed to write decrypted file: %w", err)
		}
		fmt.Fprintf(out, "[+] Decrypted data saved to %s\n", outputFile)
	} else {
		fmt.Fprintln(out, "[+] Decrypted content:")
		fmt.Fprintln(out, printableText(plainText))
	}
	printTiming(out, m)
	return nil
}

func (h *RSACommandHandler) sign(ctx context.Context, out io.Writer, privateKey *rsa.PrivateKey, inputFile, signatureFile string) error {
	m, err := h.deps.RSAService.SignFile(ctx, privateKey, inputFile, signatureFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "[+] Signature saved to %s\n", signatureFile)
	printTiming(out, m)
	return nil
}

func (h *RSACommandHandler) verify(ctx context.Context, out io.Writer, publicKey *rsa.PublicKey, inputFile, signatureFile string) (bool, error) {
	valid, m, err := h.deps.RSAService.VerifyFile(ctx, publicKey, inputFile, signatureFile)
	if err != nil {
		return false, err
	}
	if valid {
		fmt.Fprintln(out, "[+] Signature is VALID.")
	} else {
		fmt.Fprintln(out, "[-] Signature is INVALID.")
	}
	printTiming(out, m)
	return valid, nil
}

func (h *RSACommandHandler) hashFile(ctx context.Context, out io.Writer, inputFile string) error {
	digest, m, err := h.deps.HashService.HashFile(ctx, inputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "SHA-256 Hash: %s\n", digest)
	printTiming(out, m)
	return nil
}

// MenuCmd runs the interactive RSA menu
func (h *RSACommandHandler) MenuCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	prompter := NewPrompter(cmd.InOrStdin(), out)

	privateKey, publicKey, err := h.ensureKeys(ctx, out)
	if err != nil {
		return err
	}

	menu := NewMenu("RSA Command-Line Tool", "Select an option: ", prompter, out).
		Option("RSA Encryption", func() error {
			inputFile, err := prompter.Ask("Enter input file name: ")
			if err != nil {
				return err
			}
			outputFile, err := prompter.Ask("Enter output (encrypted) file name: ")
			if err != nil {
				return err
			}
			return h.encrypt(ctx, out, publicKey, inputFile, outputFile)
		}).
		Option("RSA Decryption", func() error {
			inputFile, err := prompter.Ask("Enter encrypted file name: ")
			if err != nil {
				return err
			}
			return h.decrypt(ctx, out, privateKey, inputFile, "")
		}).
		Option("RSA Signature", func() error {
			inputFile, err := prompter.Ask("Enter file name to sign: ")
			if err != nil {
				return err
			}
			signatureFile, err := prompter.Ask("Enter signature file name: ")
			if err != nil {
				return err
			}
			return h.sign(ctx, out, privateKey, inputFile, signatureFile)
		}).
		Option("RSA Signature Verification", func() error {
			inputFile, err := prompter.Ask("Enter file name to verify: ")
			if err != nil {
				return err
			}
			signatureFile, err := prompter.Ask("Enter signature file name: ")
			if err != nil {
				return err
			}
			_, err = h.verify(ctx, out, publicKey, inputFile, signatureFile)
			return err
		}).
		Option("SHA-256 Hash of a file", func() error {
			inputFile, err := prompter.Ask("Enter file name to hash: ")
			if err != nil {
				return err
			}
			return h.hashFile(ctx, out, inputFile)
		}).
		Exit("Exit")

	return menu.Run()
}

// GenerateKeysCmd creates the key pair unless both PEM files exist
func (h *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	_, _, err := h.ensureKeys(cmd.Context(), cmd.OutOrStdout())
	return err
}

// EncryptCmd encrypts a file with the public key
func (h *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := requiredFlag(cmd, "input-file")
	if err != nil {
		return err
	}
	outputFile, err := requiredFlag(cmd, "output-file")
	if err != nil {
		return err
	}

	_, publicKey, err := h.ensureKeys(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return h.encrypt(cmd.Context(), cmd.OutOrStdout(), publicKey, inputFile, outputFile)
}

// DecryptCmd decrypts a file with the private key and prints or saves the plaintext
func (h *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := requiredFlag(cmd, "input-file")
	if err != nil {
		return err
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}

	privateKey, _, err := h.ensureKeys(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return h.decrypt(cmd.Context(), cmd.OutOrStdout(), privateKey, inputFile, outputFile)
}

// SignCmd signs a file with the private key
func (h *RSACommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := requiredFlag(cmd, "input-file")
	if err != nil {
		return err
	}
	signatureFile, err := requiredFlag(cmd, "signature-file")
	if err != nil {
		return err
	}

	privateKey, _, err := h.ensureKeys(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return h.sign(cmd.Context(), cmd.OutOrStdout(), privateKey, inputFile, signatureFile)
}

// VerifyCmd verifies a file against its signature with the public key.
// An invalid signature is reported, not returned as an error.
func (h *RSACommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := requiredFlag(cmd, "input-file")
	if err != nil {
		return err
	}
	signatureFile, err := requiredFlag(cmd, "signature-file")
	if err != nil {
		return err
	}

	_, publicKey, err := h.ensureKeys(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	_, err = h.verify(cmd.Context(), cmd.OutOrStdout(), publicKey, inputFile, signatureFile)
	return err
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler := NewRSACommandHandler()

	var rsaCmd = &cobra.Command{
		Use:                "rsa",
		Short:              "RSA-OAEP encryption and PKCS#1 v1.5 signatures (interactive menu without a subcommand)",
		PersistentPreRunE: handler.prepare,
		RunE:              handler.run(handler.MenuCmd),
	}
	rootCmd.AddCommand(rsaCmd)

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair unless one already exists",
		RunE:  handler.run(handler.GenerateKeysCmd),
	}
	rsaCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file using RSA",
		RunE:  handler.run(handler.EncryptCmd),
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	rsaCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file using RSA",
		RunE:  handler.run(handler.DecryptCmd),
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Path to encrypted input file")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file (prints the content when empty)")
	rsaCmd.AddCommand(decryptCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file using RSA",
		RunE:  handler.run(handler.SignCmd),
	}
	signCmd.Flags().StringP("input-file", "", "", "Path to file that needs to be signed")
	signCmd.Flags().StringP("signature-file", "", "", "Path to write the signature")
	rsaCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a file's signature using RSA",
		RunE:  handler.run(handler.VerifyCmd),
	}
	verifyCmd.Flags().StringP("input-file", "", "", "Path to file whose signature is checked")
	verifyCmd.Flags().StringP("signature-file", "", "", "Path to the signature file")
	rsaCmd.AddCommand(verifyCmd)

	return nil
}
