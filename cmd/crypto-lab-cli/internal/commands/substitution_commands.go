package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-lab/internal/app"
	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/cryptography"

	"github.com/spf13/cobra"
)

// SubstitutionCommandHandler encapsulates the substitution cipher frequency attack via CLI.
type SubstitutionCommandHandler struct {
	commandHandler
}

// NewSubstitutionCommandHandler returns a handler whose dependencies are set up when a command runs
func NewSubstitutionCommandHandler() *SubstitutionCommandHandler {
	return &SubstitutionCommandHandler{}
}

func mappingOverrides(cmd *cobra.Command) (cryptoalg.Mapping, error) {
	value, err := cmd.Flags().GetString("map")
	if err != nil {
		return nil, fmt.Errorf("invalid map flag: %w", err)
	}
	return cryptography.ParseMapping(value)
}

// ciphertextInput returns --text or the contents of --input-file; exactly one must be set
func (h *SubstitutionCommandHandler) ciphertextInput(cmd *cobra.Command) (string, error) {
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return "", fmt.Errorf("invalid text flag: %w", err)
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", fmt.Errorf("invalid input-file flag: %w", err)
	}

	switch {
	case text != "" && inputFile != "":
		return "", errors.New("--text and --input-file are mutually exclusive")
	case inputFile != "":
		return h.deps.SubstitutionService.ReadCiphertext(inputFile)
	case text != "":
		return text, nil
	}
	return "", errors.New("--text or --input-file is required")
}

func printSubstitutionReport(out io.Writer, report *app.SubstitutionReport) {
	fmt.Fprintf(out, "Original Cipher Text:\n%s\n\n", report.Ciphertext)

	fmt.Fprintln(out, "Cipher Frequency Analysis:")
	fmt.Fprintln(out, "Letter | Count | Percentage")
	fmt.Fprintln(out, "-------|-------|----------")
	for _, f := range report.Frequencies {
		fmt.Fprintf(out, "   %c   |  %3d   |   %.2f%%\n", f.Letter, f.Count, f.Percent)
	}
	fmt.Fprintf(out, "\nTotal letters: %d\n\n", report.TotalLetters)

	fmt.Fprintln(out, "Initial Frequency Mapping:")
	fmt.Fprintln(out, "Cipher -> English | Cipher% -> English%")
	fmt.Fprintln(out, "------------------|-------------------")
	for _, p := range report.Pairs {
		fmt.Fprintf(out, "   %c   ->   %c     |   %.1f%%  ->  %.1f%%\n", p.Cipher, p.Plain, p.CipherPercent, p.EnglishPercent)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Initial Decryption (Frequency Mapping):\n%s\n\n", report.Initial)

	fmt.Fprintln(out, "Common Word Patterns Found:")
	fmt.Fprintln(out, "Word | Count | Likely English")
	fmt.Fprintln(out, "-----|-------|---------------")
	for _, w := range report.WordPatterns {
		fmt.Fprintf(out, "%4s |  %3d", w.Word, w.Count)
		if w.Suggestion != "" {
			fmt.Fprintf(out, "   | %s", w.Suggestion)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Pattern-Based Mapping Suggestions:")
	for _, hint := range report.Hints {
		fmt.Fprintf(out, "'%s' -> '%s' (%s)\n", hint.Cipher, hint.Plain, hint.Reason)
	}
	fmt.Fprintf(out, "\nImproved Decryption (Pattern-Based):\n%s\n\n", report.Improved)

	if report.Final != "" {
		fmt.Fprintf(out, "Final Decryption (Manual Adjustments):\n%s\n\n", report.Final)
	}
	fmt.Fprintln(out, "=== DECRYPTION COMPLETE ===")
}

// PromptCmd reads one line of ciphertext from the console and prints the full analysis
func (h *SubstitutionCommandHandler) PromptCmd(cmd *cobra.Command, _ []string) error {
	overrides, err := mappingOverrides(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	prompter := NewPrompter(cmd.InOrStdin(), out)

	fmt.Fprint(out, "=== SUBSTITUTION CIPHER DECRYPTOR ===\n\n")
	ciphertext, err := prompter.AskRaw("Enter ciphertext: ")
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
		return errors.New("no ciphertext to analyze: input ended")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	report, m := h.deps.SubstitutionService.Analyze(cmd.Context(), ciphertext, overrides)
	printSubstitutionReport(out, report)
	printTiming(out, m)
	return nil
}

// AnalyzeCmd prints the full analysis of --text or --input-file
func (h *SubstitutionCommandHandler) AnalyzeCmd(cmd *cobra.Command, _ []string) error {
	overrides, err := mappingOverrides(cmd)
	if err != nil {
		return err
	}
	ciphertext, err := h.ciphertextInput(cmd)
	if err != nil {
		return err
	}

	report, m := h.deps.SubstitutionService.Analyze(cmd.Context(), ciphertext, overrides)
	printSubstitutionReport(cmd.OutOrStdout(), report)
	printTiming(cmd.OutOrStdout(), m)
	return nil
}

// DecryptCmd prints only the decryption under the frequency mapping and --map
func (h *SubstitutionCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	overrides, err := mappingOverrides(cmd)
	if err != nil {
		return err
	}
	ciphertext, err := h.ciphertextInput(cmd)
	if err != nil {
		return err
	}

	plaintext, m := h.deps.SubstitutionService.Decrypt(cmd.Context(), ciphertext, overrides)
	fmt.Fprintf(cmd.OutOrStdout(), "[+] Decrypted content:\n%s\n", plaintext)
	printTiming(cmd.OutOrStdout(), m)
	return nil
}

// InitSubstitutionCommands registers substitution cipher commands
func InitSubstitutionCommands(rootCmd *cobra.Command) error {
	handler := NewSubstitutionCommandHandler()

	var substitutionCmd = &cobra.Command{
		Use:               "substitution",
		Short:             "Frequency analysis of substitution ciphers (prompts for ciphertext without a subcommand)",
		PersistentPreRunE: handler.prepare,
		RunE:              handler.run(handler.PromptCmd),
	}
	substitutionCmd.PersistentFlags().StringP("map", "", "", "Manual mapping overrides as cipher=plain pairs, e.g. \"a=i,f=n\"")
	rootCmd.AddCommand(substitutionCmd)

	var analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Print the frequency analysis and decryption attempts for a ciphertext",
		RunE:  handler.run(handler.AnalyzeCmd),
	}
	analyzeCmd.Flags().StringP("text", "", "", "Ciphertext given on the command line")
	analyzeCmd.Flags().StringP("input-file", "", "", "Path to file holding the ciphertext")
	substitutionCmd.AddCommand(analyzeCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext with the frequency mapping and manual overrides",
		RunE:  handler.run(handler.DecryptCmd),
	}
	decryptCmd.Flags().StringP("text", "", "", "Ciphertext given on the command line")
	decryptCmd.Flags().StringP("input-file", "", "", "Path to file holding the ciphertext")
	substitutionCmd.AddCommand(decryptCmd)

	return nil
}
