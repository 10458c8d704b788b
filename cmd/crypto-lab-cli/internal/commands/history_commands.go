package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"

	"github.com/spf13/cobra"
)

// DefaultHistoryLimit caps the listing when --limit is not given
const DefaultHistoryLimit = 20

// HistoryCommandHandler lists recorded measurements
type HistoryCommandHandler struct {
	commandHandler
}

// NewHistoryCommandHandler returns a handler whose dependencies are set up when a command runs
func NewHistoryCommandHandler() *HistoryCommandHandler {
	return &HistoryCommandHandler{}
}

func historyQuery(cmd *cobra.Command) (*measurements.MeasurementQuery, error) {
	query := measurements.NewMeasurementQuery()

	var err error
	if query.Tool, err = cmd.Flags().GetString("tool"); err != nil {
		return nil, fmt.Errorf("invalid tool flag: %w", err)
	}
	if query.Operation, err = cmd.Flags().GetString("operation"); err != nil {
		return nil, fmt.Errorf("invalid operation flag: %w", err)
	}
	if query.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
		return nil, fmt.Errorf("invalid limit flag: %w", err)
	}
	if query.Offset, err = cmd.Flags().GetInt("offset"); err != nil {
		return nil, fmt.Errorf("invalid offset flag: %w", err)
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}
	return query, nil
}

// ListCmd prints recorded measurements, newest first
func (h *HistoryCommandHandler) ListCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !h.deps.Recorder.Enabled() {
		fmt.Fprintln(out, "Measurement history is disabled.")
		return nil
	}

	query, err := historyQuery(cmd)
	if err != nil {
		return err
	}

	history, err := h.deps.Recorder.History(cmd.Context(), query)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(out, "No measurements recorded.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tTOOL\tOPERATION\tOUTCOME\tBITS\tSECONDS\tBITS/SEC")
	for _, m := range history {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.6f\t%.2f\n",
			m.DateTimeCreated.Local().Format(time.DateTime),
			m.Tool, m.Operation, m.Outcome, m.Bits, m.Elapsed.Seconds(), m.BitsPerSecond())
	}
	return w.Flush()
}

// InitHistoryCommands registers the measurement history command
func InitHistoryCommands(rootCmd *cobra.Command) error {
	handler := NewHistoryCommandHandler()

	var historyCmd = &cobra.Command{
		Use:                "history",
		Short:              "List recorded timing measurements",
		PersistentPreRunE: handler.prepare,
		RunE:              handler.run(handler.ListCmd),
	}
	historyCmd.Flags().StringP("tool", "", "", "Only show measurements of this tool (aes, rsa, sha256, substitution)")
	historyCmd.Flags().StringP("operation", "", "", "Only show measurements of this operation")
	historyCmd.Flags().IntP("limit", "", DefaultHistoryLimit, "Maximum number of measurements to show")
	historyCmd.Flags().IntP("offset", "", 0, "Number of measurements to skip")
	rootCmd.AddCommand(historyCmd)

	return nil
}
