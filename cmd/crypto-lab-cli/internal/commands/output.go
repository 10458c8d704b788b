package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"
)

func printTiming(out io.Writer, m *measurements.Measurement) {
	fmt.Fprintf(out, "    Time taken: %.6fs (%.2f bits/sec)\n", m.Elapsed.Seconds(), m.BitsPerSecond())
}

// printableText drops byte sequences that are not valid UTF-8
func printableText(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}
