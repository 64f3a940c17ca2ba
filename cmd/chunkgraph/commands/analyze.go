package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/chunkgraph/internal/app"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/ui/output"
	"go.trai.ch/chunkgraph/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Optimize the chunk graph and report every chunk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			outFile, _ := cmd.Flags().GetString("out")
			jobs, _ := cmd.Flags().GetInt("jobs")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			if jobs < 0 {
				return zerr.With(domain.ErrInvalidValue, "jobs", jobs)
			}

			analysis, err := c.app.Analyze(cmd.Context(), configPath(cmd), app.AnalyzeOptions{
				Parallelism: jobs,
				DryRun:      dryRun,
			})
			if err != nil {
				return err
			}

			if outFile != "" {
				if err := writeJSONFile(outFile, analysis); err != nil {
					return err
				}
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), analysis)
			}
			renderTable(cmd.OutOrStdout(), analysis)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the reports as JSON")
	cmd.Flags().StringP("out", "o", "", "Write the reports as JSON to a file")
	cmd.Flags().IntP("jobs", "j", 0, "Number of report workers (0 uses all CPUs)")
	cmd.Flags().Bool("dry-run", false, "Do not store the reports")
	return cmd
}

func writeJSON(w io.Writer, analysis *domain.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analysis); err != nil {
		return zerr.Wrap(err, "failed to encode analysis")
	}
	return nil
}

func writeJSONFile(path string, analysis *domain.Analysis) error {
	// #nosec G304 -- path is provided by the user
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output file"), "path", path)
	}
	if err := writeJSON(f, analysis); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close output file"), "path", path)
	}
	return nil
}

// renderTable prints one row per chunk followed by the optimization summary.
func renderTable(w io.Writer, analysis *domain.Analysis) {
	r := output.Renderer(w)
	header := r.NewStyle().Bold(true).Foreground(style.Iris).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	muted := r.NewStyle().Foreground(style.Slate)

	rows := make([][]string, 0, len(analysis.Chunks))
	for i := range analysis.Chunks {
		ch := &analysis.Chunks[i]
		initial := style.AsyncChunk
		if ch.Initial {
			initial = style.InitialChunk
		}
		changed := ""
		if ch.Changed {
			changed = style.ChangedChunk
		}
		rows = append(rows, []string{
			ch.ID,
			ch.Name,
			strconv.Itoa(len(ch.Modules)),
			strconv.FormatFloat(ch.Size, 'f', -1, 64),
			initial,
			strings.Join(ch.Runtime, ","),
			changed,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(muted).
		Headers("ID", "NAME", "MODULES", "SIZE", "INITIAL", "RUNTIME", "CHANGED").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if row < 0 || row >= len(analysis.Chunks) {
				return cell
			}
			ch := &analysis.Chunks[row]
			return cell.Foreground(style.ChunkColor(ch.Initial, ch.Changed))
		})

	_, _ = fmt.Fprintln(w, t.Render())
	s := analysis.Stats
	_, _ = fmt.Fprintln(w, muted.Render(fmt.Sprintf(
		"%d chunks, %d split chunks created, %d reused, %d empty removed, %d merged",
		len(analysis.Chunks), s.SplitChunksCreated, s.SplitChunksReused, s.EmptyChunksRemoved, s.ChunksMerged,
	)))
}
