package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/adhd-selfcheck/backend/internal/api"
	"github.com/adhd-selfcheck/backend/internal/domain/category"
	"github.com/adhd-selfcheck/backend/internal/domain/interpretation"
	"github.com/adhd-selfcheck/backend/internal/domain/questionnaire"
	"github.com/adhd-selfcheck/backend/internal/domain/report"
	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
	"github.com/adhd-selfcheck/backend/internal/simulation"
)

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the questionnaire and answer scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, q := range questionnaire.Questions() {
				fmt.Fprintf(out, "%2d. [%s] %s\n", q.ID, q.Category.Label(), q.Prompt)
			}
			fmt.Fprintln(out)
			for _, o := range questionnaire.AnswerOptions() {
				fmt.Fprintf(out, "  %d = %s\n", o.Value, o.Label)
			}
			fmt.Fprintf(out, "\n예상 소요 시간: 약 %d분\n", questionnaire.EstimatedMinutesRemaining(0))
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <18 answers>",
		Short: "Score answers locally without contacting a server",
		Example: "  screener score 0 1 2 3 4 0 1 2 3 4 0 1 2 3 4 0 1 2\n" +
			"  screener score 2,2,2,2,2,2,2,2,2,1,1,1,1,1,0,0,0,0",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := parseAnswers(args)
			if err != nil {
				return err
			}
			scores, err := scoring.Score(scoring.AnswerVector(answers))
			if err != nil {
				return err
			}
			rep := report.Build(scores, interpretation.Interpret(scores.Total), report.Options{})
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
}

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <18 answers>",
		Short: "Submit answers to the server and store the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := parseAnswers(args)
			if err != nil {
				return err
			}
			resp, err := newClient(cmd).Submit(cmd.Context(), answers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "assessment #%d stored at %s\n\n", resp.ID, resp.CompletedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintln(out, resp.Report.ShareText)
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a stored assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newClient(cmd).Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printAssessments(cmd.OutOrStdout(), []api.AssessmentResponse{*a})
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored assessments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := newClient(cmd).List(cmd.Context())
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no assessments")
				return nil
			}
			printAssessments(cmd.OutOrStdout(), all)
			return nil
		},
	}
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <id>",
		Short: "Print the share text of a stored assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rep, err := newClient(cmd).Report(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rep.ShareText)
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download every stored assessment as an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("out")
			body, err := newClient(cmd).ExportXLSX(cmd.Context())
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(body))
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "assessments.xlsx", "Output file")
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid assessment id %q", raw)
	}
	return id, nil
}

func printReport(out io.Writer, rep report.Report) {
	fmt.Fprintf(out, "총점: %d/%d\n", rep.Total, rep.MaxTotal)
	for _, b := range rep.Breakdown {
		fmt.Fprintf(out, "  %-8s %2d/%2d  (%.0f%%, %s)\n", b.Label, b.Score, b.Max, b.Percent, b.Severity)
	}
	fmt.Fprintf(out, "\n%s: %s\n", rep.Interpretation.Level.Label(), rep.Interpretation.Description)
	for _, r := range rep.Interpretation.Recommendations {
		fmt.Fprintf(out, "  - %s\n", r)
	}
}

func printAssessments(out io.Writer, all []api.AssessmentResponse) {
	fmt.Fprintf(out, "%-5s %-19s %5s %5s %5s %5s  %s\n", "ID", "COMPLETED", "TOTAL",
		shortLabel(category.Inattention), shortLabel(category.Hyperactivity), shortLabel(category.Impulsivity), "LEVEL")
	for _, a := range all {
		fmt.Fprintf(out, "%-5d %-19s %5d %5d %5d %5d  %s\n",
			a.ID, a.CompletedAt.Format("2006-01-02 15:04:05"),
			a.TotalScore, a.InattentionScore, a.HyperactivityScore, a.ImpulsivityScore, a.Level)
	}
}

func shortLabel(c category.Category) string {
	switch c {
	case category.Inattention:
		return "INATT"
	case category.Hyperactivity:
		return "HYPER"
	default:
		return "IMPUL"
	}
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Submit random questionnaires to seed a server with demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			workers, _ := cmd.Flags().GetInt("workers")
			seed, _ := cmd.Flags().GetInt64("seed")
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1")
			}

			summary := simulation.Run(cmd.Context(), newClient(cmd), count, workers, seed)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "submitted %d, failed %d\n", summary.Submitted, summary.Failed)
			for _, b := range interpretation.Bands() {
				fmt.Fprintf(out, "  %-10s %d\n", b.Level, summary.ByLevel[string(b.Level)])
			}
			if summary.FirstError != nil {
				return fmt.Errorf("%d submissions failed, first error: %w", summary.Failed, summary.FirstError)
			}
			return nil
		},
	}
	cmd.Flags().Int("count", 20, "Number of questionnaires to submit")
	cmd.Flags().Int("workers", 4, "Concurrent requests")
	cmd.Flags().Int64("seed", time.Now().UnixNano(), "Random seed")
	return cmd
}
