package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/projection"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project resume documents into template-ready views",
	Long: `Loads one or more resume documents, validates them and writes their projections as JSON.
A single --in writes one projection object; several write an array of {source, projection} results in input order.`,
	RunE: runProject,
}

var (
	projectInputs     []string
	projectOutputFile string
	projectVerbose    bool
	projectSkillLabel string
	projectContact    string
)

func init() {
	projectCmd.Flags().StringSliceVarP(&projectInputs, "in", "i", nil, "Path to a ResumeDocument JSON file (repeatable)")
	projectCmd.Flags().StringVarP(&projectOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	projectCmd.Flags().BoolVarP(&projectVerbose, "verbose", "v", false, "Print a summary of each projection to stderr")
	projectCmd.Flags().StringVar(&projectSkillLabel, "skill-label", "", "Label for skills without a subtitle")
	projectCmd.Flags().StringVar(&projectContact, "contact", "", "Third contact slot: website, linkedin or both")

	_ = projectCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(projectCmd)
}

// projectResult pairs a projection with the file it came from.
type projectResult struct {
	Source     string            `json:"source"`
	Projection *types.Projection `json:"projection"`
}

func runProject(cmd *cobra.Command, _ []string) error {
	opts, err := appConfig.ProjectionOptions()
	if err != nil {
		return err
	}
	if projectSkillLabel != "" {
		opts.SkillCategory = projectSkillLabel
	}
	if projectContact != "" {
		variant, err := projection.ParseContactVariant(projectContact)
		if err != nil {
			return err
		}
		opts.Contact = variant
	}

	results, err := projectFiles(cmd.Context(), projectInputs, opts)
	if err != nil {
		return err
	}

	if projectVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		for _, r := range results {
			printer.PrintProjection(r.Projection)
		}
	}

	var out io.Writer = cmd.OutOrStdout()
	if projectOutputFile != "" {
		f, err := os.Create(projectOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := writeResults(out, results); err != nil {
		return err
	}

	appLogger.Info("projected documents", zap.Int("count", len(results)), zap.String("out", projectOutputFile))
	return nil
}

// projectFiles loads and projects every path concurrently. Results keep
// the order of paths; the first failure cancels the rest.
func projectFiles(ctx context.Context, paths []string, opts projection.Options) ([]projectResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]projectResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := resume.LoadDocument(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			appLogger.Debug("loaded document", zap.String("path", path), zap.Int("sections", len(doc.Sections)))
			results[i] = projectResult{Source: path, Projection: projection.Project(doc, opts)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeResults(out io.Writer, results []projectResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	var err error
	if len(results) == 1 {
		err = enc.Encode(results[0].Projection)
	} else {
		err = enc.Encode(results)
	}
	if err != nil {
		return fmt.Errorf("failed to write projection: %w", err)
	}
	return nil
}
