package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/ranking"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var rankProjectsCmd = &cobra.Command{
	Use:   "rank-projects",
	Short: "Rank library projects against a job posting",
	Long:  "Score every project in the library against the job posting keywords and output the top matches in ranked order.",
	RunE:  runRankProjects,
}

var (
	rankJobFile     string
	rankLibraryFile string
	rankTopProjects int
	rankOut         string
)

func init() {
	rankProjectsCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to cleaned job posting text (required)")
	rankProjectsCmd.Flags().StringVarP(&rankLibraryFile, "library", "l", "", "Path to project library file (required)")
	rankProjectsCmd.Flags().IntVar(&rankTopProjects, "top-projects", ranking.DefaultTopN, "Number of top projects to keep")
	rankProjectsCmd.Flags().StringVarP(&rankOut, "out", "o", "", "Output path for ranked projects JSON (required)")

	_ = rankProjectsCmd.MarkFlagRequired("job")
	_ = rankProjectsCmd.MarkFlagRequired("library")
	_ = rankProjectsCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(rankProjectsCmd)
}

func runRankProjects(_ *cobra.Command, _ []string) error {
	jobText, err := os.ReadFile(rankJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting file: %w", err)
	}

	projects, err := loadLibrary(rankLibraryFile)
	if err != nil {
		return err
	}

	ranked := ranking.RankProjects(projects, string(jobText), rankTopProjects)

	out := struct {
		Projects []types.RankedProject `json:"projects"`
	}{Projects: ranked}
	if err := writeJSONArtifact(rankOut, out); err != nil {
		return err
	}

	jdKeywords := keywords.Extract(string(jobText), keywords.DefaultStopwords())
	fmt.Printf("Ranked %d projects against %d job keywords\n", len(projects), len(jdKeywords))
	for _, p := range ranked {
		fmt.Printf("  %.3f  %s\n", p.Score, p.Project.Title)
	}
	fmt.Printf("Ranked projects: %s\n", rankOut)
	return nil
}
