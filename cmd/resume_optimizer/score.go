package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/keywords"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Long:  "Compute the fraction of job posting keywords covered by the resume text.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to structured resume JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to cleaned job posting text (required)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print matched and missing keywords")

	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(scoreResumeFile)
	if err != nil {
		return err
	}

	jobText, err := os.ReadFile(scoreJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job posting file: %w", err)
	}

	stopwords := keywords.DefaultStopwords()
	jdKeywords := keywords.Extract(string(jobText), stopwords)
	resumeKeywords := keywords.Extract(doc.Text(), stopwords)

	score := keywords.Score(resumeKeywords, jdKeywords)
	fmt.Printf("Score: %.3f (%d job keywords)\n", score, len(jdKeywords))

	if scoreVerbose {
		var matched, missing []string
		for _, kw := range jdKeywords.Sorted() {
			if resumeKeywords.Contains(kw) {
				matched = append(matched, kw)
			} else {
				missing = append(missing, kw)
			}
		}
		fmt.Printf("Matched (%d): %v\n", len(matched), matched)
		fmt.Printf("Missing (%d): %v\n", len(missing), missing)
	}
	return nil
}
