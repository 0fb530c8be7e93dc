package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/ingestion"
)

var importDocxCmd = &cobra.Command{
	Use:   "import-docx",
	Short: "Convert a .docx resume into a structured document JSON artifact",
	RunE:  runImportDocx,
}

var (
	importDocxIn  string
	importDocxOut string
)

func init() {
	importDocxCmd.Flags().StringVarP(&importDocxIn, "in", "i", "", "Path to the .docx file (required)")
	importDocxCmd.Flags().StringVarP(&importDocxOut, "out", "o", "", "Path for the document JSON (required)")

	_ = importDocxCmd.MarkFlagRequired("in")
	_ = importDocxCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(importDocxCmd)
}

func runImportDocx(_ *cobra.Command, _ []string) error {
	doc, err := ingestion.ImportDocx(importDocxIn)
	if err != nil {
		return err
	}

	if len(doc.Paragraphs) == 0 {
		return fmt.Errorf("no paragraphs found in %s", importDocxIn)
	}

	if err := writeJSONArtifact(importDocxOut, doc); err != nil {
		return err
	}

	fmt.Printf("Imported %d paragraphs\n", len(doc.Paragraphs))
	fmt.Printf("Document: %s\n", importDocxOut)

	return nil
}
