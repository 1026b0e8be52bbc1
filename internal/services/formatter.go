package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
)

// NoActivitySummary is returned verbatim when the window holds no
// commits; the orchestrator exits early when it sees it.
const NoActivitySummary = "No commits found in the last 24 hours."

// Patch caps bound the prompt size handed to the language model.
const (
	maxPatchLines = 500
	maxPatchChars = 2000
)

const blockSeparator = "================================================================================"

// FormatCommits renders commit records into the text block the language
// model consumes. Pure and deterministic: identical input always yields
// identical output.
func FormatCommits(commits []models.Commit) string {
	if len(commits) == 0 {
		return NoActivitySummary
	}

	var totalAdditions, totalDeletions int
	for _, c := range commits {
		totalAdditions += c.Stats.Additions
		totalDeletions += c.Stats.Deletions
	}

	var b strings.Builder
	b.WriteString("GitHub Activity Summary - Last 24 Hours\n")
	fmt.Fprintf(&b, "Total Commits: %d\n", len(commits))
	fmt.Fprintf(&b, "Total Additions: +%d\n", totalAdditions)
	fmt.Fprintf(&b, "Total Deletions: -%d\n\n", totalDeletions)

	for i, commit := range commits {
		b.WriteString(blockSeparator + "\n")
		fmt.Fprintf(&b, "Commit #%d: %s\n", i+1, commit.Repository)
		b.WriteString(blockSeparator + "\n")
		fmt.Fprintf(&b, "URL: %s\n", commit.URL)
		fmt.Fprintf(&b, "Author: %s\n", commit.Author)
		fmt.Fprintf(&b, "Date: %s\n", commit.Date.UTC().Format(time.RFC3339))
		fmt.Fprintf(&b, "Message: %s\n", commit.Message)

		b.WriteString("\nStatistics:\n")
		fmt.Fprintf(&b, "  - Files Changed: %d\n", len(commit.Files))
		fmt.Fprintf(&b, "  - Total Additions: +%d\n", commit.Stats.Additions)
		fmt.Fprintf(&b, "  - Total Deletions: -%d\n", commit.Stats.Deletions)
		fmt.Fprintf(&b, "  - Total Changes: %d lines\n", commit.Stats.Total)

		b.WriteString("\nFiles Changed:\n")
		for _, file := range commit.Files {
			fmt.Fprintf(&b, "\n  [%s] %s\n", strings.ToUpper(file.Status), file.Filename)
			fmt.Fprintf(&b, "     +%d -%d lines\n", file.Additions, file.Deletions)

			if file.Patch != "" {
				b.WriteString("\n     Code Changes:\n")
				b.WriteString(truncatePatch(file.Patch))
				b.WriteString("\n")
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}

// truncatePatch caps a raw diff first by line count, then by character
// count, appending a marker whenever anything was dropped.
func truncatePatch(patch string) string {
	lines := strings.Split(patch, "\n")
	truncatedByLines := false
	dropped := 0
	if len(lines) > maxPatchLines {
		dropped = len(lines) - maxPatchLines
		lines = lines[:maxPatchLines]
		truncatedByLines = true
	}

	out := strings.Join(lines, "\n")
	if len(out) > maxPatchChars {
		out = out[:maxPatchChars] + "\n     ... (truncated)"
	} else if truncatedByLines {
		out += fmt.Sprintf("\n     ... (truncated, %d more lines)", dropped)
	}
	return out
}
