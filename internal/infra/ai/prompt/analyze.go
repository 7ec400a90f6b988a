package prompt

import (
	"fmt"
	"unicode/utf8"
)

// maxDocumentChars caps how much document text goes into the prompt. The cut
// is a plain character count, not word or sentence aware.
const maxDocumentChars = 4000

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return "You are a legal expert specialized in analyzing Terms of Service, Privacy Policies, and EULAs. Provide clear, accurate analysis in the requested JSON format."
}

// GetUserPrompt builds the analysis prompt around the document title and
// (truncated) text.
func GetUserPrompt(title, text string) string {
	return fmt.Sprintf(`Analyze the following Terms & Conditions or Privacy Policy document and provide:

1. A summary of the key points in plain language (3-5 bullet points)
2. Identify specific risky clauses in these categories:
   - Data Sharing with Third Parties
   - Mandatory Arbitration
   - Automatic Subscription Renewal
   - Limited Company Liability
   - Extensive Tracking & Advertising
   - Content Rights and Ownership
   - Account Termination Rights

For each risk found, provide:
- The category name
- A brief explanation of the risk
- The specific text excerpt (if found)
- A severity score from 1-10

Document Title: %s

Document Text: %s...

Please respond in JSON format:
{
    "summary": ["point 1", "point 2", "point 3"],
    "risks": [
        {
            "category": "category_name",
            "title": "Risk Title",
            "description": "What this means for users",
            "excerpt": "Relevant text from document",
            "severity": 7
        }
    ]
}`, title, TruncateDocument(text))
}

// TruncateDocument cuts document text to the prompt budget. The cut backs up
// to a rune boundary so a multi-byte character is never split.
func TruncateDocument(text string) string {
	if len(text) <= maxDocumentChars {
		return text
	}
	n := maxDocumentChars
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
