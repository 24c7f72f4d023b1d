package narrative

import (
	"fmt"
	"strings"

	"github.com/2beens/fitcoach/internal/injuryrisk/risk"
)

const systemPrompt = "You are a supportive strength and running coach. " +
	"Explain injury risk to an athlete in plain, encouraging language. " +
	"Never diagnose injuries and never invent numbers that are not given to you."

// BuildPrompt describes an assessment for the text generator.
func BuildPrompt(a risk.Assessment) string {
	var sb strings.Builder

	sb.WriteString("Write a short injury risk analysis (3 to 5 sentences) for an athlete.\n\n")
	sb.WriteString(fmt.Sprintf("Overall risk: %s (score %d/100)\n", a.OverallRisk, a.RiskScore))
	if a.ShouldReduceLoad {
		sb.WriteString("The athlete should reduce training load.\n")
	}

	sb.WriteString("\nRisk factors:\n")
	for _, f := range a.Factors {
		sb.WriteString(fmt.Sprintf("- [%s] %s\n", f.Severity, f.Description))
	}

	if len(a.SuggestedActions) > 0 {
		sb.WriteString("\nSuggested actions:\n")
		for _, action := range a.SuggestedActions {
			sb.WriteString(fmt.Sprintf("- %s\n", action))
		}
	}

	sb.WriteString("\nExplain why these factors matter and end with the single most important action.")
	return sb.String()
}
