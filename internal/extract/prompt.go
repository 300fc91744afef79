package extract

import (
	"strings"
)

// OtherCategory is the sentinel the model is told to use when no
// category from the list fits. It resolves like any other name, so a
// user without an "Other" category falls back by stable order.
const OtherCategory = "Other"

// buildPrompt embeds the message and the user's category names into the
// instruction template for the model.
func buildPrompt(message string, categories []string) string {
	var b strings.Builder

	b.WriteString("Analyze this personal finance message: \"")
	b.WriteString(message)
	b.WriteString("\".\n\n")

	b.WriteString("Available categories: [")
	b.WriteString(strings.Join(categories, ", "))
	b.WriteString("].\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- Classify the message as \"expense\" or \"income\".\n")
	b.WriteString("- \"amount\" must be a positive number.\n")
	b.WriteString("- \"category_name\" must be EXACTLY one of the available categories. ")
	b.WriteString("If none fits, use \"" + OtherCategory + "\".\n")
	b.WriteString("- Respond with ONLY a single raw JSON object.\n")
	b.WriteString("- Do NOT wrap the response in code fences, do NOT use ```json or any Markdown, do NOT add prose.\n\n")

	b.WriteString("Respond in exactly this shape:\n")
	b.WriteString("{\n")
	b.WriteString("    \"description\": \"short description\",\n")
	b.WriteString("    \"amount\": 0.00,\n")
	b.WriteString("    \"type\": \"expense\",\n")
	b.WriteString("    \"category_name\": \"Category Name\"\n")
	b.WriteString("}\n")

	return b.String()
}
