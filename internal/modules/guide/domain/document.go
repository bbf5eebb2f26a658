package domain

import (
	"fmt"
	"strings"
)

// Translate resolves a translation key for the document's locale.
type Translate func(key string) string

// Section is one block of a document. Items render as an ordered list when
// Ordered is set, otherwise as bullets.
type Section struct {
	Heading string
	Body    string
	Items   []string
	Ordered bool
	Quote   string
}

type Document struct {
	Title    string
	Sections []Section
}

// Markdown renders the document as CommonMark.
func (d Document) Markdown() string {
	var b strings.Builder
	if d.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", d.Title)
	}
	for _, s := range d.Sections {
		if s.Heading != "" {
			fmt.Fprintf(&b, "## %s\n\n", s.Heading)
		}
		if body := strings.TrimSpace(s.Body); body != "" {
			b.WriteString(body)
			b.WriteString("\n\n")
		}
		for i, item := range s.Items {
			if s.Ordered {
				fmt.Fprintf(&b, "%d. %s\n", i+1, item)
			} else {
				fmt.Fprintf(&b, "- %s\n", item)
			}
		}
		if len(s.Items) > 0 {
			b.WriteString("\n")
		}
		if s.Quote != "" {
			fmt.Fprintf(&b, "> %s\n\n", s.Quote)
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func Legal(t Translate) Document {
	return Document{
		Title:    t("legalTitle"),
		Sections: []Section{{Body: t("legalDesc")}},
	}
}

// Food lists the four nutrition pillars. A pillar's lead phrase, the text
// before its first colon, is emphasized.
func Food(t Translate) Document {
	pillars := make([]string, 0, 4)
	for i := 1; i <= 4; i++ {
		pillars = append(pillars, emphasizeLead(t(fmt.Sprintf("foodPillar%d", i))))
	}
	return Document{
		Title: t("foodTitle"),
		Sections: []Section{
			{Body: t("foodIntro"), Items: pillars, Ordered: true},
			{Body: t("foodFinal"), Quote: t("nutritionistNote")},
		},
	}
}

// ExerciseContent is the localized exercise text a guide page is built from.
type ExerciseContent struct {
	Icon             string
	Name             string
	ShortDescription string
	Objective        string
	QuickFix         string
	Steps            []string
}

func Exercise(t Translate, ex ExerciseContent) Document {
	title := strings.TrimSpace(ex.Icon + " " + ex.Name)
	doc := Document{Title: title}
	intro := Section{Body: ex.ShortDescription}
	if ex.Objective != "" {
		intro.Body = strings.TrimSpace(intro.Body + "\n\n**" + t("objectiveLabel") + ":** " + ex.Objective)
	}
	doc.Sections = append(doc.Sections, intro)
	if len(ex.Steps) > 0 {
		doc.Sections = append(doc.Sections, Section{Heading: t("stepsLabel"), Items: ex.Steps, Ordered: true})
	}
	if ex.QuickFix != "" {
		doc.Sections = append(doc.Sections, Section{Heading: t("quickFixLabel"), Quote: ex.QuickFix})
	}
	return doc
}

func emphasizeLead(text string) string {
	lead, rest, ok := strings.Cut(text, ":")
	if !ok || strings.TrimSpace(lead) == "" {
		return text
	}
	return "**" + strings.TrimSpace(lead) + ":**" + rest
}
