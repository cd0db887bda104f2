package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumberd = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// summaryToDocx renders model-produced markdown (the summary convention uses
// headings, bullets and bold keywords) into a styled docx.
func summaryToDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			addStyledRun(p, m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			addRichText(p, "• "+m[1])
			continue
		}

		if m := reNumberd.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			addRichText(p, trimmed)
			continue
		}

		p := doc.AddParagraph("")
		addRichText(p, trimmed)
	}

	return doc.SaveTo(outputPath)
}

// transcriptToDocx writes the transcript. Timestamped entries take priority
// over the plain body since they carry speaker and time attribution.
func transcriptToDocx(title string, result *types.AnalysisResult, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	if result.Duration != "" && result.Duration != types.ZeroTimestamp {
		addStyledRun(doc.AddParagraph(""), "Duration: "+result.Duration, false, fontSize)
	}
	doc.AddParagraph("")

	if len(result.TimestampedEntries) > 0 {
		for _, entry := range result.TimestampedEntries {
			p := doc.AddParagraph("")
			p.AddText(fmt.Sprintf("[%s] %s: ", entry.Timestamp, entry.Speaker)).
				Font(fontName).Size(fontSize).Color("000000").Bold(true)
			p.AddText(entry.Text).Font(fontName).Size(fontSize).Color("000000")
		}
		return doc.SaveTo(outputPath)
	}

	for _, line := range strings.Split(result.Transcription, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		p := doc.AddParagraph("")
		addRichText(p, trimmed)
	}

	return doc.SaveTo(outputPath)
}

// answersToDocx writes question/answer pairs, positionally aligned.
func answersToDocx(title string, questions, answers []string, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for i, answer := range answers {
		question := fmt.Sprintf("Question %d", i+1)
		if i < len(questions) {
			question = questions[i]
		}

		p := doc.AddParagraph("")
		p.AddText(question).Font(fontName).Size(fontSize).Color("000000").Bold(true)

		a := doc.AddParagraph("")
		addRichText(a, answer)
		doc.AddParagraph("")
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			clean := cleanMarkdownInline(part)
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			clean := cleanMarkdownInline(matches[i][1])
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
