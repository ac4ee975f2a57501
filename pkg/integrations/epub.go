package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/wordbook/pkg/data"
)

type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

// CreateEPub compiles the favorites collection into a study booklet, one
// section per word in collection order, and returns the written path.
func (p *EPubBuilder) CreateEPub(title string, entries []data.FavoriteEntry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no favorites to compile")
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	e.SetAuthor("wordbook")
	e.SetDescription(fmt.Sprintf("%d saved words", len(entries)))
	e.SetLang("en")

	for _, entry := range entries {
		if _, err := e.AddSection(renderEntry(entry), entry.Word, "", ""); err != nil {
			return "", fmt.Errorf("failed to add %q: %w", entry.Word, err)
		}
	}

	outputPath := filepath.Join(p.outputDir, sanitizeFilename(title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

// renderEntry builds the XHTML body for one favorite.
func renderEntry(entry data.FavoriteEntry) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(entry.Word)))

	if t := entry.Definition.Transcription(); t != "" {
		b.WriteString(fmt.Sprintf("<p><em>%s</em></p>\n", html.EscapeString(t)))
	}

	for _, meaning := range entry.Definition.Meanings {
		if meaning.PartOfSpeech != "" {
			b.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(meaning.PartOfSpeech)))
		}
		b.WriteString("<ol>\n")
		for _, sense := range meaning.Senses {
			b.WriteString(fmt.Sprintf("<li>%s", html.EscapeString(sense.Definition)))
			if sense.Example != "" {
				b.WriteString(fmt.Sprintf("<br/><em>&#8220;%s&#8221;</em>", html.EscapeString(sense.Example)))
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ol>\n")
	}

	return b.String()
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	return strings.TrimSpace(replacer.Replace(name))
}
