package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/wordwrap"
)

// welcomeSuggestions are the starter queries offered while the thread is
// empty, selectable with the number keys 1-4.
var welcomeSuggestions = []string{
	"¿Cuáles son los requisitos para la matrícula?",
	"¿Cuánto cuesta el trámite de titulación?",
	"¿Qué carreras ofrece el instituto?",
	"¿Cuándo inicia el cronograma de matrícula?",
}

// urlPattern matches http(s) URLs inside message bodies.
var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// styleLinks underlines URLs so terminal emulators pick them up as
// clickable links.
func styleLinks(line string) string {
	if !strings.Contains(line, "http") {
		return line
	}
	linkStyle := lipgloss.NewStyle().Foreground(ColorInfo).Underline(true)
	return urlPattern.ReplaceAllStringFunc(line, func(u string) string {
		return linkStyle.Render(u)
	})
}

// renderMessageLines renders pre-split message lines as wrapped paragraph
// blocks in display order.
func renderMessageLines(lines []string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	blocks := make([]string, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, wrapText(styleLinks(line), width))
	}
	return strings.Join(blocks, "\n")
}

// renderWelcome renders the greeting and starter suggestions shown while
// the thread is empty.
func renderWelcome(width int) string {
	msgStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	var sb strings.Builder
	sb.WriteString(wrapText(titleStyle.Render("¡Hola! Soy JVA, el asistente del IESTP Juan Velasco Alvarado."), width))
	sb.WriteString("\n")
	sb.WriteString(wrapText(msgStyle.Render("Puedo ayudarte con matrícula, certificados, titulación y otros trámites."), width))
	sb.WriteString("\n\n")
	sb.WriteString(msgStyle.Render("Escribe tu consulta o elige una sugerencia:"))
	sb.WriteString("\n")
	for i, s := range welcomeSuggestions {
		line := "  " +
			SuggestionKeyStyle.Render(fmt.Sprintf("%d", i+1)) +
			msgStyle.Render(" · ") +
			SuggestionTextStyle.Render(s)
		sb.WriteString(wrapText(line, width))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
