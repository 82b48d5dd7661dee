package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-spider/internal/engine"
)

var (
	blackCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	backStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	pickedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	msgStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	msgErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	winStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

const cardCellWidth = 5

type cellHighlight int

const (
	highlightNone cellHighlight = iota
	highlightPicked
	highlightHint
)

// cardCell renders one card slot as a fixed-width string.
func cardCell(c engine.Card, hl cellHighlight) string {
	if !c.FaceUp {
		return backStyle.Render(pad("░░░"))
	}
	var style lipgloss.Style
	switch hl {
	case highlightPicked:
		style = pickedStyle
	case highlightHint:
		style = hintStyle
	default:
		style = blackCardStyle
		if c.Suit.Red() {
			style = redCardStyle
		}
	}
	return style.Render(pad(c.Label()))
}

func pad(s string) string {
	// Suit glyphs are one terminal cell wide but multiple bytes.
	width := 0
	for range s {
		width++
	}
	if width >= cardCellWidth {
		return s
	}
	return s + strings.Repeat(" ", cardCellWidth-width)
}

// renderGame draws the full game view: header, tableau, message line
// and help bar.
func renderGame(m Model) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("SPIDER"))
	sb.WriteString("  ")
	sb.WriteString(headerStyle.Render(renderStatus(m.game)))
	sb.WriteString("\n\n")

	sb.WriteString(renderColumnHeads(m))
	sb.WriteString("\n")
	sb.WriteString(renderTableau(m))
	sb.WriteString("\n")

	if m.game.Won() {
		sb.WriteString(winStyle.Render(fmt.Sprintf("You won! Final score %d in %d moves.", m.game.Score, m.game.Moves)))
		sb.WriteString("\n")
	} else if m.message != "" {
		style := msgStyle
		if m.msgErr {
			style = msgErrStyle
		}
		sb.WriteString(style.Render(m.message))
		sb.WriteString("\n")
	} else {
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func renderStatus(g *engine.Game) string {
	return fmt.Sprintf("%s  seed %s  score %d  moves %d  deals %d  runs %d/%d  %s",
		g.Difficulty.Label(), g.Seed, g.Score, g.Moves,
		g.DealsRemaining, g.Foundations.Completed, engine.RunsToWin,
		formatElapsed(g.Elapsed))
}

func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// renderColumnHeads draws the column numbers with the cursor marker.
func renderColumnHeads(m Model) string {
	var sb strings.Builder
	for col := 0; col < engine.NumColumns; col++ {
		label := fmt.Sprintf("%d", (col+1)%10)
		if col == m.cursor {
			sb.WriteString(cursorStyle.Render(pad("▼" + label)))
		} else {
			sb.WriteString(headerStyle.Render(pad(" " + label)))
		}
	}
	return sb.String()
}

// renderTableau draws the ten columns row by row. Picked cards and the
// current hint are highlighted.
func renderTableau(m Model) string {
	depth := 0
	for _, col := range m.game.Tableau {
		if len(col) > depth {
			depth = len(col)
		}
	}
	if depth == 0 {
		depth = 1
	}

	var sb strings.Builder
	for row := 0; row < depth; row++ {
		for col := 0; col < engine.NumColumns; col++ {
			cards := m.game.Tableau[col]
			if row >= len(cards) {
				if row == 0 {
					sb.WriteString(emptyStyle.Render(pad("[ ]")))
				} else {
					sb.WriteString(pad(""))
				}
				continue
			}
			sb.WriteString(cardCell(cards[row], cellHighlightFor(m, col, row, len(cards))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cellHighlightFor(m Model, col, row, colLen int) cellHighlight {
	if m.picked && col == m.pickedFrom && row >= colLen-m.pickedCount {
		return highlightPicked
	}
	if m.hint != nil && col == m.hint.From && row >= m.hint.Start {
		return highlightHint
	}
	return highlightNone
}
