package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/dnav/internal/metadata"
	statepkg "github.com/kk-code-lab/dnav/internal/state"
	"github.com/kk-code-lab/dnav/internal/textutil"
)

const (
	title         = "dnav"
	directoryIcon = "📂 "
	fileIcon      = "📄 "
	emptyListing  = "(no visible entries)"
	infoTitle     = "Info"
)

// Model is what the renderer reads on every frame.
type Model interface {
	State() statepkg.NavigationState
	Details() (metadata.DisplayFields, bool)
}

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes

	listOffset int
	lastPath   string
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the listing, the info pane for the selection, the key footer
// and, when notice is non-nil, the error overlay on top.
func (r *Renderer) Render(model Model, notice *statepkg.Notice) {
	r.screen.Clear()

	w, h := r.screen.Size()
	nav := model.State()
	details, hasDetails := model.Details()
	if nav.Empty() {
		hasDetails = false
	}

	layout := computeLayout(w, h, hasDetails)

	r.drawHeader(nav.CurrentPath, w)
	r.drawList(nav, layout)
	if layout.showInfo {
		r.drawSeparator(layout)
		r.drawInfo(details, layout)
	}
	r.drawFooter(w, h)

	if notice != nil {
		r.drawNotice(*notice, w, h)
	}

	r.screen.Show()
}

// drawHeader renders the top bar with title and current path
func (r *Renderer) drawHeader(path string, w int) {
	if w <= 0 {
		return
	}
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, " "+title+" ", headerStyle.Bold(true))
	if endX < w {
		pathText := r.truncateLeft(textutil.SanitizeTerminalText(path), w-endX)
		endX = r.drawTextLine(endX, 0, w-endX, pathText, headerStyle)
	}
	r.fillRange(endX, w, 0, headerStyle)
}

func (r *Renderer) drawList(nav statepkg.NavigationState, layout layoutMetrics) {
	if layout.bodyHeight <= 0 || layout.listWidth <= 0 {
		return
	}

	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	if nav.Empty() {
		r.listOffset = 0
		r.lastPath = nav.CurrentPath
		mutedStyle := baseStyle.Foreground(r.theme.MutedFg)
		text := r.truncateTextToWidth(emptyListing, layout.listWidth-1)
		r.drawTextLine(1, layout.bodyTop, layout.listWidth-1, text, mutedStyle)
		return
	}

	if nav.CurrentPath != r.lastPath {
		r.listOffset = 0
		r.lastPath = nav.CurrentPath
	}

	entries := nav.Entries()
	cursor := nav.Cursor()
	r.listOffset = scrollOffset(r.listOffset, cursor, len(entries), layout.bodyHeight)

	for row := 0; row < layout.bodyHeight; row++ {
		idx := r.listOffset + row
		if idx >= len(entries) {
			break
		}
		entry := entries[idx]
		y := layout.bodyTop + row

		style := baseStyle.Foreground(r.theme.FileFg)
		icon := fileIcon
		if entry.Navigable() {
			style = baseStyle.Foreground(r.theme.DirectoryFg)
			icon = directoryIcon
		}
		if idx == cursor {
			style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			r.fillRange(0, layout.listWidth, y, style)
		}

		text := icon + textutil.SanitizeTerminalText(entry.Name)
		text = r.truncateTextToWidth(text, layout.listWidth-1)
		r.drawTextLine(1, y, layout.listWidth-1, text, style)
	}
}

func (r *Renderer) drawSeparator(layout layoutMetrics) {
	style := tcell.StyleDefault.Foreground(r.theme.MutedFg)
	x := layout.infoStart - infoSeparatorGap
	for y := layout.bodyTop; y < layout.bodyTop+layout.bodyHeight; y++ {
		r.screen.SetContent(x, y, tcell.RuneVLine, nil, style)
	}
}

func (r *Renderer) drawInfo(details metadata.DisplayFields, layout layoutMetrics) {
	if layout.bodyHeight <= 0 {
		return
	}
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	labelStyle := baseStyle.Foreground(r.theme.LabelFg)
	x := layout.infoStart + 1
	width := layout.infoWidth - 1

	r.drawTextLine(x, layout.bodyTop, width, infoTitle, baseStyle.Bold(true))

	y := layout.bodyTop + 2
	bottom := layout.bodyTop + layout.bodyHeight
	for _, row := range details.Rows() {
		if y >= bottom {
			break
		}
		label := fmt.Sprintf("%-*s", infoLabelWidth, row.Label)
		endX := r.drawTextLine(x, y, width, label, labelStyle)
		value := r.truncateTextToWidth(textutil.SanitizeTerminalText(row.Value), width-(endX-x))
		r.drawTextLine(endX, y, width-(endX-x), value, baseStyle)
		y++
	}
}

func (r *Renderer) drawFooter(w, h int) {
	if h < 2 || w <= 0 {
		return
	}
	footerStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Dim(true)
	text := r.truncateTextToWidth(buildFooterHelpText(), w)
	endX := r.drawTextLine(0, h-1, w, text, footerStyle)
	r.fillRange(endX, w, h-1, footerStyle)
}
