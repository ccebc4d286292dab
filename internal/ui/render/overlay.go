package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/dnav/internal/state"
	"github.com/kk-code-lab/dnav/internal/textutil"
)

const (
	noticeWidthRatio  = 0.45
	noticeHeightRatio = 0.10
	minNoticeWidth    = 24
	noticePadding     = 2
)

type noticeBox struct {
	x, y, w, h int
	lines      []string
}

// layoutNotice centers a box of roughly 45% x 10% of the screen, growing it
// to fit the wrapped body.
func layoutNotice(notice statepkg.Notice, w, h int) noticeBox {
	boxW := int(float64(w)*noticeWidthRatio + 0.5)
	if boxW < minNoticeWidth {
		boxW = minNoticeWidth
	}
	if boxW > w {
		boxW = w
	}

	body := textutil.SanitizeTerminalText(notice.Body)
	lines := textutil.Wrap(body, boxW-2*noticePadding)

	// border rows plus title row
	boxH := len(lines) + 3
	if minH := int(float64(h)*noticeHeightRatio + 0.5); boxH < minH {
		boxH = minH
	}
	if boxH > h {
		boxH = h
	}
	if maxLines := boxH - 3; len(lines) > maxLines {
		if maxLines < 0 {
			maxLines = 0
		}
		lines = lines[:maxLines]
	}

	return noticeBox{
		x:     (w - boxW) / 2,
		y:     (h - boxH) / 2,
		w:     boxW,
		h:     boxH,
		lines: lines,
	}
}

func (r *Renderer) drawNotice(notice statepkg.Notice, w, h int) {
	box := layoutNotice(notice, w, h)
	if box.w < 2 || box.h < 2 {
		return
	}

	borderStyle := tcell.StyleDefault.Background(r.theme.ErrorBg).Foreground(r.theme.ErrorFg)
	titleStyle := borderStyle.Bold(true)
	bodyStyle := tcell.StyleDefault.Background(r.theme.ErrorBg).Foreground(r.theme.Foreground)

	right := box.x + box.w - 1
	bottom := box.y + box.h - 1
	for y := box.y; y <= bottom; y++ {
		r.fillRange(box.x, right+1, y, bodyStyle)
		r.screen.SetContent(box.x, y, tcell.RuneVLine, nil, borderStyle)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
	}
	for x := box.x; x <= right; x++ {
		r.screen.SetContent(x, box.y, tcell.RuneHLine, nil, borderStyle)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	r.screen.SetContent(box.x, box.y, tcell.RuneULCorner, nil, borderStyle)
	r.screen.SetContent(right, box.y, tcell.RuneURCorner, nil, borderStyle)
	r.screen.SetContent(box.x, bottom, tcell.RuneLLCorner, nil, borderStyle)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)

	inner := box.w - 2*noticePadding
	if box.h < 3 || inner <= 0 {
		return
	}

	title := r.truncateTextToWidth(textutil.SanitizeTerminalText(notice.Title), inner)
	titleX := box.x + (box.w-textutil.DisplayWidth(title))/2
	r.drawTextLine(titleX, box.y+1, inner, title, titleStyle)

	for i, line := range box.lines {
		r.drawTextLine(box.x+noticePadding, box.y+2+i, inner, line, bodyStyle)
	}
}
