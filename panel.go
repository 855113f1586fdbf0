package main

// panel holds the values of the tool property panel. Every change is
// pushed into the active drawing object through the painter's setters,
// which ignore it when the object is of another kind.
type panel struct {
	fore      Color
	back      Color
	lineStyle LineStyle
	fillIndex int
	flagIndex int
	vertical  bool
}

func defaultPanel() panel {
	return panel{fore: White, back: Black, lineStyle: LineSingle}
}

func (p panel) fillGlyph() rune { return fillGlyphs[p.fillIndex%len(fillGlyphs)] }

func (p panel) flags() CharFlags { return flagCycle[p.flagIndex%len(flagCycle)] }

func (m *model) pushPanel() {
	painter := m.currentPainter()
	if painter == nil {
		return
	}
	pn := m.panel
	painter.UpdateRectangleProperties(pn.fore, pn.back, pn.lineStyle)
	painter.UpdateFillRectangleProperties(pn.fore, pn.back, pn.fillGlyph(), pn.flags())
	painter.UpdateLineProperties(pn.fore, pn.back, pn.lineStyle, pn.vertical)
	painter.UpdateTextProperties(pn.fore, pn.back, pn.flags())
}

// selectTool commits the pending edit, installs a fresh object of the
// given kind and applies the panel values to it.
func (m *model) selectTool(t Tool) {
	painter := m.currentPainter()
	if painter == nil {
		return
	}
	painter.SetDrawingObject(NewDrawingObject(t))
	m.pushPanel()
}

func (m *model) cycleFore() {
	m.panel.fore = m.panel.fore.next()
	m.pushPanel()
}

func (m *model) cycleBack() {
	m.panel.back = m.panel.back.next()
	m.pushPanel()
}

func (m *model) cycleLineStyle() {
	m.panel.lineStyle = (m.panel.lineStyle + 1) % numLineStyles
	m.pushPanel()
}

func (m *model) cycleFillGlyph() {
	m.panel.fillIndex = (m.panel.fillIndex + 1) % len(fillGlyphs)
	m.pushPanel()
}

func (m *model) cycleFlags() {
	m.panel.flagIndex = (m.panel.flagIndex + 1) % len(flagCycle)
	m.pushPanel()
}

func (m *model) toggleOrientation() {
	m.panel.vertical = !m.panel.vertical
	m.pushPanel()
}
