package report

import (
	"fmt"
	"math"

	"jobcard/internal/checklist"
	"jobcard/internal/domains"
	"jobcard/internal/payload"
)

const (
	ImageInspectorSignature = "inspector_signature"
	ImageCustomerSignature  = "customer_signature"

	imagePlaceholder     = "[Image]"
	signaturePlaceholder = "[No signature]"
	emptyChecklist       = "No checklist items found"

	headerRowGap         = 3.0
	sectionGap           = 20.0
	tableHeaderHeight    = 10.0
	signatureBlockHeight = 50.0
	signatureLabelWidth  = 60.0
)

// maxRowLines bounds a single row so that it always fits on a fresh page below the
// repeated table header.
var maxRowLines = int(math.Floor((PageBottom - TopMargin - tableHeaderHeight) / LineHeight))

// Input is everything the layout needs. Answers must already be in report order.
type Input struct {
	Job                   domains.JobCard
	InspectorName         string
	Answers               []domains.AnswerWithTemplate
	HasInspectorSignature bool
	HasCustomerSignature  bool
	GeneratedAt           string
}

type cursorState int

const (
	withinPage cursorState = iota
	breakPending
)

// layouter threads a cursor (page, y) through the report sections.
type layouter struct {
	m       Measurer
	plan    Plan
	page    int
	y       float64
	state   cursorState
	onBreak func()
}

// Layout computes the full page plan. It has no side effects, so the same input and
// Measurer always give the same plan.
func Layout(in Input, m Measurer) Plan {
	l := &layouter{m: m}
	l.newPage()
	l.header(in)
	l.checklist(in.Answers)
	l.signatures(in)
	l.footer(in.GeneratedAt)
	return l.plan
}

func (l *layouter) newPage() {
	l.plan.Pages = append(l.plan.Pages, Page{})
	l.page = len(l.plan.Pages) - 1
	l.y = TopMargin
	l.state = withinPage
}

// reserve makes room for a block of height h. A block that would cross PageBottom
// moves whole to the next page.
func (l *layouter) reserve(h float64) {
	if l.y+h > PageBottom {
		l.state = breakPending
	}
	if l.state == breakPending {
		l.newPage()
		if l.onBreak != nil {
			l.onBreak()
		}
	}
}

func (l *layouter) add(el Element) {
	page := &l.plan.Pages[l.page]
	page.Elements = append(page.Elements, el)
}

func (l *layouter) text(x, y float64, lines []string, st Style) {
	if len(lines) == 0 {
		return
	}
	l.add(Element{Kind: ElementText, X: x, Y: y, Lines: lines, Style: st})
}

func (l *layouter) centered(y float64, s string, st Style) {
	s = l.m.Translate(s)
	l.text(centerX-l.m.Width(s, st)/2, y, []string{s}, st)
}

func (l *layouter) lines(s string, st Style, width float64, limit int) []string {
	return clip(wrap(l.m, l.m.Translate(s), st, width), limit)
}

func (l *layouter) header(in Input) {
	job := in.Job
	title := job.Type
	if title == "" {
		title = "Maintenance Report"
	}
	l.centered(20, title, styleTitle)

	left := []string{
		fmt.Sprintf("Number: %d", job.ID),
		"Date In: " + formatDateTime(job.DateIn),
		"Total Hours: " + checklist.FormatDuration(job.TotalSeconds),
		"Customer: " + job.CustomerName,
	}
	right := []string{
		"Date Out: " + formatDateTime(job.DateOut),
		"Type: " + job.Type,
		"Inspector: " + in.InspectorName,
		"Remark: " + job.Remarks,
	}

	l.y = 40
	for i := range left {
		ll := l.lines(left[i], styleBody, headerLeftWidth, maxRowLines)
		rl := l.lines(right[i], styleBody, headerRightWidth, maxRowLines)
		h := float64(max(len(ll), len(rl), 1))*LineHeight + headerRowGap
		l.reserve(h)
		l.text(leftX, l.y, ll, styleBody)
		l.text(rightX, l.y, rl, styleBody)
		l.y += h
	}
}

func (l *layouter) tableHeader() {
	l.text(leftX, l.y, []string{"Question"}, styleLabel)
	l.text(rightX, l.y, []string{"Answer"}, styleLabel)
	l.text(remarksX, l.y, []string{"Remarks"}, styleLabel)
	l.add(Element{Kind: ElementLine, X: leftX, Y: l.y + 2, X2: tableRightX, Y2: l.y + 2})
	l.y += tableHeaderHeight
}

type tableRow struct {
	id       int64
	question []string
	answer   []string
	height   float64
}

func (l *layouter) tableRows(answers []domains.AnswerWithTemplate) []tableRow {
	rows := make([]tableRow, 0, len(answers))
	for _, a := range answers {
		display := a.Answer
		if payload.IsImage(display) {
			display = imagePlaceholder
		}
		ql := l.lines(a.Question, styleBody, questionWidth, maxRowLines)
		al := l.lines(display, styleBody, answerWidth, maxRowLines)
		rows = append(rows, tableRow{
			id:       a.TemplateID,
			question: ql,
			answer:   al,
			height:   float64(max(len(ql), len(al), 1)) * LineHeight,
		})
	}
	return rows
}

func (l *layouter) checklist(answers []domains.AnswerWithTemplate) {
	rows := l.tableRows(answers)

	// The heading and column header never sit alone at the bottom of a page.
	first := tableHeaderHeight
	if len(rows) > 0 {
		first = rows[0].height
	}
	l.y += sectionGap
	l.reserve(2*tableHeaderHeight + first)
	l.centered(l.y, "CHECKLIST", styleHeading)
	l.y += tableHeaderHeight
	l.tableHeader()

	if len(rows) == 0 {
		l.text(leftX, l.y, []string{l.m.Translate(emptyChecklist)}, styleBody)
		l.y += tableHeaderHeight
		return
	}

	l.onBreak = l.tableHeader
	defer func() { l.onBreak = nil }()

	for _, row := range rows {
		l.reserve(row.height)
		l.text(leftX, l.y, row.question, styleBody)
		l.text(rightX, l.y, row.answer, styleBody)
		l.plan.Rows = append(l.plan.Rows, RowPlacement{TemplateID: row.id, Page: l.page, Y: l.y, Height: row.height})
		l.y += row.height
	}
}

func (l *layouter) signatures(in Input) {
	l.y += sectionGap
	l.reserve(signatureBlockHeight)
	l.centered(l.y, "Signatures", styleLabel)
	l.y += 10

	l.signature(40, "Inspector: "+in.InspectorName, ImageInspectorSignature, in.HasInspectorSignature)
	l.signature(140, "Customer: "+in.Job.CustomerDisplayName(), ImageCustomerSignature, in.HasCustomerSignature)
	l.y += signatureBlockHeight - 10
}

func (l *layouter) signature(x float64, label, image string, present bool) {
	l.text(x, l.y+5, l.lines(label, styleBody, signatureLabelWidth, 1), styleBody)
	if present {
		l.add(Element{Kind: ElementImage, X: x, Y: l.y + 10, W: signatureWidth, H: signatureHeight, Image: image})
		return
	}
	l.text(x, l.y+20, []string{signaturePlaceholder}, styleFooter)
}

// footer stamps the generation time on the last page, below PageBottom.
func (l *layouter) footer(generatedAt string) {
	l.centered(FooterY, "Generated on: "+generatedAt, styleFooter)
}
