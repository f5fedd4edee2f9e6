package report

// Page geometry in millimetres, A4 portrait.
const (
	PageWidth   = 210.0
	PageHeight  = 297.0
	TopMargin   = 30.0
	PageBottom  = 277.0
	FooterY     = 287.0
	LineHeight  = 7.0
	centerX     = PageWidth / 2
	leftX       = 20.0
	rightX      = 120.0
	remarksX    = 170.0
	tableRightX = 190.0

	headerLeftWidth  = 95.0
	headerRightWidth = 75.0
	questionWidth    = 90.0
	answerWidth      = 40.0
	signatureWidth   = 50.0
	signatureHeight  = 25.0
)

// Style is a font style and size; the family is always Helvetica.
type Style struct {
	Bold bool
	Size float64
}

var (
	styleTitle   = Style{Bold: true, Size: 16}
	styleHeading = Style{Bold: true, Size: 14}
	styleLabel   = Style{Bold: true, Size: 12}
	styleBody    = Style{Size: 12}
	styleFooter  = Style{Size: 10}
)

type ElementKind int

const (
	ElementText ElementKind = iota + 1
	ElementLine
	ElementImage
)

// Element is one positioned drawing instruction. Text elements carry their wrapped
// lines; the first line sits on baseline Y and each further line LineHeight below.
type Element struct {
	Kind  ElementKind
	X, Y  float64
	X2    float64
	Y2    float64
	W, H  float64
	Lines []string
	Style Style
	Image string
}

type Page struct {
	Elements []Element
}

// RowPlacement records where a checklist row landed.
type RowPlacement struct {
	TemplateID int64
	Page       int
	Y          float64
	Height     float64
}

// Plan is the complete, deterministic layout of one report.
type Plan struct {
	Pages []Page
	Rows  []RowPlacement
}
