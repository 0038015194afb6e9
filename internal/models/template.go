package models

type PresentationKind string

const (
	KindPost  PresentationKind = "post"
	KindStory PresentationKind = "story"
)

type LayoutStyle string

const (
	LayoutMinimal      LayoutStyle = "minimal"
	LayoutBold         LayoutStyle = "bold"
	LayoutLifestyle    LayoutStyle = "lifestyle"
	LayoutProductFocus LayoutStyle = "product_focus"
	LayoutTestimonial  LayoutStyle = "testimonial"
)

// Styling is passed through to renderers untouched.
type Styling struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

type Template struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Kind    PresentationKind `json:"kind"`
	Layout  LayoutStyle      `json:"layout"`
	Styling Styling          `json:"styling"`
}
