package model

// PageState is the render branch picked for a request.
type PageState int

const (
	PageLoading PageState = iota
	PageReady
	PageFailed
)

func (s PageState) String() string {
	switch s {
	case PageReady:
		return "ready"
	case PageFailed:
		return "failed"
	default:
		return "loading"
	}
}

// SiteMeta holds head metadata (title and Open Graph tags) for the rendered page.
type SiteMeta struct {
	Title       string
	Description string
	URL         string
	Image       string
	SiteName    string
	Type        string
	// AssetBase prefixes stylesheet and script URLs. Empty means the
	// server mount point; exported sites use a relative "static".
	AssetBase string
}

// Page is everything the view layer needs to render one response.
type Page struct {
	State PageState
	Doc   Document
	Meta  SiteMeta
	// RefreshSeconds drives the loading page's meta refresh; zero disables it.
	RefreshSeconds int
}
