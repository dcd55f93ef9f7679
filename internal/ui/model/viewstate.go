package model

type Page int

const (
	PageMain Page = iota
	PageHelp
)

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page   Page
	Height int
	Width  int
}
