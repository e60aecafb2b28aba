package domain

// Page is a single screen of content shown by the pager
type Page struct {
	Title  string
	Body   string
	Source string // file the body was read from ("" for inline pages)
	Hidden bool   // hidden pages are kept in order but take no space
}
