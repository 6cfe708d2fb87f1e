package scraper

import "time"

// Browser is the capability surface the pipeline needs from a headless
// browser. Production uses the playwright implementation; tests drive the
// pipeline with a fake.
type Browser interface {
	Navigate(url string) error
	WaitVisible(selector string, timeout time.Duration) error
	ScrollToBottom() error
	CurrentHeight() (int, error)
	FindAll(selector string) ([]Element, error)
}

// Element is one listing container. Field lookups are scoped to the
// container, selector-relative.
type Element interface {
	Text(selector string) (string, error)
	Attribute(selector, name string) (string, error)
}
