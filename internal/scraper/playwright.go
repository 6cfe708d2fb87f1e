package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Per-field locator timeout. Listing cards either have the field or they
// don't; there is nothing to wait for.
const fieldTimeoutMs = 1000

// PlaywrightBrowser implements Browser on a chromium page.
type PlaywrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

// LaunchPlaywright starts chromium and opens a single page sized like a
// desktop session.
func LaunchPlaywright(headless bool) (*PlaywrightBrowser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args:     []string{"--no-sandbox", "--disable-dev-shm-usage", "--disable-gpu"},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		UserAgent: playwright.String(userAgent),
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := page.SetViewportSize(1920, 1080); err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("set viewport: %w", err)
	}
	return &PlaywrightBrowser{pw: pw, browser: browser, page: page}, nil
}

func (b *PlaywrightBrowser) Navigate(url string) error {
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	})
	return err
}

func (b *PlaywrightBrowser) WaitVisible(selector string, timeout time.Duration) error {
	return b.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (b *PlaywrightBrowser) ScrollToBottom() error {
	_, err := b.page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}

func (b *PlaywrightBrowser) CurrentHeight() (int, error) {
	v, err := b.page.Evaluate("document.body.scrollHeight")
	if err != nil {
		return 0, err
	}
	switch h := v.(type) {
	case int:
		return h, nil
	case float64:
		return int(h), nil
	default:
		return 0, fmt.Errorf("unexpected scrollHeight type %T", v)
	}
}

func (b *PlaywrightBrowser) FindAll(selector string) ([]Element, error) {
	locators, err := b.page.Locator(selector).All()
	if err != nil {
		return nil, err
	}
	elements := make([]Element, 0, len(locators))
	for _, loc := range locators {
		elements = append(elements, &playwrightElement{loc: loc})
	}
	return elements, nil
}

func (b *PlaywrightBrowser) Close() error {
	if err := b.browser.Close(); err != nil {
		b.pw.Stop()
		return err
	}
	return b.pw.Stop()
}

type playwrightElement struct {
	loc playwright.Locator
}

func (e *playwrightElement) Text(selector string) (string, error) {
	text, err := e.loc.Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(fieldTimeoutMs),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (e *playwrightElement) Attribute(selector, name string) (string, error) {
	value, err := e.loc.Locator(selector).First().GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(fieldTimeoutMs),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
