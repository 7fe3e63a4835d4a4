// Package qunit implements the browser test task handler: it loads QUnit
// pages in headless Chrome and collects their results.
package qunit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// BrowserEnv names the environment variable overriding browser discovery.
const BrowserEnv = "CHROME_PATH"

var browserCandidates = []string{
	"headless-shell",
	"headless_shell",
	"chromium",
	"chromium-browser",
	"google-chrome",
	"google-chrome-stable",
	"chrome",
}

var _ ports.TaskHandler = (*Runner)(nil)

// Runner drives headless Chrome through chromedp.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Plugin returns domain.PluginQUnit.
func (r *Runner) Plugin() domain.PluginKind {
	return domain.PluginQUnit
}

// BrowserPath locates the Chrome executable: $CHROME_PATH when set,
// otherwise the first known browser name found on PATH.
func BrowserPath() (string, error) {
	if path := os.Getenv(BrowserEnv); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrBrowserFailed.Error()), "path", path)
		}
		return path, nil
	}

	for _, name := range browserCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", zerr.With(domain.ErrBrowserFailed, "reason", "no Chrome or Chromium executable found, set "+BrowserEnv)
}

// Run opens every URL of the task in a fresh tab and waits for QUnit to
// finish. All URLs are tested; the task fails if any assertion failed.
func (r *Runner) Run(ctx context.Context, task domain.TaskDefinition, out io.Writer) error {
	opts, err := domain.OptionsFor[domain.QUnitOptions](task)
	if err != nil {
		return err
	}

	browser, err := BrowserPath()
	if err != nil {
		return err
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.ExecPath(browser))
	if os.Geteuid() == 0 {
		allocOpts = append(allocOpts, chromedp.NoSandbox)
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Start the browser up front so launch failures are not reported as test failures.
	if err := chromedp.Run(browserCtx); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBrowserFailed.Error()), "path", browser)
	}

	var failed, assertions int
	for _, url := range opts.URLs {
		_, _ = fmt.Fprintf(out, "Testing %s ", url)

		res, err := r.runPage(browserCtx, url, opts)
		if err != nil {
			_, _ = fmt.Fprintln(out, "ERROR")
			return err
		}

		if res.Failed > 0 {
			_, _ = fmt.Fprintln(out, "FAILED")
			report(out, res.Failures)
		} else {
			_, _ = fmt.Fprintln(out, "OK")
		}
		failed += res.Failed
		assertions += res.Total
	}

	if failed > 0 {
		_, _ = fmt.Fprintf(out, ">> %d/%d assertions failed\n", failed, assertions)
		return zerr.With(zerr.With(domain.ErrTestsFailed, "failed", failed), "total", assertions)
	}

	_, _ = fmt.Fprintf(out, ">> %d assertions passed\n", assertions)
	return nil
}

func (r *Runner) runPage(browserCtx context.Context, url string, opts domain.QUnitOptions) (result, error) {
	tabCtx, cancel := chromedp.NewContext(browserCtx)
	defer cancel()

	var res result
	err := chromedp.Run(tabCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(bridgeScript).Do(ctx)
			return err
		}),
		chromedp.Navigate(url),
		chromedp.Poll(pollExpression, &res, chromedp.WithPollingTimeout(opts.Timeout)),
	)
	if errors.Is(err, chromedp.ErrPollingTimeout) {
		err = zerr.With(domain.ErrTestTimeout, "timeout", opts.Timeout.String())
		return result{}, zerr.With(err, "url", url)
	}
	if err != nil {
		return result{}, zerr.With(zerr.Wrap(err, domain.ErrBrowserFailed.Error()), "url", url)
	}

	if len(res.Failures) > res.Failed {
		r.logger.Warn(fmt.Sprintf("%s reported %d failed assertions but %d failure records", url, res.Failed, len(res.Failures)))
	}
	return res, nil
}

func report(out io.Writer, failures []failure) {
	for _, f := range failures {
		title := f.Name
		if f.Module != "" {
			title = f.Module + " - " + f.Name
		}
		_, _ = fmt.Fprintf(out, ">> %s\n", title)
		if f.Message != "" {
			_, _ = fmt.Fprintf(out, ">> Message: %s\n", f.Message)
		}
		_, _ = fmt.Fprintf(out, ">> Actual: %s\n>> Expected: %s\n", f.Actual, f.Expected)
		if f.Source != "" {
			_, _ = fmt.Fprintf(out, ">> %s\n", f.Source)
		}
	}
}
