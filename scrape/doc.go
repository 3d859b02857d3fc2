// Package scrape pulls hidden form values out of HTML pages.
//
// It is intentionally narrow: the only supported query is "the value of the
// first <input> whose name attribute is N". Pages are tokenized with
// golang.org/x/net/html, so attribute quoting and character references are
// handled the way a browser would handle them.
//
// # Usage
//
//	token, err := scrape.ExtractField(page, "csrfmiddlewaretoken")
//	if err != nil {
//		return err
//	}
//
// A missing tag or a tag without a value both mean the page layout changed
// upstream. Callers can tell them apart with errors.Is:
//
//	if errors.Is(err, scrape.ErrFieldNotFound) {
//		// no <input name="..."> on the page
//	}
package scrape
