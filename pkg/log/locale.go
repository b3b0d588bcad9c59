package log

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"
)

// fallbackLocale is used when the host locale can't be determined.
const fallbackLocale = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Printer returns the message printer matching the locales of the
// host, so that counts are grouped the way the user expects.
func Printer() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil || len(locales) == 0 {
			locales = []string{fallbackLocale}
		}
		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})
	return printer
}
