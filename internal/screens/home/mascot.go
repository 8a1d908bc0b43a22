package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sleepcheck/internal/scoring"
	"github.com/abhisek/sleepcheck/internal/ui/theme"
)

// MoonVariant selects which moon art to display.
type MoonVariant int

const (
	MoonSleepy  MoonVariant = iota // no result yet
	MoonRested                     // good or excellent night
	MoonRestless                   // fair or poor night
)

const moonSleepy = `   _.._
 .' .-'` + "`" + `
/  /    z
|  |   z
\  '.___.;
 '._  _.'
    ` + "``"

const moonRested = `   _.._
 .' .-'` + "`" + `
/  /   ✦
|  |  ✦
\  '.___.;
 '._  _.'
    ` + "``"

const moonRestless = `   _.._
 .' .-'` + "`" + `  !
/  /   ~
|  |  ~
\  '.___.;
 '._  _.'
    ` + "``"

// variantFor picks the moon for a score band. A nil band means no result.
func variantFor(band *scoring.Band) MoonVariant {
	switch {
	case band == nil:
		return MoonSleepy
	case *band == scoring.BandExcellent || *band == scoring.BandGood:
		return MoonRested
	default:
		return MoonRestless
	}
}

// RenderMoon returns the moon art for the given variant.
func RenderMoon(v MoonVariant) string {
	art, fg := moonSleepy, theme.Primary
	switch v {
	case MoonRested:
		art, fg = moonRested, theme.Accent
	case MoonRestless:
		art, fg = moonRestless, theme.Caution
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
