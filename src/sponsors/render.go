package sponsors

import (
	"fmt"
	"html"
	"strings"
)

const defaultHeight = 32

var tierHeadings = map[int]struct{ id, title string }{
	1000: {"platinum-sponsors", "Platinum sponsors"},
	500:  {"gold-sponsors", "Gold sponsors"},
	200:  {"silver-sponsors", "Silver sponsors"},
	100:  {"bronze-sponsors", "Bronze sponsors"},
}

// Module renders one inline piece of the sponsors fragment.
type Module interface {
	Render() string
}

// SponsorModule renders a linked sponsor image. With a logo override the
// logo is shown at its configured height; otherwise the account avatar is
// shown as a round image.
type SponsorModule struct {
	Sponsorship Sponsorship
	Logo        *Logo
}

// Render returns the anchor markup, or "" when name, link or image is missing.
func (m SponsorModule) Render() string {
	acct := m.Sponsorship.Account
	name, link, light, dark := acct.Name, acct.URL, acct.Image, acct.ImageDark
	height := 0
	style := "border-radius: 100%;"
	if m.Logo != nil {
		name, link, light, dark = m.Logo.Name, m.Logo.URL, m.Logo.Light, m.Logo.Dark
		height = m.Logo.Height
		style = ""
	}
	if name == "" || link == "" || light == "" {
		return ""
	}
	if height <= 0 {
		height = defaultHeight
	}

	esc := html.EscapeString
	img := fmt.Sprintf(`<img alt="%s" src="%s" style="height: %dpx; %s">`, esc(name), esc(light), height, style)
	if dark == "" {
		return fmt.Sprintf(`<a href="%s">%s</a>`, esc(link), img)
	}
	return fmt.Sprintf(`<a href="%s"><picture>`+
		`<source media="(prefers-color-scheme: light)" srcset="%s">`+
		`<source media="(prefers-color-scheme: dark)" srcset="%s">`+
		`%s</picture></a>`, esc(link), esc(light), esc(dark), img)
}

// Render produces the sponsors fragment: premium tiers first, each under its
// own heading, then the remaining sponsors after a separator. Private
// sponsors without a logo override are counted instead of shown.
func Render(s *Sponsors, logos Logos) string {
	var b strings.Builder
	private := 0

	module := func(sp Sponsorship) (Module, bool) {
		logo, ok := logos[sp.Account.Name]
		if sp.Private && !ok {
			private++
			return nil, false
		}
		if ok {
			return SponsorModule{Sponsorship: sp, Logo: &logo}, true
		}
		return SponsorModule{Sponsorship: sp}, true
	}

	ranked := s.Ranked()
	var rest []Sponsorship

	b.WriteString(`<div id="premium-sponsors" style="text-align: center;">`)
	for i := 0; i < len(ranked); {
		tier := Tier(ranked[i].Amount)
		if tier == 0 {
			rest = ranked[i:]
			break
		}
		j := i
		for j < len(ranked) && Tier(ranked[j].Amount) == tier {
			j++
		}

		h := tierHeadings[tier]
		fmt.Fprintf(&b, "\n\n<div id=\"%s\"><b>%s</b><p>\n", h.id, h.title)
		for _, sp := range ranked[i:j] {
			if m, ok := module(sp); ok {
				b.WriteString(m.Render())
				b.WriteString("\n")
			}
		}
		b.WriteString("\n</p></div>")
		i = j
	}
	b.WriteString("\n</div>")

	if len(rest) > 0 {
		b.WriteString("\n\n---\n\n<div id=\"sponsors\"><p>\n")
		for _, sp := range rest {
			if m, ok := module(sp); ok {
				b.WriteString(m.Render())
			}
		}
		b.WriteString("\n</p></div>")
	}

	if private > 0 {
		fmt.Fprintf(&b, "\n\n*And %d more private sponsor(s).*", private)
	}
	return b.String()
}
