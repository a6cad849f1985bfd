// Package preview turns unsaved settings records into the view models the
// storefront preview templates render. Everything here is pure.
package preview

import (
	"strings"

	"shopconsole.io/models"
)

// CountryColumns is how many country blocks the footer shows per row.
const CountryColumns = 3

type NavItem struct {
	Label    string
	Link     string
	Icon     string
	ImageURL string
}

type FooterLink struct {
	Label string
	URL   string
}

type Social struct {
	Platform string
	URL      string
}

type HeaderFooterView struct {
	LogoURL     string
	Nav         []NavItem
	Description string
	Copyright   string
	Links       []FooterLink
	Socials     []Social
	CountryRows [][]models.CountryBlock
}

// HeaderFooter builds the navbar and footer preview.
func HeaderFooter(s *models.HeaderFooterSetting) HeaderFooterView {
	v := HeaderFooterView{
		LogoURL:     s.NavbarLogo,
		Description: s.FooterDescription,
		Copyright:   s.FooterCopyright,
		CountryRows: Chunk([]models.CountryBlock(s.CountryBlocks), CountryColumns),
	}
	for _, icon := range s.NavIcons {
		link := icon.Link
		if link == "" {
			link = "#"
		}
		v.Nav = append(v.Nav, NavItem{Label: icon.Label, Link: link, Icon: icon.Icon, ImageURL: icon.IconImageURL})
	}
	for _, l := range s.FooterLinks {
		v.Links = append(v.Links, FooterLink{Label: l.Label, URL: l.URL})
	}
	for _, si := range s.SocialIcons {
		v.Socials = append(v.Socials, Social{Platform: strings.ToLower(si.Platform), URL: si.URL})
	}
	return v
}

type Stat struct {
	Display string
	Label   string
}

type Step struct {
	Number      int
	Title       string
	Description string
	ImageURL    string
}

type AboutUsView struct {
	Title        string
	Description  []string
	ImageURL     string
	Mission      string
	Vision       string
	Stats        []Stat
	Features     []models.Feature
	WorkingTitle string
	Steps        []Step
}

// AboutUs builds the about page preview. Working items are numbered from 1.
func AboutUs(s *models.AboutUsSetting) AboutUsView {
	v := AboutUsView{
		Title:        s.AboutTitle,
		Description:  Paragraphs(s.AboutDescription),
		ImageURL:     s.AboutImage,
		Mission:      s.Mission,
		Vision:       s.Vision,
		Features:     []models.Feature(s.Features),
		WorkingTitle: s.WorkingTitle,
	}
	for _, st := range s.Statistics {
		v.Stats = append(v.Stats, Stat{Display: st.Value + st.Suffix, Label: st.Label})
	}
	for i, item := range s.WorkingItems {
		v.Steps = append(v.Steps, Step{Number: i + 1, Title: item.Title, Description: item.Description, ImageURL: item.Image})
	}
	return v
}

type Slide struct {
	Index    int
	ImageURL string
	Active   bool
}

type HomePageView struct {
	Title            string
	Subtitle         string
	ButtonText       string
	ButtonLink       string
	ShowButton       bool
	Slides           []Slide
	FeaturedTitle    string
	FeaturedSubtitle string
}

// HomePage builds the hero carousel preview. The first slide is active.
func HomePage(s *models.HomePageSetting) HomePageView {
	v := HomePageView{
		Title:            s.HeroTitle,
		Subtitle:         s.HeroSubtitle,
		ButtonText:       s.HeroButtonText,
		ButtonLink:       s.HeroButtonLink,
		ShowButton:       s.HeroButtonText != "" && s.HeroButtonLink != "",
		FeaturedTitle:    s.FeaturedTitle,
		FeaturedSubtitle: s.FeaturedSubtitle,
	}
	for i, url := range s.HeroImages {
		v.Slides = append(v.Slides, Slide{Index: i, ImageURL: url, Active: i == 0})
	}
	return v
}

type PolicySection struct {
	Anchor     string
	Title      string
	Paragraphs []string
}

type PolicyView struct {
	Sections []PolicySection
}

// Policy lists the non-empty policy documents in storefront order.
func Policy(s *models.PolicyDetailsSetting) PolicyView {
	docs := []struct {
		anchor, title, body string
	}{
		{"privacy", "Privacy Policy", s.PrivacyPolicy},
		{"terms", "Terms & Conditions", s.TermsConditions},
		{"returns", "Return Policy", s.ReturnPolicy},
		{"shipping", "Shipping Policy", s.ShippingPolicy},
		{"refunds", "Refund Policy", s.RefundPolicy},
	}
	var v PolicyView
	for _, d := range docs {
		paras := Paragraphs(d.body)
		if len(paras) == 0 {
			continue
		}
		v.Sections = append(v.Sections, PolicySection{Anchor: d.anchor, Title: d.title, Paragraphs: paras})
	}
	return v
}

// Chunk splits items into rows of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	rows := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		rows = append(rows, items[start:end])
	}
	return rows
}

// Paragraphs splits text on blank lines, dropping empty paragraphs.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
