package models

import "errors"

// SubItem is an element of an ordered list embedded in a settings record.
// ID is a synthetic uuid assigned when the item is first saved.
type SubItem interface {
	ItemID() string
	SetItemID(id string)
	Validate() error
}

type NavIcon struct {
	ID           string `json:"id"`
	Icon         string `json:"icon"`
	Label        string `json:"label"`
	Link         string `json:"link"`
	IconImageURL string `json:"iconImageUrl"`
}

type CountryBlock struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Address  string `json:"address"`
	Hotline  string `json:"hotline"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`
}

type FooterLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type SocialIcon struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Statistic struct {
	ID     string `json:"id"`
	Value  string `json:"value"`
	Label  string `json:"label"`
	Suffix string `json:"suffix"`
}

type Feature struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WorkingItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (i *NavIcon) ItemID() string { return i.ID }
func (i *NavIcon) SetItemID(id string) { i.ID = id }
func (i *NavIcon) Validate() error {
	if i.Label == "" {
		return errors.New("label is required")
	}
	return nil
}

func (i *CountryBlock) ItemID() string { return i.ID }
func (i *CountryBlock) SetItemID(id string) { i.ID = id }
func (i *CountryBlock) Validate() error {
	if i.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

func (i *FooterLink) ItemID() string { return i.ID }
func (i *FooterLink) SetItemID(id string) { i.ID = id }
func (i *FooterLink) Validate() error {
	if i.Label == "" || i.URL == "" {
		return errors.New("label and url are required")
	}
	return nil
}

func (i *SocialIcon) ItemID() string { return i.ID }
func (i *SocialIcon) SetItemID(id string) { i.ID = id }
func (i *SocialIcon) Validate() error {
	if i.Platform == "" || i.URL == "" {
		return errors.New("platform and url are required")
	}
	return nil
}

func (i *Statistic) ItemID() string { return i.ID }
func (i *Statistic) SetItemID(id string) { i.ID = id }
func (i *Statistic) Validate() error {
	if i.Value == "" || i.Label == "" {
		return errors.New("value and label are required")
	}
	return nil
}

func (i *Feature) ItemID() string { return i.ID }
func (i *Feature) SetItemID(id string) { i.ID = id }
func (i *Feature) Validate() error {
	if i.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

func (i *WorkingItem) ItemID() string { return i.ID }
func (i *WorkingItem) SetItemID(id string) { i.ID = id }
func (i *WorkingItem) Validate() error {
	if i.Title == "" {
		return errors.New("title is required")
	}
	return nil
}
