package handlers

import (
	"context"
	"mime/multipart"

	"shopconsole.io/pkg/formdata"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/services"

	"github.com/gofiber/fiber/v2"
)

// AssetStager stores request uploads before the settings write and drops
// them again when the write fails.
type AssetStager interface {
	Stage(ctx context.Context, orgMail, field string, fh *multipart.FileHeader) (string, error)
	Discard(ctx context.Context, orgMail string, urls []string)
}

// SettingsHandler serves the four settings categories, their item removal
// and their storefront previews.
type SettingsHandler struct {
	headerFooter services.IHeaderFooterService
	aboutUs      services.IAboutUsService
	homePage     services.IHomePageService
	policy       services.IPolicyService
	assets       AssetStager
}

func NewSettingsHandler(
	headerFooter services.IHeaderFooterService,
	aboutUs services.IAboutUsService,
	homePage services.IHomePageService,
	policy services.IPolicyService,
	assets AssetStager,
) *SettingsHandler {
	return &SettingsHandler{
		headerFooter: headerFooter,
		aboutUs:      aboutUs,
		homePage:     homePage,
		policy:       policy,
		assets:       assets,
	}
}

// request resolves the tenant and parses the body.
func request(c *fiber.Ctx) (string, *formdata.Payload, error) {
	orgMail, err := tenant.FromFiber(c)
	if err != nil {
		return "", nil, err
	}
	p, err := formdata.FromRequest(c)
	if err != nil {
		return "", nil, err
	}
	return orgMail, p, nil
}

// withUploads runs fn with a fresh upload tracker. Everything fn staged is
// discarded when it returns an error.
func (h *SettingsHandler) withUploads(c *fiber.Ctx, orgMail string, fn func(up *uploads) error) error {
	up := &uploads{ctx: c.UserContext(), orgMail: orgMail, assets: h.assets}
	if err := fn(up); err != nil {
		up.discard()
		return err
	}
	return nil
}

type uploads struct {
	ctx     context.Context
	orgMail string
	assets  AssetStager
	staged  []string
}

func (u *uploads) stage(field string, fh *multipart.FileHeader) (string, error) {
	url, err := u.assets.Stage(u.ctx, u.orgMail, field, fh)
	if err != nil {
		return "", err
	}
	u.staged = append(u.staged, url)
	return url, nil
}

// single stages the file sent under field, if any.
func (u *uploads) single(p *formdata.Payload, field string) (*string, error) {
	fh := p.File(field)
	if fh == nil {
		return nil, nil
	}
	url, err := u.stage(field, fh)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// multi stages every file sent under field, in order.
func (u *uploads) multi(p *formdata.Payload, field string) ([]string, error) {
	var urls []string
	for _, fh := range p.Files(field) {
		url, err := u.stage(field, fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// indexed stages the files sent as <prefix>_<n> and maps n to their URL.
func (u *uploads) indexed(p *formdata.Payload, prefix string) (map[int]string, error) {
	files, err := p.Indexed(prefix)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	out := make(map[int]string, len(files))
	for _, f := range files {
		url, err := u.stage(prefix, f.File)
		if err != nil {
			return nil, err
		}
		out[f.Index] = url
	}
	return out, nil
}

func (u *uploads) discard() {
	u.assets.Discard(u.ctx, u.orgMail, u.staged)
}

// text returns the first of keys present in the payload. Forms send
// camelCase names; JSON clients may echo the stored record's field names.
func text(p *formdata.Payload, keys ...string) *string {
	for _, key := range keys {
		if v := p.Text(key); v != nil {
			return v
		}
	}
	return nil
}

// list decodes the first of keys present as a JSON list. A malformed list is
// a validation error. Settings writes are partial updates, so a list that was
// not sent at all is not an error: nil is returned and the stored list is kept.
func list[T any](p *formdata.Payload, keys ...string) (*[]T, error) {
	for _, key := range keys {
		var items []T
		ok, err := p.List(key, &items)
		if err != nil {
			return nil, err
		}
		if ok {
			if items == nil {
				items = []T{}
			}
			return &items, nil
		}
	}
	return nil, nil
}

// pendingUpload stands in for a file sent to a preview. Previews store
// nothing, but each file still fills its slot the way a save would.
func pendingUpload(fh *multipart.FileHeader) string {
	return "#upload/" + fh.Filename
}

func pendingSingle(p *formdata.Payload, field string) *string {
	fh := p.File(field)
	if fh == nil {
		return nil
	}
	url := pendingUpload(fh)
	return &url
}

func pendingMulti(p *formdata.Payload, field string) []string {
	var urls []string
	for _, fh := range p.Files(field) {
		urls = append(urls, pendingUpload(fh))
	}
	return urls
}

func pendingIndexed(p *formdata.Payload, prefix string) (map[int]string, error) {
	files, err := p.Indexed(prefix)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	out := make(map[int]string, len(files))
	for _, f := range files {
		out[f.Index] = pendingUpload(f.File)
	}
	return out, nil
}

func renderPreview(c *fiber.Ctx, name, title string, view any) error {
	return c.Render("preview/"+name, fiber.Map{
		"Title": "Preview · " + title,
		"View":  view,
	}, "layouts/preview")
}
