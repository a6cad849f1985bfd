package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"shopconsole.io/database/dbtest"
	"shopconsole.io/pkg/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const uploadBase = "http://localhost:5000/uploads"

type fixture struct {
	ctx          context.Context
	db           *gorm.DB
	dir          string
	assets       *AssetService
	headerFooter *HeaderFooterService
	aboutUs      *AboutUsService
	homePage     *HomePageService
	policy       *PolicyService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	dir := t.TempDir()
	backend, err := storage.NewLocal(dir, uploadBase)
	require.NoError(t, err)
	assets := NewAssetService(db, backend, 1<<20, nil)
	return &fixture{
		ctx:          context.Background(),
		db:           db,
		dir:          dir,
		assets:       assets,
		headerFooter: NewHeaderFooterService(db, assets),
		aboutUs:      NewAboutUsService(db, assets),
		homePage:     NewHomePageService(db, assets),
		policy:       NewPolicyService(db, assets),
	}
}

// fileHeader builds a real multipart file header the way fiber hands them out.
func fileHeader(t *testing.T, field, name, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File[field], 1)
	return form.File[field][0]
}

// stage uploads a file for orgMail and returns its URL.
func (f *fixture) stage(t *testing.T, orgMail, field, name string) string {
	t.Helper()
	url, err := f.assets.Stage(f.ctx, orgMail, field, fileHeader(t, field, name, "img:"+name))
	require.NoError(t, err)
	return url
}

func ptr[T any](v T) *T { return &v }
