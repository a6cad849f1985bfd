// Package formdata reads settings payloads sent either as multipart forms or
// as JSON objects, exposing both through the same accessors.
package formdata

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"sort"
	"strings"

	"shopconsole.io/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
)

// Payload is a parsed request body.
type Payload struct {
	values map[string]string
	raw    map[string]json.RawMessage
	files  map[string][]*multipart.FileHeader
}

// IndexedFile is a file sent under <prefix>_<n>.
type IndexedFile struct {
	Index int
	File  *multipart.FileHeader
}

// FromRequest parses the request body. An empty body yields an empty payload.
func FromRequest(c *fiber.Ctx) (*Payload, error) {
	p := newPayload()
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, apperrors.Validation("malformed multipart body: %v", err)
		}
		for key, vals := range form.Value {
			if len(vals) > 0 {
				p.values[key] = vals[0]
			}
		}
		for key, fhs := range form.File {
			p.files[key] = fhs
		}
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		return FromJSON(c.Body())
	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			p.values[string(k)] = string(v)
		})
	}
	return p, nil
}

func newPayload() *Payload {
	return &Payload{
		values: map[string]string{},
		raw:    map[string]json.RawMessage{},
		files:  map[string][]*multipart.FileHeader{},
	}
}

// FromJSON parses a JSON object body.
func FromJSON(body []byte) (*Payload, error) {
	p := newPayload()
	if len(bytes.TrimSpace(body)) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(body, &p.raw); err != nil {
		return nil, apperrors.Validation("malformed JSON body: %v", err)
	}
	return p, nil
}

// Has reports whether a text or JSON field named key was sent.
func (p *Payload) Has(key string) bool {
	if _, ok := p.values[key]; ok {
		return true
	}
	raw, ok := p.raw[key]
	return ok && !isNull(raw)
}

// Text returns the field as a string, or nil when the field was not sent.
// Numbers and booleans in JSON bodies are returned in their literal form.
func (p *Payload) Text(key string) *string {
	if v, ok := p.values[key]; ok {
		return &v
	}
	raw, ok := p.raw[key]
	if !ok || isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	s = string(raw)
	return &s
}

// List decodes a JSON list field into dst. Multipart bodies carry the list as
// JSON text; JSON bodies may send an array or a JSON encoded string. It
// returns false when the field was not sent or is blank, leaving dst alone.
func (p *Payload) List(key string, dst any) (bool, error) {
	var data []byte
	if v, ok := p.values[key]; ok {
		data = []byte(v)
	} else if raw, ok := p.raw[key]; ok {
		data = raw
		var encoded string
		if json.Unmarshal(raw, &encoded) == nil {
			data = []byte(encoded)
		}
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, apperrors.Validation("%s: malformed JSON list: %v", key, err)
	}
	return true, nil
}

// File returns the first file sent under key.
func (p *Payload) File(key string) *multipart.FileHeader {
	if fhs := p.files[key]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

// Files returns every file sent under key, in request order.
func (p *Payload) Files(key string) []*multipart.FileHeader {
	return p.files[key]
}

// Indexed returns the files sent as <prefix>_<n>, ordered by n. A suffix
// that is not a non-negative integer is a validation error.
func (p *Payload) Indexed(prefix string) ([]IndexedFile, error) {
	var out []IndexedFile
	for key, fhs := range p.files {
		suffix, ok := strings.CutPrefix(key, prefix+"_")
		if !ok || len(fhs) == 0 {
			continue
		}
		n, err := cast.ToIntE(suffix)
		if err != nil || n < 0 || (strings.HasPrefix(suffix, "0") && suffix != "0") {
			return nil, apperrors.Validation("%s: invalid item index %q", key, suffix)
		}
		out = append(out, IndexedFile{Index: n, File: fhs[0]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

// AllFiles returns every uploaded file keyed by field name.
func (p *Payload) AllFiles() map[string][]*multipart.FileHeader {
	return p.files
}

func isNull(raw []byte) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
