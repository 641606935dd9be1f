package upload

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Multipart field names understood by the processing server
const (
	FieldImages  = "images"
	FieldQuality = "quality"

	DefaultContentType = "application/octet-stream"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// body is a multipart request body with a length known before sending
type body struct {
	reader      io.Reader
	closers     []io.Closer
	length      int64
	contentType string
}

// Close closes every opened file
func (b *body) Close() error {
	var first error
	for _, c := range b.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// buildBody lays out the multipart body as a chain of readers so that files
// are streamed from disk and the exact Content-Length is known up front
func buildBody(req Request) (*body, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	b := &body{contentType: mw.FormDataContentType()}
	var readers []io.Reader

	flush := func() {
		chunk := append([]byte(nil), buf.Bytes()...)
		buf.Reset()
		readers = append(readers, bytes.NewReader(chunk))
		b.length += int64(len(chunk))
	}

	for _, f := range req.Files {
		file, err := os.Open(f.Path)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
		}
		b.closers = append(b.closers, file)

		info, err := file.Stat()
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to stat %s: %w", f.Name, err)
		}

		if _, err := mw.CreatePart(fileHeader(f.Name)); err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to write part header: %w", err)
		}
		flush()

		// Bound the read to the stat'd size so the length stays exact
		readers = append(readers, io.LimitReader(file, info.Size()))
		b.length += info.Size()
	}

	if err := mw.WriteField(FieldQuality, strconv.Itoa(req.Quality)); err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to write quality field: %w", err)
	}
	if err := mw.Close(); err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}
	flush()

	b.reader = io.MultiReader(readers...)
	return b, nil
}

func fileHeader(name string) textproto.MIMEHeader {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if contentType == "" {
		contentType = DefaultContentType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FieldImages, quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentType)
	return h
}

// progressReader reports cumulative bytes read to onProgress
type progressReader struct {
	mu         sync.Mutex
	r          io.Reader
	sent       int64
	total      int64
	onProgress ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.mu.Lock()
		p.sent += int64(n)
		sent := p.sent
		p.mu.Unlock()

		if p.onProgress != nil {
			p.onProgress(sent, p.total)
		}
	}
	return n, err
}
