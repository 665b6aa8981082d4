// Package client es el cliente HTTP del backend de Artemisa. Reemplaza a
// los antiguos servicios por entidad con un único cliente parametrizado que
// devuelve la respuesta estructurada en lugar del texto "<código>\n<cuerpo>".
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// defaultTimeout es el límite de las peticiones normales, igual al de
	// los servicios originales.
	defaultTimeout = 5 * time.Second
	// uploadTimeout cubre las cargas con archivos en base64 (libros, PDFs,
	// imágenes de perfil), que pueden tardar mucho más.
	uploadTimeout = 120 * time.Second
)

// Response es el resultado estructurado de una llamada al backend.
// StatusCode es el código HTTP real y Body el cuerpo crudo, sea JSON o un
// mensaje de texto del backend.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK indica si el código de estado es 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client habla con el backend REST. Cada llamada es un único intento, sin
// reintentos ni backoff: un fallo es terminal para esa acción del usuario.
type Client struct {
	base   string
	http   *http.Client
	upload *http.Client
}

// Option ajusta el cliente al construirlo.
type Option func(*Client)

// WithTimeout cambia el límite de las peticiones normales.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUploadTimeout cambia el límite de las cargas grandes.
func WithUploadTimeout(d time.Duration) Option {
	return func(c *Client) { c.upload.Timeout = d }
}

// New construye un cliente contra la URL base del backend.
func New(base string, opts ...Option) *Client {
	dialer := &net.Dialer{Timeout: defaultTimeout}
	transport := &http.Transport{DialContext: dialer.DialContext}

	c := &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: defaultTimeout, Transport: transport},
		upload: &http.Client{Timeout: uploadTimeout, Transport: transport},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get hace un GET con los parámetros de consulta dados.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.do(ctx, c.http, http.MethodGet, path, query, nil)
}

// Delete hace un DELETE con los parámetros de consulta dados.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.do(ctx, c.http, http.MethodDelete, path, query, nil)
}

// PostJSON serializa el payload y lo envía por POST.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "serializando el cuerpo de POST %s", path)
	}
	return c.do(ctx, c.http, http.MethodPost, path, nil, body)
}

// PutJSON serializa el payload y lo envía por PUT.
func (c *Client) PutJSON(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "serializando el cuerpo de PUT %s", path)
	}
	return c.do(ctx, c.http, http.MethodPut, path, nil, body)
}

// UploadJSON es como PostJSON pero con el límite de tiempo de las cargas
// grandes. Se usa para libros, PDFs e imágenes.
func (c *Client) UploadJSON(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "serializando el cuerpo de POST %s", path)
	}
	return c.do(ctx, c.upload, http.MethodPost, path, nil, body)
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, query url.Values, body []byte) (*Response, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "armando %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "leyendo la respuesta de %s %s", method, path)
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}
