// Package imagestore is a small client for the Cloudinary upload API.
// The dashboard passes listing photos through the server so the API
// secret never reaches the browser.
package imagestore

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Client signs and sends requests to one Cloudinary account.
type Client struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string

	// BaseURL overrides the API endpoint in tests. Empty means the
	// real Cloudinary API.
	BaseURL string

	HTTPClient *http.Client
}

// uploadTransformation bounds stored images to dashboard display size.
const uploadTransformation = "c_limit,h_800,w_1200"

// New returns a Client for the given account.
func New(cloudName, apiKey, apiSecret, folder string) *Client {
	return &Client{
		CloudName:  cloudName,
		APIKey:     apiKey,
		APISecret:  apiSecret,
		Folder:     folder,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// UploadResult is the subset of the upload response the dashboard
// needs.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
}

func (c *Client) endpoint(action string) string {
	base := c.BaseURL
	if base == "" {
		base = "https://api.cloudinary.com"
	}
	return fmt.Sprintf("%s/v1_1/%s/image/%s", base, c.CloudName, action)
}

// sign computes the request signature: the SHA-1 hex digest of the
// sorted key=value pairs joined with '&', followed by the API secret.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.APISecret))
	return hex.EncodeToString(sum[:])
}

// Upload sends one image to the configured folder and returns its
// hosted URL and public id.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (UploadResult, error) {
	folder := c.Folder
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"folder":         folder,
		"timestamp":      ts,
		"transformation": uploadTransformation,
	}

	buf := &strings.Builder{}
	w := multipart.NewWriter(buf)
	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			return UploadResult{}, err
		}
	}
	if err := w.WriteField("api_key", c.APIKey); err != nil {
		return UploadResult{}, err
	}
	if err := w.WriteField("signature", c.sign(params)); err != nil {
		return UploadResult{}, err
	}
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return UploadResult{}, err
	}
	if err := w.Close(); err != nil {
		return UploadResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("upload"), strings.NewReader(buf.String()))
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return UploadResult{}, fmt.Errorf("imagestore: upload failed with status %d: %s", resp.StatusCode, slurp)
	}

	var out UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return UploadResult{}, fmt.Errorf("imagestore: decode upload response: %w", err)
	}
	return out, nil
}

// Destroy deletes an asset by its public id. Deleting an asset that is
// already gone is treated as success.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": ts,
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", c.APIKey)
	form.Set("signature", c.sign(params))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("destroy"), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var out struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("imagestore: decode destroy response: %w", err)
	}
	if out.Result != "ok" && out.Result != "not found" {
		return fmt.Errorf("imagestore: destroy failed: %s", out.Result)
	}
	return nil
}

var versionRe = regexp.MustCompile(`^(?:[^/]+/)*v\d+/(.+)$`)

// ParsePublicID extracts the public id from a hosted image URL. The
// path after "/upload/" may carry transformation segments and a
// version segment ("v12345/"); both are skipped. The file extension
// is stripped. An empty string means the URL is not parsable.
func ParsePublicID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	path := u.Path
	i := strings.Index(path, "/upload/")
	if i == -1 {
		return ""
	}
	after := path[i+len("/upload/"):]

	if m := versionRe.FindStringSubmatch(after); m != nil {
		after = m[1]
	}
	if dot := strings.LastIndex(after, "."); dot != -1 {
		after = after[:dot]
	}
	return after
}
