package imagestore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	c := New("demo", "key123", "secret456", "booking-system/services")
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()
	return c
}

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1_1/demo/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "booking-system/services", r.FormValue("folder"))
		assert.Equal(t, "key123", r.FormValue("api_key"))
		assert.NotEmpty(t, r.FormValue("timestamp"))
		assert.NotEmpty(t, r.FormValue("signature"))

		_, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "room.jpg", hdr.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.example.com/demo/image/upload/v123/booking-system/services/room.jpg","public_id":"booking-system/services/room","width":1200,"height":800,"format":"jpg"}`))
	}))
	defer srv.Close()

	res, err := testClient(srv).Upload(context.Background(), "room.jpg", strings.NewReader("fake-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "booking-system/services/room", res.PublicID)
	assert.Equal(t, 1200, res.Width)
	assert.Equal(t, "jpg", res.Format)
}

func TestUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Invalid Signature"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv).Upload(context.Background(), "room.jpg", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestDestroy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1_1/demo/image/destroy", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "booking-system/services/room", r.FormValue("public_id"))
		assert.NotEmpty(t, r.FormValue("signature"))
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}))
	defer srv.Close()

	err := testClient(srv).Destroy(context.Background(), "booking-system/services/room")
	assert.NoError(t, err)
}

func TestDestroyAlreadyGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"not found"}`))
	}))
	defer srv.Close()

	err := testClient(srv).Destroy(context.Background(), "gone")
	assert.NoError(t, err)
}

func TestDestroyFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"error"}`))
	}))
	defer srv.Close()

	err := testClient(srv).Destroy(context.Background(), "x")
	assert.Error(t, err)
}

func TestSignIsDeterministic(t *testing.T) {
	c := &Client{APISecret: "secret456"}
	params := map[string]string{"timestamp": "1700000000", "folder": "a/b"}
	// sha1("folder=a/b&timestamp=1700000000secret456")
	assert.Equal(t, c.sign(params), c.sign(params))
	assert.NotEqual(t, c.sign(params), (&Client{APISecret: "other"}).sign(params))
}

func TestParsePublicID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			"https://res.cloudinary.com/demo/image/upload/v1712345/booking-system/services/room.jpg",
			"booking-system/services/room",
		},
		{
			// Transformation segment before the version is skipped.
			"https://res.cloudinary.com/demo/image/upload/c_limit,h_800,w_1200/v1712345/booking-system/services/room.png",
			"booking-system/services/room",
		},
		{
			// No version segment: remainder minus extension.
			"https://res.cloudinary.com/demo/image/upload/booking-system/services/room.webp",
			"booking-system/services/room",
		},
		{
			// No extension.
			"https://res.cloudinary.com/demo/image/upload/v1/folder/name",
			"folder/name",
		},
		{"https://example.com/some/other/path.jpg", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePublicID(tc.in), tc.in)
	}
}
