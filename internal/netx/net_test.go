package netx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultipartFile_ServerSeesFilePart(t *testing.T) {
	content := []byte("not really a png")

	var (
		gotName string
		gotBody []byte
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("avatar")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotName = hdr.Filename
		gotBody, _ = io.ReadAll(f)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	body, contentType, err := MultipartFile("avatar", "me.png", content)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="), contentType)

	req, err := http.NewRequest(http.MethodPatch, ts.URL, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "me.png", gotName)
	require.Equal(t, content, gotBody)
}

func TestMultipartFile_EmptyFile(t *testing.T) {
	body, contentType, err := MultipartFile("avatar", "empty.bin", nil)
	require.NoError(t, err)
	require.NotEmpty(t, contentType)

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Contains(t, string(raw), `name="avatar"; filename="empty.bin"`)
}
