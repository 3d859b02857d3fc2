package clientcli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/bbdist"
	"github.com/sagarc03/bbdist/clientcli"
)

func testPublishResult() *bbdist.PublishResult {
	return &bbdist.PublishResult{
		Repository: "owner/repo",
		Uploads: []bbdist.UploadedFile{
			{
				DistFile: bbdist.DistFile{Command: "sdist", Path: "dist/pkg-1.0.tar.gz"},
				URL:      "https://bitbucket.org/owner/repo/downloads/pkg-1.0.tar.gz",
			},
			{
				DistFile: bbdist.DistFile{Command: "bdist_wheel", Target: "py2", Path: "dist/pkg-1.0-py2-none-any.whl"},
				URL:      "https://bitbucket.org/owner/repo/downloads/pkg-1.0-py2-none-any.whl",
			},
		},
		DownloadURL: "https://bitbucket.org/owner/repo/downloads/pkg-1.0.tar.gz",
	}
}

func TestNewFormatter(t *testing.T) {
	t.Run("json formatter", func(t *testing.T) {
		formatter := clientcli.NewFormatter(true, false)
		_, ok := formatter.(*clientcli.JSONFormatter)
		assert.True(t, ok)
	})

	t.Run("human formatter", func(t *testing.T) {
		formatter := clientcli.NewFormatter(false, false)
		_, ok := formatter.(*clientcli.HumanFormatter)
		assert.True(t, ok)
	})

	t.Run("human formatter quiet", func(t *testing.T) {
		formatter := clientcli.NewFormatter(false, true)
		hf, ok := formatter.(*clientcli.HumanFormatter)
		require.True(t, ok)
		assert.True(t, hf.Quiet)
	})
}

func TestHumanFormatter_FormatPublish(t *testing.T) {
	t.Run("lists uploads", func(t *testing.T) {
		formatter := &clientcli.HumanFormatter{}

		var buf bytes.Buffer
		require.NoError(t, formatter.FormatPublish(&buf, testPublishResult()))

		output := buf.String()
		assert.Contains(t, output, "Uploaded: dist/pkg-1.0.tar.gz [sdist]")
		assert.Contains(t, output, "Uploaded: dist/pkg-1.0-py2-none-any.whl [bdist_wheel py2]")
		assert.Contains(t, output, "  URL: https://bitbucket.org/owner/repo/downloads/pkg-1.0-py2-none-any.whl")
		assert.Contains(t, output, "Download URL: https://bitbucket.org/owner/repo/downloads/pkg-1.0.tar.gz")
	})

	t.Run("quiet mode prints only the download url", func(t *testing.T) {
		formatter := &clientcli.HumanFormatter{Quiet: true}

		var buf bytes.Buffer
		require.NoError(t, formatter.FormatPublish(&buf, testPublishResult()))
		assert.Equal(t, "https://bitbucket.org/owner/repo/downloads/pkg-1.0.tar.gz\n", buf.String())
	})
}

func TestHumanFormatter_FormatError(t *testing.T) {
	formatter := &clientcli.HumanFormatter{}

	var buf bytes.Buffer
	require.NoError(t, formatter.FormatError(&buf, errors.New("something went wrong")))
	assert.Equal(t, "Error: something went wrong\n", buf.String())
}

func TestJSONFormatter_FormatPublish(t *testing.T) {
	formatter := &clientcli.JSONFormatter{}

	var buf bytes.Buffer
	require.NoError(t, formatter.FormatPublish(&buf, testPublishResult()))

	var output struct {
		Repository string `json:"repository"`
		Uploads    []struct {
			Command string `json:"command"`
			Target  string `json:"target"`
			Path    string `json:"path"`
			URL     string `json:"url"`
		} `json:"uploads"`
		DownloadURL string `json:"download_url"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "owner/repo", output.Repository)
	require.Len(t, output.Uploads, 2)
	assert.Equal(t, "sdist", output.Uploads[0].Command)
	assert.Equal(t, "py2", output.Uploads[1].Target)
	assert.Equal(t, "https://bitbucket.org/owner/repo/downloads/pkg-1.0.tar.gz", output.DownloadURL)
}

func TestJSONFormatter_FormatError(t *testing.T) {
	formatter := &clientcli.JSONFormatter{}

	var buf bytes.Buffer
	require.NoError(t, formatter.FormatError(&buf, errors.New("test error")))

	var output map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "test error", output["error"])
}
