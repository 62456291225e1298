package jobfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescription_JobBoardMarkup(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<div class="job-description">
			<h1>Backend Engineer</h1>
			<p>Requirements: Python, Docker, Kubernetes</p>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(html))
	}))
	defer ts.Close()

	text, err := Description(context.Background(), ts.URL, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Requirements: Python, Docker, Kubernetes")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestDescription_BodyFallback(t *testing.T) {
	html := `<html><body><p>Plain posting text</p><script>track();</script></body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(html))
	}))
	defer ts.Close()

	text, err := Description(context.Background(), ts.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, "Plain posting text", text)
}

func TestDescription_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := Description(context.Background(), ts.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestDescription_InvalidURL(t *testing.T) {
	_, err := Description(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestCleanWhitespace(t *testing.T) {
	in := "  Line one  \n\n\n   Line two\n   \n"
	assert.Equal(t, "Line one\nLine two", cleanWhitespace(in))
}
