package markup_test

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/celebi-bot/celebi/internal/clients/astonish/markup"
)

var forumURL = &url.URL{Scheme: "https", Host: "astonish.jcink.net"}

func loadDocument(t *testing.T, name string) *goquery.Document {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	doc, err := markup.NewDocument(f)
	require.NoError(t, err)
	return doc
}

func parseDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := markup.NewDocument(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}
