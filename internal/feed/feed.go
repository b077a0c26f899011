// Package feed renders the extension catalog as an RSS 2.0 feed.
package feed

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	exterrors "github.com/wexinc/extcat/internal/errors"
	"github.com/wexinc/extcat/internal/extension"
)

// Options describes the channel.
type Options struct {
	Title       string
	Description string
	// SiteURL is the base every item link is resolved against.
	SiteURL string
	// PathPrefix sits between SiteURL and the slug when set.
	PathPrefix string
	// BuildDate is written as lastBuildDate when non-zero.
	BuildDate time.Time
}

// Build assembles the channel from the valid extensions, sorted by name
// descending. Item links double as permalink GUIDs.
func Build(exts []*extension.Extension, opts Options) *feeds.RssFeed {
	valid := make([]*extension.Extension, 0, len(exts))
	for _, e := range exts {
		if e.Valid() {
			valid = append(valid, e)
		}
	}
	slices.SortStableFunc(valid, func(a, b *extension.Extension) int {
		return strings.Compare(b.Name, a.Name)
	})

	ch := &feeds.RssFeed{
		Title:       opts.Title,
		Link:        extension.Link(opts.SiteURL, opts.PathPrefix, ""),
		Description: opts.Description,
		Generator:   "extcat",
		Items:       make([]*feeds.RssItem, 0, len(valid)),
	}
	if !opts.BuildDate.IsZero() {
		ch.LastBuildDate = opts.BuildDate.UTC().Format(time.RFC1123Z)
	}

	for _, e := range valid {
		link := e.Link(opts.SiteURL, opts.PathPrefix)
		item := &feeds.RssItem{
			Title:       e.Name,
			Link:        link,
			Description: e.Excerpt,
			Guid:        &feeds.RssGuid{Id: link, IsPermaLink: "true"},
		}
		if html := RenderMarkdown(e.Description); html != "" {
			item.Content = &feeds.RssContent{Content: html}
		}
		ch.Items = append(ch.Items, item)
	}
	return ch
}

// Encode writes the channel as an indented RSS 2.0 document with the
// content namespace declared.
func Encode(w io.Writer, ch *feeds.RssFeed) error {
	if err := feeds.WriteXML(ch, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Write builds the feed and writes it to path, creating parent directories.
func Write(path string, exts []*extension.Extension, opts Options) error {
	var buf bytes.Buffer
	if err := Encode(&buf, Build(exts, opts)); err != nil {
		return exterrors.FeedWriteError(path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return exterrors.FeedWriteError(path, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return exterrors.FeedWriteError(path, err)
	}
	return nil
}
