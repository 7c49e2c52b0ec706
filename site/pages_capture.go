package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/sunwei/siteconf/helpers"
	"github.com/sunwei/siteconf/log"
)

func newPagesCollector(fs afero.Fs, contentDir string, supports func(markup string) bool) *pagesCollector {
	return &pagesCollector{
		fs:         fs,
		contentDir: contentDir,
		supports:   supports,
		proc:       newPagesProcessor(fs, contentDir),
	}
}

// pagesCollector finds the content files the converters can handle.
type pagesCollector struct {
	fs         afero.Fs
	contentDir string

	// Reports whether there is a converter for the markup name.
	supports func(markup string) bool

	proc *pagesProcessor
}

// Collect pages.
func (c *pagesCollector) Collect() (pages []*pageState, collectErr error) {
	log.Process("pagesCollector", "collect content files")

	c.proc.Start(context.Background())
	defer func() {
		p, err := c.proc.Wait()
		if collectErr == nil {
			pages, collectErr = p, err
		}
	}()

	collectErr = c.collectDir(c.contentDir)

	return
}

func (c *pagesCollector) collectDir(dirname string) error {
	if _, err := c.fs.Stat(dirname); err != nil {
		if os.IsNotExist(err) {
			// No content, e.g. a site with extra pages only.
			return nil
		}
		return err
	}

	return afero.Walk(c.fs, dirname, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		name := info.Name()
		if info.IsDir() {
			if path != dirname && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !c.supports(helpers.Ext(name)) {
			return nil
		}

		return c.proc.Process(path)
	})
}
