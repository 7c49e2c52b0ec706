package site

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

func newPagesProcessor(fs afero.Fs, contentDir string) *pagesProcessor {
	return &pagesProcessor{
		fs:         fs,
		contentDir: contentDir,
		itemChan:   make(chan string, 8),
	}
}

// pagesProcessor reads the collected content files in the background.
type pagesProcessor struct {
	fs         afero.Fs
	contentDir string

	ctx       context.Context
	itemChan  chan string
	itemGroup *errgroup.Group

	pages []*pageState
}

func (p *pagesProcessor) Process(filename string) error {
	select {
	case <-p.ctx.Done():
		return nil
	default:
		p.itemChan <- filename
	}
	return nil
}

func (p *pagesProcessor) Start(ctx context.Context) context.Context {
	p.itemGroup, ctx = errgroup.WithContext(ctx)
	p.ctx = ctx
	p.itemGroup.Go(func() error {
		for filename := range p.itemChan {
			if err := p.doProcess(filename); err != nil {
				// Drain so Process never blocks.
				for range p.itemChan {
				}
				return err
			}
		}
		return nil
	})
	return ctx
}

// Wait returns the pages read, or the first error.
func (p *pagesProcessor) Wait() ([]*pageState, error) {
	close(p.itemChan)
	if err := p.itemGroup.Wait(); err != nil {
		return nil, err
	}
	return p.pages, nil
}

func (p *pagesProcessor) doProcess(filename string) error {
	rel, err := filepath.Rel(p.contentDir, filename)
	if err != nil {
		return err
	}

	content, err := afero.ReadFile(p.fs, filename)
	if err != nil {
		return err
	}

	p.pages = append(p.pages, newPageState(rel, content))
	return nil
}
