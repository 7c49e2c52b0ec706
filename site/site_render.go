package site

import (
	"fmt"
	"sync"

	"github.com/sunwei/siteconf/markup/converter"
)

const htmlMediaType = "text/html"

// renderPages renders pages each corresponding to a markdown file.
func (s *Site) renderPages() error {
	numWorkers := 3

	results := make(chan error)
	pages := make(chan *pageState, numWorkers) // buffered for performance
	errs := make(chan error)

	go s.errorCollator(results, errs)

	wg := &sync.WaitGroup{}

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go pageRenderer(s, pages, results, wg)
	}

	for _, p := range s.pages {
		pages <- p
	}

	close(pages)

	wg.Wait()

	close(results)

	err := <-errs
	if err != nil {
		return fmt.Errorf("failed to render pages: %w", err)
	}
	return nil
}

func pageRenderer(
	s *Site,
	pages <-chan *pageState,
	results chan<- error,
	wg *sync.WaitGroup) {
	defer wg.Done()

	for p := range pages {
		if err := s.renderPage(p); err != nil {
			results <- err
		}
	}
}

func (s *Site) renderPage(p *pageState) error {
	cp := s.ContentSpec.Get(p.markup)
	if cp == nil {
		return fmt.Errorf("no converter for %q", p.filename)
	}

	conv, err := cp.New(converter.DocumentContext{
		DocumentName: p.filename,
		Filename:     p.filename,
	})
	if err != nil {
		return err
	}

	r, err := conv.Convert(converter.RenderContext{Src: p.content})
	if err != nil {
		return err
	}

	return s.publish(p.targetPath(), htmlMediaType, r.Bytes())
}

// errorCollator collects the errors sent on results and reports the first
// one on errs when results is closed.
func (s *Site) errorCollator(results <-chan error, errs chan<- error) {
	var errors []error
	for e := range results {
		errors = append(errors, e)
	}

	if len(errors) > 0 {
		for _, e := range errors[1:] {
			s.Log.Errorf("%s", e)
		}
		errs <- errors[0]
	} else {
		errs <- nil
	}

	close(errs)
}
