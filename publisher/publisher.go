package publisher

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/locker"
	"github.com/spf13/afero"
	"github.com/sunwei/siteconf/helpers"
	"github.com/sunwei/siteconf/minifiers"
)

// Publisher publishes a result file.
type Publisher interface {
	Publish(d Descriptor) error
}

// Descriptor describes the needed publishing chain for an item.
type Descriptor struct {
	// The content to publish.
	Src io.Reader

	// The media type of this content, e.g. "text/html".
	MediaType string

	// Where to publish this content. This is a filesystem-relative path.
	TargetPath string

	// Enable to minify the output using the minifier registered
	// for MediaType.
	Minify bool
}

// NewDestinationPublisher creates a new DestinationPublisher.
func NewDestinationPublisher(fs afero.Fs, min minifiers.Client) DestinationPublisher {
	return DestinationPublisher{fs: fs, min: min, locker: locker.NewLocker()}
}

// DestinationPublisher is the default and currently only publisher. This
// publisher prepares and publishes an item to the defined destination, e.g. /public.
type DestinationPublisher struct {
	fs  afero.Fs
	min minifiers.Client

	// Serializes writes to the same TargetPath.
	locker *locker.Locker
}

// Publish applies any relevant transformations and writes the file
// to its destination, e.g. /public.
func (p DestinationPublisher) Publish(d Descriptor) error {
	if d.TargetPath == "" {
		return errors.New("publish: must provide a TargetPath")
	}

	src := d.Src

	if d.Minify {
		b := &bytes.Buffer{}
		if err := p.min.Minify(d.MediaType, b, d.Src); err != nil {
			return fmt.Errorf("failed to process %q: %w", d.TargetPath, err)
		}

		// This is now what we write to disk.
		src = b
	}

	p.locker.Lock(d.TargetPath)
	defer p.locker.Unlock(d.TargetPath)

	f, err := helpers.OpenFileForWriting(p.fs, d.TargetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, src)

	return err
}
