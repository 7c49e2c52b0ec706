package publisher

import (
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/siteconf/minifiers"
)

func TestDestinationPublisher(t *testing.T) {
	fs := afero.NewMemMapFs()
	min, err := minifiers.New(nil)
	require.NoError(t, err)

	p := NewDestinationPublisher(fs, min)

	css := "body {\n  color: red;\n}\n"

	require.NoError(t, p.Publish(Descriptor{
		Src:        strings.NewReader(css),
		MediaType:  "text/css",
		TargetPath: "styles/plain.css",
	}))
	require.NoError(t, p.Publish(Descriptor{
		Src:        strings.NewReader(css),
		MediaType:  "text/css",
		TargetPath: "/styles/min.css",
		Minify:     true,
	}))

	b, err := afero.ReadFile(fs, "styles/plain.css")
	require.NoError(t, err)
	assert.Equal(t, css, string(b))

	b, err = afero.ReadFile(fs, "/styles/min.css")
	require.NoError(t, err)
	assert.Equal(t, "body{color:red}", string(b))
}

func TestPublishRequiresTargetPath(t *testing.T) {
	min, err := minifiers.New(nil)
	require.NoError(t, err)
	p := NewDestinationPublisher(afero.NewMemMapFs(), min)
	err = p.Publish(Descriptor{Src: strings.NewReader("x")})
	assert.Error(t, err)
}

func TestPublishConcurrent(t *testing.T) {
	fs := afero.NewMemMapFs()
	min, err := minifiers.New(nil)
	require.NoError(t, err)
	p := NewDestinationPublisher(fs, min)

	contents := []string{strings.Repeat("a", 4096), strings.Repeat("b", 4096)}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, p.Publish(Descriptor{
				Src:        strings.NewReader(contents[i%2]),
				MediaType:  "text/plain",
				TargetPath: "same.txt",
			}))
		}(i)
	}
	wg.Wait()

	b, err := afero.ReadFile(fs, "same.txt")
	require.NoError(t, err)
	assert.Contains(t, contents, string(b))
}
